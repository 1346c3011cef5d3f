package commands_test

import (
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
)

var _ = Describe("validate", func() {
	var (
		validate  commands.Validate
		directory billy.Filesystem
	)

	BeforeEach(func() {
		directory = memfs.New()

		f, err := directory.Create("Xenafile")
		Expect(err).NotTo(HaveOccurred())
		// language=yaml
		_, _ = io.WriteString(f, `---
file_sources:
  - type: "gdc"
data_release: "~28"
datasets:
  - name: "TCGA-BRCA/survival"
    project: "TCGA-BRCA"
    data_type: "Clinical Supplement"
`)
		_ = f.Close()

		f, err = directory.Create("Xenafile.lock")
		Expect(err).NotTo(HaveOccurred())
		// language=yaml
		_, _ = io.WriteString(f, `---
data_release: "28.0"
files:
  - dataset: "TCGA-BRCA/survival"
    uuid: "607fac9f-7f1f-4b27-96e4-b0d613d43a03"
    file_name: "survival.tsv"
    md5: "6183de633b31364201d2f8acae281315"
    size: 14
    remote_source: "gdc"
    remote_path: "data/607fac9f-7f1f-4b27-96e4-b0d613d43a03"
`)
		_ = f.Close()
	})

	JustBeforeEach(func() {
		validate = commands.NewValidate(directory)
	})

	When("the xenafile and lock agree", func() {
		It("does not fail", func() {
			err := validate.Execute(nil)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("a locked file names an undeclared dataset", func() {
		BeforeEach(func() {
			f, err := directory.Create("Xenafile.lock")
			Expect(err).NotTo(HaveOccurred())
			// language=yaml
			_, _ = io.WriteString(f, `---
data_release: "28.0"
files:
  - dataset: "TCGA-LUAD/counts"
    uuid: "2f7c9ab1-55aa-4e21-bb07-54f1d8c2f3aa"
    file_name: "htseq_counts.tsv"
    remote_source: "gdc"
    remote_path: "data/2f7c9ab1-55aa-4e21-bb07-54f1d8c2f3aa"
`)
			_ = f.Close()
		})

		It("fails", func() {
			err := validate.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring(`not declared in Xenafile`)))
		})
	})

	When("a pipeline config is present", func() {
		BeforeEach(func() {
			f, err := directory.Create("ci.yml")
			Expect(err).NotTo(HaveOccurred())
			// language=yaml
			_, _ = io.WriteString(f, `---
language: python
runtimes:
  - "3.6"
  - "2.7"
stages:
  - test
script:
  - pytest tests
`)
			_ = f.Close()
		})

		It("validates it along with the xenafiles", func() {
			err := validate.Execute(nil)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the pipeline config is broken", func() {
			BeforeEach(func() {
				f, err := directory.Create("ci.yml")
				Expect(err).NotTo(HaveOccurred())
				// language=yaml
				_, _ = io.WriteString(f, `---
runtimes:
  - "3.6"
stages:
  - test
script:
  - pytest tests
`)
				_ = f.Close()
			})

			It("fails", func() {
				err := validate.Execute(nil)
				Expect(err).To(MatchError(ContainSubstring(`missing required field "language"`)))
			})
		})

		When("a script command cannot be resolved", func() {
			BeforeEach(func() {
				f, err := directory.Create("ci.yml")
				Expect(err).NotTo(HaveOccurred())
				// language=yaml
				_, _ = io.WriteString(f, `---
language: python
runtimes:
  - "3.6"
stages:
  - test
script:
  - not-a-binary-anyone-has tests
`)
				_ = f.Close()
			})

			It("fails only when asked to resolve commands", func() {
				Expect(validate.Execute(nil)).To(Succeed())
				Expect(validate.Execute([]string{"--resolve-commands"})).To(MatchError(ContainSubstring("script")))
			})
		})
	})

	When("resolving commands without a pipeline config", func() {
		It("fails", func() {
			err := validate.Execute([]string{"--resolve-commands"})
			Expect(err).To(MatchError(ContainSubstring("requires a pipeline config")))
		})
	})
})
