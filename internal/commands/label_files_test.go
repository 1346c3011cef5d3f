package commands_test

import (
	"errors"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	"github.com/ucsc-xena/xena-gdc/internal/commands/fakes"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("LabelFiles", func() {
	var _ jhanda.Command = commands.LabelFiles{}

	const (
		survivalDataset = "TCGA-BRCA/survival"
		survivalUUID    = "607fac9f-4c94-4b60-91ae-a31f0c346fde"
		countsUUID      = "2f7c9ab1-53dc-4a4a-a53a-bd8c50b0ac5c"
	)

	var (
		fs     billy.Filesystem
		portal *fakes.GDCPortal
		outBuf *gbytes.Buffer

		labelFiles commands.LabelFiles
	)

	BeforeEach(func() {
		fs = memfs.New()

		portal = new(fakes.GDCPortal)
		portal.LabelsReturns(map[string]string{
			"TCGA-A1-A0SD-01A": countsUUID,
			"TCGA-A1-A0SB-01A": survivalUUID,
		}, nil)

		outBuf = gbytes.NewBuffer()
		labelFiles = commands.NewLabelFiles(log.New(outBuf, "", 0), portal)
		labelFiles.FS = fs

		Expect(fsWriteYAML(fs, "Xenafile", xenafile.Xenafile{
			FileSources: []xenafile.FileSourceConfig{{Type: "gdc"}},
			Datasets: []xenafile.DatasetSpec{
				{
					Name:       survivalDataset,
					Project:    "TCGA-BRCA",
					DataType:   "Clinical Supplement",
					LabelField: "cases.samples.submitter_id",
				},
			},
		})).To(Succeed())

		Expect(fsWriteYAML(fs, "Xenafile.lock", xenafile.XenafileLock{
			DataRelease: "29.0",
			Files: []xenafile.FileLock{
				{Dataset: survivalDataset, UUID: survivalUUID, FileName: "survival.tsv", RemoteSource: "gdc"},
				{Dataset: survivalDataset, UUID: countsUUID, FileName: "survival_2.tsv", RemoteSource: "gdc"},
			},
		})).To(Succeed())
	})

	When("a dataset is given", func() {
		It("labels the locked files with the dataset's label field", func() {
			err := labelFiles.Execute([]string{"--dataset", survivalDataset})
			Expect(err).NotTo(HaveOccurred())

			Expect(portal.LabelsCallCount()).To(Equal(1))
			_, uuids, labelField := portal.LabelsArgsForCall(0)
			Expect(uuids).To(Equal([]string{survivalUUID, countsUUID}))
			Expect(labelField).To(Equal("cases.samples.submitter_id"))

			Expect(string(outBuf.Contents())).To(Equal(
				"TCGA-A1-A0SB-01A\t" + survivalUUID + "\n" +
					"TCGA-A1-A0SD-01A\t" + countsUUID + "\n"))
		})

		It("lets the label field be overridden", func() {
			err := labelFiles.Execute([]string{
				"--dataset", survivalDataset,
				"--label-field", "cases.case_id",
			})
			Expect(err).NotTo(HaveOccurred())

			_, _, labelField := portal.LabelsArgsForCall(0)
			Expect(labelField).To(Equal("cases.case_id"))
		})

		When("the dataset is not declared", func() {
			It("returns an error", func() {
				err := labelFiles.Execute([]string{"--dataset", "TCGA-LUAD/counts"})
				Expect(err).To(MatchError(ContainSubstring(`unknown dataset "TCGA-LUAD/counts"`)))
			})
		})
	})

	When("uuids are given directly", func() {
		It("does not read the Xenafiles", func() {
			Expect(fs.Remove("Xenafile")).To(Succeed())
			Expect(fs.Remove("Xenafile.lock")).To(Succeed())

			err := labelFiles.Execute([]string{
				"--uuid", survivalUUID,
				"--label-field", "cases.samples.submitter_id",
			})
			Expect(err).NotTo(HaveOccurred())

			_, uuids, labelField := portal.LabelsArgsForCall(0)
			Expect(uuids).To(Equal([]string{survivalUUID}))
			Expect(labelField).To(Equal("cases.samples.submitter_id"))
		})
	})

	When("json format is requested", func() {
		It("prints the mapping as json", func() {
			err := labelFiles.Execute([]string{
				"--dataset", survivalDataset,
				"--format", "json",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(string(outBuf.Contents())).To(Equal(`{"TCGA-A1-A0SB-01A":"` + survivalUUID + `","TCGA-A1-A0SD-01A":"` + countsUUID + `"}` + "\n"))
		})
	})

	When("neither a dataset nor uuids are given", func() {
		It("returns an error", func() {
			err := labelFiles.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring("either --dataset or --uuid must be given")))
			Expect(portal.LabelsCallCount()).To(Equal(0))
		})
	})

	When("the portal request fails", func() {
		It("returns an error", func() {
			portal.LabelsReturns(nil, errors.New("portal is down"))

			err := labelFiles.Execute([]string{"--dataset", survivalDataset})
			Expect(err).To(MatchError(ContainSubstring("failed to fetch labels: portal is down")))
		})
	})
})
