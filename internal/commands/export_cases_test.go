package commands_test

import (
	"errors"
	"io"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	"github.com/ucsc-xena/xena-gdc/internal/etl/fakes"
	"github.com/ucsc-xena/xena-gdc/internal/gdc"
)

var _ = Describe("ExportCases", func() {
	var _ jhanda.Command = commands.ExportCases{}

	var (
		fs      billy.Filesystem
		service *fakes.CaseService
		logBuf  *gbytes.Buffer

		exportCases commands.ExportCases
	)

	BeforeEach(func() {
		fs = memfs.New()

		service = new(fakes.CaseService)
		service.CasesReturnsOnCall(0, gdc.CasesPage{
			Page:  1,
			Pages: 2,
			Total: 2,
			Hits: []map[string]any{
				{
					"case_id":      "case-0001",
					"submitter_id": "TCGA-A1-A0SB",
					"project":      map[string]any{"project_id": "TCGA-BRCA", "primary_site": "Breast"},
					"demographic":  map[string]any{"gender": "female", "year_of_birth": float64(1956)},
					"diagnoses":    []any{map[string]any{"tumor_stage": "stage iia"}},
				},
			},
		}, nil)
		service.CasesReturnsOnCall(1, gdc.CasesPage{
			Page:  2,
			Pages: 2,
			Total: 2,
			Hits: []map[string]any{
				{
					"case_id":      "case-0002",
					"submitter_id": "TCGA-A1-A0SD",
					"project":      map[string]any{"project_id": "TCGA-BRCA", "primary_site": "Breast"},
					"demographic":  map[string]any{"gender": "male"},
				},
			},
		}, nil)

		logBuf = gbytes.NewBuffer()
		exportCases = commands.NewExportCases(log.New(logBuf, "", 0), service)
		exportCases.FS = fs
	})

	It("writes the merged case table", func() {
		err := exportCases.Execute(nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(service.CasesCallCount()).To(Equal(2))
		_, from, size := service.CasesArgsForCall(0)
		Expect(from).To(Equal(1))
		Expect(size).To(Equal(10))
		_, from, _ = service.CasesArgsForCall(1)
		Expect(from).To(Equal(11))

		f, err := fs.Open("cases.tsv")
		Expect(err).NotTo(HaveOccurred())
		defer closeAndIgnoreError(f)
		buf, err := io.ReadAll(f)
		Expect(err).NotTo(HaveOccurred())

		Expect(string(buf)).To(Equal(
			"_id\tgender\tprimary_site\tproject_id\tsubmitter_id\ttumor_stage\tyear_of_birth\n" +
				"case-0001\tfemale\tBreast\tTCGA-BRCA\tTCGA-A1-A0SB\tstage iia\t1956\n" +
				"case-0002\tmale\tBreast\tTCGA-BRCA\tTCGA-A1-A0SD\t\t\n"))

		Expect(logBuf).To(gbytes.Say("processing page 1/2"))
		Expect(logBuf).To(gbytes.Say("processing page 2/2"))
		Expect(logBuf).To(gbytes.Say("wrote case table to cases.tsv"))
	})

	When("an output path and page size are given", func() {
		It("honors them", func() {
			err := exportCases.Execute([]string{"--out", "clinical/cases.tsv", "--page-size", "1"})
			Expect(err).NotTo(HaveOccurred())

			_, _, size := service.CasesArgsForCall(0)
			Expect(size).To(Equal(1))

			_, err = fs.Stat("clinical/cases.tsv")
			Expect(err).NotTo(HaveOccurred())
			Expect(logBuf).To(gbytes.Say("wrote case table to clinical/cases.tsv"))
		})
	})

	When("a page fetch fails", func() {
		It("returns the error", func() {
			service.CasesReturnsOnCall(1, gdc.CasesPage{}, errors.New("portal is down"))

			err := exportCases.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring("failed to fetch cases page: portal is down")))
		})
	})
})
