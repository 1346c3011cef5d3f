package commands_test

import (
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	"github.com/ucsc-xena/xena-gdc/internal/commands/fakes"
	"github.com/ucsc-xena/xena-gdc/internal/gdc"
)

var _ = Describe("FindFiles", func() {
	var _ jhanda.Command = commands.FindFiles{}

	var (
		portal *fakes.GDCPortal
		outBuf *gbytes.Buffer

		findFiles commands.FindFiles
	)

	BeforeEach(func() {
		portal = new(fakes.GDCPortal)
		portal.FileIDsReturns([]string{
			"607fac9f-4c94-4b60-91ae-a31f0c346fde",
			"2f7c9ab1-53dc-4a4a-a53a-bd8c50b0ac5c",
		}, nil)

		outBuf = gbytes.NewBuffer()
		findFiles = commands.NewFindFiles(log.New(outBuf, "", 0), portal)
	})

	It("queries the portal with the flag conditions", func() {
		err := findFiles.Execute([]string{
			"--project", "TCGA-BRCA",
			"--data-type", "Gene Expression Quantification",
			"--workflow-type", "HTSeq - Counts",
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(portal.FileIDsCallCount()).To(Equal(1))
		_, filter := portal.FileIDsArgsForCall(0)
		Expect(filter).To(Equal(gdc.AndEq(map[string]string{
			"cases.project.project_id": "TCGA-BRCA",
			"data_type":                "Gene Expression Quantification",
			"analysis.workflow_type":   "HTSeq - Counts",
		})))

		Expect(string(outBuf.Contents())).To(Equal(`{"file_ids":["607fac9f-4c94-4b60-91ae-a31f0c346fde","2f7c9ab1-53dc-4a4a-a53a-bd8c50b0ac5c"]}` + "\n"))
	})

	When("free-form filters are given", func() {
		It("adds them as equality conditions", func() {
			err := findFiles.Execute([]string{
				"--project", "TCGA-BRCA",
				"--filter", "data_format=BCR XML",
				"--filter", "access=open",
			})
			Expect(err).NotTo(HaveOccurred())

			_, filter := portal.FileIDsArgsForCall(0)
			Expect(filter).To(Equal(gdc.AndEq(map[string]string{
				"cases.project.project_id": "TCGA-BRCA",
				"data_format":              "BCR XML",
				"access":                   "open",
			})))
		})
	})

	When("a filter is malformed", func() {
		It("returns an error", func() {
			err := findFiles.Execute([]string{"--filter", "data_format"})
			Expect(err).To(MatchError(ContainSubstring(`invalid filter "data_format"`)))
			Expect(portal.FileIDsCallCount()).To(Equal(0))
		})
	})

	When("no conditions are given", func() {
		It("refuses to query every file on the portal", func() {
			err := findFiles.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring("at least one query condition is required")))
			Expect(portal.FileIDsCallCount()).To(Equal(0))
		})
	})

	When("the portal request fails", func() {
		It("returns an error", func() {
			portal.FileIDsReturns(nil, errors.New("portal is down"))

			err := findFiles.Execute([]string{"--project", "TCGA-BRCA"})
			Expect(err).To(MatchError(ContainSubstring("failed to query files: portal is down")))
		})
	})
})
