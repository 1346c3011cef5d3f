package commands_test

import (
	"context"
	"errors"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/onsi/gomega/gbytes"
	"github.com/pivotal-cf/jhanda"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	"github.com/ucsc-xena/xena-gdc/internal/commands/fakes"
	"github.com/ucsc-xena/xena-gdc/internal/gdc"
	sourcefakes "github.com/ucsc-xena/xena-gdc/internal/source/fakes"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("UpdateLock", func() {
	var _ jhanda.Command = commands.UpdateLock{}

	const (
		survivalDataset = "TCGA-BRCA/survival"
		countsDataset   = "TCGA-BRCA/counts"

		oldSurvivalUUID = "3c2d8f1a-77be-4f11-a9cf-20c1e87a2c44"
		newSurvivalUUID = "607fac9f-7f1f-4b27-96e4-b0d613d43a03"
		newCountsUUID   = "2f7c9ab1-55aa-4e21-bb07-54f1d8c2f3aa"
	)

	Describe("Execute", func() {
		var (
			update       *commands.UpdateLock
			fs           billy.Filesystem
			spec         xenafile.Xenafile
			lock         xenafile.XenafileLock
			fileSource   *sourcefakes.MultiFileSource
			portal       *fakes.GDCPortal
			outputBuffer *gbytes.Buffer
		)

		BeforeEach(func() {
			fs = memfs.New()

			spec = xenafile.Xenafile{
				FileSources: []xenafile.FileSourceConfig{{Type: "gdc"}},
				DataRelease: "~29",
				Datasets: []xenafile.DatasetSpec{
					{Name: survivalDataset, Project: "TCGA-BRCA", DataType: "Clinical Supplement"},
					{Name: countsDataset, Project: "TCGA-BRCA", DataType: "Gene Expression Quantification"},
				},
			}
			lock = xenafile.XenafileLock{
				DataRelease: "28.0",
				Files: []xenafile.FileLock{
					{
						Dataset:      survivalDataset,
						UUID:         oldSurvivalUUID,
						FileName:     "survival.tsv",
						MD5:          "0f343b0931126a20f133d67c2b018a3b",
						Size:         13,
						RemoteSource: "gdc",
						RemotePath:   "data/" + oldSurvivalUUID,
					},
				},
			}

			fileSource = new(sourcefakes.MultiFileSource)
			fileSource.ResolveFilesCalls(func(_ context.Context, dataset xenafile.DatasetSpec) ([]xenafile.FileLock, error) {
				switch dataset.Name {
				case survivalDataset:
					return []xenafile.FileLock{{
						Dataset:      survivalDataset,
						UUID:         newSurvivalUUID,
						FileName:     "survival.tsv",
						MD5:          "6183de633b31364201d2f8acae281315",
						Size:         14,
						RemoteSource: "gdc",
						RemotePath:   "data/" + newSurvivalUUID,
					}}, nil
				case countsDataset:
					return []xenafile.FileLock{{
						Dataset:      countsDataset,
						UUID:         newCountsUUID,
						FileName:     "htseq_counts.tsv",
						MD5:          "5a5cb4eb3aa99be77f27478e8d70edc8",
						Size:         12,
						RemoteSource: "gdc",
						RemotePath:   "data/" + newCountsUUID,
					}}, nil
				default:
					panic("unexpected dataset name")
				}
			})

			multiFileSourceProvider := new(fakes.MultiFileSourceProvider)
			multiFileSourceProvider.Returns(fileSource)

			portal = new(fakes.GDCPortal)
			portal.StatusReturns(gdc.Status{
				DataRelease: "Data Release 29.0 - March 04, 2021",
				Status:      "OK",
			}, nil)

			outputBuffer = gbytes.NewBuffer()
			logger := log.New(outputBuffer, "", 0)

			update = &commands.UpdateLock{
				FS:                      fs,
				MultiFileSourceProvider: multiFileSourceProvider.Spy,
				Portal:                  portal,
				Logger:                  logger,
			}
		})

		JustBeforeEach(func() {
			Expect(fsWriteYAML(fs, "Xenafile", spec)).NotTo(HaveOccurred())
			Expect(fsWriteYAML(fs, "Xenafile.lock", lock)).NotTo(HaveOccurred())
		})

		It("updates the Xenafile.lock contents", func() {
			err := update.Execute([]string{"--version", "29.0"})
			Expect(err).NotTo(HaveOccurred())

			var updatedLock xenafile.XenafileLock
			Expect(fsReadYAML(fs, "Xenafile.lock", &updatedLock)).NotTo(HaveOccurred())
			Expect(updatedLock.DataRelease).To(Equal("29.0"))
			Expect(updatedLock.Files).To(Equal([]xenafile.FileLock{
				{
					Dataset:      countsDataset,
					UUID:         newCountsUUID,
					FileName:     "htseq_counts.tsv",
					MD5:          "5a5cb4eb3aa99be77f27478e8d70edc8",
					Size:         12,
					RemoteSource: "gdc",
					RemotePath:   "data/" + newCountsUUID,
				},
				{
					Dataset:      survivalDataset,
					UUID:         newSurvivalUUID,
					FileName:     "survival.tsv",
					MD5:          "6183de633b31364201d2f8acae281315",
					Size:         14,
					RemoteSource: "gdc",
					RemotePath:   "data/" + newSurvivalUUID,
				},
			}))

			Expect(portal.StatusCallCount()).To(Equal(0))
			Expect(outputBuffer.Contents()).To(ContainSubstring("Finished updating Xenafile.lock"))
		})

		It("asks the portal for the latest release when no version is given", func() {
			err := update.Execute(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(portal.StatusCallCount()).To(Equal(1))

			var updatedLock xenafile.XenafileLock
			Expect(fsReadYAML(fs, "Xenafile.lock", &updatedLock)).NotTo(HaveOccurred())
			Expect(updatedLock.DataRelease).To(Equal("29.0"))
		})

		It("resolves every dataset in the Xenafile", func() {
			err := update.Execute([]string{"--version", "29.0"})
			Expect(err).NotTo(HaveOccurred())

			Expect(fileSource.ResolveFilesCallCount()).To(Equal(2))

			_, dataset1 := fileSource.ResolveFilesArgsForCall(0)
			Expect(dataset1.Name).To(Equal(survivalDataset))

			_, dataset2 := fileSource.ResolveFilesArgsForCall(1)
			Expect(dataset2.Name).To(Equal(countsDataset))
		})

		When("the data release didn't change", func() {
			BeforeEach(func() {
				lock.DataRelease = "29.0"
			})

			It("no-ops", func() {
				err := update.Execute([]string{"--version", "29.0"})
				Expect(err).NotTo(HaveOccurred())

				Expect(fileSource.ResolveFilesCallCount()).To(Equal(0))

				var updatedLock xenafile.XenafileLock
				Expect(fsReadYAML(fs, "Xenafile.lock", &updatedLock)).NotTo(HaveOccurred())
				Expect(updatedLock).To(Equal(lock))

				Expect(outputBuffer.Contents()).To(ContainSubstring("Data release is up-to-date. Nothing to update."))
			})
		})

		When("the release does not match the Xenafile constraint", func() {
			It("no-ops", func() {
				err := update.Execute([]string{"--version", "30.0"})
				Expect(err).NotTo(HaveOccurred())

				Expect(fileSource.ResolveFilesCallCount()).To(Equal(0))

				var updatedLock xenafile.XenafileLock
				Expect(fsReadYAML(fs, "Xenafile.lock", &updatedLock)).NotTo(HaveOccurred())
				Expect(updatedLock).To(Equal(lock))

				Expect(string(outputBuffer.Contents())).To(ContainSubstring("Latest data release does not satisfy the data_release constraint in Xenafile"))
			})
		})

		When("the version input is invalid", func() {
			It("errors", func() {
				err := update.Execute([]string{"--version", "34$5235.32235"})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("please enter a valid data release version"))
			})
		})

		When("--dry-run is given", func() {
			It("prints the updated lock without writing it", func() {
				err := update.Execute([]string{"--version", "29.0", "--dry-run"})
				Expect(err).NotTo(HaveOccurred())

				var updatedLock xenafile.XenafileLock
				Expect(fsReadYAML(fs, "Xenafile.lock", &updatedLock)).NotTo(HaveOccurred())
				Expect(updatedLock).To(Equal(lock))

				Expect(string(outputBuffer.Contents())).To(ContainSubstring("would update Xenafile.lock to:"))
				Expect(string(outputBuffer.Contents())).To(ContainSubstring(newCountsUUID))
			})
		})

		When("resolving a dataset fails", func() {
			BeforeEach(func() {
				fileSource.ResolveFilesCalls(nil)
				fileSource.ResolveFilesReturns(nil, errors.New("portal is down"))
			})

			It("errors", func() {
				err := update.Execute([]string{"--version", "29.0"})
				Expect(err).To(MatchError(ContainSubstring(`while resolving dataset "TCGA-BRCA/survival", encountered error: portal is down`)))
			})
		})
	})
})
