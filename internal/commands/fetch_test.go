package commands_test

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	commandsFakes "github.com/ucsc-xena/xena-gdc/internal/commands/fakes"
	"github.com/ucsc-xena/xena-gdc/internal/source"
	sourceFakes "github.com/ucsc-xena/xena-gdc/internal/source/fakes"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("Fetch", func() {
	var (
		fetch                   commands.Fetch
		logger                  *log.Logger
		tmpDir                  string
		someXenafilePath        string
		someXenafileLockPath    string
		lockContents            string
		someDataDirectory       string
		fakeFileSource          *sourceFakes.MultiFileSource
		fakeLocalDataDirectory  *commandsFakes.LocalDataDirectory
		multiFileSourceProvider commands.MultiFileSourceProvider

		fetchExecuteArgs []string
		fetchExecuteErr  error
	)

	const (
		gdcSourceID = "gdc"

		survivalDataset = "TCGA-BRCA/survival"
		survivalUUID    = "607fac9f-7f1f-4b27-96e4-b0d613d43a03"
		survivalMD5     = "6183de633b31364201d2f8acae281315"
	)

	Describe("Execute", func() {
		BeforeEach(func() {
			logger = log.New(GinkgoWriter, "", 0)

			var err error
			tmpDir, err = os.MkdirTemp("", "fetch-test")
			Expect(err).NotTo(HaveOccurred())

			someDataDirectory, err = os.MkdirTemp(tmpDir, "")
			Expect(err).NotTo(HaveOccurred())

			someXenafilePath = filepath.Join(tmpDir, "Xenafile")
			err = os.WriteFile(someXenafilePath, []byte(`---
file_sources:
  - type: "gdc"
`), 0o644)
			Expect(err).NotTo(HaveOccurred())

			someXenafileLockPath = filepath.Join(tmpDir, "Xenafile.lock")
			lockContents = `---
data_release: "28.0"
files:
- dataset: ` + survivalDataset + `
  uuid: ` + survivalUUID + `
  file_name: survival.tsv
  md5: ` + survivalMD5 + `
  size: 14
  remote_source: ` + gdcSourceID + `
  remote_path: data/` + survivalUUID + `
`

			fakeLocalDataDirectory = new(commandsFakes.LocalDataDirectory)
			fakeFileSource = new(sourceFakes.MultiFileSource)

			fetchExecuteArgs = []string{
				"--data-directory", someDataDirectory,
				"--xenafile", someXenafilePath,
			}
		})

		AfterEach(func() {
			Expect(os.RemoveAll(tmpDir)).To(Succeed())
		})

		JustBeforeEach(func() {
			multiFileSourceProvider = func(spec xenafile.Xenafile) source.MultiFileSource {
				return fakeFileSource
			}

			err := os.WriteFile(someXenafileLockPath, []byte(lockContents), 0o644)
			Expect(err).NotTo(HaveOccurred())
			fetch = commands.NewFetch(logger, multiFileSourceProvider, fakeLocalDataDirectory)

			fetchExecuteErr = fetch.Execute(fetchExecuteArgs)
		})

		When("the data directory is empty", func() {
			BeforeEach(func() {
				fakeLocalDataDirectory.GetLocalFilesReturns(nil, nil)
				fakeFileSource.DownloadFileReturns(source.LocalFile{
					FileLock: xenafile.FileLock{
						Dataset:  survivalDataset,
						UUID:     survivalUUID,
						FileName: "survival.tsv",
						MD5:      survivalMD5,
						Size:     14,
					},
					LocalPath: "not-used",
				}, nil)
			})

			It("downloads the missing file", func() {
				Expect(fetchExecuteErr).NotTo(HaveOccurred())

				Expect(fakeFileSource.DownloadFileCallCount()).To(Equal(1))
				_, dataDir, lock := fakeFileSource.DownloadFileArgsForCall(0)
				Expect(dataDir).To(Equal(someDataDirectory))
				Expect(lock.UUID).To(Equal(survivalUUID))
				Expect(lock.RemoteSource).To(Equal(gdcSourceID))
			})
		})

		When("the file already exists locally", func() {
			BeforeEach(func() {
				fakeLocalDataDirectory.GetLocalFilesReturns([]source.LocalFile{
					{
						FileLock:  xenafile.FileLock{FileName: "survival.tsv", MD5: survivalMD5, Size: 14},
						LocalPath: filepath.Join(someDataDirectory, "survival.tsv"),
					},
				}, nil)
			})

			It("does not download anything", func() {
				Expect(fetchExecuteErr).NotTo(HaveOccurred())
				Expect(fakeFileSource.DownloadFileCallCount()).To(Equal(0))
			})
		})

		When("a local file is not in the lock", func() {
			var extraFile source.LocalFile

			BeforeEach(func() {
				extraFile = source.LocalFile{
					FileLock:  xenafile.FileLock{FileName: "stale.tsv", MD5: "54cf9648ae45c9ce1aaaaeb87ab76d95", Size: 12},
					LocalPath: filepath.Join(someDataDirectory, "stale.tsv"),
				}
				fakeLocalDataDirectory.GetLocalFilesReturns([]source.LocalFile{
					{
						FileLock:  xenafile.FileLock{FileName: "survival.tsv", MD5: survivalMD5, Size: 14},
						LocalPath: filepath.Join(someDataDirectory, "survival.tsv"),
					},
					extraFile,
				}, nil)
				fetchExecuteArgs = append(fetchExecuteArgs, "--no-confirm")
			})

			It("deletes the extra file", func() {
				Expect(fetchExecuteErr).NotTo(HaveOccurred())

				Expect(fakeLocalDataDirectory.DeleteExtraFilesCallCount()).To(Equal(1))
				extras, noConfirm := fakeLocalDataDirectory.DeleteExtraFilesArgsForCall(0)
				Expect(noConfirm).To(Equal(true))
				Expect(extras).To(ConsistOf(extraFile))
			})
		})

		When("the downloaded file has the wrong md5 sum", func() {
			var badFilePath string

			BeforeEach(func() {
				badFilePath = filepath.Join(someDataDirectory, "survival.tsv")
				Expect(os.WriteFile(badFilePath, []byte("banana"), 0o644)).To(Succeed())

				fakeLocalDataDirectory.GetLocalFilesReturns(nil, nil)
				fakeFileSource.DownloadFileReturns(source.LocalFile{
					FileLock: xenafile.FileLock{
						FileName: "survival.tsv",
						MD5:      "72b302bf297a228a75730123efef7c41",
						Size:     6,
					},
					LocalPath: badFilePath,
				}, nil)
			})

			It("deletes the bad file and errors", func() {
				Expect(fetchExecuteErr).To(MatchError(ContainSubstring("incorrect md5")))
				Expect(badFilePath).NotTo(BeAnExistingFile())
			})
		})

		When("downloading fails", func() {
			BeforeEach(func() {
				fakeLocalDataDirectory.GetLocalFilesReturns(nil, nil)
				fakeFileSource.DownloadFileReturns(source.LocalFile{}, errors.New("cloud is down"))
			})

			It("errors", func() {
				Expect(fetchExecuteErr).To(MatchError(ContainSubstring("download failed: cloud is down")))
			})
		})
	})
})
