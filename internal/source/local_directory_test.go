package source_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/ucsc-xena/xena-gdc/internal/source"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("the local data directory", func() {
	var (
		localDirectory source.LocalDataDirectory
		noConfirm      bool
		dataDir        string
		fakeLogger     *log.Logger
		logBuf         *gbytes.Buffer
	)

	BeforeEach(func() {
		dataDir = must(os.MkdirTemp("", "data"))
		noConfirm = true

		logBuf = gbytes.NewBuffer()
		fakeLogger = log.New(logBuf, "", 0)

		localDirectory = source.NewLocalDataDirectory(fakeLogger)
	})

	AfterEach(func() {
		_ = os.RemoveAll(dataDir)
	})

	Describe("GetLocalFiles", func() {
		Context("when data files exist in the directory", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(filepath.Join(dataDir, "a.counts.tsv.gz"), []byte("banana"), 0o644)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(dataDir, ".gdc_token"), []byte("secret"), 0o600)).To(Succeed())
				Expect(os.Mkdir(filepath.Join(dataDir, "subdir"), 0o755)).To(Succeed())
			})

			It("checksums every regular file", func() {
				locals, err := localDirectory.GetLocalFiles(dataDir)
				Expect(err).NotTo(HaveOccurred())
				Expect(locals).To(ConsistOf(
					source.LocalFile{
						FileLock: xenafile.FileLock{
							FileName: "a.counts.tsv.gz",
							MD5:      "72b302bf297a228a75730123efef7c41",
							Size:     6,
						},
						LocalPath: filepath.Join(dataDir, "a.counts.tsv.gz"),
					},
				))
			})
		})

		Context("when there are no local files", func() {
			It("returns an empty slice", func() {
				locals, err := localDirectory.GetLocalFiles(dataDir)
				Expect(err).NotTo(HaveOccurred())
				Expect(locals).To(HaveLen(0))
			})
		})

		Context("when the data directory does not exist", func() {
			It("returns an error", func() {
				_, err := localDirectory.GetLocalFiles("some-invalid-directory")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("some-invalid-directory"))
			})
		})
	})

	Describe("DeleteExtraFiles", func() {
		var extraFilePath, zFilePath string

		BeforeEach(func() {
			extraFilePath = filepath.Join(dataDir, "extra.counts.tsv.gz")
			Expect(os.WriteFile(extraFilePath, []byte("abc"), 0o644)).To(Succeed())

			zFilePath = filepath.Join(dataDir, "z.counts.tsv.gz")
			Expect(os.WriteFile(zFilePath, []byte("xyz"), 0o644)).To(Succeed())
		})

		It("deletes specified files", func() {
			extraFile := source.LocalFile{
				FileLock:  xenafile.FileLock{FileName: "extra.counts.tsv.gz"},
				LocalPath: extraFilePath,
			}

			err := localDirectory.DeleteExtraFiles([]source.LocalFile{extraFile}, noConfirm)
			Expect(err).NotTo(HaveOccurred())

			_, err = os.Stat(extraFilePath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("sorts the list of files to be deleted", func() {
			extraFile := source.LocalFile{
				FileLock:  xenafile.FileLock{FileName: "extra.counts.tsv.gz"},
				LocalPath: extraFilePath,
			}
			zFile := source.LocalFile{
				FileLock:  xenafile.FileLock{FileName: "z.counts.tsv.gz"},
				LocalPath: zFilePath,
			}

			result := fmt.Sprintf("- %s\n- %s", extraFilePath, zFilePath)

			err := localDirectory.DeleteExtraFiles([]source.LocalFile{zFile, extraFile}, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(logBuf.Contents())).To(ContainSubstring(result))
		})

		Context("when a file cannot be removed", func() {
			It("returns an error", func() {
				extraFile := source.LocalFile{
					FileLock:  xenafile.FileLock{FileName: "file-that-cannot-be-deleted"},
					LocalPath: "file-does-not-exist",
				}

				err := localDirectory.DeleteExtraFiles([]source.LocalFile{extraFile}, noConfirm)
				Expect(err).To(MatchError("failed to delete file file-that-cannot-be-deleted"))
			})
		})
	})

	Describe("Partition", func() {
		var (
			locks  []xenafile.FileLock
			locals []source.LocalFile
		)

		BeforeEach(func() {
			locks = []xenafile.FileLock{
				{Dataset: "gene-counts", UUID: "uuid-1", FileName: "a.gz", MD5: "sum-a", Size: 1, RemoteSource: "gdc"},
				{Dataset: "probemap", FileName: "gencode.v22.probemap", Size: 2, RemoteSource: "ucsc-xena"},
				{Dataset: "gene-counts", UUID: "uuid-3", FileName: "c.gz", MD5: "sum-c", Size: 3, RemoteSource: "gdc"},
			}
			locals = []source.LocalFile{
				{FileLock: xenafile.FileLock{FileName: "uuid-1.gz", MD5: "sum-a", Size: 1}, LocalPath: "data/uuid-1.gz"},
				{FileLock: xenafile.FileLock{FileName: "gencode.v22.probemap", MD5: "sum-b", Size: 2}, LocalPath: "data/gencode.v22.probemap"},
				{FileLock: xenafile.FileLock{FileName: "extra.txt", MD5: "sum-x", Size: 9}, LocalPath: "data/extra.txt"},
			}
		})

		It("matches locks with an md5 by checksum even when the local name differs", func() {
			intersection, _, _ := source.Partition(locks, locals)

			Expect(intersection).To(ContainElement(source.LocalFile{
				FileLock:  locks[0],
				LocalPath: "data/uuid-1.gz",
			}))
		})

		It("matches md5-less locks by name and size", func() {
			intersection, _, _ := source.Partition(locks, locals)

			Expect(intersection).To(ContainElement(source.LocalFile{
				FileLock:  locks[1],
				LocalPath: "data/gencode.v22.probemap",
			}))
		})

		It("reports unmatched locks as missing and unmatched local files as extra", func() {
			_, missing, extra := source.Partition(locks, locals)

			Expect(missing).To(Equal([]xenafile.FileLock{locks[2]}))
			Expect(extra).To(Equal([]source.LocalFile{locals[2]}))
		})
	})
})
