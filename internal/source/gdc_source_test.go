package source_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"

	"github.com/julienschmidt/httprouter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucsc-xena/xena-gdc/internal/source"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("resolving and downloading files from GDC", func() {
	var (
		src       *source.GDCSource
		config    xenafile.FileSourceConfig
		server    *httptest.Server
		gdcRouter *httprouter.Router

		dataDirectory string
	)

	BeforeEach(func() {
		dataDirectory = must(os.MkdirTemp("", "data"))

		config = xenafile.FileSourceConfig{
			Type: xenafile.FileSourceTypeGDC,
			ID:   "gdc",
		}

		gdcRouter = httprouter.New()
		gdcRouter.NotFound = http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			log.Fatalf("handler on fake GDC server not found for request: %s %s", req.Method, req.URL)
		})
	})

	JustBeforeEach(func() {
		server = httptest.NewTLSServer(gdcRouter)
		serverURL := must(url.Parse(server.URL))
		config.Endpoint = serverURL.Host
		src = source.NewGDCSource(config, log.New(GinkgoWriter, "", 0))
		src.Service.Client = server.Client()
	})

	AfterEach(func() {
		server.Close()
		_ = os.RemoveAll(dataDirectory)
	})

	Describe("resolving a dataset", func() {
		var spec xenafile.DatasetSpec

		BeforeEach(func() {
			spec = xenafile.DatasetSpec{
				Name:         "gene-counts",
				Project:      "TCGA-BRCA",
				DataType:     "Gene Expression Quantification",
				WorkflowType: "STAR - Counts",
			}

			gdcRouter.Handler(http.MethodPost, "/files", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				Expect(req.ParseForm()).To(Succeed())
				res.Header().Set("Content-Type", "application/json")

				switch fields := req.FormValue("fields"); fields {
				case "file_id,file_name,md5sum,file_size":
					if req.FormValue("size") == "" {
						// language=json
						_, _ = io.WriteString(res, `{"data": {"pagination": {"total": 2}}}`)
						return
					}
					Expect(req.FormValue("size")).To(Equal("2"))
					// language=json
					_, _ = io.WriteString(res, `{"data": {"hits": [
						{"file_id": "uuid-1", "file_name": "a.htseq_counts.txt.gz", "md5sum": "md5-1", "file_size": 100},
						{"file_id": "uuid-2", "file_name": "b.htseq_counts.txt.gz", "md5sum": "md5-2", "file_size": 200}
					]}}`)
				case "file_id,cases.samples.submitter_id":
					Expect(req.FormValue("size")).To(Equal("2"))
					// language=json
					_, _ = io.WriteString(res, `{"data": {"hits": [
						{"file_id": "uuid-1", "cases": [{"samples": [{"submitter_id": "TCGA-A1-A0SB-01A"}]}]},
						{"file_id": "uuid-2", "cases": [{"samples": [{"submitter_id": "TCGA-A1-A0SD-01A"}]}]}
					]}}`)
				default:
					Fail("unexpected fields param: " + fields)
				}
			}))
		})

		It("locks each matching file", func() {
			locks, err := src.ResolveFiles(context.Background(), spec)

			Expect(err).NotTo(HaveOccurred())
			Expect(locks).To(Equal([]xenafile.FileLock{
				{Dataset: "gene-counts", UUID: "uuid-1", FileName: "a.htseq_counts.txt.gz", MD5: "md5-1", Size: 100, RemoteSource: "gdc", RemotePath: "data/uuid-1"},
				{Dataset: "gene-counts", UUID: "uuid-2", FileName: "b.htseq_counts.txt.gz", MD5: "md5-2", Size: 200, RemoteSource: "gdc", RemotePath: "data/uuid-2"},
			}))
		})

		When("the dataset has a label field", func() {
			BeforeEach(func() {
				spec.LabelField = "cases.samples.submitter_id"
			})

			It("labels each lock with its sample", func() {
				locks, err := src.ResolveFiles(context.Background(), spec)

				Expect(err).NotTo(HaveOccurred())
				Expect(locks).To(HaveLen(2))
				Expect(locks[0].Label).To(Equal("TCGA-A1-A0SB-01A"))
				Expect(locks[1].Label).To(Equal("TCGA-A1-A0SD-01A"))
			})
		})
	})

	Describe("resolving a dataset with no matching files", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodPost, "/files", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				res.Header().Set("Content-Type", "application/json")
				// language=json
				_, _ = io.WriteString(res, `{"data": {"pagination": {"total": 0}, "hits": []}}`)
			}))
		})

		It("returns not found", func() {
			_, err := src.ResolveFiles(context.Background(), xenafile.DatasetSpec{
				Name:    "empty",
				Project: "TCGA-NOPE",
			})
			Expect(source.IsErrNotFound(err)).To(BeTrue())
		})
	})

	It("returns not found for a dataset without query conditions", func() {
		_, err := src.ResolveFiles(context.Background(), xenafile.DatasetSpec{Name: "conditionless"})
		Expect(source.IsErrNotFound(err)).To(BeTrue())
	})

	Describe("downloading a file", func() {
		var lock xenafile.FileLock

		BeforeEach(func() {
			lock = xenafile.FileLock{
				Dataset:      "gene-counts",
				UUID:         "uuid-1",
				FileName:     "name-from-lock.gz",
				RemoteSource: "gdc",
				RemotePath:   "data/uuid-1",
			}

			gdcRouter.Handler(http.MethodGet, "/data/:uuid", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				params := httprouter.ParamsFromContext(req.Context())
				Expect(params.ByName("uuid")).To(Equal("uuid-1"))
				res.Header().Set("Content-Disposition", "attachment; filename=sample.counts.tsv.gz")
				_, _ = io.WriteString(res, "counts-bytes")
			}))
		})

		It("names the file from the content disposition header", func() {
			local, err := src.DownloadFile(context.Background(), dataDirectory, lock)

			Expect(err).NotTo(HaveOccurred())
			Expect(local.LocalPath).To(BeAnExistingFile())
			Expect(local.LocalPath).To(Equal(filepath.Join(dataDirectory, "sample.counts.tsv.gz")))
			Expect(local.FileName).To(Equal("sample.counts.tsv.gz"))
			Expect(local.MD5).To(Equal("5a5cb4eb3aa99be77f27478e8d70edc8"))
		})

		When("a file with the same name is already in the data directory", func() {
			BeforeEach(func() {
				previous := filepath.Join(dataDirectory, "sample.counts.tsv.gz")
				Expect(os.WriteFile(previous, []byte("previous download"), 0o600)).To(Succeed())
			})

			It("renames the download to the uuid keeping the last extension", func() {
				local, err := src.DownloadFile(context.Background(), dataDirectory, lock)

				Expect(err).NotTo(HaveOccurred())
				Expect(local.FileName).To(Equal("uuid-1.gz"))
				Expect(local.LocalPath).To(Equal(filepath.Join(dataDirectory, "uuid-1.gz")))
				Expect(local.LocalPath).To(BeAnExistingFile())
			})

			When("the source is configured to keep more extensions", func() {
				JustBeforeEach(func() {
					src.RenameExtensions = 2
				})

				It("keeps that many extensions", func() {
					local, err := src.DownloadFile(context.Background(), dataDirectory, lock)

					Expect(err).NotTo(HaveOccurred())
					Expect(local.FileName).To(Equal("uuid-1.tsv.gz"))
				})
			})
		})
	})
})

func must[T any](value T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return value
}
