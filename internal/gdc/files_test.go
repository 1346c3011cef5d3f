package gdc_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucsc-xena/xena-gdc/internal/gdc"
)

var _ = Describe("querying the files and projects endpoints", func() {
	var (
		service   gdc.Service
		server    *httptest.Server
		gdcRouter *httprouter.Router
	)

	BeforeEach(func() {
		gdcRouter = httprouter.New()
		gdcRouter.NotFound = http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			log.Fatalf("handler on fake GDC server not found for request: %s %s", req.Method, req.URL)
		})
	})

	JustBeforeEach(func() {
		server = httptest.NewTLSServer(gdcRouter)
		serverURL, err := url.Parse(server.URL)
		Expect(err).NotTo(HaveOccurred())
		service = gdc.Service{Target: serverURL.Host, Client: server.Client()}
	})

	AfterEach(func() {
		server.Close()
	})

	When("listing projects", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodGet, "/projects", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				res.Header().Set("Content-Type", "application/json")

				if req.URL.Query().Get("size") == "" {
					// language=json
					_, _ = io.WriteString(res, `{"data": {"hits": [], "pagination": {"total": 3, "page": 1, "pages": 1}}}`)
					return
				}

				Expect(req.URL.Query().Get("size")).To(Equal("3"))
				Expect(req.URL.Query().Get("fields")).To(Equal("project_id"))
				// language=json
				_, _ = io.WriteString(res, `{"data": {"hits": [{"project_id": "TCGA-BRCA"}, {"project_id": "TCGA-GBM"}, {"project_id": "TARGET-AML"}], "pagination": {"total": 3}}}`)
			}))
		})

		It("asks for exactly the advertised number of hits", func() {
			projects, err := service.Projects(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(Equal([]string{"TCGA-BRCA", "TCGA-GBM", "TARGET-AML"}))
		})
	})

	When("the projects endpoint is down", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodGet, "/projects", http.HandlerFunc(func(res http.ResponseWriter, _ *http.Request) {
				res.WriteHeader(http.StatusBadGateway)
			}))
		})

		It("returns a status code error", func() {
			_, err := service.Projects(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("got status 502"))
		})
	})

	When("searching files", func() {
		var requestedFilters []string

		BeforeEach(func() {
			requestedFilters = nil
			gdcRouter.Handler(http.MethodPost, "/files", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				Expect(req.ParseForm()).To(Succeed())
				requestedFilters = append(requestedFilters, req.PostForm.Get("filters"))

				res.Header().Set("Content-Type", "application/json")
				if req.PostForm.Get("size") == "" {
					// language=json
					_, _ = io.WriteString(res, `{"data": {"hits": [], "pagination": {"total": 2}}}`)
					return
				}

				Expect(req.PostForm.Get("size")).To(Equal("2"))
				Expect(req.PostForm.Get("fields")).To(Equal("file_id,file_name,md5sum,file_size"))
				// language=json
				_, _ = io.WriteString(res, `{"data": {"hits": [
					{"file_id": "uuid-1", "file_name": "a.tsv.gz", "md5sum": "9e98e23e94f5c34f43f4f5e8f6a5b59e", "file_size": 1024},
					{"file_id": "uuid-2", "file_name": "b.tsv.gz", "md5sum": "8c98e23e94f5c34f43f4f5e8f6a5b59e", "file_size": 2048}
				], "pagination": {"total": 2}}}`)
			}))
		})

		It("posts the filter and pages through the total", func() {
			filter := gdc.AndEq(map[string]string{"cases.project.project_id": "TCGA-BRCA"})
			hits, err := service.SearchFiles(context.Background(), filter, []string{"file_id", "file_name", "md5sum", "file_size"})
			Expect(err).NotTo(HaveOccurred())

			Expect(hits).To(HaveLen(2))
			Expect(hits[0]).To(Equal(gdc.FileHit{FileID: "uuid-1", FileName: "a.tsv.gz", MD5Sum: "9e98e23e94f5c34f43f4f5e8f6a5b59e", FileSize: 1024}))

			Expect(requestedFilters).To(HaveLen(2))
			for _, filterJSON := range requestedFilters {
				Expect(filterJSON).To(MatchJSON(`{"op":"and","content":[{"op":"=","content":{"field":"cases.project.project_id","value":"TCGA-BRCA"}}]}`))
			}
		})
	})

	When("listing file ids", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodPost, "/files", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				Expect(req.ParseForm()).To(Succeed())
				Expect(req.PostForm.Get("fields")).To(Equal("file_id"))

				res.Header().Set("Content-Type", "application/json")
				if req.PostForm.Get("size") == "" {
					// language=json
					_, _ = io.WriteString(res, `{"data": {"hits": [], "pagination": {"total": 1}}}`)
					return
				}
				// language=json
				_, _ = io.WriteString(res, `{"data": {"hits": [{"file_id": "uuid-1"}], "pagination": {"total": 1}}}`)
			}))
		})

		It("returns just the uuids", func() {
			ids, err := service.FileIDs(context.Background(), gdc.Eq{Field: "access", Value: "open"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]string{"uuid-1"}))
		})
	})

	When("labeling files", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodPost, "/files", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				Expect(req.ParseForm()).To(Succeed())
				Expect(req.PostForm.Get("size")).To(Equal("2"))
				Expect(req.PostForm.Get("fields")).To(Equal("file_id,cases.samples.submitter_id"))
				Expect(req.PostForm.Get("filters")).To(MatchJSON(`{"op":"in","content":{"field":"file_id","value":["uuid-1","uuid-2"]}}`))

				res.Header().Set("Content-Type", "application/json")
				// language=json
				_, _ = io.WriteString(res, `{"data": {"hits": [
					{"file_id": "uuid-1", "cases": [{"samples": [{"submitter_id": "TCGA-A1-A0SB-01A"}]}]},
					{"file_id": "uuid-2", "cases": [{"samples": [{"submitter_id": "TCGA-A1-A0SD-01A"}]}]}
				], "pagination": {"total": 2}}}`)
			}))
		})

		It("unwraps nested values into sample labels", func() {
			labels, err := service.Labels(context.Background(), []string{"uuid-1", "uuid-2"}, "cases.samples.submitter_id")
			Expect(err).NotTo(HaveOccurred())
			Expect(labels).To(Equal(map[string]string{
				"TCGA-A1-A0SB-01A": "uuid-1",
				"TCGA-A1-A0SD-01A": "uuid-2",
			}))
		})
	})

	When("no uuids are given to label", func() {
		It("does not bother the API", func() {
			labels, err := service.Labels(context.Background(), nil, "cases.samples.submitter_id")
			Expect(err).NotTo(HaveOccurred())
			Expect(labels).To(BeEmpty())
		})
	})

	When("the label field is empty", func() {
		It("refuses the query", func() {
			_, err := service.Labels(context.Background(), []string{"uuid-1"}, "")
			Expect(err).To(MatchError(gdc.ErrLabelFieldMustBeSet))
		})
	})

	When("paging cases", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodPost, "/cases", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				Expect(req.ParseForm()).To(Succeed())
				Expect(req.PostForm.Get("expand")).To(Equal("demographic,diagnoses"))

				from, err := strconv.Atoi(req.PostForm.Get("from"))
				Expect(err).NotTo(HaveOccurred())
				page := 1
				if from > 10 {
					page = 2
				}

				res.Header().Set("Content-Type", "application/json")
				body := map[string]any{
					"data": map[string]any{
						"hits": []map[string]any{
							{"case_id": fmt.Sprintf("case-%d", from), "submitter_id": "TCGA-XX-0001"},
						},
						"pagination": map[string]any{"page": page, "pages": 2, "total": 12},
					},
				}
				Expect(json.NewEncoder(res).Encode(body)).To(Succeed())
			}))
		})

		It("reports pagination so the caller can continue", func() {
			page, err := service.Cases(context.Background(), 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(1))
			Expect(page.Pages).To(Equal(2))
			Expect(page.Total).To(Equal(12))
			Expect(page.Hits).To(HaveLen(1))
			Expect(page.Hits[0]["case_id"]).To(Equal("case-1"))
		})
	})

	When("downloading data", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodGet, "/data/:uuid", http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				params := httprouter.ParamsFromContext(req.Context())
				Expect(params.ByName("uuid")).To(Equal("uuid-1"))

				res.Header().Set("Content-Disposition", "attachment; filename=counts.tsv.gz")
				res.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(res, "file-bytes")
			}))
		})

		It("streams the body and exposes the file name", func() {
			res, err := service.Data(context.Background(), "uuid-1")
			Expect(err).NotTo(HaveOccurred())
			defer func() { _ = res.Body.Close() }()

			name, ok := gdc.FileNameFromResponse(res)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("counts.tsv.gz"))

			buf, err := io.ReadAll(res.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(buf)).To(Equal("file-bytes"))
		})
	})

	When("the data endpoint rejects the request", func() {
		BeforeEach(func() {
			gdcRouter.Handler(http.MethodGet, "/data/:uuid", http.HandlerFunc(func(res http.ResponseWriter, _ *http.Request) {
				res.WriteHeader(http.StatusForbidden)
			}))
		})

		It("returns a status code error", func() {
			_, err := service.Data(context.Background(), "uuid-1")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("got status 403"))
		})
	})
})
