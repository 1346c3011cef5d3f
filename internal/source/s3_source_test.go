package source_test

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ucsc-xena/xena-gdc/internal/source"
	"github.com/ucsc-xena/xena-gdc/internal/source/fakes"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("mirroring files to an S3 bucket", func() {
	const bucket = "xena-mirror"

	var (
		src       *source.S3Source
		fakeS3API *fakes.S3API
		logger    *log.Logger

		lock xenafile.FileLock
	)

	BeforeEach(func() {
		logger = log.New(GinkgoWriter, "", 0)
		fakeS3API = new(fakes.S3API)

		src = source.NewS3Source(xenafile.FileSourceConfig{
			Type:         xenafile.FileSourceTypeS3,
			ID:           "mirror",
			Bucket:       bucket,
			Region:       "us-west-2",
			PathTemplate: "{{.Dataset}}/{{.UUID}}/{{.FileName}}",
		}, logger)
		src.Collaborators.S3API = fakeS3API

		lock = xenafile.FileLock{
			Dataset:  "gene-counts",
			UUID:     "uuid-1",
			FileName: "a.htseq_counts.txt.gz",
			MD5:      "md5-1",
			Size:     100,
		}
	})

	DescribeTable("bad config", func(alter func(*xenafile.FileSourceConfig), expectedSubstring string) {
		config := xenafile.FileSourceConfig{
			Type:         xenafile.FileSourceTypeS3,
			Bucket:       bucket,
			PathTemplate: "{{.FileName}}",
		}
		alter(&config)

		errs := source.NewS3Source(config, logger).ConfigurationErrors()

		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Error()).To(ContainSubstring(expectedSubstring))
	},
		Entry("path_template is missing",
			func(c *xenafile.FileSourceConfig) { c.PathTemplate = "" },
			"path_template",
		),

		Entry("bucket is missing",
			func(c *xenafile.FileSourceConfig) { c.Bucket = "" },
			"bucket",
		),
	)

	It("cannot resolve dataset queries", func() {
		_, err := src.ResolveFiles(context.Background(), xenafile.DatasetSpec{Name: "gene-counts"})
		Expect(source.IsErrNotFound(err)).To(BeTrue())
	})

	Describe("RemotePath", func() {
		It("evaluates the path template with the lock", func() {
			remotePath, err := src.RemotePath(lock)

			Expect(err).NotTo(HaveOccurred())
			Expect(remotePath).To(Equal("gene-counts/uuid-1/a.htseq_counts.txt.gz"))
		})

		When("the template uses trimSuffix", func() {
			BeforeEach(func() {
				src = source.NewS3Source(xenafile.FileSourceConfig{
					Type:         xenafile.FileSourceTypeS3,
					Bucket:       bucket,
					PathTemplate: `{{.Dataset}}/{{trimSuffix .FileName ".gz"}}`,
				}, logger)
			})

			It("trims the suffix", func() {
				remotePath, err := src.RemotePath(lock)

				Expect(err).NotTo(HaveOccurred())
				Expect(remotePath).To(Equal("gene-counts/a.htseq_counts.txt"))
			})
		})
	})

	Describe("FindFile", func() {
		When("the bucket holds the file", func() {
			BeforeEach(func() {
				fakeS3API.HeadObjectReturns(&s3.HeadObjectOutput{}, nil)
			})

			It("returns the lock with the mirror remote", func() {
				found, err := src.FindFile(context.Background(), lock)

				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(Equal(lock.WithRemote("mirror", "gene-counts/uuid-1/a.htseq_counts.txt.gz")))

				Expect(fakeS3API.HeadObjectCallCount()).To(Equal(1))
				_, input, _ := fakeS3API.HeadObjectArgsForCall(0)
				Expect(aws.ToString(input.Bucket)).To(Equal(bucket))
				Expect(aws.ToString(input.Key)).To(Equal("gene-counts/uuid-1/a.htseq_counts.txt.gz"))
			})
		})

		When("the object is missing", func() {
			BeforeEach(func() {
				fakeS3API.HeadObjectReturns(nil, &s3types.NotFound{})
			})

			It("returns not found", func() {
				_, err := src.FindFile(context.Background(), lock)
				Expect(source.IsErrNotFound(err)).To(BeTrue())
			})
		})

		When("the head request fails", func() {
			BeforeEach(func() {
				fakeS3API.HeadObjectReturns(nil, errors.New("some-error"))
			})

			It("returns the error", func() {
				_, err := src.FindFile(context.Background(), lock)
				Expect(err).To(MatchError("some-error"))
			})
		})
	})

	Describe("DownloadFile", func() {
		var dataDirectory string

		BeforeEach(func() {
			dataDirectory = must(os.MkdirTemp("", "data"))

			lock.RemoteSource = "mirror"
			lock.RemotePath = "gene-counts/uuid-1/a.htseq_counts.txt.gz"

			fakeS3API.GetObjectReturns(&s3.GetObjectOutput{
				Body: io.NopCloser(strings.NewReader("mirror-bytes")),
			}, nil)
		})

		AfterEach(func() {
			_ = os.RemoveAll(dataDirectory)
		})

		It("writes the object under the locked file name", func() {
			local, err := src.DownloadFile(context.Background(), dataDirectory, lock)

			Expect(err).NotTo(HaveOccurred())
			Expect(local.LocalPath).To(Equal(filepath.Join(dataDirectory, "a.htseq_counts.txt.gz")))
			Expect(local.LocalPath).To(BeAnExistingFile())
			Expect(local.MD5).To(Equal("54cf9648ae45c9ce1aaaaeb87ab76d95"))

			_, input, _ := fakeS3API.GetObjectArgsForCall(0)
			Expect(aws.ToString(input.Bucket)).To(Equal(bucket))
			Expect(aws.ToString(input.Key)).To(Equal(lock.RemotePath), "it downloads the locked remote path, not a recomputed one")
		})

		When("the object cannot be downloaded", func() {
			BeforeEach(func() {
				fakeS3API.GetObjectReturns(nil, errors.New("503 Service Unavailable"))
			})

			It("returns an error", func() {
				_, err := src.DownloadFile(context.Background(), dataDirectory, lock)
				Expect(err).To(MatchError("failed to download file: 503 Service Unavailable"))
			})
		})
	})

	Describe("UploadFile", func() {
		BeforeEach(func() {
			fakeS3API.PutObjectReturns(&s3.PutObjectOutput{}, nil)
		})

		It("puts the file at the templated path", func() {
			file := strings.NewReader("mirror-bytes")

			uploaded, err := src.UploadFile(context.Background(), lock, file)

			Expect(err).NotTo(HaveOccurred())
			Expect(uploaded).To(Equal(lock.WithRemote("mirror", "gene-counts/uuid-1/a.htseq_counts.txt.gz")))

			Expect(fakeS3API.PutObjectCallCount()).To(Equal(1))
			_, input, _ := fakeS3API.PutObjectArgsForCall(0)
			Expect(aws.ToString(input.Bucket)).To(Equal(bucket))
			Expect(aws.ToString(input.Key)).To(Equal("gene-counts/uuid-1/a.htseq_counts.txt.gz"))
			Expect(input.Body).To(BeIdenticalTo(file))
		})

		When("the put request fails", func() {
			BeforeEach(func() {
				fakeS3API.PutObjectReturns(nil, errors.New("some-error"))
			})

			It("returns the error", func() {
				_, err := src.UploadFile(context.Background(), lock, strings.NewReader(""))
				Expect(err).To(MatchError("some-error"))
			})
		})
	})
})
