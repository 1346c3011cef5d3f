package source

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

//counterfeiter:generate -o ./fakes/s3_api.go --fake-name S3API . S3API
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Source is a bucket files are mirrored to. It cannot answer dataset
// queries; locks enter the bucket through UploadFile and come back out
// through DownloadFile.
type S3Source struct {
	xenafile.FileSourceConfig

	logger *log.Logger

	Collaborators struct {
		InitOnce sync.Once
		S3API
	}
}

// NewS3Source will provision a new S3Source from the
// Xenafile (FileSourceConfig). If type is incorrect it will PANIC.
func NewS3Source(c xenafile.FileSourceConfig, outLogger *log.Logger) *S3Source {
	if c.Type != "" && c.Type != FileSourceTypeS3 {
		panic(panicMessageWrongFileSourceType)
	}

	if outLogger == nil {
		outLogger = log.New(os.Stderr, "[S3 file source] ", log.Default().Flags())
	}

	return &S3Source{
		FileSourceConfig: c,
		logger:           outLogger,
	}
}

func (src *S3Source) ConfigurationErrors() []error {
	var result []error
	if src.PathTemplate == "" {
		result = append(result, fmt.Errorf(`missing required field "path_template" in file source config`))
	}
	if src.Bucket == "" {
		result = append(result, fmt.Errorf(`missing required field "bucket" in file source config`))
	}
	return result
}

// Configuration returns the configuration of the FileSource that came from the Xenafile.
// It should not be modified.
func (src *S3Source) Configuration() xenafile.FileSourceConfig {
	return src.FileSourceConfig
}

func (src *S3Source) ID() string   { return xenafile.FileSourceID(src.FileSourceConfig) }
func (src *S3Source) Type() string { return FileSourceTypeS3 }

func (src *S3Source) init(ctx context.Context) error {
	// https://aws.github.io/aws-sdk-go-v2/docs/getting-started/

	var initErr error
	src.Collaborators.InitOnce.Do(func() {
		if src.Collaborators.S3API != nil { // tests inject their own client
			return
		}

		options := []func(*config.LoadOptions) error{
			config.WithRegion(src.Region),
		}
		if src.AccessKeyId != "" {
			options = append(options, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(src.AccessKeyId, src.SecretAccessKey, ""),
			))
		}

		cfg, err := config.LoadDefaultConfig(ctx, options...)
		if err != nil {
			initErr = err
			return
		}

		if src.RoleARN != "" {
			cfg.Credentials = aws.NewCredentialsCache(
				stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), src.RoleARN),
			)
		}

		src.Collaborators.S3API = s3.NewFromConfig(cfg, func(o *s3.Options) {
			if src.Endpoint != "" { // for acceptance testing
				o.BaseEndpoint = aws.String(src.Endpoint)
				o.UsePathStyle = true
			}
		})
	})
	return initErr
}

// ResolveFiles returns ErrNotFound: the mirror stores copies keyed by
// path and cannot answer dataset queries. See GDCSource for resolution.
func (src *S3Source) ResolveFiles(context.Context, xenafile.DatasetSpec) ([]xenafile.FileLock, error) {
	return nil, ErrNotFound
}

// FindFile reports whether the mirror already holds the locked file at
// its templated path.
func (src *S3Source) FindFile(ctx context.Context, lock xenafile.FileLock) (xenafile.FileLock, error) {
	err := src.init(ctx)
	if err != nil {
		return xenafile.FileLock{}, err
	}

	remotePath, err := src.RemotePath(lock)
	if err != nil {
		return xenafile.FileLock{}, err
	}

	_, err = src.Collaborators.S3API.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(src.Bucket),
		Key:    aws.String(remotePath),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return xenafile.FileLock{}, ErrNotFound
		}
		return xenafile.FileLock{}, err
	}

	return lock.WithRemote(src.ID(), remotePath), nil
}

func (src *S3Source) DownloadFile(ctx context.Context, dataDir string, lock xenafile.FileLock) (LocalFile, error) {
	err := src.init(ctx)
	if err != nil {
		return LocalFile{}, err
	}

	src.logger.Printf(logLineDownload, lock.FileName, FileSourceTypeS3, src.ID())

	object, err := src.Collaborators.S3API.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(src.Bucket),
		Key:    aws.String(lock.RemotePath),
	})
	if err != nil {
		return LocalFile{}, fmt.Errorf("failed to download file: %w", err)
	}
	defer func() { _ = object.Body.Close() }()

	outputFile := filepath.Join(dataDir, lock.FileName)

	file, err := os.Create(outputFile)
	if err != nil {
		return LocalFile{}, fmt.Errorf("failed to create file %q: %w", outputFile, err)
	}
	defer func() { _ = file.Close() }()

	_, err = io.Copy(file, object.Body)
	if err != nil {
		return LocalFile{}, err
	}

	_, err = file.Seek(0, 0)
	if err != nil {
		return LocalFile{}, fmt.Errorf("error reseting file cursor: %w", err) // untested
	}

	hash := md5.New()
	_, err = io.Copy(hash, file)
	if err != nil {
		return LocalFile{}, fmt.Errorf("error hashing file contents: %w", err) // untested
	}

	lock.MD5 = hex.EncodeToString(hash.Sum(nil))

	return LocalFile{FileLock: lock, LocalPath: outputFile}, nil
}

func (src *S3Source) UploadFile(ctx context.Context, lock xenafile.FileLock, file io.Reader) (xenafile.FileLock, error) {
	err := src.init(ctx)
	if err != nil {
		return xenafile.FileLock{}, err
	}

	remotePath, err := src.RemotePath(lock)
	if err != nil {
		return xenafile.FileLock{}, err
	}

	src.logger.Printf("uploading file %q to %s at %q...\n", lock.FileName, src.Bucket, remotePath)

	_, err = src.Collaborators.S3API.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(src.Bucket),
		Key:    aws.String(remotePath),
		Body:   file,
	})
	if err != nil {
		return xenafile.FileLock{}, err
	}

	return lock.WithRemote(src.ID(), remotePath), nil
}

func (src *S3Source) RemotePath(lock xenafile.FileLock) (string, error) {
	pathBuf := new(bytes.Buffer)

	err := src.pathTemplate().Execute(pathBuf, lock)
	if err != nil {
		return "", fmt.Errorf("unable to evaluate path_template: %w", err)
	}

	return pathBuf.String(), nil
}

func (src *S3Source) pathTemplate() *template.Template {
	return template.Must(
		template.New("remote-path").
			Funcs(template.FuncMap{"trimSuffix": strings.TrimSuffix}).
			Parse(src.PathTemplate))
}
