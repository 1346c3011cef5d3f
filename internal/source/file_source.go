package source

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

// MultiFileSource wraps a set of file sources. It is mostly used to generate fakes
// for testing commands. See SourceList for the concrete implementation.
type MultiFileSource interface {
	ResolveFiles(ctx context.Context, spec xenafile.DatasetSpec) ([]xenafile.FileLock, error)
	DownloadFile(ctx context.Context, dataDir string, lock xenafile.FileLock) (LocalFile, error)

	FindByID(string) (FileSource, error)
}

//counterfeiter:generate -o ./fakes/multi_file_source.go --fake-name MultiFileSource . MultiFileSource

// FileUploader represents a place to put data files. Some implementations of FileSource
// should implement this interface. Credentials for this should come from an interpolated
// xenafile.FileSourceConfig.
type FileUploader interface {
	FindFile(ctx context.Context, lock xenafile.FileLock) (xenafile.FileLock, error)
	UploadFile(ctx context.Context, lock xenafile.FileLock, file io.Reader) (xenafile.FileLock, error)
}

//counterfeiter:generate -o ./fakes/file_uploader.go --fake-name FileUploader . FileUploader

// FileSource represents a source where dataset files may come from.
type FileSource interface {
	// ID identifies the source in Xenafile.lock remote_source fields.
	ID() string

	// Type is one of the file source type constants.
	Type() string

	// Configuration returns the configuration of the FileSource that came from the Xenafile.
	// It should not be modified.
	Configuration() xenafile.FileSourceConfig

	// ResolveFiles queries the source for the exact files selected by the
	// dataset spec. It returns one lock per file with identity, checksum,
	// and remote location set, or ErrNotFound when the source cannot
	// answer the query.
	ResolveFiles(ctx context.Context, spec xenafile.DatasetSpec) ([]xenafile.FileLock, error)

	// DownloadFile downloads the file and writes it to dataDir.
	// It should also calculate and set the MD5 field on the LocalFile result; it does not
	// need to ensure the sums match, the caller must verify this.
	DownloadFile(ctx context.Context, dataDir string, lock xenafile.FileLock) (LocalFile, error)
}

//counterfeiter:generate -o ./fakes/file_source.go --fake-name FileSource . FileSource

// LocalFile is a locked file that exists in the local data directory.
type LocalFile struct {
	xenafile.FileLock
	LocalPath string
}

const (
	panicMessageWrongFileSourceType = "wrong constructor for file source configuration"
	logLineDownload                 = "downloading %s from %s file source %s"

	// FileSourceTypeGDC is the value of the Type field on xenafile.FileSourceConfig
	// for fetching files from https://api.gdc.cancer.gov.
	FileSourceTypeGDC = xenafile.FileSourceTypeGDC

	// FileSourceTypeS3 is the value for the Type field on xenafile.FileSourceConfig
	// for files mirrored to an s3 bucket.
	FileSourceTypeS3 = xenafile.FileSourceTypeS3

	// FileSourceTypeGithub is the value for the Type field on xenafile.FileSourceConfig
	// for files attached to GitHub release assets.
	FileSourceTypeGithub = xenafile.FileSourceTypeGithub
)

// FileSourceFactory returns a configured FileSource based on the Type field on the
// xenafile.FileSourceConfig structure.
func FileSourceFactory(config xenafile.FileSourceConfig, outLogger *log.Logger) FileSource {
	switch config.Type {
	case FileSourceTypeGDC:
		return NewGDCSource(config, outLogger)
	case FileSourceTypeS3:
		return NewS3Source(config, outLogger)
	case FileSourceTypeGithub:
		return NewGithubSource(config, outLogger)
	default:
		panic(fmt.Sprintf("unknown file source config: %v", config))
	}
}
