package source

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ucsc-xena/xena-gdc/internal/gdc"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

// fileHitFields are the file fields a dataset query locks.
var fileHitFields = []string{"file_id", "file_name", "md5sum", "file_size"}

type GDCSource struct {
	xenafile.FileSourceConfig

	// RenameExtensions is how many file name extensions survive the
	// collision rename in DownloadFile. Zero means one.
	RenameExtensions int

	Service gdc.Service

	logger *log.Logger
}

// NewGDCSource will provision a new GDCSource from the
// Xenafile (FileSourceConfig). If type is incorrect it will PANIC.
func NewGDCSource(c xenafile.FileSourceConfig, outLogger *log.Logger) *GDCSource {
	if c.Type != "" && c.Type != FileSourceTypeGDC {
		panic(panicMessageWrongFileSourceType)
	}

	if outLogger == nil {
		outLogger = log.New(os.Stderr, "[GDC file source] ", log.Default().Flags())
	}

	return &GDCSource{
		FileSourceConfig: c,
		logger:           outLogger,
		Service:          gdc.Service{Target: c.Endpoint, Token: c.Token},
	}
}

// Configuration returns the configuration of the FileSource that came from the Xenafile.
// It should not be modified.
func (src *GDCSource) Configuration() xenafile.FileSourceConfig {
	return src.FileSourceConfig
}

func (src *GDCSource) ID() string   { return xenafile.FileSourceID(src.FileSourceConfig) }
func (src *GDCSource) Type() string { return FileSourceTypeGDC }

// ResolveFiles queries the files endpoint with the dataset's conditions
// and returns one lock per matching file. When the dataset declares a
// label field each lock also carries its sample label.
func (src *GDCSource) ResolveFiles(ctx context.Context, spec xenafile.DatasetSpec) ([]xenafile.FileLock, error) {
	conditions := spec.QueryConditions()
	if len(conditions) == 0 {
		return nil, ErrNotFound
	}

	hits, err := src.Service.SearchFiles(ctx, gdc.AndEq(conditions), fileHitFields)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, ErrNotFound
	}

	locks := make([]xenafile.FileLock, 0, len(hits))
	for _, hit := range hits {
		locks = append(locks, xenafile.FileLock{
			Dataset:      spec.Name,
			UUID:         hit.FileID,
			FileName:     hit.FileName,
			MD5:          hit.MD5Sum,
			Size:         hit.FileSize,
			RemoteSource: src.ID(),
			RemotePath:   "data/" + hit.FileID,
		})
	}

	if spec.LabelField != "" {
		uuids := make([]string, 0, len(locks))
		for _, lock := range locks {
			uuids = append(uuids, lock.UUID)
		}
		labels, err := src.Service.Labels(ctx, uuids, spec.LabelField)
		if err != nil {
			return nil, err
		}
		labelForUUID := make(map[string]string, len(labels))
		for label, uuid := range labels {
			labelForUUID[uuid] = label
		}
		for i := range locks {
			locks[i] = locks[i].WithLabel(labelForUUID[locks[i].UUID])
		}
	}

	return locks, nil
}

// DownloadFile fetches one file from the data endpoint. The local name
// comes from the Content-Disposition header; when a file with that name
// already exists in dataDir the base name is replaced with the uuid,
// keeping RenameExtensions extensions.
func (src *GDCSource) DownloadFile(ctx context.Context, dataDir string, lock xenafile.FileLock) (LocalFile, error) {
	src.logger.Printf(logLineDownload, lock.FileName, FileSourceTypeGDC, src.ID())

	res, err := src.Service.Data(ctx, lock.UUID)
	if err != nil {
		return LocalFile{}, err
	}
	defer func() { _ = res.Body.Close() }()

	fileName := lock.FileName
	if name, ok := gdc.FileNameFromResponse(res); ok {
		fileName = name
	}

	outputFile := filepath.Join(dataDir, fileName)
	if info, err := os.Stat(outputFile); err == nil && !info.IsDir() {
		fileName = uuidFileName(fileName, lock.UUID, src.renameExtensions())
		outputFile = filepath.Join(dataDir, fileName)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return LocalFile{}, fmt.Errorf("failed to create file %q: %w", outputFile, err)
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, res.Body)
	if err != nil {
		return LocalFile{}, err
	}

	_, err = out.Seek(0, 0)
	if err != nil {
		return LocalFile{}, fmt.Errorf("error reseting file cursor: %w", err) // untested
	}

	hash := md5.New()
	_, err = io.Copy(hash, out)
	if err != nil {
		return LocalFile{}, fmt.Errorf("error hashing file contents: %w", err) // untested
	}

	lock.FileName = fileName
	lock.MD5 = hex.EncodeToString(hash.Sum(nil))

	return LocalFile{FileLock: lock, LocalPath: outputFile}, nil
}

func (src *GDCSource) renameExtensions() int {
	if src.RenameExtensions > 0 {
		return src.RenameExtensions
	}
	return 1
}

// uuidFileName replaces everything before the last keepExtensions
// extensions with the uuid, so "sample.counts.tsv.gz" with one kept
// extension becomes "<uuid>.gz".
func uuidFileName(fileName, uuid string, keepExtensions int) string {
	rest := fileName
	var extensions []string
	for i := 0; i < keepExtensions; i++ {
		dot := strings.LastIndex(rest, ".")
		if dot < 0 {
			break
		}
		extensions = append([]string{rest[dot+1:]}, extensions...)
		rest = rest[:dot]
	}
	return strings.Join(append([]string{uuid}, extensions...), ".")
}
