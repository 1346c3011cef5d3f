package source

import (
	"context"
	"fmt"
	"log"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type SourceList []FileSource

func NewSourceList(spec xenafile.Xenafile, logger *log.Logger) SourceList {
	var list SourceList

	for _, config := range spec.FileSources {
		list = append(list, FileSourceFactory(config, logger))
	}

	panicIfDuplicateIDs(list)

	return list
}

func NewMultiFileSource(sources ...FileSource) SourceList {
	return sources
}

// ResolveFiles resolves the dataset through the source it names, or when
// the dataset names none, through the first source able to answer.
func (list SourceList) ResolveFiles(ctx context.Context, spec xenafile.DatasetSpec) ([]xenafile.FileLock, error) {
	if spec.Source != "" {
		src, err := list.FindByID(spec.Source)
		if err != nil {
			return nil, err
		}
		locks, err := src.ResolveFiles(ctx, spec)
		if err != nil {
			return nil, scopedError(src.ID(), err)
		}
		return locks, nil
	}

	for _, src := range list {
		locks, err := src.ResolveFiles(ctx, spec)
		if err != nil {
			if IsErrNotFound(err) {
				continue
			}
			return nil, scopedError(src.ID(), err)
		}
		return locks, nil
	}
	return nil, fmt.Errorf("no file source could resolve dataset %q: %w", spec.Name, ErrNotFound)
}

func (list SourceList) DownloadFile(ctx context.Context, dataDir string, lock xenafile.FileLock) (LocalFile, error) {
	src, err := list.FindByID(lock.RemoteSource)
	if err != nil {
		return LocalFile{}, err
	}

	local, err := src.DownloadFile(ctx, dataDir, lock)
	if err != nil {
		return LocalFile{}, scopedError(src.ID(), err)
	}

	return local, nil
}

func (list SourceList) FindByID(id string) (FileSource, error) {
	var correctSrc FileSource
	for _, src := range list {
		if src.ID() == id {
			correctSrc = src
			break
		}
	}

	if correctSrc == nil {
		ids := make([]string, 0, len(list))
		for _, src := range list {
			ids = append(ids, src.ID())
		}
		return nil, fmt.Errorf("couldn't find a file source with ID %q. Available choices: %q", id, ids)
	}

	return correctSrc, nil
}

// FindUploader locates an upload-capable source, for example the s3
// mirror the upload-mirror command pushes to.
func (list SourceList) FindUploader(sourceID string) (FileUploader, error) {
	var (
		uploader     FileUploader
		availableIDs []string
	)
	for _, src := range list {
		u, ok := src.(FileUploader)
		if !ok {
			continue
		}
		availableIDs = append(availableIDs, src.ID())
		if src.ID() == sourceID {
			uploader = u
			break
		}
	}

	if len(availableIDs) == 0 {
		return nil, stringError("no upload-capable file sources were found in the Xenafile")
	}

	if uploader == nil {
		return nil, fmt.Errorf(
			"could not find a valid matching file source in the Xenafile, available upload-compatible sources are: %q",
			availableIDs,
		)
	}

	return uploader, nil
}

func panicIfDuplicateIDs(sources []FileSource) {
	indexOfID := make(map[string]int)
	for index, src := range sources {
		id := src.ID()
		previousIndex, seen := indexOfID[id]
		if seen {
			panic(fmt.Sprintf(`file_sources must have unique IDs; items at index %d and %d both have ID %q`, previousIndex, index, id))
		}
		indexOfID[id] = index
	}
}

func scopedError(sourceID string, err error) error {
	return fmt.Errorf("error from file source %q: %w", sourceID, err)
}
