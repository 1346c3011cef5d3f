package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pivotal-cf/jhanda"
	"golang.org/x/sync/errgroup"

	"github.com/ucsc-xena/xena-gdc/internal/commands/flags"
	"github.com/ucsc-xena/xena-gdc/internal/source"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

// defaultDownloadThreadCount bounds the download pool when the flag does
// not set a size.
const defaultDownloadThreadCount = 5

type Fetch struct {
	logger *log.Logger

	multiFileSourceProvider MultiFileSourceProvider
	localDataDirectory      LocalDataDirectory

	Options struct {
		flags.Standard
		flags.FetchOptions
		FetchDataDir
	}
}

// FetchDataDir is embedded by the commands that read or write the local
// data directory.
type FetchDataDir struct {
	DataDir string `short:"dd" long:"data-directory" default:"data" description:"path to a directory to download files into"`
}

//counterfeiter:generate -o ./fakes/multi_file_source_provider.go --fake-name MultiFileSourceProvider . MultiFileSourceProvider
type MultiFileSourceProvider func(xenafile.Xenafile) source.MultiFileSource

func NewFetch(logger *log.Logger, multiFileSourceProvider MultiFileSourceProvider, localDataDirectory LocalDataDirectory) Fetch {
	return Fetch{
		logger:                  logger,
		localDataDirectory:      localDataDirectory,
		multiFileSourceProvider: multiFileSourceProvider,
	}
}

//counterfeiter:generate -o ./fakes/local_data_directory.go --fake-name LocalDataDirectory . LocalDataDirectory
type LocalDataDirectory interface {
	GetLocalFiles(dataDir string) ([]source.LocalFile, error)
	DeleteExtraFiles(extraFileSet []source.LocalFile, noConfirm bool) error
}

func (f Fetch) Execute(args []string) error {
	spec, lock, availableLocalFileSet, err := f.setup(args)
	if err != nil {
		return err
	}

	localFiles, missingFiles, extraFiles := source.Partition(lock.Files, availableLocalFileSet)

	err = f.localDataDirectory.DeleteExtraFiles(extraFiles, f.Options.NoConfirm)
	if err != nil {
		f.logger.Println("failed deleting some files: ", err.Error())
	}

	if len(missingFiles) > 0 {
		f.logger.Printf("Found %d missing files to download", len(missingFiles))

		downloadedFiles, err := f.downloadMissingFiles(spec, missingFiles)
		if err != nil {
			return err
		}

		localFiles = append(localFiles, downloadedFiles...)
	}

	f.logger.Printf("%d files in %s match the Xenafile.lock", len(localFiles), f.Options.DataDir)
	return nil
}

func (f *Fetch) setup(args []string) (xenafile.Xenafile, xenafile.XenafileLock, []source.LocalFile, error) {
	_, err := flags.LoadWithDefaultFilePaths(&f.Options, args, nil)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, nil, err
	}

	if _, err := os.Stat(f.Options.DataDir); err != nil {
		if os.IsNotExist(err) {
			_ = os.MkdirAll(f.Options.DataDir, 0777)
		} else {
			return xenafile.Xenafile{}, xenafile.XenafileLock{}, nil, fmt.Errorf("error with data directory %s: %s", f.Options.DataDir, err)
		}
	}

	spec, lock, err := f.Options.Standard.LoadXenafiles(nil, nil)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, nil, err
	}

	availableLocalFileSet, err := f.localDataDirectory.GetLocalFiles(f.Options.DataDir)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, nil, err
	}

	return spec, lock, availableLocalFileSet, nil
}

func (f Fetch) downloadMissingFiles(spec xenafile.Xenafile, fileLocks []xenafile.FileLock) ([]source.LocalFile, error) {
	fileSource := f.multiFileSourceProvider(spec)

	concurrency := f.Options.DownloadThreads
	if concurrency < 1 {
		concurrency = defaultDownloadThreadCount
	}

	downloaded := make([]source.LocalFile, len(fileLocks))

	grp, ctx := errgroup.WithContext(context.Background())
	grp.SetLimit(concurrency)

	for i, fileLock := range fileLocks {
		i, fileLock := i, fileLock
		grp.Go(func() error {
			local, err := fileSource.DownloadFile(ctx, f.Options.DataDir, fileLock)
			if err != nil {
				return fmt.Errorf("download failed: %w", err)
			}

			if fileLock.MD5 != "" && local.MD5 != fileLock.MD5 {
				err = os.Remove(local.LocalPath)
				if err != nil {
					return fmt.Errorf("error deleting bad data file %q: %w", local.LocalPath, err) // untested
				}

				return fmt.Errorf("downloaded file %q had an incorrect md5 sum - expected %q, got %q", local.LocalPath, fileLock.MD5, local.MD5)
			}

			downloaded[i] = local
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return downloaded, nil
}

func (f Fetch) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Fetches the files listed in Xenafile.lock from their sources into the local data directory",
		ShortDescription: "fetches locked files",
		Flags:            f.Options,
	}
}
