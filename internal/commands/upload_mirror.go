package commands

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands/flags"
	"github.com/ucsc-xena/xena-gdc/internal/source"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type UploadMirror struct {
	FS                 billy.Filesystem
	FileUploaderFinder FileUploaderFinder
	Logger             *log.Logger

	Options struct {
		flags.Standard
		FetchDataDir

		UploadTargetID string `long:"upload-target-id" required:"true" description:"the ID of the file source where the file will be uploaded"`
		UUID           string `short:"u" long:"uuid" required:"true" description:"uuid of the locked file to upload"`
	}
}

//counterfeiter:generate -o ./fakes/file_uploader_finder.go --fake-name FileUploaderFinder . FileUploaderFinder
type FileUploaderFinder func(spec xenafile.Xenafile, sourceID string) (source.FileUploader, error)

func (command UploadMirror) Execute(args []string) error {
	_, err := flags.LoadWithDefaultFilePaths(&command.Options, args, command.FS.Stat)
	if err != nil {
		return err
	}

	spec, lock, err := command.Options.LoadXenafiles(command.FS, nil)
	if err != nil {
		return fmt.Errorf("error loading Xenafiles: %w", err)
	}

	uploader, err := command.FileUploaderFinder(spec, command.Options.UploadTargetID)
	if err != nil {
		return fmt.Errorf("error finding file source: %w", err)
	}

	fileLock, err := lock.FindFileWithUUID(command.Options.UUID)
	if err != nil {
		return fmt.Errorf("uuid %q is not in the Xenafile.lock: %w", command.Options.UUID, err)
	}

	localPath := filepath.Join(command.Options.DataDir, fileLock.FileName)

	if fileLock.MD5 != "" {
		sum, err := source.CalculateMD5(localPath, command.FS)
		if err != nil {
			return fmt.Errorf("could not check file: %w", err)
		}
		if sum != fileLock.MD5 {
			return fmt.Errorf("local file %q has md5 sum %q but the Xenafile.lock expects %q", localPath, sum, fileLock.MD5)
		}
	}

	file, err := command.FS.Open(localPath)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer closeAndIgnoreError(file)

	ctx := context.Background()

	_, err = uploader.FindFile(ctx, fileLock)
	if err == nil {
		return fmt.Errorf("a file with name %q and uuid %q already exists on %s", fileLock.FileName, fileLock.UUID, command.Options.UploadTargetID)
	}
	if !source.IsErrNotFound(err) {
		return fmt.Errorf("couldn't query file source: %w", err)
	}

	_, err = uploader.UploadFile(ctx, fileLock, file)
	if err != nil {
		return fmt.Errorf("error uploading the file: %w", err)
	}

	command.Logger.Println("Upload succeeded")

	return nil
}

func (command UploadMirror) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Uploads a fetched data file to a mirror file source such as an S3 bucket",
		ShortDescription: "uploads a data file to a mirror source",
		Flags:            command.Options,
	}
}
