package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands/flags"
)

type LabelFiles struct {
	outLogger *log.Logger
	portal    GDCPortal

	Options struct {
		flags.Standard
		Dataset    string   `short:"ds" long:"dataset" description:"label the files locked for this dataset"`
		UUIDs      []string `short:"u" long:"uuid" description:"label these file uuids directly; may be repeated"`
		LabelField string   `long:"label-field" description:"GDC field to read labels from, defaults to the dataset's label_field"`
		Format     string   `short:"f" long:"format" default:"table" description:"encoding for the mapping: table, json, or yaml"`
	}

	FS billy.Filesystem
}

func NewLabelFiles(outLogger *log.Logger, portal GDCPortal) LabelFiles {
	return LabelFiles{
		outLogger: outLogger,
		portal:    portal,
		FS:        osfs.New(""),
	}
}

func (cmd LabelFiles) Execute(args []string) error {
	_, err := flags.LoadWithDefaultFilePaths(&cmd.Options, args, cmd.FS.Stat)
	if err != nil {
		return err
	}

	uuids := cmd.Options.UUIDs
	labelField := cmd.Options.LabelField

	if len(uuids) == 0 {
		if cmd.Options.Dataset == "" {
			return errors.New("either --dataset or --uuid must be given")
		}
		spec, lock, err := cmd.Options.Standard.LoadXenafiles(cmd.FS, nil)
		if err != nil {
			return fmt.Errorf("failed to load xenafiles: %w", err)
		}
		dataset, err := spec.FindDatasetWithName(cmd.Options.Dataset)
		if err != nil {
			return fmt.Errorf("unknown dataset %q: %w", cmd.Options.Dataset, err)
		}
		if labelField == "" {
			labelField = dataset.LabelField
		}
		for _, file := range lock.FilesForDataset(cmd.Options.Dataset) {
			uuids = append(uuids, file.UUID)
		}
	}

	labels, err := cmd.portal.Labels(context.Background(), uuids, labelField)
	if err != nil {
		return fmt.Errorf("failed to fetch labels: %w", err)
	}

	if cmd.Options.Format == "table" {
		names := make([]string, 0, len(labels))
		for label := range labels {
			names = append(names, label)
		}
		sort.Strings(names)
		for _, label := range names {
			cmd.outLogger.Printf("%s\t%s", label, labels[label])
		}
		return nil
	}

	buf, err := encodeOutput(cmd.Options.Format, labels)
	if err != nil {
		return err
	}
	cmd.outLogger.Printf("%s", buf)
	return nil
}

func (cmd LabelFiles) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Prints a label to uuid mapping for locked dataset files, reading sample labels from the dataset's label_field.",
		ShortDescription: "prints sample labels for locked files",
		Flags:            cmd.Options,
	}
}
