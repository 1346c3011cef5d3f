package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/etl"
)

type ExportCases struct {
	logger  *log.Logger
	service etl.CaseService

	Options struct {
		Out      string `short:"o" long:"out" default:"cases.tsv" description:"path the case table is written to"`
		PageSize int    `long:"page-size" description:"cases fetched per request"`
	}

	FS billy.Filesystem
}

func NewExportCases(logger *log.Logger, service etl.CaseService) ExportCases {
	return ExportCases{
		logger:  logger,
		service: service,
		FS:      osfs.New(""),
	}
}

func (cmd ExportCases) Execute(args []string) error {
	_, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	out, err := cmd.FS.Create(cmd.Options.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cmd.Options.Out, err)
	}
	defer closeAndIgnoreError(out)

	exporter := etl.CasesExporter{
		Service:  cmd.service,
		Logger:   cmd.logger,
		PageSize: cmd.Options.PageSize,
	}
	if err := exporter.Export(context.Background(), out); err != nil {
		return err
	}

	cmd.logger.Printf("wrote case table to %s", cmd.Options.Out)
	return nil
}

func (cmd ExportCases) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Exports every case on the GDC portal into one clinical TSV: a row per case with diagnosis, demographic, and project fields merged.",
		ShortDescription: "exports the GDC case table as TSV",
		Flags:            cmd.Options,
	}
}
