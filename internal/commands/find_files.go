package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/gdc"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type FindFiles struct {
	outLogger *log.Logger
	portal    GDCPortal

	Options struct {
		Project      string   `short:"p" long:"project" description:"GDC project id, for example TCGA-BRCA"`
		DataType     string   `long:"data-type" description:"GDC data_type value, for example Gene Expression Quantification"`
		WorkflowType string   `long:"workflow-type" description:"GDC analysis.workflow_type value"`
		Filters      []string `long:"filter" description:"additional field=value equality condition; may be repeated"`
		Format       string   `short:"f" long:"format" default:"json" description:"encoding for the file list: json or yaml"`
	}
}

type fileListOutput struct {
	FileIDs []string `json:"file_ids"`
}

func NewFindFiles(outLogger *log.Logger, portal GDCPortal) FindFiles {
	return FindFiles{
		outLogger: outLogger,
		portal:    portal,
	}
}

func (cmd FindFiles) Execute(args []string) error {
	_, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	spec := xenafile.DatasetSpec{
		Project:      cmd.Options.Project,
		DataType:     cmd.Options.DataType,
		WorkflowType: cmd.Options.WorkflowType,
		Filters:      make(map[string]string, len(cmd.Options.Filters)),
	}
	for _, pair := range cmd.Options.Filters {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q: expected field=value", pair)
		}
		spec.Filters[field] = value
	}

	conditions := spec.QueryConditions()
	if len(conditions) == 0 {
		return errors.New("at least one query condition is required")
	}

	ids, err := cmd.portal.FileIDs(context.Background(), gdc.AndEq(conditions))
	if err != nil {
		return fmt.Errorf("failed to query files: %w", err)
	}

	buf, err := encodeOutput(cmd.Options.Format, fileListOutput{FileIDs: ids})
	if err != nil {
		return err
	}
	cmd.outLogger.Printf("%s", buf)
	return nil
}

func (cmd FindFiles) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Prints the uuid of every GDC file matching the given query conditions, the same query a dataset block in a Xenafile would run.",
		ShortDescription: "prints uuids of GDC files matching a query",
		Flags:            cmd.Options,
	}
}
