package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/pivotal-cf/jhanda"
)

type ListProjects struct {
	outLogger *log.Logger
	portal    GDCPortal

	Options struct {
		Format string `short:"f" long:"format" default:"json" description:"encoding for the project list: json or yaml"`
	}
}

type projectListOutput struct {
	Projects []string `json:"projects"`
}

func NewListProjects(outLogger *log.Logger, portal GDCPortal) ListProjects {
	return ListProjects{
		outLogger: outLogger,
		portal:    portal,
	}
}

func (cmd ListProjects) Execute(args []string) error {
	_, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	projects, err := cmd.portal.Projects(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	buf, err := encodeOutput(cmd.Options.Format, projectListOutput{Projects: projects})
	if err != nil {
		return err
	}
	cmd.outLogger.Printf("%s", buf)
	return nil
}

func (cmd ListProjects) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Prints the project id of every project on the GDC portal.",
		ShortDescription: "prints the GDC project ids",
		Flags:            cmd.Options,
	}
}
