package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands/flags"
	"github.com/ucsc-xena/xena-gdc/internal/pipeline"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type Validate struct {
	Options struct {
		flags.Standard
		Pipeline        string `long:"pipeline" default:"ci.yml" description:"path to a pipeline config to check along with the Xenafile"`
		ResolveCommands bool   `long:"resolve-commands" description:"check that plain pipeline commands name executables on PATH"`
	}

	FS billy.Filesystem
}

var _ jhanda.Command = (*Validate)(nil)

func NewValidate(fs billy.Filesystem) Validate {
	return Validate{
		FS: fs,
	}
}

func (v Validate) Execute(args []string) error {
	_, err := flags.LoadWithDefaultFilePaths(&v.Options, args, v.FS.Stat)
	if err != nil {
		return err
	}

	spec, lock, err := v.Options.Standard.LoadXenafiles(v.FS, nil)
	if err != nil {
		return fmt.Errorf("failed to load xenafiles: %w", err)
	}

	errs := xenafile.Validate(spec, lock)

	switch {
	case v.Options.Pipeline != "":
		config, err := pipeline.LoadConfig(v.FS, v.Options.Pipeline)
		if err != nil {
			return fmt.Errorf("failed to load pipeline config: %w", err)
		}
		errs = append(errs, config.Validate()...)
		if v.Options.ResolveCommands {
			errs = append(errs, pipeline.ResolveCommands(config)...)
		}
	case v.Options.ResolveCommands:
		return errors.New("--resolve-commands requires a pipeline config")
	}

	if len(errs) > 0 {
		return errorList(errs)
	}

	return nil
}

type errorList []error

func (list errorList) Error() string {
	messages := make([]string, 0, len(list))
	for _, err := range list {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

func (v Validate) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Validate checks for common Xenafile and Xenafile.lock mistakes",
		ShortDescription: "validate Xenafile and Xenafile.lock",
		Flags:            v.Options,
	}
}
