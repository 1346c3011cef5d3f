package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands/flags"
	"github.com/ucsc-xena/xena-gdc/internal/pipeline"
)

type Test struct {
	Options struct {
		flags.Standard

		Pipeline    string   `long:"pipeline" default:"ci.yml" description:"path to the pipeline config"`
		Stage       string   `long:"stage" description:"only run jobs in this stage"`
		Runtime     string   `long:"runtime" description:"only run jobs for this runtime"`
		DryRun      bool     `long:"dry-run" description:"print the job plan instead of running it"`
		NoContainer bool     `long:"no-container" description:"run jobs with the host shell instead of Docker"`
		FailFast    bool     `long:"fail-fast" description:"stop after the first stage with a failing job"`
		MaxInFlight int      `long:"max-in-flight" description:"maximum number of jobs to run at once within a stage"`
		Environment []string `short:"e" long:"environment-variable" description:"pass an environment variable to jobs, formatted [key]=[value]"`
	}

	FS          billy.Filesystem
	RunPipeline PipelineRunFunction
	Logger      *log.Logger
}

//counterfeiter:generate -o ./fakes/pipeline_run_function.go --fake-name PipelineRunFunction . PipelineRunFunction
type PipelineRunFunction func(ctx context.Context, w io.Writer, plan pipeline.Plan, options pipeline.ExecuteOptions) (pipeline.RunResult, error)

func (command Test) Execute(args []string) error {
	_, err := flags.LoadWithDefaultFilePaths(&command.Options, args, command.FS.Stat)
	if err != nil {
		return err
	}

	if command.Options.Pipeline == "" {
		return errors.New("missing pipeline config: add ci.yml or pass --pipeline")
	}

	config, err := pipeline.LoadConfig(command.FS, command.Options.Pipeline)
	if err != nil {
		return fmt.Errorf("failed to load pipeline config: %w", err)
	}

	if errs := config.Validate(); len(errs) > 0 {
		return errorList(errs)
	}

	plan, err := pipeline.NewPlan(config)
	if err != nil {
		return fmt.Errorf("failed to plan jobs: %w", err)
	}

	plan = plan.Filter(command.Options.Stage, command.Options.Runtime)
	if len(plan.Jobs()) == 0 {
		return errors.New("no jobs selected: check --stage and --runtime")
	}

	if command.Options.DryRun {
		plan.Describe(command.Logger.Writer())
		return nil
	}

	workdir, err := filepath.Abs(command.Options.Standard.ProjectDirectory())
	if err != nil {
		return fmt.Errorf("could not resolve project directory: %w", err)
	}

	result, err := command.RunPipeline(context.Background(), command.Logger.Writer(), plan, pipeline.ExecuteOptions{
		RunOptions: pipeline.RunOptions{
			FailFast:      command.Options.FailFast,
			MaxInFlight:   command.Options.MaxInFlight,
			Notifications: config.Notifications,
		},
		NoContainer: command.Options.NoContainer,
		Workdir:     workdir,
		Environment: command.Options.Environment,
	})
	if err != nil {
		return fmt.Errorf("could not run the pipeline: %w", err)
	}

	if result.Failed() {
		return errors.New("one or more required jobs failed")
	}

	command.Logger.Println("Pipeline passed")
	return nil
}

func (command Test) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Test runs the pipeline config's job matrix, stage by stage, the way CI would",
		ShortDescription: "runs the pipeline jobs",
		Flags:            command.Options,
	}
}
