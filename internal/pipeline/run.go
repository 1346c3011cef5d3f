package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome classifies how a job ended.
type Outcome string

const (
	Passed        Outcome = "passed"
	Failed        Outcome = "failed"
	FailedAllowed Outcome = "failed (allowed)"
	Errored       Outcome = "errored"
)

// ExitError reports a job whose commands exited non-zero. Any other
// error from a runner counts as infrastructure trouble, not a test
// failure.
type ExitError struct {
	Code int64
}

func (err ExitError) Error() string {
	return fmt.Sprintf("job failed with exit code %d", err.Code)
}

// JobRunner executes one job, streaming its output to w. Implementations
// return an ExitError when the job's commands exit non-zero and any
// other error when the job could not be run at all.
type JobRunner interface {
	RunJob(ctx context.Context, w io.Writer, job Job) error
}

//counterfeiter:generate -o ./fakes/job_runner.go --fake-name JobRunner . JobRunner

type JobResult struct {
	Job     Job
	Outcome Outcome
	Err     error
}

// An allowed job never fails the run, not even when it errored.
func (result JobResult) failsTheRun() bool {
	switch result.Outcome {
	case Failed:
		return true
	case Errored:
		return !result.Job.AllowFailure
	default:
		return false
	}
}

type RunResult struct {
	Jobs []JobResult
}

// Failed reports whether any job outcome fails the run.
func (result RunResult) Failed() bool {
	for _, job := range result.Jobs {
		if job.failsTheRun() {
			return true
		}
	}
	return false
}

type RunOptions struct {
	// FailFast stops after the first stage with a failing job instead
	// of running the remaining stages.
	FailFast bool

	// MaxInFlight bounds how many jobs of a stage run at once. Zero
	// means one per CPU.
	MaxInFlight int

	Notifications Notifications
}

// Run executes the plan: stages sequentially, jobs within a stage
// concurrently. Each job's output is buffered and flushed to w in plan
// order so logs do not interleave.
func Run(ctx context.Context, w io.Writer, plan Plan, runner JobRunner, options RunOptions) RunResult {
	maxInFlight := options.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = runtime.NumCPU()
	}

	var result RunResult
	for _, stage := range plan.Stages {
		fmt.Fprintf(w, "stage %s\n", stage.Name)

		stageResults := make([]JobResult, len(stage.Jobs))
		logs := make([]bytes.Buffer, len(stage.Jobs))

		group := errgroup.Group{}
		group.SetLimit(maxInFlight)
		for i, job := range stage.Jobs {
			group.Go(func() error {
				stageResults[i] = classify(job, runner.RunJob(ctx, &logs[i], job))
				return nil
			})
		}
		_ = group.Wait()

		var stageFailed bool
		for i, jobResult := range stageResults {
			fmt.Fprintf(w, "job %s (image %s)\n", stage.Jobs[i].ID, stage.Jobs[i].Image)
			_, _ = io.Copy(w, &logs[i])
			fmt.Fprintf(w, "job %s: %s\n", stage.Jobs[i].ID, jobResult.Outcome)
			if jobResult.failsTheRun() {
				stageFailed = true
			}
		}
		result.Jobs = append(result.Jobs, stageResults...)

		if options.FailFast && stageFailed {
			break
		}
	}

	if options.Notifications.EmailEnabled() {
		fmt.Fprintln(w, "email notifications are enabled, but this runner cannot send mail")
	}
	return result
}

func classify(job Job, err error) JobResult {
	result := JobResult{Job: job, Err: err}
	var exitErr ExitError
	switch {
	case err == nil:
		result.Outcome = Passed
	case errors.As(err, &exitErr):
		if job.AllowFailure {
			result.Outcome = FailedAllowed
		} else {
			result.Outcome = Failed
		}
	default:
		result.Outcome = Errored
	}
	return result
}

// ExecuteOptions selects and configures the runner for a whole run.
type ExecuteOptions struct {
	RunOptions

	// NoContainer runs jobs with the host shell instead of Docker.
	NoContainer bool

	// Workdir is the absolute project directory jobs run in.
	Workdir string

	// Environment holds extra [key]=[value] pairs for job processes.
	Environment []string
}

// Execute builds the configured runner and runs the plan with it.
func Execute(ctx context.Context, w io.Writer, plan Plan, options ExecuteOptions) (RunResult, error) {
	logger := log.New(w, "xena test: ", log.Default().Flags())

	var (
		runner JobRunner
		err    error
	)
	if options.NoContainer {
		runner, err = NewHostRunner(logger, options.Workdir, options.Environment)
	} else {
		runner, err = NewContainerRunner(logger, options.Workdir, options.Environment)
	}
	if err != nil {
		return RunResult{}, err
	}
	return Run(ctx, w, plan, runner, options.RunOptions), nil
}
