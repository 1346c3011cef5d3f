package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Plan is the expanded form of a Config: stages in declared order, each
// holding the concrete jobs to run. Jobs within a stage are independent
// of each other.
type Plan struct {
	Stages []Stage
}

type Stage struct {
	Name string
	Jobs []Job
}

// Job is one runnable unit of the pipeline. Commands holds the
// before_install, install, and script phases flattened in that order.
type Job struct {
	ID      string
	Stage   string
	Runtime string
	Image   string

	Commands []string

	AllowFailure bool
}

// NewPlan expands the config matrix. Stages keep their declared order;
// a stage with explicit jobs gets exactly those, any other stage gets
// one job per runtime built from the default phases.
func NewPlan(config Config) (Plan, error) {
	jobsByStage := make(map[string][]JobConfig)
	for _, job := range config.Jobs {
		if !slices.Contains(config.Stages, job.Stage) {
			return Plan{}, fmt.Errorf("job %q names undeclared stage %q", jobName(job), job.Stage)
		}
		jobsByStage[job.Stage] = append(jobsByStage[job.Stage], job)
	}

	var plan Plan
	for _, stageName := range config.Stages {
		stage := Stage{Name: stageName}

		explicit, ok := jobsByStage[stageName]
		if ok {
			for _, jobConfig := range explicit {
				if jobConfig.Runtime == "" {
					return Plan{}, fmt.Errorf("job %q is missing a runtime", jobName(jobConfig))
				}
				stage.Jobs = append(stage.Jobs, newJob(config, stageName, jobConfig.Runtime, jobPhases{
					beforeInstall: jobConfig.BeforeInstall,
					install:       jobConfig.Install,
					script:        jobConfig.Script,
					allowFailure:  jobConfig.AllowFailure,
				}))
			}
		} else {
			if len(config.Script) == 0 {
				return Plan{}, fmt.Errorf("stage %q has no script and no explicit jobs", stageName)
			}
			for _, runtime := range config.Runtimes {
				stage.Jobs = append(stage.Jobs, newJob(config, stageName, runtime, jobPhases{
					beforeInstall: config.BeforeInstall,
					install:       config.Install,
					script:        config.Script,
				}))
			}
		}

		plan.Stages = append(plan.Stages, stage)
	}
	return plan, nil
}

type jobPhases struct {
	beforeInstall, install, script []string

	allowFailure bool
}

func newJob(config Config, stage, runtime string, phases jobPhases) Job {
	commands := make([]string, 0, len(phases.beforeInstall)+len(phases.install)+len(phases.script))
	commands = append(commands, phases.beforeInstall...)
	commands = append(commands, phases.install...)
	commands = append(commands, phases.script...)

	job := Job{
		ID:       stage + "/" + runtime,
		Stage:    stage,
		Runtime:  runtime,
		Image:    jobImage(config.Language, runtime),
		Commands: commands,
	}
	job.AllowFailure = phases.allowFailure || matchesAnySelector(config.AllowFailures, job)
	return job
}

// jobImage maps a runtime to its Docker Hub image. The python "-dev"
// pre-release channel corresponds to Docker's "-rc" tags.
func jobImage(language, runtime string) string {
	switch language {
	case "python":
		if version, ok := strings.CutSuffix(runtime, "-dev"); ok {
			return "python:" + version + "-rc"
		}
		return "python:" + runtime
	case "go":
		return "golang:" + runtime
	default:
		return language + ":" + runtime
	}
}

func matchesAnySelector(selectors []Selector, job Job) bool {
	for _, selector := range selectors {
		if selector.Matches(job) {
			return true
		}
	}
	return false
}

func jobName(job JobConfig) string {
	if job.Name != "" {
		return job.Name
	}
	return job.Stage + "/" + job.Runtime
}

// Jobs flattens the plan in execution order.
func (plan Plan) Jobs() []Job {
	var jobs []Job
	for _, stage := range plan.Stages {
		jobs = append(jobs, stage.Jobs...)
	}
	return jobs
}

// Filter returns the plan reduced to jobs matching the given stage and
// runtime. Empty values match everything; stages left without jobs drop
// out of the plan.
func (plan Plan) Filter(stage, runtime string) Plan {
	var filtered Plan
	for _, planStage := range plan.Stages {
		if stage != "" && planStage.Name != stage {
			continue
		}
		kept := Stage{Name: planStage.Name}
		for _, job := range planStage.Jobs {
			if runtime != "" && job.Runtime != runtime {
				continue
			}
			kept.Jobs = append(kept.Jobs, job)
		}
		if len(kept.Jobs) > 0 {
			filtered.Stages = append(filtered.Stages, kept)
		}
	}
	return filtered
}

// Describe writes a readable listing of the planned jobs, one stage per
// block. The test command prints this for --dry-run.
func (plan Plan) Describe(w io.Writer) {
	for _, stage := range plan.Stages {
		fmt.Fprintf(w, "stage %s\n", stage.Name)
		for _, job := range stage.Jobs {
			if job.AllowFailure {
				fmt.Fprintf(w, "  %s (image %s, allowed to fail)\n", job.ID, job.Image)
				continue
			}
			fmt.Fprintf(w, "  %s (image %s)\n", job.ID, job.Image)
		}
	}
}
