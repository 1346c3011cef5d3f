package pipeline

import (
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

// Validate checks the declaration for problems that would make the plan
// unrunnable: missing required fields, unknown stage or runtime
// references, blank commands, and allow_failures selectors that select
// nothing.
func (config Config) Validate() []error {
	var errs []error

	if config.Language == "" {
		errs = append(errs, errors.New(`missing required field "language" in pipeline config`))
	}
	if len(config.Stages) == 0 {
		errs = append(errs, errors.New(`missing required field "stages" in pipeline config`))
	}

	seen := make(map[string]struct{}, len(config.Stages))
	for _, stage := range config.Stages {
		if stage == "" {
			errs = append(errs, errors.New("stage names must not be blank"))
			continue
		}
		if _, dup := seen[stage]; dup {
			errs = append(errs, fmt.Errorf("pipeline stages must be unique; %q appears twice", stage))
		}
		seen[stage] = struct{}{}
	}

	explicitStages := make(map[string]struct{}, len(config.Jobs))
	for _, job := range config.Jobs {
		explicitStages[job.Stage] = struct{}{}
		if _, declared := seen[job.Stage]; !declared {
			errs = append(errs, fmt.Errorf("job %q names undeclared stage %q", jobName(job), job.Stage))
		}
		switch {
		case job.Runtime == "":
			errs = append(errs, fmt.Errorf("job %q is missing a runtime", jobName(job)))
		case !slices.Contains(config.Runtimes, job.Runtime):
			errs = append(errs, fmt.Errorf("job %q names undeclared runtime %q", jobName(job), job.Runtime))
		}
		if len(job.Script) == 0 {
			errs = append(errs, fmt.Errorf("job %q has no script", jobName(job)))
		}
	}

	var hasMatrixStage bool
	for _, stage := range config.Stages {
		if _, explicit := explicitStages[stage]; explicit {
			continue
		}
		hasMatrixStage = true
		if len(config.Script) == 0 {
			errs = append(errs, fmt.Errorf("stage %q has no script and no explicit jobs", stage))
		}
	}
	if hasMatrixStage && len(config.Runtimes) == 0 {
		errs = append(errs, errors.New(`missing required field "runtimes" in pipeline config`))
	}

	for _, command := range config.commands() {
		if strings.TrimSpace(command.command) == "" {
			errs = append(errs, fmt.Errorf("%s has a blank command", command.location))
		}
	}

	if len(errs) > 0 {
		return errs
	}

	plan, err := NewPlan(config)
	if err != nil {
		return append(errs, err)
	}
	jobs := plan.Jobs()
	for _, selector := range config.AllowFailures {
		if !selectorMatchesAny(selector, jobs) {
			errs = append(errs, fmt.Errorf("allow_failures selector (stage %q, runtime %q) matches no job", selector.Stage, selector.Runtime))
		}
	}

	return errs
}

func selectorMatchesAny(selector Selector, jobs []Job) bool {
	for _, job := range jobs {
		if selector.Matches(job) {
			return true
		}
	}
	return false
}

// shell operators and expansions mean the first field is not a program
// name LookPath could check
const shellMeta = "|&;<>()$`\"'{}*?~\\"

// ResolveCommands checks that each plain command names an executable on
// PATH. Container jobs install their own tools, so this is advisory and
// only runs when asked for.
func ResolveCommands(config Config) []error {
	var errs []error
	for _, command := range config.commands() {
		argv0, ok := commandArgv0(command.command)
		if !ok {
			continue
		}
		if _, err := exec.LookPath(argv0); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", command.location, err))
		}
	}
	return errs
}

func commandArgv0(command string) (string, bool) {
	if strings.ContainsAny(command, shellMeta) {
		return "", false
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", false
	}
	if strings.Contains(fields[0], "=") { // leading variable assignment
		return "", false
	}
	return fields[0], true
}

type pipelineCommand struct {
	location string
	command  string
}

func (config Config) commands() []pipelineCommand {
	var commands []pipelineCommand
	appendPhase := func(location string, phase []string) {
		for _, command := range phase {
			commands = append(commands, pipelineCommand{location: location, command: command})
		}
	}

	appendPhase("before_install", config.BeforeInstall)
	appendPhase("install", config.Install)
	appendPhase("script", config.Script)
	for _, job := range config.Jobs {
		prefix := fmt.Sprintf("job %q ", jobName(job))
		appendPhase(prefix+"before_install", job.BeforeInstall)
		appendPhase(prefix+"install", job.Install)
		appendPhase(prefix+"script", job.Script)
	}
	return commands
}
