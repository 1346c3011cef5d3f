package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// HostRunner executes jobs directly with the host shell. It is there for
// --no-container runs where Docker is unavailable; jobs then share the
// host toolchain regardless of their declared runtime image.
type HostRunner struct {
	logger      *log.Logger
	workdir     string
	environment []string
}

func NewHostRunner(logger *log.Logger, workdir string, environment []string) (HostRunner, error) {
	if !filepath.IsAbs(workdir) {
		return HostRunner{}, fmt.Errorf("workspace path must be absolute")
	}
	envMap, err := decodeEnvironment(environment)
	if err != nil {
		return HostRunner{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return HostRunner{
		logger:      logger,
		workdir:     workdir,
		environment: encodeEnvironment(envMap),
	}, nil
}

func (runner HostRunner) RunJob(ctx context.Context, w io.Writer, job Job) error {
	if len(job.Commands) == 0 {
		return fmt.Errorf("job %s has no commands", job.ID)
	}
	runner.logger.Printf("running job %s on the host", job.ID)

	cmd := exec.CommandContext(ctx, "sh", "-c", strings.Join(job.Commands, " && "))
	cmd.Dir = runner.workdir
	cmd.Env = append(os.Environ(), append([]string{"RUNTIME=" + job.Runtime}, runner.environment...)...)
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExitError{Code: int64(exitErr.ExitCode())}
	}
	return err
}
