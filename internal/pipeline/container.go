package pipeline

import (
	"archive/tar"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/moby/buildkit/session"
	specV1 "github.com/opencontainers/image-spec/specs-go/v1"
	"golang.org/x/sync/errgroup"
)

const (
	// MinimumDockerServerVersion runs were failing with an older version; this may be a bit conservative.
	// If container jobs pass on your machine with an older version, feel free to PR a less conservative value.
	MinimumDockerServerVersion = "> 24.0.0"
	MinimumPodmanServerVersion = "> 5.3.0"

	// containerWorkdir is where the project directory is mounted inside
	// job containers.
	containerWorkdir = "/work"
)

//counterfeiter:generate -o ./fakes_internal/moby_client.go --fake-name MobyClient . mobyClient
type mobyClient interface {
	DialHijack(ctx context.Context, url, proto string, meta map[string][]string) (net.Conn, error)
	ImageBuild(ctx context.Context, buildContext io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	Ping(ctx context.Context) (types.Ping, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *specV1.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerLogs(ctx context.Context, container string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
}

// ContainerRunner executes jobs in Docker containers. Each job runs in a
// throwaway container built from its runtime image with the project
// directory bind mounted at /work.
type ContainerRunner struct {
	client      mobyClient
	logger      *log.Logger
	workdir     string
	environment []string
}

func NewContainerRunner(logger *log.Logger, workdir string, environment []string) (ContainerRunner, error) {
	if !filepath.IsAbs(workdir) {
		return ContainerRunner{}, fmt.Errorf("workspace path must be absolute")
	}
	envMap, err := decodeEnvironment(environment)
	if err != nil {
		return ContainerRunner{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	dockerDaemon, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return ContainerRunner{}, err
	}

	return ContainerRunner{
		client:      dockerDaemon,
		logger:      logger,
		workdir:     workdir,
		environment: encodeEnvironment(envMap),
	}, nil
}

func (runner ContainerRunner) RunJob(ctx context.Context, w io.Writer, job Job) error {
	return configureSession(ctx, runner.logger, runner.client, runner.runJobWithSession(ctx, w, job))
}

func (runner ContainerRunner) runJobWithSession(ctx context.Context, w io.Writer, job Job) func(sessionID string) error {
	return func(sessionID string) error {
		if len(job.Commands) == 0 {
			return fmt.Errorf("job %s has no commands", job.ID)
		}

		var dockerfileTarball bytes.Buffer
		if err := createDockerfileTarball(tar.NewWriter(&dockerfileTarball), dockerfile); err != nil {
			return err
		}

		baseImage := job.Image
		tag := jobImageTag(job)
		runner.logger.Printf("creating job image %s", tag)
		resp, err := runner.client.ImageBuild(ctx, &dockerfileTarball, types.ImageBuildOptions{
			Tags:      []string{tag},
			Version:   types.BuilderBuildKit,
			SessionID: sessionID,
			BuildArgs: map[string]*string{
				"BASE_IMAGE": &baseImage,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to build image: %w", err)
		}

		runner.logger.Println("reading image build response")
		body, err := io.ReadAll(resp.Body)
		closeAndIgnoreError(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read image build response: %w", err)
		}
		_, _ = w.Write(body)

		shellCmd := strings.Join(job.Commands, " && ")
		env := append([]string{"RUNTIME=" + job.Runtime}, runner.environment...)

		runner.logger.Println("creating job container")
		created, err := runner.client.ContainerCreate(ctx, runner.containerConfig(tag, shellCmd, env), runner.hostConfig(), nil, nil, "")
		if cerrdefs.IsNotFound(err) {
			// Build failures surface in the response body rather than the
			// ImageBuild call error, and a missing tag usually means the
			// base image could not be resolved during the build. Pull it
			// and run the job on the bare runtime image.
			runner.logger.Printf("image %s is missing, pulling %s", tag, job.Image)
			progress, pullErr := runner.client.ImagePull(ctx, job.Image, image.PullOptions{})
			if pullErr != nil {
				return fmt.Errorf("failed to pull image %s: %w", job.Image, pullErr)
			}
			_, copyErr := io.Copy(w, progress)
			closeAndIgnoreError(progress)
			if copyErr != nil {
				return copyErr
			}
			created, err = runner.client.ContainerCreate(ctx, runner.containerConfig(job.Image, shellCmd, env), runner.hostConfig(), nil, nil, "")
		}
		if err != nil {
			return fmt.Errorf("failed to create container: %w", err)
		}
		runner.logger.Printf("created job container with id %s", created.ID)

		errG := errgroup.Group{}

		sigInt := make(chan os.Signal, 1)
		signal.Notify(sigInt, os.Interrupt)
		errG.Go(func() error {
			_, interrupted := <-sigInt
			if !interrupted {
				return nil
			}
			err := runner.client.ContainerStop(ctx, created.ID, container.StopOptions{
				Signal: "SIGKILL",
			})
			if err != nil {
				return fmt.Errorf("failed to stop container: %w", err)
			}
			return nil
		})

		if err := runner.client.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
			return fmt.Errorf("failed to start job container: %w", err)
		}

		out, err := runner.client.ContainerLogs(ctx, created.ID, container.LogsOptions{ShowStdout: true, ShowStderr: true, Follow: true})
		if err != nil {
			return fmt.Errorf("container log request failure: %w", err)
		}
		if _, err := io.Copy(w, out); err != nil {
			return err
		}

		// Although the fan-in loop pattern seems like the right solution here, ContainerWait
		// does not properly close channels, so it won't work.
		var resultErr error
		statusCh, containerWaitError := runner.client.ContainerWait(ctx, created.ID, container.WaitConditionNotRunning)
		select {
		case err := <-containerWaitError:
			resultErr = err
		case status := <-statusCh:
			if status.Error != nil {
				resultErr = fmt.Errorf("job ended abnormally: %s", status.Error.Message)
			} else if status.StatusCode != 0 {
				resultErr = ExitError{Code: status.StatusCode}
			}
		}
		signal.Stop(sigInt)
		close(sigInt)

		return errors.Join(resultErr, errG.Wait())
	}
}

func (runner ContainerRunner) containerConfig(imageRef, shellCmd string, env []string) *container.Config {
	return &container.Config{
		Image:      imageRef,
		Cmd:        []string{"/bin/sh", "-c", shellCmd},
		Env:        env,
		WorkingDir: containerWorkdir,
		Tty:        true,
	}
}

func (runner ContainerRunner) hostConfig() *container.HostConfig {
	return &container.HostConfig{
		LogConfig: container.LogConfig{
			Config: map[string]string{
				"mode": string(container.LogModeNonBlock),
			},
		},
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: runner.workdir,
				Target: containerWorkdir,
			},
		},
		AutoRemove: true,
	}
}

// jobImageTag names the wrapper image built for a job's runtime image.
func jobImageTag(job Job) string {
	return "xena-gdc-ci:" + strings.NewReplacer(":", "-", "/", "-").Replace(job.Image)
}

// configureSession is the part of the code that sets up socket connections and interacts with the daemon
// testing it is non-trivial, so I isolated it. Testing it properly would require a daemon connection.
func configureSession(ctx context.Context, logger *log.Logger, dockerDaemon mobyClient, function func(sessionID string) error) error {
	logger.Printf("pinging docker daemon")
	_, err := dockerDaemon.Ping(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to Docker daemon: %w", err)
	}

	s, err := session.NewSession(ctx, "xena-gdc")
	if err != nil {
		return fmt.Errorf("failed to create docker daemon session: %w", err)
	}
	defer closeAndIgnoreError(s)

	runErrC := make(chan error)
	go func() {
		defer close(runErrC)
		runErrC <- s.Run(ctx, func(ctx context.Context, proto string, meta map[string][]string) (net.Conn, error) {
			conn, err := dockerDaemon.DialHijack(ctx, "/session", proto, meta)
			if err != nil {
				return nil, fmt.Errorf("session hijack error: %w", err)
			}
			return conn, nil
		})
	}()

	logger.Println("completed session setup")

	err = function(s.ID())
	_ = s.Close()
	for e := range runErrC {
		err = errors.Join(err, e)
	}
	return err
}

type environmentVars = map[string]string

func encodeEnvironment(m environmentVars) []string {
	result := make([]string, 0, len(m))
	for k, v := range m {
		result = append(result, strings.Join([]string{k, v}, "="))
	}
	return result
}

func decodeEnvironment(environmentVarArgs []string) (environmentVars, error) {
	envMap := make(environmentVars)
	for _, envVar := range environmentVarArgs {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 {
			return nil, errors.New("environment variables must have the format [key]=[value]")
		}
		envMap[parts[0]] = parts[1]
	}
	return envMap, nil
}

//go:embed Dockerfile
var dockerfile string

type tarWriter interface {
	WriteHeader(hdr *tar.Header) error
	io.WriteCloser
}

func createDockerfileTarball(tw tarWriter, fileContents string) error {
	if err := tw.WriteHeader(&tar.Header{
		Name: "Dockerfile",
		Mode: 0o600,
		Size: int64(len(fileContents)),
	}); err != nil {
		return err
	}
	if _, err := tw.Write([]byte(fileContents)); err != nil {
		return err
	}
	return tw.Close()
}

func closeAndIgnoreError(c io.Closer) {
	_ = c.Close()
}
