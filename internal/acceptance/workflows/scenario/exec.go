package scenario

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

const xenaGdcDevVersion = "1.0.0-dev"

// xenaGdcCommand builds the CLI with go run so scenarios always exercise
// the checked-out source.
func xenaGdcCommand(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, "go", append([]string{"run", "-ldflags", "-X main.version=" + xenaGdcDevVersion, "github.com/ucsc-xena/xena-gdc", "--"}, args...)...)
}

func runAndLogOnError(ctx context.Context, cmd *exec.Cmd, requireSuccess bool) (context.Context, error) {
	var buf bytes.Buffer
	fds := ctx.Value(standardFileDescriptorsKey).(standardFileDescriptors)
	cmd.Stdout = io.MultiWriter(&buf, fds[stdoutFD])
	cmd.Stderr = io.MultiWriter(&buf, fds[stderrFD])
	runErr := cmd.Run()
	ctx = setLastCommandStatus(ctx, cmd.ProcessState)
	if requireSuccess {
		if runErr != nil {
			_, _ = io.Copy(os.Stdout, &buf)
		}
		return ctx, runErr
	}
	return ctx, nil
}
