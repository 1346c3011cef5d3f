package scenario

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// key represents the type of the context key for shared values between steps
// see https://pkg.go.dev/context
type key int

const (
	mirrorDirectoryKey key = iota
	standardFileDescriptorsKey
	lastCommandProcessStateKey
)

func contextValue[T any](ctx context.Context, k key, name string) (T, error) {
	s, ok := ctx.Value(k).(T)
	if !ok {
		var zeroValue T
		return zeroValue, fmt.Errorf("context value %s not set", name)
	}
	return s, nil
}

func mirrorDirectory(ctx context.Context) (string, error) {
	return contextValue[string](ctx, mirrorDirectoryKey, "mirror source directory")
}

func setMirrorDirectory(ctx context.Context, p string) context.Context {
	return context.WithValue(ctx, mirrorDirectoryKey, p)
}

// commandDirectory is the directory a xena-gdc invocation runs in. The
// help and version scenarios have no mirror directory and run in the
// package directory instead.
func commandDirectory(ctx context.Context) string {
	dir, err := mirrorDirectory(ctx)
	if err != nil {
		return ""
	}
	return dir
}

func xenafilePath(ctx context.Context) (string, error) {
	dir, err := mirrorDirectory(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "Xenafile"), nil
}

func xenafileLockPath(ctx context.Context) (string, error) {
	p, err := xenafilePath(ctx)
	if err != nil {
		return "", err
	}
	return p + ".lock", nil
}

type standardFileDescriptors [3]*bytes.Buffer

const (
	stdoutFD = 1
	stderrFD = 2
)

func output(ctx context.Context, name string) (*bytes.Buffer, error) {
	v, err := contextValue[standardFileDescriptors](ctx, standardFileDescriptorsKey, name)
	if err != nil {
		return nil, err
	}
	switch name {
	case "stdout":
		return v[stdoutFD], nil
	case "stderr":
		return v[stderrFD], nil
	default:
		dir, err := mirrorDirectory(ctx)
		if err != nil {
			return nil, err
		}
		name, err = strconv.Unquote(name)
		if err != nil {
			return nil, err
		}
		buf, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		return bytes.NewBuffer(buf), nil
	}
}

func configureStandardFileDescriptors(ctx context.Context) context.Context {
	outputs := standardFileDescriptors{
		nil, // stdin is not used by any step
		bytes.NewBuffer(nil),
		bytes.NewBuffer(nil),
	}
	return context.WithValue(ctx, standardFileDescriptorsKey, outputs)
}

func lastCommandProcessState(ctx context.Context) (*os.ProcessState, error) {
	return contextValue[*os.ProcessState](ctx, lastCommandProcessStateKey, "last command process state")
}

func setLastCommandStatus(ctx context.Context, state *os.ProcessState) context.Context {
	return context.WithValue(ctx, lastCommandProcessStateKey, state)
}
