package scenario

import (
	"bytes"
	"context"
	"fmt"
)

func outputContainsSubstring(ctx context.Context, outputName, substring string) error {
	out, err := output(ctx, outputName)
	if err != nil {
		return err
	}
	if !bytes.Contains(out.Bytes(), []byte(substring)) {
		return fmt.Errorf("expected substring %q not found in:\n\n%s\n\n", substring, out.String())
	}
	return nil
}

func theExitCodeIs(ctx context.Context, code int) error {
	state, err := lastCommandProcessState(ctx)
	if err != nil {
		return err
	}
	if state.ExitCode() != code {
		return fmt.Errorf("expected exit code %d but got %d", code, state.ExitCode())
	}
	return nil
}
