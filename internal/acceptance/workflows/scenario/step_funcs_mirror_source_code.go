package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"
)

// iHaveAMirrorSourceDirectory copies a testdata fixture into a scratch
// directory so steps can rewrite Xenafiles without dirtying the checkout.
// The scratch directory stays inside the module so go run still resolves
// the main package.
func iHaveAMirrorSourceDirectory(ctx context.Context, name string) (context.Context, error) {
	scratch, err := os.MkdirTemp(".", "_mirror_scratch_")
	if err != nil {
		return ctx, err
	}
	if err := copyDirectory(scratch, filepath.Join("testdata", name)); err != nil {
		return ctx, err
	}
	return setMirrorDirectory(ctx, scratch), nil
}

func removeMirrorScratchDirectory(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
	dir, dirErr := mirrorDirectory(ctx)
	if dirErr != nil {
		return ctx, err
	}
	if removeErr := os.RemoveAll(dir); removeErr != nil && err == nil {
		err = removeErr
	}
	return ctx, err
}

func xenaGdcValidateSucceeds(ctx context.Context) (context.Context, error) {
	repoPath, err := mirrorDirectory(ctx)
	if err != nil {
		return ctx, err
	}
	cmd := xenaGdcCommand(ctx, "validate")
	cmd.Dir = repoPath
	return runAndLogOnError(ctx, cmd, true)
}

func theLockSpecifiesDataRelease(ctx context.Context, version string) error {
	lockPath, err := xenafileLockPath(ctx)
	if err != nil {
		return err
	}
	var lock struct {
		DataRelease string `yaml:"data_release"`
	}
	if err := loadFileAsYAML(lockPath, &lock); err != nil {
		return err
	}
	if lock.DataRelease != version {
		return fmt.Errorf("expected data release %q but the lock has %q", version, lock.DataRelease)
	}
	return nil
}
