package scenario

import (
	"context"
)

const successfullyFlagValue = "try to "

type tryFlag string

func (f tryFlag) isSet() bool {
	return f == successfullyFlagValue
}

func (f tryFlag) requireSuccess() bool {
	return !f.isSet()
}

func iInvokeXenaGdcHelp(ctx context.Context, try string) (context.Context, error) {
	cmd := xenaGdcCommand(ctx, "help")
	cmd.Dir = commandDirectory(ctx)
	return runAndLogOnError(ctx, cmd, tryFlag(try).requireSuccess())
}

func iInvokeXenaGdcVersion(ctx context.Context, try string) (context.Context, error) {
	cmd := xenaGdcCommand(ctx, "version")
	cmd.Dir = commandDirectory(ctx)
	return runAndLogOnError(ctx, cmd, tryFlag(try).requireSuccess())
}

func iInvokeXenaGdcBooBoo(ctx context.Context, try string) (context.Context, error) {
	cmd := xenaGdcCommand(ctx, "boo-boo")
	cmd.Dir = commandDirectory(ctx)
	return runAndLogOnError(ctx, cmd, tryFlag(try).requireSuccess())
}

func iInvokeXenaGdcCommandWithFlagBooBoo(ctx context.Context, try, command string) (context.Context, error) {
	cmd := xenaGdcCommand(ctx, command, "--boo-boo")
	cmd.Dir = commandDirectory(ctx)
	return runAndLogOnError(ctx, cmd, tryFlag(try).requireSuccess())
}

func iInvokeXenaGdcValidate(ctx context.Context, try string) (context.Context, error) {
	repoPath, err := mirrorDirectory(ctx)
	if err != nil {
		return ctx, err
	}
	cmd := xenaGdcCommand(ctx, "validate")
	cmd.Dir = repoPath
	return runAndLogOnError(ctx, cmd, tryFlag(try).requireSuccess())
}

func iInvokeXenaGdcTestDryRun(ctx context.Context, try string) (context.Context, error) {
	repoPath, err := mirrorDirectory(ctx)
	if err != nil {
		return ctx, err
	}
	cmd := xenaGdcCommand(ctx, "test", "--dry-run")
	cmd.Dir = repoPath
	return runAndLogOnError(ctx, cmd, tryFlag(try).requireSuccess())
}
