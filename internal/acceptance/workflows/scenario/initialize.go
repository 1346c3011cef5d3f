package scenario

import (
	"context"
	"regexp"

	"github.com/cucumber/godog"
)

// scenarioContext is based on *godog.ScenarioContext
type scenarioContext interface {
	Step(expr, stepFunc any)
	Before(h godog.BeforeScenarioHook)
	After(h godog.AfterScenarioHook)
}

// scenarioContext exposes the subset of methods on *godog.ScenarioContext that we use.
// It is here because we want to have a bit of testing for the initialize functions.
var _ scenarioContext = (*godog.ScenarioContext)(nil)

func InitializeExec(ctx *godog.ScenarioContext) { initializeExec(ctx) }
func initializeExec(ctx scenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return configureStandardFileDescriptors(ctx), nil
	})
	ctx.Step(regexp.MustCompile(`^(stdout|stderr|"[^"]*") contains substring: (.*)`), outputContainsSubstring)
	ctx.Step(regexp.MustCompile(`^the exit code is (\d+)$`), theExitCodeIs)
}

func InitializeHelp(ctx *godog.ScenarioContext) { initializeHelp(ctx) }
func initializeHelp(ctx scenarioContext) {
	ctx.Step(regexp.MustCompile(`^I (try to )?invoke xena-gdc help$`), iInvokeXenaGdcHelp)
	ctx.Step(regexp.MustCompile(`^I (try to )?invoke xena-gdc version$`), iInvokeXenaGdcVersion)
	ctx.Step(regexp.MustCompile(`^I (try to )?invoke xena-gdc boo-boo$`), iInvokeXenaGdcBooBoo)
	ctx.Step(regexp.MustCompile(`^I (try to )?invoke xena-gdc (\S*) --boo-boo$`), iInvokeXenaGdcCommandWithFlagBooBoo)
}

// InitializeMirrorSourceCode provides steps that stage a mirror source
// directory from testdata and inspect its Xenafiles.
//
// Most other steps require iHaveAMirrorSourceDirectory to have been run because it sets the mirror directory path on the context.
func InitializeMirrorSourceCode(ctx *godog.ScenarioContext) { initializeMirrorSourceCode(ctx) }
func initializeMirrorSourceCode(ctx scenarioContext) {
	ctx.After(removeMirrorScratchDirectory)

	ctx.Step(regexp.MustCompile(`^xena-gdc validate succeeds$`), xenaGdcValidateSucceeds)

	ctx.Step(regexp.MustCompile(`^I have a mirror source directory "([^"]*)"$`), iHaveAMirrorSourceDirectory)
	ctx.Step(regexp.MustCompile(`^the Xenafile\.lock specifies data release "([^"]*)"$`), theLockSpecifiesDataRelease)
}

func InitializeRegex(ctx *godog.ScenarioContext) { initializeRegex(ctx) }
func initializeRegex(ctx scenarioContext) {
	ctx.Step(regexp.MustCompile(`^(stdout|stderr|"[^"]*") has regexp? matches: (.*)$`), hasRegexMatches)
}

func InitializeValidate(ctx *godog.ScenarioContext) { initializeValidate(ctx) }
func initializeValidate(ctx scenarioContext) {
	ctx.Step(regexp.MustCompile(`^I (try to )?invoke xena-gdc validate$`), iInvokeXenaGdcValidate)
	ctx.Step(regexp.MustCompile(`^I (try to )?invoke xena-gdc test --dry-run$`), iInvokeXenaGdcTestDryRun)
}
