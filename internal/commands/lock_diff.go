package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/go-git/go-git/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/history"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type LockDiff struct {
	Options struct {
		From     string `long:"from" required:"true" description:"git revision holding the old Xenafile.lock"`
		To       string `long:"to" default:"HEAD" description:"git revision holding the new Xenafile.lock"`
		Template string `short:"t" long:"template" description:"path to a custom output template"`
	}

	pathRelativeToDotGit string
	Repository           *git.Repository
	ReadFile             func(fp string) ([]byte, error)
	LockAtRef            HistoricLockFunc
	io.Writer
}

//counterfeiter:generate -o ./fakes/historic_lock_func.go --fake-name HistoricLockFunc . HistoricLockFunc

type HistoricLockFunc func(repo *git.Repository, ref, path string) (xenafile.XenafileLock, error)

func NewLockDiffCommand() LockDiff {
	return LockDiff{
		ReadFile:  os.ReadFile,
		LockAtRef: history.LockAtRef,
		Writer:    os.Stdout,
	}
}

func (command LockDiff) Execute(args []string) error {
	_, err := jhanda.Parse(&command.Options, args)
	if err != nil {
		return err
	}

	// The repository is opened here rather than in the constructor so
	// that the other commands keep working outside a git checkout.
	if command.Repository == nil {
		repo, relativePath, err := openRepositoryAtWorkingDirectory()
		if err != nil {
			return fmt.Errorf("could not open the git repository: %w", err)
		}
		command.Repository = repo
		command.pathRelativeToDotGit = relativePath
	}

	from, err := command.LockAtRef(command.Repository, command.Options.From, command.pathRelativeToDotGit)
	if err != nil {
		return fmt.Errorf("failed to read the lock at %s: %w", command.Options.From, err)
	}
	to, err := command.LockAtRef(command.Repository, command.Options.To, command.pathRelativeToDotGit)
	if err != nil {
		return fmt.Errorf("failed to read the lock at %s: %w", command.Options.To, err)
	}

	diffTemplate := history.DefaultDiffTemplate()
	if command.Options.Template != "" {
		buf, err := command.ReadFile(command.Options.Template)
		if err != nil {
			return fmt.Errorf("failed to read the template: %w", err)
		}
		diffTemplate = string(buf)
	}

	t, err := history.DefaultTemplateFuncs(template.New("lock-diff")).Parse(diffTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse the template: %w", err)
	}

	return t.Execute(command.Writer, history.DiffLocks(from, to))
}

func openRepositoryAtWorkingDirectory() (*git.Repository, string, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, "", err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	relativePath, err := filepath.Rel(wt.Filesystem.Root(), wd)
	if err != nil {
		return nil, "", err
	}
	return repo, relativePath, nil
}

func (command LockDiff) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Prints a summary of how the Xenafile.lock changed between two git revisions",
		ShortDescription: "shows Xenafile.lock changes between revisions",
		Flags:            command.Options,
	}
}
