package commands

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"
	"gopkg.in/yaml.v3"

	"github.com/ucsc-xena/xena-gdc/internal/commands/flags"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type UpdateLock struct {
	Options struct {
		flags.Standard

		Version string `short:"v" long:"version" description:"data release version to lock; defaults to the latest release on the portal"`
		DryRun  bool   `long:"dry-run" description:"print the updated lock instead of writing it"`
	}
	FS                      billy.Filesystem
	MultiFileSourceProvider MultiFileSourceProvider
	Portal                  GDCPortal
	Logger                  *log.Logger
}

func (update UpdateLock) Execute(args []string) error {
	_, err := flags.LoadWithDefaultFilePaths(&update.Options, args, update.FS.Stat)
	if err != nil {
		return err
	}

	spec, lock, err := update.Options.Standard.LoadXenafiles(update.FS, nil)
	if err != nil {
		return fmt.Errorf("error loading Xenafiles: %w", err)
	}

	ctx := context.Background()

	var target *semver.Version
	if trimmedInputVersion := strings.TrimSpace(update.Options.Version); trimmedInputVersion != "" {
		target, err = semver.NewVersion(trimmedInputVersion)
		if err != nil {
			return fmt.Errorf("please enter a valid data release version to update to: %w", err)
		}
	} else {
		status, err := update.Portal.Status(ctx)
		if err != nil {
			return fmt.Errorf("error fetching portal status: %w", err)
		}
		target, err = status.DataReleaseVersion()
		if err != nil {
			return err
		}
	}

	releaseVersionConstraint, err := spec.DataReleaseConstraint()
	if err != nil {
		return err
	}

	if !releaseVersionConstraint.Check(target) {
		update.Logger.Println("Latest data release does not satisfy the data_release constraint in Xenafile. Nothing to update.")
		return nil
	}

	currentDataRelease, _ := semver.NewVersion(lock.DataRelease)
	if currentDataRelease != nil && currentDataRelease.Equal(target) {
		update.Logger.Println("Data release is up-to-date. Nothing to update.")
		return nil
	}

	fileSource := update.MultiFileSourceProvider(spec)

	var files []xenafile.FileLock
	for _, dataset := range spec.Datasets {
		update.Logger.Printf("Resolving dataset %q against data release %s...", dataset.Name, target.Original())

		resolved, err := fileSource.ResolveFiles(ctx, dataset)
		if err != nil {
			return fmt.Errorf("while resolving dataset %q, encountered error: %w", dataset.Name, err)
		}

		files = append(files, resolved...)
	}

	updated := xenafile.XenafileLock{
		DataRelease: target.Original(),
		Files:       files,
	}
	updated.SortFiles()

	if update.Options.DryRun {
		buf, err := yaml.Marshal(updated)
		if err != nil {
			return err
		}
		update.Logger.Printf("would update %s to:\n%s", update.Options.XenafileLockPath(), buf)
		return nil
	}

	err = update.Options.Standard.SaveXenafileLock(update.FS, updated)
	if err != nil {
		return err
	}

	update.Logger.Println("Finished updating Xenafile.lock")
	return nil
}

func (update UpdateLock) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Updates the data release and locked file information in Xenafile.lock",
		ShortDescription: "updates data release and file information in Xenafile.lock",
		Flags:            update.Options,
	}
}
