package main

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	"github.com/ucsc-xena/xena-gdc/internal/gdc"
	"github.com/ucsc-xena/xena-gdc/internal/pipeline"
	"github.com/ucsc-xena/xena-gdc/internal/source"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var version = "unknown"

func main() {
	errLogger := log.New(os.Stderr, "", 0)
	outLogger := log.New(os.Stdout, "", 0)

	var global struct {
		Help    bool `short:"h" long:"help"    description:"prints this usage information"       default:"false"`
		Version bool `short:"v" long:"version" description:"prints the xena-gdc release version" default:"false"`
	}

	args, err := jhanda.Parse(&global, os.Args[1:])
	if err != nil {
		errLogger.Fatal(err)
	}

	globalFlagsUsage, err := jhanda.PrintUsage(global)
	if err != nil {
		errLogger.Fatal(err)
	}

	var command string
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if global.Version {
		command = "version"
	}

	if global.Help {
		command = "help"
	}

	if command == "" {
		command = "help"
	}

	fs := osfs.New("")

	portal := gdc.Service{Token: os.Getenv("GDC_TOKEN")}

	multiFileSourceProvider := func(spec xenafile.Xenafile) source.MultiFileSource {
		return source.NewSourceList(spec, outLogger)
	}
	fileUploaderFinder := func(spec xenafile.Xenafile, sourceID string) (source.FileUploader, error) {
		return source.NewSourceList(spec, outLogger).FindUploader(sourceID)
	}

	commandSet := jhanda.CommandSet{}
	commandSet["help"] = commands.NewHelp(os.Stdout, globalFlagsUsage, commandSet, map[string][]string{
		"info commands":         {"help", "version"},
		"portal commands":       {"list-projects", "find-files", "label-files", "export-cases"},
		"xenafile commands":     {"update-lock", "lock-diff"},
		"data commands":         {"fetch", "upload-mirror"},
		"verification commands": {"validate", "test"},
	})
	commandSet["version"] = commands.NewVersion(outLogger, version)
	commandSet["validate"] = commands.NewValidate(fs)
	commandSet["fetch"] = commands.NewFetch(outLogger, multiFileSourceProvider, source.NewLocalDataDirectory(outLogger))
	commandSet["upload-mirror"] = commands.UploadMirror{
		FS:                 fs,
		FileUploaderFinder: fileUploaderFinder,
		Logger:             outLogger,
	}
	commandSet["update-lock"] = commands.UpdateLock{
		FS:                      fs,
		MultiFileSourceProvider: multiFileSourceProvider,
		Portal:                  portal,
		Logger:                  outLogger,
	}
	commandSet["lock-diff"] = commands.NewLockDiffCommand()
	commandSet["list-projects"] = commands.NewListProjects(outLogger, portal)
	commandSet["find-files"] = commands.NewFindFiles(outLogger, portal)
	commandSet["label-files"] = commands.NewLabelFiles(outLogger, portal)
	commandSet["export-cases"] = commands.NewExportCases(outLogger, portal)
	commandSet["test"] = commands.Test{
		FS:          fs,
		RunPipeline: pipeline.Execute,
		Logger:      outLogger,
	}

	err = commandSet.Execute(command, args)
	if err != nil {
		errLogger.Fatal(err)
	}
}
