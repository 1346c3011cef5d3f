package commands_test

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	commandsFakes "github.com/ucsc-xena/xena-gdc/internal/commands/fakes"
	"github.com/ucsc-xena/xena-gdc/internal/pipeline"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

var _ = Describe("Test", func() {
	var _ jhanda.Command = commands.Test{}
	var _ commands.PipelineRunFunction = pipeline.Execute

	// language=yaml
	const pipelineConfig = `language: python
runtimes:
  - 3.7-dev
  - "3.6"
  - "3.5"
  - "2.7"
stages:
  - test
  - lint
install:
  - pip install .[test]
script:
  - pytest tests
jobs:
  - stage: lint
    runtime: "3.6"
    install:
      - pip install flake8
    script:
      - flake8 .
    allow_failure: true
notifications:
  email: false
`

	var (
		fs          billy.Filesystem
		runPipeline *commandsFakes.PipelineRunFunction
		logBuf      *gbytes.Buffer

		testCommand commands.Test
	)

	BeforeEach(func() {
		fs = memfs.New()

		runPipeline = new(commandsFakes.PipelineRunFunction)
		runPipeline.Returns(pipeline.RunResult{
			Jobs: []pipeline.JobResult{
				{Job: pipeline.Job{ID: "test/3.6"}, Outcome: pipeline.Passed},
			},
		}, nil)

		logBuf = gbytes.NewBuffer()

		testCommand = commands.Test{
			FS:          fs,
			RunPipeline: runPipeline.Spy,
			Logger:      log.New(logBuf, "", 0),
		}

		Expect(fsWriteYAML(fs, "Xenafile", xenafile.Xenafile{
			FileSources: []xenafile.FileSourceConfig{{Type: "gdc"}},
		})).To(Succeed())
		Expect(fsWriteYAML(fs, "Xenafile.lock", xenafile.XenafileLock{})).To(Succeed())

		Expect(fsWriteString(fs, "ci.yml", pipelineConfig)).To(Succeed())
	})

	When("the pipeline config is present", func() {
		It("runs every stage of the job matrix", func() {
			err := testCommand.Execute(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(runPipeline.CallCount()).To(Equal(1))
			_, _, plan, options := runPipeline.ArgsForCall(0)

			Expect(plan.Stages).To(HaveLen(2))
			Expect(plan.Stages[0].Name).To(Equal("test"))
			Expect(plan.Stages[0].Jobs).To(HaveLen(4))
			Expect(plan.Stages[1].Name).To(Equal("lint"))
			Expect(plan.Stages[1].Jobs).To(HaveLen(1))
			Expect(plan.Stages[1].Jobs[0].AllowFailure).To(BeTrue())

			Expect(options.NoContainer).To(BeFalse())
			Expect(options.Notifications.EmailEnabled()).To(BeFalse())
			Expect(filepath.IsAbs(options.Workdir)).To(BeTrue())

			Expect(logBuf).To(gbytes.Say("Pipeline passed"))
		})

		It("passes the runner flags through", func() {
			err := testCommand.Execute([]string{
				"--no-container",
				"--fail-fast",
				"--max-in-flight", "2",
				"-e", "COVERAGE=1",
				"-e", "CI=true",
			})
			Expect(err).NotTo(HaveOccurred())

			_, _, _, options := runPipeline.ArgsForCall(0)
			Expect(options.NoContainer).To(BeTrue())
			Expect(options.FailFast).To(BeTrue())
			Expect(options.MaxInFlight).To(Equal(2))
			Expect(options.Environment).To(Equal([]string{"COVERAGE=1", "CI=true"}))
		})

		When("a stage is selected", func() {
			It("only runs that stage", func() {
				err := testCommand.Execute([]string{"--stage", "lint"})
				Expect(err).NotTo(HaveOccurred())

				_, _, plan, _ := runPipeline.ArgsForCall(0)
				Expect(plan.Stages).To(HaveLen(1))
				Expect(plan.Stages[0].Name).To(Equal("lint"))
			})
		})

		When("the selection matches nothing", func() {
			It("returns an error without running jobs", func() {
				err := testCommand.Execute([]string{"--runtime", "bananas"})
				Expect(err).To(MatchError(ContainSubstring("no jobs selected")))
				Expect(runPipeline.CallCount()).To(Equal(0))
			})
		})

		When("a required job fails", func() {
			BeforeEach(func() {
				runPipeline.Returns(pipeline.RunResult{
					Jobs: []pipeline.JobResult{
						{Job: pipeline.Job{ID: "test/2.7"}, Outcome: pipeline.Failed},
					},
				}, nil)
			})

			It("exits non-zero", func() {
				err := testCommand.Execute(nil)
				Expect(err).To(MatchError(ContainSubstring("one or more required jobs failed")))
			})
		})

		When("only an allowed job fails", func() {
			BeforeEach(func() {
				runPipeline.Returns(pipeline.RunResult{
					Jobs: []pipeline.JobResult{
						{Job: pipeline.Job{ID: "test/3.6"}, Outcome: pipeline.Passed},
						{Job: pipeline.Job{ID: "lint/3.6", AllowFailure: true}, Outcome: pipeline.FailedAllowed},
					},
				}, nil)
			})

			It("still passes", func() {
				err := testCommand.Execute(nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(logBuf).To(gbytes.Say("Pipeline passed"))
			})
		})

		When("the runner cannot start", func() {
			BeforeEach(func() {
				runPipeline.Returns(pipeline.RunResult{}, errors.New("docker daemon is not running"))
			})

			It("returns the error", func() {
				err := testCommand.Execute(nil)
				Expect(err).To(MatchError(ContainSubstring("could not run the pipeline: docker daemon is not running")))
			})
		})

		When("dry run is set", func() {
			It("describes the plan without running it", func() {
				err := testCommand.Execute([]string{"--dry-run"})
				Expect(err).NotTo(HaveOccurred())

				Expect(runPipeline.CallCount()).To(Equal(0))
				Expect(logBuf).To(gbytes.Say(`test/3.7-dev`))
				Expect(logBuf).To(gbytes.Say(`lint/3.6`))
			})
		})
	})

	When("the pipeline config is broken", func() {
		BeforeEach(func() {
			// language=yaml
			Expect(fsWriteString(fs, "ci.yml", `runtimes: ["3.6"]
stages: [test]
script: [pytest tests]
`)).To(Succeed())
		})

		It("reports the validation errors", func() {
			err := testCommand.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring(`missing required field "language"`)))
			Expect(runPipeline.CallCount()).To(Equal(0))
		})
	})

	When("there is no pipeline config", func() {
		BeforeEach(func() {
			Expect(fs.Remove("ci.yml")).To(Succeed())
		})

		It("tells the user how to add one", func() {
			err := testCommand.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring("missing pipeline config")))
		})
	})
})
