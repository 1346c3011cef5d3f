package commands_test

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pivotal-cf/jhanda"

	"github.com/ucsc-xena/xena-gdc/internal/commands"
	"github.com/ucsc-xena/xena-gdc/internal/commands/fakes"
)

var _ = Describe("Help", func() {
	var (
		output     *bytes.Buffer
		commandSet jhanda.CommandSet
	)

	BeforeEach(func() {
		output = &bytes.Buffer{}

		mirrorCommand := new(fakes.Command)
		mirrorCommand.UsageReturns(jhanda.Usage{
			Description:      "This command mirrors things.",
			ShortDescription: "mirrors things",
			Flags: struct {
				Mirror string `short:"m" long:"mirror" description:"mirror to pull from"`
			}{},
		})

		commandSet = jhanda.CommandSet{}
		commandSet["version"] = commands.NewVersion(log.New(output, "", 0), "0.0.0")
		commandSet["mirror"] = mirrorCommand
	})

	Describe("Execute", func() {
		When("no command is given", func() {
			It("prints the command list grouped and padded", func() {
				help := commands.NewHelp(output, "--flag  global flag", commandSet, map[string][]string{
					"info commands": {"version", "help"},
				})
				commandSet["help"] = help

				err := help.Execute(nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(Equal("xena-gdc mirrors Genomic Data Commons files into UCSC Xena datasets\n" +
					"\n" +
					"Usage: xena-gdc [options] <command> [<args>]\n" +
					"  --flag  global flag\n" +
					"\n" +
					"info commands:\n" +
					"  help     prints this usage information\n" +
					"  version  prints the xena-gdc release version\n" +
					"\n"))
			})

			It("prints groups in a stable order", func() {
				help := commands.NewHelp(output, "--flag  global flag", commandSet, map[string][]string{
					"portal commands": {"mirror"},
					"info commands":   {"version"},
				})

				err := help.Execute(nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(ContainSubstring("info commands:\n" +
					"  version  prints the xena-gdc release version\n" +
					"\n" +
					"portal commands:\n" +
					"  mirror  mirrors things\n"))
			})
		})

		When("a command name is given", func() {
			It("prints the usage for that command", func() {
				help := commands.NewHelp(output, "--flag  global flag", commandSet, nil)

				err := help.Execute([]string{"version"})
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(Equal("\nxena-gdc version\n" +
					"\n" +
					"This command prints the xena-gdc release version number.\n" +
					"\n" +
					"Usage: xena-gdc [options] version\n" +
					"  --flag  global flag\n" +
					"\n" +
					"Flags\n" +
					"\n"))
			})

			It("lists the command flags", func() {
				help := commands.NewHelp(output, "--flag  global flag", commandSet, nil)

				err := help.Execute([]string{"mirror"})
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(ContainSubstring("Usage: xena-gdc [options] mirror [<args>]"))
				Expect(output.String()).To(ContainSubstring("--mirror"))
			})

			It("errors when the command is unknown", func() {
				help := commands.NewHelp(output, "", commandSet, nil)

				err := help.Execute([]string{"bananas"})
				Expect(err).To(MatchError(ContainSubstring("bananas")))
			})
		})
	})

	Describe("Usage", func() {
		It("returns usage information for the command", func() {
			help := commands.NewHelp(nil, "", nil, nil)
			Expect(help.Usage()).To(Equal(jhanda.Usage{
				Description:      "This command prints helpful usage information.",
				ShortDescription: "prints this usage information",
			}))
		})
	})
})
