package commands

import (
	"io"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run *RunCommand
}

// NewCommands creates all commands with their output streams
func NewCommands(stdout, stderr io.Writer) *Commands {
	return &Commands{
		Run: NewRunCommand(stdout, stderr),
	}
}

// Register wires the commands into the root command. fsrun has no
// subcommands; the root command runs the suite.
func (c *Commands) Register(rootCmd *cobra.Command) {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.Run.Execute
}

// NewRootCommand builds the fsrun command line
func NewRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsrun <executable-path> <test-directory>",
		Short: "Regression test runner for file_sets",
		Long: `Runs every *.t file in the test directory. Each test line names an expected
results file and a file_sets expression; the tool is invoked once per line
and its output must match the expected file byte for byte. The first failure
stops the run with exit status 1.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	NewCommands(stdout, stderr).Register(rootCmd)
	return rootCmd
}
