package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chapman178/om-Aviary/pkg/runtime/terminal/commands"
	"github.com/chapman178/om-Aviary/pkg/services/report"
)

// CLI represents the command-line interface
type CLI struct {
	registry report.Registry
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry report.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aviary-reports",
		Short: "Trajectory report generation tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewPhasesCmd(cli.output))
	cmd.AddCommand(commands.NewListCmd(cli.registry, cli.output))

	return cmd
}
