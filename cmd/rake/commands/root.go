// Package commands implements the command line interface of rake.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/rake/internal/app"
	"go.trai.ch/rake/internal/build"
)

// CLI represents the command line interface for rake.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "rake [flags] [tasks...]",
		Short:         "Run tasks from a Rakefile",
		Long:          "rake reads a Rakefile and runs the requested tasks, or the default task when none is given.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate("rake, version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.StringP("rakefile", "f", "", "Use `FILE` as the rakefile")
	flags.BoolP("quiet", "q", false, "Do not echo commands or print puts output")
	flags.BoolP("exit-codes", "e", false, "Report the exit code of every shell command")
	flags.BoolP("ignore-failures", "i", false, "Keep going when a shell command exits nonzero")
	flags.BoolP("dry-run", "n", false, "Print the tasks that would run without running them")
	flags.BoolP("tasks", "T", false, "List the tasks defined in the rakefile")
	flags.BoolP("trace", "t", false, "Print debug output")

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	rakefile, _ := flags.GetString("rakefile")
	quiet, _ := flags.GetBool("quiet")
	exitCodes, _ := flags.GetBool("exit-codes")
	ignoreFailures, _ := flags.GetBool("ignore-failures")
	dryRun, _ := flags.GetBool("dry-run")
	listTasks, _ := flags.GetBool("tasks")
	trace, _ := flags.GetBool("trace")

	opts := app.RunOptions{
		Rakefile:       rakefile,
		Quiet:          quiet,
		ExitCodes:      exitCodes,
		IgnoreFailures: ignoreFailures,
		DryRun:         dryRun,
		Trace:          trace,
	}

	if listTasks {
		return c.app.ListTasks(opts)
	}
	return c.app.Run(cmd.Context(), args, opts)
}
