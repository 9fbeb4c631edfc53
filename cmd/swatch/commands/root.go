// Package commands implements the CLI commands for swatch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/app"
	"go.trai.ch/swatch/internal/build"
	"go.trai.ch/swatch/internal/core/domain"
)

// CLI represents the command line interface for swatch.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, url string, opts app.ResolveOptions) error
	ResolveList(ctx context.Context, list string, opts app.ListOptions) error
	Watch(ctx context.Context, urls []string, opts app.WatchOptions) error
	Clean(ctx context.Context, configPath string) error
	SetLogging(json, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Compile stylesheets on demand and serve them from a content-addressed cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log cache decisions")
	rootCmd.PersistentFlags().StringToString("var", nil, "Extra stylesheet variable as name=value (repeatable)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		json, _ := cmd.Flags().GetBool("log-json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		a.SetLogging(json, verbose)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newResolveListCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func commonOptions(cmd *cobra.Command) app.CommonOptions {
	config, _ := cmd.Flags().GetString("config")
	vars, _ := cmd.Flags().GetStringToString("var")
	return app.CommonOptions{Config: config, Vars: vars}
}
