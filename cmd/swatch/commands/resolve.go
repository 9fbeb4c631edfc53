package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/app"
	"go.trai.ch/swatch/internal/engine/pipeline"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Compile a stylesheet if needed and print its cached URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, _ := cmd.Flags().GetString("handle")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Resolve(cmd.Context(), args[0], app.ResolveOptions{
				CommonOptions: commonOptions(cmd),
				Handle:        handle,
				Force:         force,
			})
		},
	}
	cmd.Flags().String("handle", "", "Cache key for the stylesheet (derived from the source path by default)")
	cmd.Flags().BoolP("force", "f", false, "Recompile even if the fingerprint is unchanged")
	return cmd
}

func (c *CLI) newResolveListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-list <list>",
		Short: "Replace every stylesheet in a delimited URL list with its cached URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, _ := cmd.Flags().GetString("sep")

			return c.app.ResolveList(cmd.Context(), args[0], app.ListOptions{
				CommonOptions: commonOptions(cmd),
				Separator:     sep,
			})
		},
	}
	cmd.Flags().String("sep", pipeline.DefaultListSeparator, "List separator")
	return cmd
}
