package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/adapters/watcher"
	"go.trai.ch/swatch/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <url>...",
		Short: "Recompile stylesheets whenever their sources change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), args, app.WatchOptions{
				CommonOptions: commonOptions(cmd),
				Debounce:      debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period before a burst of changes triggers a rebuild")
	return cmd
}
