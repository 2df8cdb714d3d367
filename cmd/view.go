package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
	"github.com/bdreece/errands/internal/ui"
)

func (a *app) newViewCmd() *cobra.Command {
	var loc location.Location
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Shows errands in an interactive viewer",
		Long:  "Open a read-only full screen view of the list that reloads the file periodically. Requires a terminal.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			open := func() (*errands.List, string, error) {
				return a.locator.Open(loc)
			}
			interval := time.Duration(a.cfg.RefreshSeconds) * time.Second
			return ui.RunViewer(cmd.Context(), cmd.OutOrStdout(), ui.NewViewer(open, a.styles, interval))
		},
	}
	addLocationFlag(cmd.Flags(), &loc)
	return cmd
}
