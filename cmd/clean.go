package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

func (a *app) newCleanCmd() *cobra.Command {
	var (
		loc      location.Location
		priority errands.Priority
	)
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Cleans errands list",
		Long: `Drop a priority bucket (-p) or every bucket, contents included. Adding to a
dropped priority brings its bucket back.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("Cleaning errands")
			a.logger.Debug("Clean options", "location", loc, "priority", priority)

			return a.locator.Edit(cmd.Context(), loc, func(l *errands.List) error {
				return l.Clean(priority)
			})
		},
	}
	addLocationFlag(cmd.Flags(), &loc)
	addPriorityFlag(cmd.Flags(), &priority, "Only clean this priority")
	return cmd
}
