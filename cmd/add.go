package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

func (a *app) newAddCmd() *cobra.Command {
	var (
		loc      location.Location
		priority errands.Priority
	)
	cmd := &cobra.Command{
		Use:   "add <errand>",
		Short: "Adds an item to the errands list",
		Long:  "Append an errand to a priority bucket. Without -p the errand goes to Routine.",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errand := args[0]
			a.logger.Info("Adding errand", "errand", errand)
			a.logger.Debug("Add options", "location", loc, "priority", priority)

			return a.locator.Edit(cmd.Context(), loc, func(l *errands.List) error {
				p, err := l.Add(errand, priority)
				if err != nil {
					return err
				}
				a.logger.Debug("Added errand", "priority", p)
				return nil
			})
		},
	}
	addLocationFlag(cmd.Flags(), &loc)
	addPriorityFlag(cmd.Flags(), &priority, "Priority bucket, default Routine")
	return cmd
}
