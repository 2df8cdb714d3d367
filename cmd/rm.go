package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

func (a *app) newRmCmd() *cobra.Command {
	var (
		loc      location.Location
		priority errands.Priority
	)
	cmd := &cobra.Command{
		Use:   "rm <errand>...",
		Short: "Removes errand(s)",
		Long: `Remove every errand exactly equal to one of the arguments, from one bucket
(-p) or from all of them. Unknown errands are ignored.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("Removing errands", "errands", args)
			a.logger.Debug("Remove options", "location", loc, "priority", priority)

			return a.locator.Edit(cmd.Context(), loc, func(l *errands.List) error {
				n, err := l.Remove(priority, args)
				if err != nil {
					return err
				}
				a.logger.Debug("Removed errands", "count", n)
				return nil
			})
		},
	}
	addLocationFlag(cmd.Flags(), &loc)
	addPriorityFlag(cmd.Flags(), &priority, "Only remove from this priority")
	return cmd
}
