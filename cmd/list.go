package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

func (a *app) newListCmd() *cobra.Command {
	var (
		loc  location.Location
		opts errands.ListOptions
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists errands",
		Long: `Print errands one per line, colored by priority.

Errands are selected from one bucket (-p) or all of them, ordered, filtered
by the ignore pattern and cut to the first --count items.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("count") {
				if opts.Count < 0 {
					return usageErrorf("count must not be negative")
				}
				opts.Limited = true
			}
			a.logger.Info("Printing errands")
			a.logger.Debug("List options",
				"location", loc, "ignore", opts.Ignore, "order", opts.Order,
				"priority", opts.Priority, "count", opts.Count, "limited", opts.Limited)

			l, _, err := a.locator.Open(loc)
			if err != nil {
				return err
			}
			items, err := l.Query(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, item := range items {
				fmt.Fprintln(out, a.styles.Item(item))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	addLocationFlag(flags, &loc)
	flags.StringVarP(&opts.Ignore, "ignore", "i", "", "Skip errands matching this regular expression")
	flags.VarP(orderValue{&opts.Order}, "order", "o", "Order (descending|ascending|random)")
	addPriorityFlag(flags, &opts.Priority, "Only list this priority")
	flags.IntVarP(&opts.Count, "count", "c", 0, "Print at most this many errands")
	return cmd
}

// noArgs is cobra.NoArgs reporting a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}
