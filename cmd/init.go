package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/location"
)

func (a *app) newInitCmd() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:       "init <local|user|global>",
		Short:     "Initializes errands list",
		Long:      "Write an empty errands list with every priority bucket at the given location, replacing any list already there.",
		ValidArgs: []string{"local", "user", "global"},
		Args:      exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := location.Parse(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			if loc == location.Auto {
				return usageErrorf("init requires a location: local, user or global")
			}
			a.logger.Info("Initializing errands", "location", loc)

			if parents {
				dir := filepath.Dir(a.locator.Paths().Path(loc))
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create list directory: %w", err)
				}
			}
			_, path, err := a.locator.Create(loc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized errands list in %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&parents, "parents", false, "Create missing parent directories")
	return cmd
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
