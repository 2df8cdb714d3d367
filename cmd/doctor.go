package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/config"
	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

// errDoctor reports that doctor found at least one broken list.
var errDoctor = errors.New("doctor found problems")

func (a *app) newDoctorCmd() *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Checks configuration and list files",
		Long: `Print where each configuration value came from, every candidate list
location, and whether the list files there are valid.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if example {
				fmt.Fprint(out, config.ExampleConfig())
				return nil
			}
			return a.doctor(out)
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Print an example config file and exit")
	return cmd
}

func (a *app) doctor(out io.Writer) error {
	fmt.Fprintln(out, "Errands Doctor")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Config files:")
	if len(a.sources.Files) == 0 {
		fmt.Fprintln(out, "  (none, using defaults)")
	}
	for _, f := range a.sources.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Settings:")
	fields := make([]string, 0, len(a.sources.Sources))
	for field := range a.sources.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(out, "  %-16s %s\n", field, a.sources.Sources[field])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Lists:")
	allOK := true
	paths := a.locator.Paths()
	active, _, found := paths.Probe()
	for _, loc := range location.Candidates() {
		path := paths.Path(loc)
		marker := " "
		if found && loc == active {
			marker = "*"
		}
		status := checkList(path)
		if status.err != nil {
			allOK = false
		}
		fmt.Fprintf(out, "%s %-7s %s\n", marker, loc, path)
		fmt.Fprintf(out, "    %s\n", status)
	}
	fmt.Fprintln(out)

	if !found {
		fmt.Fprintln(out, "No errands list found. Run 'errands init local' to create one.")
	}
	if !allOK {
		return errDoctor
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

type listStatus struct {
	missing bool
	count   int
	buckets int
	err     error
}

func (s listStatus) String() string {
	switch {
	case s.missing:
		return "missing"
	case s.err != nil:
		return "invalid: " + s.err.Error()
	default:
		return fmt.Sprintf("ok, %d errands in %d buckets", s.count, s.buckets)
	}
}

func checkList(path string) listStatus {
	if path == "" {
		return listStatus{missing: true}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return listStatus{missing: true}
	}
	l, err := errands.Load(path)
	if err != nil {
		return listStatus{err: err}
	}
	return listStatus{count: l.Len(), buckets: len(l.Present())}
}
