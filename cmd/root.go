// Package cmd implements the errands command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bdreece/errands/internal/config"
	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/logging"
	"github.com/bdreece/errands/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the errands CLI with the process's standard streams.
func Run(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

// app carries state shared by every subcommand for one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	// Extra config options, used by tests to isolate directories.
	configOpts []config.Option

	verbose   int
	noColor   bool
	logFormat string

	sources *config.ConfigWithSources
	cfg     *config.Config
	logger  *log.Logger
	locator *errands.Locator
	styles  *ui.Styles
}

func execute(ctx context.Context, args []string, out, errOut io.Writer, opts ...config.Option) error {
	a := &app{out: out, errOut: errOut, configOpts: opts}
	root := a.newRootCmd()
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "errands",
		Short: "A to-do list terminal prompt",
		Long: `errands keeps short to-do items in priority buckets, stored in a YAML file
in the current directory, the user config directory, or /etc.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              rootArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetVersionTemplate("errands {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	flags := root.PersistentFlags()
	flags.CountVarP(&a.verbose, "verbose", "v", "Increase tracing (-v info, -vv debug)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format (text|json|logfmt)")

	root.AddCommand(
		a.newInitCmd(),
		a.newAddCmd(),
		a.newListCmd(),
		a.newRmCmd(),
		a.newCleanCmd(),
		a.newViewCmd(),
		a.newDoctorCmd(),
		newVersionCmd(),
	)
	return root
}

// rootArgs rejects anything that is not a subcommand.
func rootArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unknown command %q", args[0])
	}
	return nil
}

// setup loads config and builds the logger, locator and styles.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := append([]config.Option{}, a.configOpts...)
	flags := cmd.Flags()
	if flags.Changed("no-color") && a.noColor {
		opts = append(opts, config.WithOverride("color", func(c *config.Config) { c.Color = false }))
	}
	if flags.Changed("log-format") {
		format := a.logFormat
		opts = append(opts, config.WithOverride("log_format", func(c *config.Config) { c.LogFormat = format }))
	}

	cws, err := config.LoadWithSources(opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.sources = cws
	a.cfg = cws.Config
	a.logger = logging.FromConfig(a.errOut, a.cfg, a.verbose)
	a.locator = errands.NewLocator(a.cfg.Paths(), a.logger)
	a.styles = ui.NewStyles(a.out, a.cfg.PriorityColors(), a.cfg.Color)

	if files := cws.Files; len(files) > 0 {
		a.logger.Debug("Loaded config", "files", files)
	}
	return nil
}
