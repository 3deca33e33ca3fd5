package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-iconforge/config"
	"github.com/nvr-ai/go-iconforge/images"
	"github.com/nvr-ai/go-iconforge/logging"
	"github.com/nvr-ai/go-iconforge/profiler"
)

// app holds the state shared by every subcommand once the root has parsed
// its persistent flags.
type app struct {
	configPath string
	logLevel   string
	timings    bool

	cfg      *config.Config
	logger   hclog.Logger
	profiler *profiler.Profiler
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "iconforge",
		Short:   "Generate web app icons and slice composite images",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to the YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.timings, "timings", false, "Print stage timings when done")

	root.AddCommand(newIconsCmd(a), newSliceCmd(a))

	return root
}

// setup loads the config file and builds the logger and profiler.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = logging.NewLogger("iconforge", logging.GetLogLevel(a.logLevel), cmd.ErrOrStderr())

	cfg, err := config.LoadOptional(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "path", a.configPath)

	if a.timings {
		a.profiler = profiler.New()
	}
	return nil
}

// fail prints the user-facing diagnostic for err and returns it so the
// process exits non-zero. Cobra's own error printing is silenced because the
// message has already been shown.
func (a *app) fail(cmd *cobra.Command, err error, source, hint string) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	switch errors.Cause(err) {
	case images.ErrSourceNotFound:
		fmt.Fprintf(out, "❌ Error: could not find '%s'\n", source)
		if hint != "" {
			fmt.Fprintf(out, "   %s\n", hint)
		}
	case images.ErrDecode:
		fmt.Fprintf(out, "❌ Error opening image: %v\n", err)
	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		a.logger.Error("run failed", "error", err)
	}
	return err
}
