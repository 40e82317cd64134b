// Package cmd implements the nodeset command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/nodeset/config"
)

type globalOptions struct {
	configPath string
	logLevel   string
	color      string

	cfg    *config.Config
	logger *logrus.Logger
}

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &globalOptions{logger: logrus.New()}
	opts.logger.SetOutput(errOut)

	root := &cobra.Command{
		Use:   "nodeset",
		Short: "Select, traverse and inspect nodes of HTML documents",
		Long: `nodeset runs node set pipelines over HTML documents.

A pipeline is a list of stages separated by "|":

  nodeset query page.html '#main | children li | closest ul'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.OutOrStdout())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides the configuration")
	flags.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")

	root.AddCommand(
		queryCmd(opts),
		submitCmd(opts),
		classifyCmd(),
	)
	return root
}

func (o *globalOptions) setup(out io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Apply(o.logger); err != nil {
		return err
	}
	o.cfg = cfg

	switch o.color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		if cfg.Color != nil {
			color.NoColor = !*cfg.Color
		} else {
			color.NoColor = !isTerminal(out)
		}
	default:
		return errors.Errorf("--color: unknown mode %q", o.color)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		return 1
	}
	return 0
}
