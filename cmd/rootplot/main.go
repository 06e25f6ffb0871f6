// Package main provides the rootplot command line: efficiency, histogram and
// multi-histogram plots from JSON, CSV or XLSX input, plus batch rendering.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nzipper/root-plotting/src/input"
	"github.com/nzipper/root-plotting/src/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	sheet      string
	cfg        *input.FileConfig
	out        io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	rootCmd := &cobra.Command{
		Use:           "rootplot",
		Short:         "Efficiency and histogram comparison plots",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetOut(out)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "plot configuration file (yaml, toml or json)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.sheet, "sheet", "", "XLSX sheet to read (default: first sheet)")

	rootCmd.AddCommand(newEffCmd(a))
	rootCmd.AddCommand(newHistCmd(a))
	rootCmd.AddCommand(newMultiCmd(a))
	rootCmd.AddCommand(newIntegrateCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	return rootCmd
}

// setup loads the configuration file and applies the log level. The flag wins
// over the file and the environment.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := input.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	if !logging.SetLogLevel(level) {
		return fmt.Errorf("invalid log level %q", level)
	}
	logging.Debugf("config %q loaded, level %s, workers %d", a.configPath, logging.GetLogLevel(), cfg.Workers)
	return nil
}
