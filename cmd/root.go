package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ExitUsage is the exit status for missing or insufficient positional arguments.
const ExitUsage = 2

// errUsage marks errors that should exit with ExitUsage.
var errUsage = errors.New("usage error")

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "lbsim",
	Short:         "Discrete-time simulator for task placement on an elastic server pool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// exactArgs is cobra.ExactArgs with errors tagged as usage errors.
func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d argument(s) %s, got %d", errUsage, cmd.Name(), n, names, len(args))
		}
		return nil
	}
}

// exitCode maps an Execute error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		return ExitUsage
	}
	return 1
}

// Execute runs the CLI root command
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logrus.Error(err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Run 'lbsim --help' for usage.")
		}
	}
	os.Exit(exitCode(err))
}

// init sets up persistent flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}
