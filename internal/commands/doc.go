// Package commands provides the command-line interface for the imgenc tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//
// Every invocation prints exactly one JSON object on standard output.
// Flags are bound to the configuration through cobra and viper.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/imgenc/internal/config"
	"github.com/idelchi/imgenc/internal/encryption"
	"github.com/idelchi/imgenc/internal/logic"
)

// preRun returns a PreRunE handler that binds flags and positional args into cfg
// and validates the configuration.
func preRun(cfg *config.Config, operation string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		flags := viper.New()

		if err := flags.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := flags.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Operation = operation
		cfg.Input = args[0]
		cfg.Key = args[1]

		if operation == config.Decrypt {
			cfg.Output = args[2]
		}

		return cfg.Validate()
	}
}

// run executes the operation held in cfg.
func run(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return logic.Run(cfg, cmd.OutOrStdout(), logic.NewLogger(cmd.ErrOrStderr(), cfg.Verbose))
	}
}

// Execute runs the command line with args and returns the process exit code.
// Errors that were not already reported as a JSON result are reported here.
func Execute(version string, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(&config.Config{}, version)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()

	switch {
	case err == nil:
		return 0
	case errors.Is(err, logic.ErrReported):
		return 1
	}

	if err := logic.Report(stdout, encryption.Failure(err)); err != nil {
		fmt.Fprintf(stderr, "Error reporting failure: %v\n", err)
	}

	return 1
}
