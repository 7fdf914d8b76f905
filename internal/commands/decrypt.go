package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/imgenc/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] encryptedPath key outputPath",
		Aliases: []string{"dec"},
		Short:   "Decrypt a file",
		Args:    cobra.MinimumNArgs(3), //nolint:mnd
		PreRunE: preRun(cfg, config.Decrypt),
		RunE:    run(cfg),
	}

	// Keys and output paths may start with "-": flags are only read before the encrypted path.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
