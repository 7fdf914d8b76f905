package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/imgenc/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] imagePath key",
		Aliases: []string{"enc"},
		Short:   "Encrypt a file into <name>_encrypted.<ext>",
		Args:    cobra.MinimumNArgs(2), //nolint:mnd
		PreRunE: preRun(cfg, config.Encrypt),
		RunE:    run(cfg),
	}

	// Keys may start with "-": flags are only read before the image path.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
