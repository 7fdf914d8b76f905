package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/imgenc/internal/config"
)

var (
	// ErrInvalidArguments is returned when no operation is given.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrInvalidOperation is returned for an unknown operation.
	ErrInvalidOperation = errors.New("invalid operation")
)

// NewRootCommand creates the root command with common configuration.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "imgenc [flags] command [flags]",
		Short: "Image encryption utility",
		Long: `An image encryption utility using AES-256 in CBC mode with a passphrase.
Encrypted files hold the random IV followed by the ciphertext.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrInvalidArguments
			}

			return fmt.Errorf("%w: %q", ErrInvalidOperation, args[0])
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to standard error")
	root.PersistentFlags().String("max-size", "", "Reject input files larger than this size (e.g. 10MiB)")
	root.PersistentFlags().Bool("images-only", false, "Only encrypt JPEG, PNG, GIF and BMP files")
	root.PersistentFlags().Int("min-key-length", 0, "Reject keys shorter than this many characters")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}
