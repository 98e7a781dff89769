package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/passvault/pkg/cryptox"
)

func newKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print fresh ENCRYPTION_SECRET and JWT_SECRET values",
		Long: `Generates a random AES-256 key (hex) and a random session signing
secret (base64url) in env file format. Losing ENCRYPTION_SECRET makes every
stored secret unreadable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := cryptox.GenerateCipherKey()
			if err != nil {
				return err
			}
			secret, err := cryptox.GenerateToken(cryptox.TokenSize512)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ENCRYPTION_SECRET=%s\n", key)
			fmt.Fprintf(out, "JWT_SECRET=%s\n", secret)
			return nil
		},
	}
}
