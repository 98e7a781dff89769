package cli

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/passvault/internal/vault/app"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Starts the vault API. The process exits with an error if any key
material or setting is invalid; it never starts with a partial config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}
