// Package cli is the passvault command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the passvault command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "passvault",
		Short: "Passvault - a multi-user credential vault server.",
		Long: `Passvault stores website credentials for many accounts. Secrets are
encrypted at rest and only ever returned to the account that owns them.

Configuration is read from the environment. Run 'passvault keygen' to
create the ENCRYPTION_SECRET and JWT_SECRET values before the first start.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newKeygenCommand())
	return root
}
