package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/pkg/version"
)

// runVersion prints the build line for --version.
// A version subcommand would shadow a query spelled "version".
func runVersion(cmd *cobra.Command) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
	return err
}
