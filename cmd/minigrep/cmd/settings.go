package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/configs"
)

// runSettings prints either the example template or the effective settings.
func runSettings(cmd *cobra.Command, opts rootOptions) error {
	if opts.exampleSettings {
		_, err := fmt.Fprint(cmd.OutOrStdout(), configs.SettingsTemplate)
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := settings.YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
