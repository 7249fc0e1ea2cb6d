// Package configs embeds the example settings file shipped with minigrep.
//
// Settings precedence (see internal/config LoadSettings):
//  1. Hardcoded defaults (config.NewSettings)
//  2. User settings (~/.config/minigrep/config.yaml)
//  3. Project settings (.minigrep.yaml)
//  4. Environment variables (MINIGREP_*)
package configs

import _ "embed"

// SettingsTemplate is printed by `minigrep --example-settings`.
//
//go:embed settings.example.yaml
var SettingsTemplate string
