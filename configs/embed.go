// Package configs provides embedded configuration templates for indexwiz.
//
// Templates are embedded at build time with //go:embed so binary releases
// carry them too. `indexwiz config init` writes UserConfigTemplate to
// ~/.config/indexwiz/config.yaml when no file exists yet.
//
// Configuration hierarchy (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config/config.go NewConfig())
//  2. Config file (--config or ~/.config/indexwiz/config.yaml)
//  3. Environment variables (NO_COLOR, INDEXWIZ_*)
package configs

import _ "embed"

// UserConfigTemplate is the commented template for the user configuration.
// Every value in it equals the built-in default.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string
