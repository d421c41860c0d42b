// Package assets embeds the theme catalog and font collections shipped with the
// binary.
package assets

import "embed"

const (
	ThemesPath = "themes.yaml"
	FontsPath  = "fonts.yaml"
)

//go:embed themes.yaml fonts.yaml
var FS embed.FS
