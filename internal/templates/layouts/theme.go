package layouts

import (
	"strings"

	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
)

// getThemeCss returns the custom properties of theme followed by the section and editor
// styles. A nil theme uses the default theme.
func getThemeCss(theme *models.Theme) string {
	active := models.DefaultTheme()
	if theme != nil {
		active = theme.Resolved()
	}
	var b strings.Builder
	b.WriteString(export.ThemeCSS(active))
	b.WriteString(sections.Stylesheet)
	b.WriteString(sections.EditorStylesheet)
	return b.String()
}
