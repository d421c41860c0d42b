package export

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/codr1/pagecraft/internal/models"
)

const googleFontsBase = "https://fonts.googleapis.com/css2"

// ThemeCSS returns a :root block with one custom property per theme token:
// --color-<role>, --font-<role> and --shadow-<role>, roles in kebab case. Missing or
// invalid values fall back to the default theme per role.
func ThemeCSS(theme models.Theme) string {
	resolved := theme.Resolved()
	var b strings.Builder
	b.WriteString(":root{")
	for _, token := range resolved.ColorTokens() {
		writeVar(&b, "color", token.Role, token.Value)
	}
	for _, token := range resolved.FontTokens() {
		writeVar(&b, "font", token.Role, `"`+cssSafe(token.Value)+`"`)
	}
	for _, token := range resolved.ShadowTokens() {
		writeVar(&b, "shadow", token.Role, cssSafe(token.Value))
	}
	b.WriteString("}")
	return b.String()
}

func writeVar(b *strings.Builder, category, role, value string) {
	b.WriteString("--")
	b.WriteString(category)
	b.WriteByte('-')
	b.WriteString(kebab(role))
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte(';')
}

// kebab turns "textSecondary" into "text-secondary".
func kebab(role string) string {
	var b strings.Builder
	for i, r := range role {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cssSafe drops characters that could end a declaration or the style element.
func cssSafe(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', ';', '"', '\\':
			return -1
		}
		return r
	}, strings.TrimSpace(value))
}

// GoogleFontsURL returns the stylesheet URL loading the theme's font families, each
// requested once in role order.
func GoogleFontsURL(theme models.Theme) string {
	resolved := theme.Resolved()
	seen := make(map[string]bool)
	var families []string
	for _, token := range resolved.FontTokens() {
		name := cssSafe(token.Value)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		families = append(families, "family="+url.QueryEscape(name)+":wght@400;600;700")
	}
	if len(families) == 0 {
		return ""
	}
	return googleFontsBase + "?" + strings.Join(families, "&") + "&display=swap"
}
