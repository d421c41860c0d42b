package themes

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/codr1/pagecraft/internal/sections"
)

// PanelID is the element replaced after a theme change.
const PanelID = "pc-theme-panel"

// Panel renders the theme picker, the brand color form and the font collections.
func Panel(data PanelData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m sections.Markup
		writePanel(&m, data)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

func writePanel(m *sections.Markup, data PanelData) {
	target := "#" + PanelID
	m.Open("aside", "id", PanelID, "class", "pc-theme-panel")
	m.Elem("h2", "Theme")

	m.Open("div", "class", "pc-theme-list")
	for _, t := range data.Themes {
		class := "pc-theme-option"
		if t.IsActive {
			class += " pc-theme-active"
		}
		m.Open("button",
			"type", "button", "class", class,
			"hx-post", data.SelectURL, "hx-vals", sections.HxVals("theme_id", t.ID),
			"hx-target", target, "hx-swap", "outerHTML",
		)
		m.Open("span", "class", "pc-swatches")
		for _, color := range []string{t.Colors.Primary, t.Colors.Secondary, t.Colors.Accent} {
			m.Open("span", "class", "pc-swatch", "style", "background:"+color)
			m.Close("span")
		}
		m.Close("span")
		m.Text(t.Name)
		m.Close("button")
	}
	m.Close("div")

	m.Open("form", "class", "pc-theme-colors", "hx-post", data.ColorsURL, "hx-target", target, "hx-swap", "outerHTML")
	m.Elem("h3", "Brand colors")
	for _, c := range []struct{ name, label, value string }{
		{"primary", "Primary", data.Active.Colors.Primary},
		{"secondary", "Secondary", data.Active.Colors.Secondary},
		{"accent", "Accent", data.Active.Colors.Accent},
	} {
		m.Open("label", "class", "pc-field")
		m.Elem("span", c.label)
		m.Void("input", "type", "color", "name", c.name, "value", c.value)
		m.Close("label")
	}
	m.Elem("button", "Apply colors", "type", "submit", "class", "pc-tool")
	m.Close("form")

	m.Elem("h3", "Fonts")
	m.Open("div", "class", "pc-font-list")
	for _, f := range data.Fonts {
		class := "pc-font-option"
		if f.Fonts == data.Active.Fonts {
			class += " pc-theme-active"
		}
		m.Open("button",
			"type", "button", "class", class,
			"hx-post", data.FontsURL, "hx-vals", sections.HxVals("collection_id", f.ID),
			"hx-target", target, "hx-swap", "outerHTML",
			"style", `font-family:"`+f.Fonts.Primary+`",sans-serif`,
		)
		m.Elem("strong", f.Name)
		m.Elem("span", f.Description, "class", "pc-muted")
		m.Close("button")
	}
	m.Close("div")
	m.Close("aside")
}
