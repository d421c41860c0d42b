package sections

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
)

// Mode is the state of one section instance in the editor. The host toggles it; the
// renderer only reads it.
type Mode int

const (
	ModeDisplay Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "display"
}

// ParseMode maps "editing"/"edit" to ModeEditing and anything else to ModeDisplay.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "editing", "edit":
		return ModeEditing
	}
	return ModeDisplay
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeEditing {
		return ModeDisplay
	}
	return ModeEditing
}

const unavailableText = "content not available"

var titleCaser = cases.Title(language.English)

// Render returns the live view of section using the default registry.
func Render(section models.Section, theme models.Theme, mode Mode, endpoints EditEndpoints) templ.Component {
	return Default().Render(section, theme, mode, endpoints)
}

// Render returns the live view of section in the given mode.
func (r *Registry) Render(section models.Section, theme models.Theme, mode Mode, endpoints EditEndpoints) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, r.RenderString(section, theme, mode, endpoints))
		return err
	})
}

// RenderString is Render without the component wrapper.
func (r *Registry) RenderString(section models.Section, theme models.Theme, mode Mode, endpoints EditEndpoints) string {
	var m Markup
	v := r.view(section, theme, TargetLive)
	t, registered := r.Lookup(section.Type)

	if mode == ModeEditing {
		editorOpen(&m, v, endpoints)
		if registered {
			t.Edit(&m, v, endpoints)
		} else {
			rawEditor(&m, v, endpoints, true)
		}
		editorClose(&m)
		return m.String()
	}

	if registered {
		t.Display(&m, v)
	} else {
		genericPreview(&m, v)
	}
	return m.String()
}

// Export writes the static markup of section. It reports false when no export
// generator exists for the tag and a placeholder was written instead.
func (r *Registry) Export(m *Markup, section models.Section, theme models.Theme) bool {
	v := r.view(section, theme, TargetStatic)
	if t, ok := r.Lookup(section.Type); ok {
		t.Export(m, v)
		return true
	}
	placeholder(m, v)
	return false
}

func (r *Registry) view(section models.Section, theme models.Theme, target Target) View {
	c := section.Content
	if c == nil {
		c = content.Content{}
	}
	return View{Section: section, Content: c, Theme: theme.Resolved(), Target: target}
}

// Humanize turns a tag or key such as "hero-split" into "Hero Split".
func Humanize(tag string) string {
	words := strings.FieldsFunc(tag, func(r rune) bool { return r == '-' || r == '_' || r == '.' })
	return titleCaser.String(strings.Join(words, " "))
}

// fallbackTitle is the section's own title, or its humanized tag.
func fallbackTitle(v View) string {
	if title := v.Content.String("title"); strings.TrimSpace(title) != "" {
		return title
	}
	if v.Section.Type == "" {
		return "Untitled section"
	}
	return Humanize(v.Section.Type)
}

func genericPreview(m *Markup, v View) {
	m.Open("section",
		"id", SectionAnchor(v.Section.ID),
		"class", "pc-section pc-generic",
		"data-section-type", v.Section.Type,
	)
	container(m, "pc-center")
	m.Elem("span", Humanize(FamilyOf(v.Section.Type)), "class", "pc-badge")
	m.Elem("h2", fallbackTitle(v), "class", "pc-title")
	if subtitle := v.Content.String("subtitle"); subtitle != "" {
		m.Elem("p", subtitle, "class", "pc-subtitle")
	}
	m.Close("div")
	m.Close("section")
	m.Newline()
}

func placeholder(m *Markup, v View) {
	m.Open("section",
		"id", SectionAnchor(v.Section.ID),
		"class", "pc-section pc-placeholder",
		"data-section-type", v.Section.Type,
	)
	container(m, "pc-center")
	m.Elem("h2", fallbackTitle(v), "class", "pc-title")
	m.Elem("p", unavailableText, "class", "pc-muted")
	m.Close("div")
	m.Close("section")
	m.Newline()
}

// rawEditor is the JSON textarea used when no form exists for a tag, and as the
// advanced panel of every form.
func rawEditor(m *Markup, v View, e EditEndpoints, primary bool) {
	encoded, err := json.MarshalIndent(v.Content, "", "  ")
	if err != nil {
		encoded = []byte("{}")
	}
	if !primary {
		m.Open("details", "class", "pc-raw")
		m.Elem("summary", "Raw data")
	} else {
		m.Elem("p", "No form is available for this section type. Edit its data as JSON.", "class", "pc-muted")
	}
	m.Open("form", "class", "pc-raw-form", "hx-post", e.Raw, "hx-target", e.Target, "hx-swap", "outerHTML")
	m.Open("textarea", "name", "content", "rows", "12", "class", "pc-code", "spellcheck", "false")
	m.Text(string(encoded))
	m.Close("textarea")
	m.Elem("button", "Save data", "type", "submit", "class", "pc-button pc-button-secondary")
	m.Close("form")
	if !primary {
		m.Close("details")
	}
}
