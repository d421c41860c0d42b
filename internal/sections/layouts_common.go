package sections

import (
	"strconv"
	"strings"

	"github.com/codr1/pagecraft/internal/content"
)

// layout writes the inner markup of one variant. It is shared by the live and the
// static generator of the variant; Target tells it which one is running.
type layout func(m *Markup, v View)

// SectionAnchor is the element id used for a section in both display and export.
func SectionAnchor(id string) string {
	return "section-" + id
}

func elementFor(family string) string {
	switch family {
	case "header":
		return "header"
	case "footer":
		return "footer"
	}
	return "section"
}

// wrap writes the outer element carrying the section's identity, then the layout.
func wrap(m *Markup, v View, body layout) {
	tag := v.Section.Type
	el := elementFor(FamilyOf(tag))
	m.Open(el,
		"id", SectionAnchor(v.Section.ID),
		"class", classes("pc-section", "pc-"+tag),
		"data-section-type", tag,
	)
	body(m, v)
	m.Close(el)
	m.Newline()
}

func liveFragment(body layout) Fragment {
	return func(m *Markup, v View) {
		v.Target = TargetLive
		wrap(m, v, body)
	}
}

func staticFragment(body layout) Fragment {
	return func(m *Markup, v View) {
		v.Target = TargetStatic
		wrap(m, v, body)
	}
}

// heading writes the title and optional subtitle shared by most sections.
func heading(m *Markup, c content.Content, class string) {
	title := c.String("title")
	subtitle := c.String("subtitle")
	if title == "" && subtitle == "" {
		return
	}
	m.Open("div", "class", classes("pc-heading", class))
	if title != "" {
		m.Elem("h2", title, "class", "pc-title")
	}
	if subtitle != "" {
		m.Elem("p", subtitle, "class", "pc-subtitle")
	}
	m.Close("div")
}

func linkButton(m *Markup, b content.Button, class string) {
	if strings.TrimSpace(b.Label) == "" {
		return
	}
	m.Elem("a", b.Label, "href", orHash(b.URL), "class", classes("pc-button", class))
}

func picture(m *Markup, src, alt, class string) {
	if strings.TrimSpace(src) == "" {
		return
	}
	m.Void("img", "src", src, "alt", alt, "class", class, "loading", "lazy")
}

func icon(m *Markup, class string) {
	if strings.TrimSpace(class) == "" {
		return
	}
	m.Open("i", "class", class, "aria-hidden", "true")
	m.Close("i")
}

func orHash(url string) string {
	if strings.TrimSpace(url) == "" {
		return "#"
	}
	return url
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func container(m *Markup, class string) {
	m.Open("div", "class", classes("pc-container", class))
}
