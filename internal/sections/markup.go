package sections

import (
	"strings"

	"github.com/a-h/templ"
)

var urlAttributes = map[string]bool{
	"href":   true,
	"src":    true,
	"action": true,
}

var booleanAttributes = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"required": true,
	"selected": true,
}

// Markup accumulates escaped HTML. Attributes are passed as name/value pairs; a pair
// with an empty name is skipped so callers can add attributes conditionally.
type Markup struct {
	b strings.Builder
}

func (m *Markup) Open(tag string, attrs ...string) {
	m.b.WriteByte('<')
	m.b.WriteString(tag)
	m.attrs(attrs)
	m.b.WriteByte('>')
}

// Void writes a tag with no closing counterpart, such as img or input.
func (m *Markup) Void(tag string, attrs ...string) {
	m.Open(tag, attrs...)
}

func (m *Markup) Close(tag string) {
	m.b.WriteString("</")
	m.b.WriteString(tag)
	m.b.WriteByte('>')
}

// Elem writes an element holding escaped text.
func (m *Markup) Elem(tag, text string, attrs ...string) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

func (m *Markup) Text(s string) {
	m.b.WriteString(templ.EscapeString(s))
}

// Raw writes trusted markup as is.
func (m *Markup) Raw(s string) {
	m.b.WriteString(s)
}

func (m *Markup) Newline() {
	m.b.WriteByte('\n')
}

func (m *Markup) String() string {
	return m.b.String()
}

func (m *Markup) Len() int {
	return m.b.Len()
}

func (m *Markup) attrs(pairs []string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		name, value := pairs[i], pairs[i+1]
		if name == "" {
			continue
		}
		if booleanAttributes[name] {
			if value == "" || value == "false" {
				continue
			}
			m.b.WriteByte(' ')
			m.b.WriteString(name)
			continue
		}
		if urlAttributes[name] {
			value = SafeURL(value)
		}
		m.b.WriteByte(' ')
		m.b.WriteString(name)
		m.b.WriteString(`="`)
		m.b.WriteString(templ.EscapeString(value))
		m.b.WriteByte('"')
	}
}

const failedSanitizationURL = string(templ.FailedSanitizationURL)

// SafeURL drops URLs with a scheme other than http(s), mailto, tel or ftp.
func SafeURL(raw string) string {
	return string(templ.URL(strings.TrimSpace(raw)))
}

// classes joins non-empty class names.
func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
