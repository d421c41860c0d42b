// Package export turns a project and a theme into one standalone HTML document.
package export

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
)

const (
	DefaultTailwindURL    = "https://cdn.tailwindcss.com"
	DefaultFontAwesomeURL = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
)

// Options controls the external references of the exported document. Empty URLs are
// left out.
type Options struct {
	TailwindURL    string
	FontAwesomeURL string
	GoogleFonts    bool
}

// DefaultOptions references the icon font and the theme's web fonts but no utility
// framework.
func DefaultOptions() Options {
	return Options{
		FontAwesomeURL: DefaultFontAwesomeURL,
		GoogleFonts:    true,
	}
}

// Exporter renders projects with the static generators of a registry.
type Exporter struct {
	registry *sections.Registry
	options  Options
}

func NewExporter(registry *sections.Registry, options Options) *Exporter {
	if registry == nil {
		registry = sections.Default()
	}
	return &Exporter{registry: registry, options: options}
}

// ExportHTML renders project with the built-in section types and default options.
func ExportHTML(project models.Project, theme models.Theme) string {
	return NewExporter(nil, DefaultOptions()).ExportHTML(project, theme)
}

// ExportHTML returns the complete document. The output depends only on its inputs:
// the same project and theme always produce the same bytes. Sections without an export
// generator become placeholders.
func (e *Exporter) ExportHTML(project models.Project, theme models.Theme) string {
	resolved := theme.Resolved()
	ordered := models.SortSections(project.Sections)

	var body sections.Markup
	for _, section := range ordered {
		if !e.registry.Export(&body, section, resolved) {
			log.Warn().
				Str("project_id", project.ID).
				Str("section_id", section.ID).
				Str("section_type", section.Type).
				Msg("No export generator for section type; wrote placeholder")
		}
	}

	var doc sections.Markup
	doc.Raw("<!DOCTYPE html>\n")
	doc.Open("html", "lang", "en")
	doc.Newline()
	e.writeHead(&doc, project, resolved)
	doc.Open("body")
	doc.Newline()
	doc.Open("main", "class", "pc-page")
	doc.Newline()
	doc.Raw(body.String())
	doc.Close("main")
	doc.Newline()
	doc.Open("script")
	doc.Raw(glueScript)
	doc.Close("script")
	doc.Newline()
	doc.Close("body")
	doc.Newline()
	doc.Close("html")
	doc.Newline()
	return doc.String()
}

func (e *Exporter) writeHead(doc *sections.Markup, project models.Project, theme models.Theme) {
	title := strings.TrimSpace(project.Name)
	if title == "" {
		title = "Untitled site"
	}

	doc.Open("head")
	doc.Newline()
	doc.Void("meta", "charset", "utf-8")
	doc.Void("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
	doc.Void("meta", "name", "generator", "content", "pagecraft")
	doc.Newline()
	doc.Elem("title", title)
	doc.Newline()
	if e.options.GoogleFonts {
		if href := GoogleFontsURL(theme); href != "" {
			doc.Void("link", "rel", "stylesheet", "href", href)
			doc.Newline()
		}
	}
	if e.options.FontAwesomeURL != "" {
		doc.Void("link", "rel", "stylesheet", "href", e.options.FontAwesomeURL)
		doc.Newline()
	}
	if e.options.TailwindURL != "" {
		doc.Open("script", "src", e.options.TailwindURL)
		doc.Close("script")
		doc.Newline()
	}
	doc.Open("style")
	doc.Raw(ThemeCSS(theme))
	doc.Raw(sections.Stylesheet)
	doc.Close("style")
	doc.Newline()
	doc.Close("head")
	doc.Newline()
}
