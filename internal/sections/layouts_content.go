package sections

import (
	"bytes"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders without raw HTML passthrough, so section bodies cannot inject markup.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func featuresLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		container(m, "")
		heading(m, c, "pc-center")
		m.Open("div", "class", classes("pc-features", "pc-features-"+style))
		for _, feature := range c.List("features") {
			itemClass := "pc-feature"
			if style == "cards" {
				itemClass = classes(itemClass, "pc-card")
			}
			m.Open("div", "class", itemClass)
			m.Open("span", "class", "pc-feature-icon")
			icon(m, feature.String("icon"))
			m.Close("span")
			m.Open("div")
			m.Elem("h3", feature.String("title"), "class", "pc-item-title")
			m.Elem("p", feature.String("description"), "class", "pc-muted")
			m.Close("div")
			m.Close("div")
		}
		m.Close("div")
		m.Close("div")
	}
}

func aboutLayout(m *Markup, v View) {
	c := v.Content
	container(m, "pc-split")
	picture(m, c.String("image"), c.String("title"), "pc-split-media")
	m.Open("div", "class", "pc-split-copy")
	m.Elem("h2", c.String("title"), "class", "pc-title")
	m.Elem("p", c.String("text"), "class", "pc-body")
	if highlights := c.List("highlights"); len(highlights) > 0 {
		m.Open("ul", "class", "pc-checklist")
		for _, h := range highlights {
			m.Open("li")
			icon(m, "fa-solid fa-check")
			m.Text(" " + h.String("text"))
			m.Close("li")
		}
		m.Close("ul")
	}
	m.Close("div")
	m.Close("div")
}

// statsLayout animates the numbers in the exported page; the live preview shows the
// final values.
func statsLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		container(m, "")
		heading(m, c, "pc-center")
		m.Open("div", "class", classes("pc-stats", "pc-stats-"+style))
		for _, stat := range c.List("stats") {
			value := stat.Int("value", 0)
			itemClass := "pc-stat"
			if style == "cards" {
				itemClass = classes(itemClass, "pc-card")
			}
			m.Open("div", "class", itemClass)
			if v.Target == TargetStatic {
				m.Elem("span", "0", "class", "pc-stat-value", "data-count", strconv.Itoa(value))
			} else {
				m.Elem("span", strconv.Itoa(value), "class", "pc-stat-value")
			}
			m.Elem("span", stat.String("suffix"), "class", "pc-stat-suffix")
			m.Elem("p", stat.String("label"), "class", "pc-muted")
			m.Close("div")
		}
		m.Close("div")
		m.Close("div")
	}
}

func teamLayout(m *Markup, v View) {
	c := v.Content
	container(m, "")
	heading(m, c, "pc-center")
	m.Open("div", "class", "pc-grid pc-grid-3")
	for _, member := range c.List("members") {
		m.Open("div", "class", "pc-card pc-member")
		picture(m, member.String("photo"), member.String("name"), "pc-avatar-lg")
		m.Elem("h3", member.String("name"), "class", "pc-item-title")
		m.Elem("p", member.String("role"), "class", "pc-accent")
		if bio := member.String("bio"); bio != "" {
			m.Elem("p", bio, "class", "pc-muted")
		}
		m.Close("div")
	}
	m.Close("div")
	m.Close("div")
}

func faqLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		open := c.Int("openIndex", -1)
		container(m, "")
		heading(m, c, "pc-center")
		m.Open("div", "class", classes("pc-faq", "pc-faq-"+style), "data-accordion", "")
		for i, item := range c.List("items") {
			isOpen := "false"
			if i == open {
				isOpen = "true"
			}
			m.Open("details", "class", "pc-faq-item", "open", isOpen)
			m.Elem("summary", item.String("question"), "class", "pc-faq-question")
			m.Elem("p", item.String("answer"), "class", "pc-faq-answer")
			m.Close("details")
		}
		m.Close("div")
		m.Close("div")
	}
}

func textLayout(m *Markup, v View) {
	c := v.Content
	container(m, "pc-prose")
	if title := c.String("title"); title != "" {
		m.Elem("h2", title, "class", "pc-title")
	}
	m.Open("div", "class", "pc-markdown")
	m.Raw(RenderMarkdown(c.String("body")))
	m.Close("div")
	m.Close("div")
}

// RenderMarkdown converts a Markdown body to HTML. A conversion failure yields the
// escaped source in a paragraph.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		log.Warn().Err(err).Msg("Failed to render markdown body")
		var m Markup
		m.Elem("p", source)
		return m.String()
	}
	return buf.String()
}
