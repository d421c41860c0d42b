package sections

import (
	"sort"
	"strings"

	"github.com/codr1/pagecraft/internal/content"
)

func galleryLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		entries := c.List("items")
		container(m, "")
		heading(m, c, "pc-center")

		if style == "filterable" {
			m.Open("div", "class", "pc-filters", "data-gallery-filters", v.Section.ID)
			m.Elem("button", "All", "type", "button", "class", "pc-filter pc-filter-active", "data-filter", "*")
			for _, category := range galleryCategories(entries) {
				m.Elem("button", category, "type", "button", "class", "pc-filter", "data-filter", category)
			}
			m.Close("div")
		}

		m.Open("div", "class", classes("pc-gallery", "pc-gallery-"+style), "data-gallery", v.Section.ID)
		for _, item := range entries {
			m.Open("figure", "class", "pc-gallery-item", "data-category", item.String("category"))
			m.Open("a", "href", orHash(item.String("image")), "data-lightbox", v.Section.ID)
			picture(m, item.String("image"), item.String("title"), "pc-gallery-image")
			m.Close("a")
			if title := item.String("title"); title != "" {
				m.Elem("figcaption", title)
			}
			m.Close("figure")
		}
		m.Close("div")
		m.Close("div")
	}
}

// galleryCategories returns the distinct non-empty categories, sorted.
func galleryCategories(entries []content.Content) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range entries {
		category := strings.TrimSpace(item.String("category"))
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

func testimonialsLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		container(m, "")
		heading(m, c, "pc-center")
		if style == "carousel" {
			m.Open("div", "class", "pc-carousel", "data-carousel", v.Section.ID)
		} else {
			m.Open("div", "class", "pc-grid pc-grid-3")
		}
		for i, t := range c.List("testimonials") {
			slideClass := "pc-card pc-testimonial"
			if style == "carousel" {
				slideClass = classes(slideClass, "pc-slide")
				if i == 0 {
					slideClass = classes(slideClass, "pc-slide-active")
				}
			}
			m.Open("blockquote", "class", slideClass)
			stars(m, t.Int("rating", 0))
			m.Elem("p", t.String("quote"), "class", "pc-quote")
			m.Open("footer", "class", "pc-person")
			picture(m, t.String("avatar"), t.String("name"), "pc-avatar")
			m.Open("div")
			m.Elem("strong", t.String("name"))
			if role := t.String("role"); role != "" {
				m.Elem("span", role, "class", "pc-muted")
			}
			m.Close("div")
			m.Close("footer")
			m.Close("blockquote")
		}
		if style == "carousel" {
			m.Open("div", "class", "pc-carousel-controls")
			m.Open("button", "type", "button", "data-carousel-prev", v.Section.ID, "aria-label", "Previous")
			icon(m, "fa-solid fa-chevron-left")
			m.Close("button")
			m.Open("button", "type", "button", "data-carousel-next", v.Section.ID, "aria-label", "Next")
			icon(m, "fa-solid fa-chevron-right")
			m.Close("button")
			m.Close("div")
		}
		m.Close("div")
		m.Close("div")
	}
}

func stars(m *Markup, rating int) {
	if rating <= 0 {
		return
	}
	if rating > 5 {
		rating = 5
	}
	m.Open("div", "class", "pc-stars", "aria-label", itoa(rating)+" out of 5")
	for i := 0; i < rating; i++ {
		icon(m, "fa-solid fa-star")
	}
	m.Close("div")
}

func pricingLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		featured := c.Int("featuredIndex", -1)
		container(m, "")
		heading(m, c, "pc-center")
		m.Open("div", "class", classes("pc-pricing", "pc-pricing-"+style))
		for i, tier := range c.List("tiers") {
			tierClass := "pc-card pc-tier"
			if i == featured {
				tierClass = classes(tierClass, "pc-tier-featured")
			}
			m.Open("div", "class", tierClass)
			if i == featured {
				m.Elem("span", "Most popular", "class", "pc-badge")
			}
			m.Elem("h3", tier.String("name"), "class", "pc-item-title")
			m.Open("p", "class", "pc-price")
			m.Elem("span", tier.String("price"), "class", "pc-price-amount")
			m.Elem("span", tier.String("period"), "class", "pc-muted")
			m.Close("p")
			if style != "compact" {
				m.Open("ul", "class", "pc-checklist")
				for _, line := range tier.Lines("features") {
					m.Open("li")
					icon(m, "fa-solid fa-check")
					m.Text(" " + line)
					m.Close("li")
				}
				m.Close("ul")
			}
			buttonClass := "pc-button-secondary"
			if i == featured {
				buttonClass = "pc-button-primary"
			}
			linkButton(m, tier.Button("button"), buttonClass)
			m.Close("div")
		}
		m.Close("div")
		m.Close("div")
	}
}

// contactLayout's form never leaves the page: the glue script shows the confirmation
// message locally.
func contactLayout(split bool) layout {
	return func(m *Markup, v View) {
		c := v.Content
		wrapClass := ""
		if split {
			wrapClass = "pc-split"
		}
		container(m, wrapClass)

		m.Open("div", "class", "pc-contact-details")
		heading(m, c, "")
		m.Open("ul", "class", "pc-contact-list")
		if email := c.String("email"); email != "" {
			m.Open("li")
			icon(m, "fa-solid fa-envelope")
			m.Raw(" ")
			m.Elem("a", email, "href", "mailto:"+email)
			m.Close("li")
		}
		if phone := c.String("phone"); phone != "" {
			m.Open("li")
			icon(m, "fa-solid fa-phone")
			m.Raw(" ")
			m.Elem("a", phone, "href", "tel:"+strings.ReplaceAll(phone, " ", ""))
			m.Close("li")
		}
		if address := c.String("address"); address != "" {
			m.Open("li")
			icon(m, "fa-solid fa-location-dot")
			m.Text(" " + address)
			m.Close("li")
		}
		m.Close("ul")
		m.Close("div")

		formID := "form-" + v.Section.ID
		m.Open("form", "id", formID, "class", "pc-card pc-form", "data-local-submit", c.StringOr("successMessage", "Thank you!"))
		for _, input := range []struct{ name, label, kind string }{
			{"name", "Name", "text"},
			{"email", "Email", "email"},
		} {
			m.Open("label", "class", "pc-form-field")
			m.Elem("span", input.label)
			m.Void("input", "type", input.kind, "name", input.name, "required", "true")
			m.Close("label")
		}
		m.Open("label", "class", "pc-form-field")
		m.Elem("span", "Message")
		m.Open("textarea", "name", "message", "rows", "4", "required", "true")
		m.Close("textarea")
		m.Close("label")
		m.Elem("button", c.StringOr("submitLabel", "Send"), "type", "submit", "class", "pc-button pc-button-primary")
		m.Elem("p", "", "class", "pc-form-status", "role", "status", "aria-live", "polite")
		m.Close("form")

		m.Close("div")
	}
}
