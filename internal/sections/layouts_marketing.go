package sections

import "github.com/codr1/pagecraft/internal/content"

func headerLayout(centered bool) layout {
	return func(m *Markup, v View) {
		c := v.Content
		navID := "nav-" + v.Section.ID
		barClass := "pc-header-bar"
		if centered {
			barClass = classes(barClass, "pc-header-centered")
		}
		if c.Bool("sticky") {
			barClass = classes(barClass, "pc-sticky")
		}
		container(m, barClass)

		m.Open("a", "href", "#", "class", "pc-logo")
		if logo := c.String("logoImage"); logo != "" {
			picture(m, logo, c.String("logo"), "pc-logo-image")
		} else {
			m.Text(c.String("logo"))
		}
		m.Close("a")

		m.Open("button", "type", "button", "class", "pc-nav-toggle", "data-nav-toggle", navID, "aria-label", "Toggle navigation")
		icon(m, "fa-solid fa-bars")
		m.Close("button")

		m.Open("nav", "id", navID, "class", "pc-nav")
		for _, item := range c.List("menuItems") {
			m.Elem("a", item.String("label"), "href", orHash(item.String("url")), "class", "pc-nav-link")
		}
		linkButton(m, c.Button("button"), "pc-button-primary")
		m.Close("nav")

		m.Close("div")
	}
}

func heroLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		primary := content.Button{Label: c.String("buttonText"), URL: c.String("buttonLink")}

		switch style {
		case "gradient":
			m.Open("div", "class", "pc-hero pc-hero-gradient")
		case "image":
			m.Open("div", "class", "pc-hero pc-hero-image", "style", backgroundImage(c.String("image")))
		default:
			m.Open("div", "class", "pc-hero")
		}
		container(m, classes("pc-hero-inner", "pc-hero-"+style))

		m.Open("div", "class", "pc-hero-copy")
		if badge := c.String("badge"); badge != "" {
			m.Elem("span", badge, "class", "pc-badge")
		}
		m.Elem("h1", c.String("title"), "class", "pc-hero-title")
		m.Elem("p", c.String("subtitle"), "class", "pc-hero-subtitle")
		m.Open("div", "class", "pc-actions")
		linkButton(m, primary, "pc-button-primary")
		linkButton(m, c.Button("secondaryButton"), "pc-button-secondary")
		m.Close("div")
		m.Close("div")

		if style == "split" || style == "centered" {
			picture(m, c.String("image"), c.String("title"), "pc-hero-media")
		}

		m.Close("div")
		m.Close("div")
	}
}

func backgroundImage(url string) string {
	safe := SafeURL(url)
	if safe == "" || safe == failedSanitizationURL {
		return ""
	}
	return "background-image: linear-gradient(rgba(0,0,0,.45), rgba(0,0,0,.45)), url('" + safe + "')"
}

func ctaLayout(style string) layout {
	return func(m *Markup, v View) {
		c := v.Content
		m.Open("div", "class", classes("pc-cta", "pc-cta-"+style))
		container(m, "pc-cta-inner")
		m.Open("div", "class", "pc-cta-copy")
		m.Elem("h2", c.String("title"), "class", "pc-title")
		if subtitle := c.String("subtitle"); subtitle != "" {
			m.Elem("p", subtitle, "class", "pc-subtitle")
		}
		linkButton(m, c.Button("button"), "pc-button-primary")
		m.Close("div")
		if style == "split" {
			picture(m, c.String("image"), c.String("title"), "pc-cta-media")
		}
		m.Close("div")
		m.Close("div")
	}
}

func footerLayout(columns bool) layout {
	return func(m *Markup, v View) {
		c := v.Content
		footerClass := "pc-footer"
		if columns {
			footerClass = classes(footerClass, "pc-footer-columns")
		}
		container(m, footerClass)

		m.Open("div", "class", "pc-footer-brand")
		m.Elem("span", c.String("logo"), "class", "pc-logo")
		if tagline := c.String("tagline"); tagline != "" {
			m.Elem("p", tagline, "class", "pc-muted")
		}
		m.Close("div")

		m.Open("nav", "class", "pc-footer-links")
		for _, link := range c.List("links") {
			m.Elem("a", link.String("label"), "href", orHash(link.String("url")))
		}
		m.Close("nav")

		m.Open("div", "class", "pc-socials")
		for _, social := range c.List("socials") {
			m.Open("a", "href", orHash(social.String("url")), "class", "pc-social", "aria-label", social.String("icon"))
			icon(m, social.String("icon"))
			m.Close("a")
		}
		m.Close("div")

		if copyright := c.String("copyright"); copyright != "" {
			m.Elem("p", copyright, "class", "pc-copyright")
		}
		m.Close("div")
	}
}
