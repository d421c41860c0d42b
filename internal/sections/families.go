package sections

import "github.com/codr1/pagecraft/internal/content"

const placeholderImageBase = "https://placehold.co/"

func button(label, url string) map[string]any {
	return map[string]any{"label": label, "url": url}
}

func image(size, text string) string {
	return placeholderImageBase + size + "?text=" + text
}

func items(entries ...map[string]any) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}

var buttonItem = []Field{
	{Key: "label", Label: "Label", Kind: FieldText},
	{Key: "url", Label: "Link", Kind: FieldURL},
}

var headerFamily = &Family{
	Name:  "header",
	Label: "Headers",
	Defaults: func() content.Content {
		return content.Content{
			"logo":      "Brand",
			"logoImage": "",
			"menuItems": items(
				button("Home", "#home"),
				button("Features", "#features"),
				button("Pricing", "#pricing"),
				button("Contact", "#contact"),
			),
			"button": button("Get Started", "#contact"),
			"sticky": true,
		}
	},
	Fields: []Field{
		{Key: "logo", Label: "Logo text", Kind: FieldText},
		{Key: "logoImage", Label: "Logo image", Kind: FieldImage},
		{
			Key: "menuItems", Label: "Menu items", Kind: FieldList, Item: buttonItem,
			NewItem: func() content.Content { return content.Content{"label": "New link", "url": "#"} },
		},
		{Key: "button", Label: "Call to action", Kind: FieldButton},
		{Key: "sticky", Label: "Stick to top", Kind: FieldToggle},
	},
}

var heroFamily = &Family{
	Name:  "hero",
	Label: "Hero",
	Defaults: func() content.Content {
		return content.Content{
			"badge":           "New",
			"title":           "Build a website you are proud of",
			"subtitle":        "Pick sections, make them yours and publish in minutes.",
			"buttonText":      "Get Started",
			"buttonLink":      "#contact",
			"secondaryButton": button("Learn More", "#features"),
			"image":           image("1200x800", "Hero"),
		}
	},
	Fields: []Field{
		{Key: "badge", Label: "Badge", Kind: FieldText},
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{Key: "buttonText", Label: "Button text", Kind: FieldText},
		{Key: "buttonLink", Label: "Button link", Kind: FieldURL},
		{Key: "secondaryButton", Label: "Secondary button", Kind: FieldButton},
		{Key: "image", Label: "Image", Kind: FieldImage},
	},
}

var featuresFamily = &Family{
	Name:  "features",
	Label: "Features",
	Defaults: func() content.Content {
		return content.Content{
			"title":    "Everything you need",
			"subtitle": "Powerful building blocks that work together.",
			"features": items(
				map[string]any{"icon": "fa-solid fa-bolt", "title": "Fast", "description": "Pages load in a blink on any device."},
				map[string]any{"icon": "fa-solid fa-palette", "title": "On brand", "description": "One theme keeps every section consistent."},
				map[string]any{"icon": "fa-solid fa-mobile-screen", "title": "Responsive", "description": "Layouts adapt from phones to wide screens."},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{
			Key: "features", Label: "Features", Kind: FieldList,
			Item: []Field{
				{Key: "icon", Label: "Icon class", Kind: FieldText},
				{Key: "title", Label: "Title", Kind: FieldText},
				{Key: "description", Label: "Description", Kind: FieldTextArea},
			},
			NewItem: func() content.Content {
				return content.Content{"icon": "fa-solid fa-star", "title": "New feature", "description": "Describe it."}
			},
		},
	},
}

var aboutFamily = &Family{
	Name:  "about",
	Label: "About",
	Defaults: func() content.Content {
		return content.Content{
			"title": "About us",
			"text":  "We are a small team that cares about craft, clarity and the people we build for.",
			"image": image("800x600", "About"),
			"highlights": items(
				map[string]any{"text": "Founded in 2015"},
				map[string]any{"text": "Customers in 40 countries"},
				map[string]any{"text": "Independent and profitable"},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "text", Label: "Text", Kind: FieldTextArea},
		{Key: "image", Label: "Image", Kind: FieldImage},
		{
			Key: "highlights", Label: "Highlights", Kind: FieldList,
			Item:    []Field{{Key: "text", Label: "Text", Kind: FieldText}},
			NewItem: func() content.Content { return content.Content{"text": "New highlight"} },
		},
	},
}

var statsFamily = &Family{
	Name:  "stats",
	Label: "Stats",
	Defaults: func() content.Content {
		return content.Content{
			"title": "Trusted by teams everywhere",
			"stats": items(
				map[string]any{"value": 1200, "suffix": "+", "label": "Customers"},
				map[string]any{"value": 98, "suffix": "%", "label": "Satisfaction"},
				map[string]any{"value": 24, "suffix": "/7", "label": "Support"},
				map[string]any{"value": 15, "suffix": "", "label": "Countries"},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{
			Key: "stats", Label: "Stats", Kind: FieldList,
			Item: []Field{
				{Key: "value", Label: "Value", Kind: FieldNumber},
				{Key: "suffix", Label: "Suffix", Kind: FieldText},
				{Key: "label", Label: "Label", Kind: FieldText},
			},
			NewItem: func() content.Content { return content.Content{"value": 0, "suffix": "", "label": "New stat"} },
		},
	},
}

var galleryFamily = &Family{
	Name:  "gallery",
	Label: "Gallery",
	Defaults: func() content.Content {
		return content.Content{
			"title":    "Our work",
			"subtitle": "A few projects we are proud of.",
			"items": items(
				map[string]any{"image": image("600x400", "Project+1"), "title": "Project one", "category": "Web"},
				map[string]any{"image": image("600x400", "Project+2"), "title": "Project two", "category": "Brand"},
				map[string]any{"image": image("600x400", "Project+3"), "title": "Project three", "category": "Web"},
				map[string]any{"image": image("600x400", "Project+4"), "title": "Project four", "category": "Print"},
				map[string]any{"image": image("600x400", "Project+5"), "title": "Project five", "category": "Brand"},
				map[string]any{"image": image("600x400", "Project+6"), "title": "Project six", "category": "Web"},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{
			Key: "items", Label: "Images", Kind: FieldList,
			Item: []Field{
				{Key: "image", Label: "Image", Kind: FieldImage},
				{Key: "title", Label: "Caption", Kind: FieldText},
				{Key: "category", Label: "Category", Kind: FieldText},
			},
			NewItem: func() content.Content {
				return content.Content{"image": image("600x400", "New"), "title": "New image", "category": ""}
			},
		},
	},
}

var testimonialsFamily = &Family{
	Name:  "testimonials",
	Label: "Testimonials",
	Defaults: func() content.Content {
		return content.Content{
			"title": "What our customers say",
			"testimonials": items(
				map[string]any{"quote": "We launched our new site in a single afternoon.", "name": "Ana Ruiz", "role": "Founder, Brightside", "avatar": image("96x96", "AR"), "rating": 5},
				map[string]any{"quote": "The theme editor saved our designers days of work.", "name": "Sam Lee", "role": "Design Lead, Northway", "avatar": image("96x96", "SL"), "rating": 5},
				map[string]any{"quote": "Clean output we could host anywhere.", "name": "Priya Nair", "role": "CTO, Fieldnote", "avatar": image("96x96", "PN"), "rating": 4},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{
			Key: "testimonials", Label: "Testimonials", Kind: FieldList,
			Item: []Field{
				{Key: "quote", Label: "Quote", Kind: FieldTextArea},
				{Key: "name", Label: "Name", Kind: FieldText},
				{Key: "role", Label: "Role", Kind: FieldText},
				{Key: "avatar", Label: "Avatar", Kind: FieldImage},
				{Key: "rating", Label: "Rating (1-5)", Kind: FieldNumber},
			},
			NewItem: func() content.Content {
				return content.Content{"quote": "Add a quote.", "name": "Name", "role": "", "avatar": "", "rating": 5}
			},
		},
	},
}

var pricingFamily = &Family{
	Name:  "pricing",
	Label: "Pricing",
	Defaults: func() content.Content {
		return content.Content{
			"title":         "Simple pricing",
			"subtitle":      "Start free, upgrade when you grow.",
			"featuredIndex": 1,
			"tiers": items(
				map[string]any{"name": "Starter", "price": "$0", "period": "/month", "features": "1 site\nBasic sections\nCommunity support", "button": button("Start free", "#contact")},
				map[string]any{"name": "Pro", "price": "$19", "period": "/month", "features": "10 sites\nAll sections\nCustom themes\nEmail support", "button": button("Go Pro", "#contact")},
				map[string]any{"name": "Team", "price": "$49", "period": "/month", "features": "Unlimited sites\nShared themes\nPriority support", "button": button("Contact sales", "#contact")},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{Key: "featuredIndex", Label: "Featured tier (position, -1 for none)", Kind: FieldNumber},
		{
			Key: "tiers", Label: "Tiers", Kind: FieldList,
			Item: []Field{
				{Key: "name", Label: "Name", Kind: FieldText},
				{Key: "price", Label: "Price", Kind: FieldText},
				{Key: "period", Label: "Period", Kind: FieldText},
				{Key: "features", Label: "Features (one per line)", Kind: FieldTextArea},
				{Key: "button", Label: "Button", Kind: FieldButton},
			},
			NewItem: func() content.Content {
				return content.Content{"name": "New tier", "price": "$0", "period": "/month", "features": "", "button": button("Choose", "#contact")}
			},
			IndexKeys: []string{"featuredIndex"},
		},
	},
}

var teamFamily = &Family{
	Name:  "team",
	Label: "Team",
	Defaults: func() content.Content {
		return content.Content{
			"title":    "Meet the team",
			"subtitle": "The people behind the product.",
			"members": items(
				map[string]any{"name": "Jordan Park", "role": "CEO", "photo": image("300x300", "JP"), "bio": "Keeps the lights on."},
				map[string]any{"name": "Rae Okafor", "role": "Design", "photo": image("300x300", "RO"), "bio": "Draws the things."},
				map[string]any{"name": "Luis Moreno", "role": "Engineering", "photo": image("300x300", "LM"), "bio": "Builds the things."},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{
			Key: "members", Label: "Members", Kind: FieldList,
			Item: []Field{
				{Key: "name", Label: "Name", Kind: FieldText},
				{Key: "role", Label: "Role", Kind: FieldText},
				{Key: "photo", Label: "Photo", Kind: FieldImage},
				{Key: "bio", Label: "Bio", Kind: FieldTextArea},
			},
			NewItem: func() content.Content { return content.Content{"name": "Name", "role": "Role", "photo": "", "bio": ""} },
		},
	},
}

var faqFamily = &Family{
	Name:  "faq",
	Label: "FAQ",
	Defaults: func() content.Content {
		return content.Content{
			"title":     "Frequently asked questions",
			"openIndex": 0,
			"items": items(
				map[string]any{"question": "Can I use my own domain?", "answer": "Yes. Export your site and host it anywhere."},
				map[string]any{"question": "Do I need to code?", "answer": "No. Every section is edited with simple forms."},
				map[string]any{"question": "Can I change the theme later?", "answer": "Any time. Every section follows the active theme."},
			),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "openIndex", Label: "Initially open (position, -1 for none)", Kind: FieldNumber},
		{
			Key: "items", Label: "Questions", Kind: FieldList,
			Item: []Field{
				{Key: "question", Label: "Question", Kind: FieldText},
				{Key: "answer", Label: "Answer", Kind: FieldTextArea},
			},
			NewItem:   func() content.Content { return content.Content{"question": "New question?", "answer": "Answer."} },
			IndexKeys: []string{"openIndex"},
		},
	},
}

var ctaFamily = &Family{
	Name:  "cta",
	Label: "Call to Action",
	Defaults: func() content.Content {
		return content.Content{
			"title":    "Ready to get started?",
			"subtitle": "Join thousands of teams building with us.",
			"button":   button("Start now", "#contact"),
			"image":    image("800x600", "CTA"),
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{Key: "button", Label: "Button", Kind: FieldButton},
		{Key: "image", Label: "Image", Kind: FieldImage},
	},
}

var contactFamily = &Family{
	Name:  "contact",
	Label: "Contact",
	Defaults: func() content.Content {
		return content.Content{
			"title":          "Get in touch",
			"subtitle":       "We usually answer within one business day.",
			"email":          "hello@example.com",
			"phone":          "+1 555 0100",
			"address":        "100 Main Street, Springfield",
			"submitLabel":    "Send message",
			"successMessage": "Thanks! We will be in touch soon.",
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "subtitle", Label: "Subtitle", Kind: FieldTextArea},
		{Key: "email", Label: "Email", Kind: FieldText},
		{Key: "phone", Label: "Phone", Kind: FieldText},
		{Key: "address", Label: "Address", Kind: FieldText},
		{Key: "submitLabel", Label: "Submit label", Kind: FieldText},
		{Key: "successMessage", Label: "Confirmation message", Kind: FieldText},
	},
}

var textFamily = &Family{
	Name:  "text",
	Label: "Text",
	Defaults: func() content.Content {
		return content.Content{
			"title": "Our story",
			"body":  "Write **anything** here. Markdown is supported:\n\n- lists\n- [links](https://example.com)\n- and more",
		}
	},
	Fields: []Field{
		{Key: "title", Label: "Title", Kind: FieldText},
		{Key: "body", Label: "Body (Markdown)", Kind: FieldMarkdown},
	},
}

var footerFamily = &Family{
	Name:  "footer",
	Label: "Footers",
	Defaults: func() content.Content {
		return content.Content{
			"logo":    "Brand",
			"tagline": "Websites made simple.",
			"links": items(
				button("About", "#about"),
				button("Pricing", "#pricing"),
				button("Contact", "#contact"),
			),
			"socials": items(
				map[string]any{"icon": "fa-brands fa-x-twitter", "url": "https://x.com"},
				map[string]any{"icon": "fa-brands fa-github", "url": "https://github.com"},
				map[string]any{"icon": "fa-brands fa-linkedin", "url": "https://linkedin.com"},
			),
			"copyright": "© Brand. All rights reserved.",
		}
	},
	Fields: []Field{
		{Key: "logo", Label: "Logo text", Kind: FieldText},
		{Key: "tagline", Label: "Tagline", Kind: FieldText},
		{
			Key: "links", Label: "Links", Kind: FieldList, Item: buttonItem,
			NewItem: func() content.Content { return content.Content{"label": "New link", "url": "#"} },
		},
		{
			Key: "socials", Label: "Social links", Kind: FieldList,
			Item: []Field{
				{Key: "icon", Label: "Icon class", Kind: FieldText},
				{Key: "url", Label: "Link", Kind: FieldURL},
			},
			NewItem: func() content.Content { return content.Content{"icon": "fa-solid fa-link", "url": "https://"} },
		},
		{Key: "copyright", Label: "Copyright", Kind: FieldText},
	},
}
