package sections

import "github.com/codr1/pagecraft/internal/content"

type builtin struct {
	family      *Family
	variant     string
	name        string
	description string
	preset      content.Content
	body        layout
}

func previewImage(tag string) string {
	return image("400x240", tag)
}

func builtins() []builtin {
	return []builtin{
		{family: headerFamily, variant: "simple", name: "Simple Header", description: "Logo on the left, navigation and a call to action on the right.", body: headerLayout(false)},
		{family: headerFamily, variant: "centered", name: "Centered Header", description: "Centered logo above the navigation.", body: headerLayout(true)},

		{family: heroFamily, variant: "split", name: "Split Hero", description: "Headline and buttons beside a large image.", body: heroLayout("split")},
		{
			family: heroFamily, variant: "gradient", name: "Gradient Hero", description: "Bold headline over a brand gradient.",
			preset: content.Content{"title": "Launch something beautiful", "badge": "Just released"},
			body:   heroLayout("gradient"),
		},
		{family: heroFamily, variant: "centered", name: "Centered Hero", description: "Centered headline with the image below.", body: heroLayout("centered")},
		{
			family: heroFamily, variant: "image", name: "Image Hero", description: "Headline over a full-width background photo.",
			preset: content.Content{"image": image("1600x900", "Background")},
			body:   heroLayout("image"),
		},

		{family: featuresFamily, variant: "grid", name: "Feature Grid", description: "Three columns of icon features.", body: featuresLayout("grid")},
		{family: featuresFamily, variant: "list", name: "Feature List", description: "Features stacked in a single column.", body: featuresLayout("list")},
		{family: featuresFamily, variant: "cards", name: "Feature Cards", description: "Features on elevated cards.", body: featuresLayout("cards")},

		{family: aboutFamily, variant: "split", name: "About Split", description: "Story text with highlights beside an image.", body: aboutLayout},

		{family: statsFamily, variant: "counter", name: "Counters", description: "Numbers that count up when the page loads.", body: statsLayout("counter")},
		{family: statsFamily, variant: "cards", name: "Stat Cards", description: "Key numbers on cards.", body: statsLayout("cards")},

		{family: galleryFamily, variant: "grid", name: "Gallery Grid", description: "Even grid of images with a lightbox.", body: galleryLayout("grid")},
		{family: galleryFamily, variant: "masonry", name: "Masonry Gallery", description: "Images of varying height in columns.", body: galleryLayout("masonry")},
		{family: galleryFamily, variant: "filterable", name: "Filterable Gallery", description: "Grid with category filter buttons.", body: galleryLayout("filterable")},

		{family: testimonialsFamily, variant: "grid", name: "Testimonial Grid", description: "Customer quotes side by side.", body: testimonialsLayout("grid")},
		{family: testimonialsFamily, variant: "carousel", name: "Testimonial Carousel", description: "One quote at a time with controls.", body: testimonialsLayout("carousel")},

		{family: pricingFamily, variant: "tiers", name: "Pricing Tiers", description: "Plans with feature lists and a highlighted tier.", body: pricingLayout("tiers")},
		{
			family: pricingFamily, variant: "compact", name: "Compact Pricing", description: "Plan names and prices only.",
			preset: content.Content{"featuredIndex": -1},
			body:   pricingLayout("compact"),
		},

		{family: teamFamily, variant: "grid", name: "Team Grid", description: "Photos, names and roles.", body: teamLayout},

		{family: faqFamily, variant: "accordion", name: "FAQ Accordion", description: "Questions that expand one at a time.", body: faqLayout("accordion")},
		{
			family: faqFamily, variant: "two-column", name: "Two Column FAQ", description: "Questions in two columns.",
			preset: content.Content{"openIndex": -1},
			body:   faqLayout("two-column"),
		},

		{family: ctaFamily, variant: "gradient", name: "Gradient CTA", description: "Call to action on a brand gradient.", body: ctaLayout("gradient")},
		{family: ctaFamily, variant: "simple", name: "Simple CTA", description: "Centered call to action.", body: ctaLayout("simple")},
		{family: ctaFamily, variant: "split", name: "Split CTA", description: "Call to action beside an image.", body: ctaLayout("split")},

		{family: contactFamily, variant: "form", name: "Contact Form", description: "Contact details above a message form.", body: contactLayout(false)},
		{family: contactFamily, variant: "split", name: "Contact Split", description: "Contact details beside a message form.", body: contactLayout(true)},

		{family: textFamily, variant: "markdown", name: "Rich Text", description: "Free text written in Markdown.", body: textLayout},

		{family: footerFamily, variant: "simple", name: "Simple Footer", description: "Logo, links and social icons in one row.", body: footerLayout(false)},
		{family: footerFamily, variant: "columns", name: "Footer Columns", description: "Brand, links and socials in columns.", body: footerLayout(true)},
	}
}

func registerBuiltins(r *Registry) error {
	for _, b := range builtins() {
		tag := b.family.Name + familySeparator + b.variant
		err := r.Register(Type{
			Tag:          tag,
			Name:         b.name,
			Description:  b.description,
			PreviewImage: previewImage(tag),
			Family:       b.family,
			Preset:       b.preset,
			Display:      liveFragment(b.body),
			Export:       staticFragment(b.body),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
