package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
)

const htmxURL = "https://unpkg.com/htmx.org@1.9.12"

// editorScript lets htmx swap error responses into the notice area instead of
// dropping them.
const editorScript = `document.addEventListener("htmx:beforeSwap", function (e) {
  if (e.detail.xhr.status >= 400) {
    e.detail.shouldSwap = true;
    e.detail.isError = false;
    e.detail.target = document.getElementById("pc-notices");
  }
});`

// Base wraps content in the editor page shell styled with theme.
func Base(title string, theme *models.Theme, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var head sections.Markup
		head.Raw("<!DOCTYPE html>\n")
		head.Open("html", "lang", "en")
		head.Open("head")
		head.Void("meta", "charset", "utf-8")
		head.Void("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
		head.Elem("title", title+" · pagecraft")
		if theme != nil {
			if href := export.GoogleFontsURL(*theme); href != "" {
				head.Void("link", "rel", "stylesheet", "href", href)
			}
		}
		head.Void("link", "rel", "stylesheet", "href", export.DefaultFontAwesomeURL)
		head.Open("script", "src", htmxURL)
		head.Close("script")
		head.Open("style")
		head.Raw(getThemeCss(theme))
		head.Close("style")
		head.Close("head")
		head.Newline()
		head.Open("body", "class", "pc-app")
		head.Open("div", "id", "pc-notices", "aria-live", "polite")
		head.Close("div")
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}

		var tail sections.Markup
		tail.Open("script")
		tail.Raw(editorScript)
		tail.Close("script")
		tail.Close("body")
		tail.Close("html")
		tail.Newline()
		_, err := io.WriteString(w, tail.String())
		return err
	})
}
