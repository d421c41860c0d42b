package sections

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
)

var testEndpoints = EditEndpoints{
	Field:      "/sections/s1/field",
	AddItem:    "/sections/s1/items/add",
	RemoveItem: "/sections/s1/items/remove",
	Raw:        "/sections/s1/raw",
	Delete:     "/sections/s1/delete",
	MoveUp:     "/sections/s1/up",
	MoveDown:   "/sections/s1/down",
	Toggle:     "/sections/s1/mode",
	Target:     "#shell-s1",
	ListTarget: "#sections",
}

func section(tag string, c content.Content) models.Section {
	return models.Section{ID: "s1", ProjectID: "p1", Type: tag, Content: c}
}

func TestRenderEveryTagBothModes(t *testing.T) {
	r := Default()
	theme := models.DefaultTheme()
	for _, tag := range r.Tags() {
		s := section(tag, r.DefaultContent(tag))

		display := r.RenderString(s, theme, ModeDisplay, testEndpoints)
		if !strings.Contains(display, `data-section-type="`+tag+`"`) {
			t.Fatalf("%s display missing type marker: %s", tag, display)
		}
		if strings.Contains(display, unavailableText) {
			t.Fatalf("%s display fell back to the placeholder", tag)
		}

		editing := r.RenderString(s, theme, ModeEditing, testEndpoints)
		if !strings.Contains(editing, `hx-post="/sections/s1/field"`) {
			t.Fatalf("%s editing view has no field inputs", tag)
		}

		var m Markup
		if !r.Export(&m, s, theme) {
			t.Fatalf("%s has no export generator", tag)
		}
	}
}

func TestRenderComponent(t *testing.T) {
	s := section("cta-simple", Default().DefaultContent("cta-simple"))
	var buf bytes.Buffer
	if err := Render(s, models.DefaultTheme(), ModeDisplay, testEndpoints).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Ready to get started?") {
		t.Fatalf("component output missing title: %s", buf.String())
	}
}

func TestRenderUnknownTypeFallbacks(t *testing.T) {
	r := Default()
	s := section("carousel-3d", content.Content{"title": "Spinning things", "speed": 3})

	display := r.RenderString(s, models.Theme{}, ModeDisplay, testEndpoints)
	if !strings.Contains(display, "Spinning things") || !strings.Contains(display, "Carousel") {
		t.Fatalf("generic preview = %s", display)
	}

	editing := r.RenderString(s, models.Theme{}, ModeEditing, testEndpoints)
	if !strings.Contains(editing, `<textarea name="content"`) || !strings.Contains(editing, "&#34;speed&#34;: 3") {
		t.Fatalf("raw editor = %s", editing)
	}

	var m Markup
	if r.Export(&m, s, models.Theme{}) {
		t.Fatalf("Export() reported a generator for an unknown type")
	}
	if !strings.Contains(m.String(), unavailableText) || !strings.Contains(m.String(), "Spinning things") {
		t.Fatalf("placeholder = %s", m.String())
	}
}

func TestRenderEscapesContent(t *testing.T) {
	s := section("hero-split", content.Content{
		"title":      `<script>alert(1)</script>`,
		"buttonText": "Go",
		"buttonLink": "javascript:alert(1)",
	})
	out := Default().RenderString(s, models.DefaultTheme(), ModeDisplay, testEndpoints)
	if strings.Contains(out, "<script>") {
		t.Fatalf("title not escaped: %s", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe link kept: %s", out)
	}
}

func TestCounterDiffersOnlyByTarget(t *testing.T) {
	r := Default()
	s := section("stats-counter", content.Content{
		"stats": []any{map[string]any{"value": 42, "suffix": "+", "label": "Sites"}},
	})

	live := r.RenderString(s, models.DefaultTheme(), ModeDisplay, testEndpoints)
	var m Markup
	r.Export(&m, s, models.DefaultTheme())
	static := m.String()

	if !strings.Contains(live, `<span class="pc-stat-value">42</span>`) {
		t.Fatalf("live counter = %s", live)
	}
	if !strings.Contains(static, `data-count="42"`) {
		t.Fatalf("static counter = %s", static)
	}
}

func TestMarkdownBody(t *testing.T) {
	s := section("text-markdown", content.Content{"body": "# Hi\n\n<b>raw</b> and **bold**"})
	out := Default().RenderString(s, models.DefaultTheme(), ModeDisplay, testEndpoints)
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<b>raw</b>") {
		t.Fatalf("raw html passed through: %s", out)
	}
}

func TestEditingListControls(t *testing.T) {
	r := Default()
	s := section("pricing-tiers", r.DefaultContent("pricing-tiers"))
	out := r.RenderString(s, models.DefaultTheme(), ModeEditing, testEndpoints)

	for _, want := range []string{
		`hx-post="/sections/s1/items/add"`,
		`hx-post="/sections/s1/items/remove"`,
		`{&#34;path&#34;:&#34;tiers.1.button.label&#34;}`,
		`{&#34;index&#34;:&#34;2&#34;,&#34;key&#34;:&#34;tiers&#34;}`,
		`hx-post="/sections/s1/mode"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("editing view missing %s", want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"editing": ModeEditing,
		"edit":    ModeEditing,
		"display": ModeDisplay,
		"":        ModeDisplay,
	}
	for in, want := range tests {
		if got := ParseMode(in); got != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
	if ModeDisplay.Toggle() != ModeEditing || ModeEditing.Toggle() != ModeDisplay {
		t.Fatalf("Toggle() does not flip modes")
	}
}
