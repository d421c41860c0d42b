package sections

import (
	"errors"
	"testing"

	"github.com/codr1/pagecraft/internal/content"
)

func TestRemoveItemRepointsDerivedIndex(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		key      string
		indexKey string
		start    int
		remove   int
		want     int
	}{
		{name: "featured_removed", tag: "pricing-tiers", key: "tiers", indexKey: "featuredIndex", start: 1, remove: 1, want: -1},
		{name: "featured_after_removed", tag: "pricing-tiers", key: "tiers", indexKey: "featuredIndex", start: 2, remove: 0, want: 1},
		{name: "featured_before_removed", tag: "pricing-tiers", key: "tiers", indexKey: "featuredIndex", start: 0, remove: 2, want: 0},
		{name: "open_question_removed", tag: "faq-accordion", key: "items", indexKey: "openIndex", start: 0, remove: 0, want: -1},
		{name: "open_question_shifts", tag: "faq-accordion", key: "items", indexKey: "openIndex", start: 2, remove: 1, want: 1},
	}

	r := Default()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := r.DefaultContent(test.tag)
			c[test.indexKey] = test.start
			before := c.Len(test.key)

			out, err := r.RemoveItem(test.tag, c, test.key, test.remove)
			if err != nil {
				t.Fatalf("RemoveItem() error = %v", err)
			}
			if got := out.Int(test.indexKey, -99); got != test.want {
				t.Fatalf("%s = %d, want %d", test.indexKey, got, test.want)
			}
			if out.Len(test.key) != before-1 {
				t.Fatalf("list length = %d, want %d", out.Len(test.key), before-1)
			}
			if c.Int(test.indexKey, -99) != test.start || c.Len(test.key) != before {
				t.Fatalf("RemoveItem mutated its input")
			}
		})
	}
}

func TestRemoveItemOutOfRange(t *testing.T) {
	r := Default()
	c := r.DefaultContent("faq-accordion")
	if _, err := r.RemoveItem("faq-accordion", c, "items", 10); !errors.Is(err, content.ErrIndexInvalid) {
		t.Fatalf("RemoveItem() error = %v, want ErrIndexInvalid", err)
	}
}

func TestAddItem(t *testing.T) {
	r := Default()
	c := r.DefaultContent("features-grid")
	out, err := r.AddItem("features-grid", c, "features")
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if out.Len("features") != c.Len("features")+1 {
		t.Fatalf("features = %d, want %d", out.Len("features"), c.Len("features")+1)
	}
	last := out.List("features")[out.Len("features")-1]
	if last.String("title") != "New feature" {
		t.Fatalf("new item = %v", last)
	}

	if _, err := r.AddItem("features-grid", c, "title"); !errors.Is(err, ErrNotAList) {
		t.Fatalf("AddItem(title) error = %v, want ErrNotAList", err)
	}
	if _, err := r.AddItem("mystery-box", c, "features"); !errors.Is(err, ErrNotAList) {
		t.Fatalf("AddItem(unknown family) error = %v, want ErrNotAList", err)
	}
}

func TestSetFieldCoercesByKind(t *testing.T) {
	r := Default()
	tests := []struct {
		name    string
		tag     string
		path    string
		raw     string
		want    any
		wantErr bool
	}{
		{name: "text", tag: "hero-split", path: "title", raw: "Hello", want: "Hello"},
		{name: "nested_button", tag: "hero-split", path: "secondaryButton.url", raw: "#about", want: "#about"},
		{name: "number_in_list", tag: "stats-counter", path: "stats.0.value", raw: " 250 ", want: 250},
		{name: "toggle", tag: "header-simple", path: "sticky", raw: "false", want: false},
		{name: "featured_index", tag: "pricing-tiers", path: "featuredIndex", raw: "2", want: 2},
		{name: "unknown_family", tag: "mystery-box", path: "speed", raw: "3", want: "3"},
		{name: "negative_number", tag: "stats-counter", path: "stats.0.value", raw: "-3", want: -3},
		{name: "cleared_featured_index", tag: "pricing-tiers", path: "featuredIndex", raw: "", want: -1},
		{name: "cleared_open_index", tag: "faq-accordion", path: "openIndex", raw: "  ", want: -1},
		{name: "decimal", tag: "stats-counter", path: "stats.0.value", raw: "4.5", wantErr: true},
		{name: "thousands_separator", tag: "stats-counter", path: "stats.0.value", raw: "1,200", wantErr: true},
		{name: "suffix", tag: "stats-counter", path: "stats.0.value", raw: "10k", wantErr: true},
		{name: "empty_number", tag: "stats-counter", path: "stats.0.value", raw: "", wantErr: true},
		{name: "featured_index_word", tag: "pricing-tiers", path: "featuredIndex", raw: "none", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := r.DefaultContent(test.tag)
			out, err := r.SetField(test.tag, before, test.path, test.raw)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Fatalf("SetField(%q) error = %v, want ErrInvalidNumber", test.raw, err)
				}
				if got, _ := content.GetPath(before, test.path); got == nil {
					t.Fatalf("input content lost %s", test.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetField() error = %v", err)
			}
			got, ok := content.GetPath(out, test.path)
			if !ok || got != test.want {
				t.Fatalf("value at %s = %#v, want %#v", test.path, got, test.want)
			}
		})
	}
}
