package content

import (
	"errors"
	"reflect"
	"testing"
)

func sampleFeatures() Content {
	return Content{
		"title": "Features",
		"features": []any{
			map[string]any{"title": "Fast", "description": "Very"},
			map[string]any{"title": "Safe", "description": "Quite"},
		},
		"button": map[string]any{"label": "Go", "url": "/go"},
	}
}

func TestSetPath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
		check func(t *testing.T, c Content)
	}{
		{
			name:  "top_level",
			path:  "title",
			value: "New",
			check: func(t *testing.T, c Content) {
				if c.String("title") != "New" {
					t.Fatalf("title = %q", c.String("title"))
				}
			},
		},
		{
			name:  "nested_object",
			path:  "button.url",
			value: "/next",
			check: func(t *testing.T, c Content) {
				if c.Button("button").URL != "/next" || c.Button("button").Label != "Go" {
					t.Fatalf("button = %#v", c.Button("button"))
				}
			},
		},
		{
			name:  "list_item_field",
			path:  "features.1.title",
			value: "Secure",
			check: func(t *testing.T, c Content) {
				if got := c.List("features")[1].String("title"); got != "Secure" {
					t.Fatalf("features[1].title = %q", got)
				}
			},
		},
		{
			name:  "creates_missing_object",
			path:  "secondaryButton.label",
			value: "More",
			check: func(t *testing.T, c Content) {
				if c.Button("secondaryButton").Label != "More" {
					t.Fatalf("secondaryButton = %#v", c["secondaryButton"])
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			original := sampleFeatures()
			before := original.Clone()
			got, err := SetPath(original, test.path, test.value)
			if err != nil {
				t.Fatalf("SetPath() error = %v", err)
			}
			test.check(t, got)
			if !reflect.DeepEqual(original, before) {
				t.Fatalf("SetPath mutated its input")
			}
		})
	}
}

func TestSetPathErrors(t *testing.T) {
	c := sampleFeatures()
	if _, err := SetPath(c, "", "x"); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("empty path error = %v, want ErrEmptyPath", err)
	}
	if _, err := SetPath(c, "features.9.title", "x"); !errors.Is(err, ErrIndexInvalid) {
		t.Fatalf("out of range error = %v, want ErrIndexInvalid", err)
	}
	if _, err := SetPath(c, "title.nested", "x"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("scalar traversal error = %v, want ErrInvalidPath", err)
	}
}

func TestGetPath(t *testing.T) {
	c := sampleFeatures()
	v, ok := GetPath(c, "features.0.title")
	if !ok || v != "Fast" {
		t.Fatalf("GetPath(features.0.title) = %v, %t", v, ok)
	}
	if _, ok := GetPath(c, "features.5"); ok {
		t.Fatalf("GetPath(features.5) reported present")
	}
}

func TestAppendAndRemoveItem(t *testing.T) {
	c := sampleFeatures()

	added := AppendItem(c, "features", Content{"title": "New"})
	if added.Len("features") != 3 || c.Len("features") != 2 {
		t.Fatalf("AppendItem lens = %d/%d, want 3/2", added.Len("features"), c.Len("features"))
	}

	removed, err := RemoveItem(added, "features", 0)
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	titles := []string{}
	for _, item := range removed.List("features") {
		titles = append(titles, item.String("title"))
	}
	if !reflect.DeepEqual(titles, []string{"Safe", "New"}) {
		t.Fatalf("titles after remove = %v", titles)
	}

	if _, err := RemoveItem(c, "features", 2); !errors.Is(err, ErrIndexInvalid) {
		t.Fatalf("RemoveItem out of range error = %v", err)
	}
}

func TestShiftIndex(t *testing.T) {
	tests := []struct {
		name    string
		current int
		removed int
		want    int
	}{
		{name: "removed_selected", current: 1, removed: 1, want: -1},
		{name: "after_removed", current: 2, removed: 0, want: 1},
		{name: "before_removed", current: 0, removed: 2, want: 0},
		{name: "none_selected", current: -1, removed: 0, want: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := ShiftIndex(Content{"featuredIndex": test.current}, "featuredIndex", test.removed)
			if got := c.Int("featuredIndex", -99); got != test.want {
				t.Fatalf("featuredIndex = %d, want %d", got, test.want)
			}
		})
	}

	untouched := ShiftIndex(Content{}, "featuredIndex", 0)
	if untouched.Has("featuredIndex") {
		t.Fatalf("ShiftIndex added a missing key")
	}
}
