package content

import (
	"reflect"
	"testing"
)

func TestMergePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		def     Content
		variant Content
		custom  Content
		want    Content
	}{
		{
			name: "default_only",
			def:  Content{"title": "A", "subtitle": "B"},
			want: Content{"title": "A", "subtitle": "B"},
		},
		{
			name:    "variant_over_default",
			def:     Content{"title": "A", "subtitle": "B"},
			variant: Content{"title": "V"},
			want:    Content{"title": "V", "subtitle": "B"},
		},
		{
			name:    "custom_over_variant",
			def:     Content{"title": "A", "subtitle": "B"},
			variant: Content{"title": "V", "badge": "new"},
			custom:  Content{"title": "C"},
			want:    Content{"title": "C", "subtitle": "B", "badge": "new"},
		},
		{
			name:   "custom_adds_keys",
			def:    Content{"title": "A"},
			custom: Content{"image": "/a.png"},
			want:   Content{"title": "A", "image": "/a.png"},
		},
		{
			name:   "explicit_empty_value_still_wins",
			def:    Content{"title": "A"},
			custom: Content{"title": ""},
			want:   Content{"title": ""},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Merge(test.def, test.variant, test.custom)
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("Merge() = %#v, want %#v", got, test.want)
			}
			for k := range got {
				want := test.def[k]
				if v, ok := test.variant[k]; ok {
					want = v
				}
				if v, ok := test.custom[k]; ok {
					want = v
				}
				if !reflect.DeepEqual(got[k], want) {
					t.Fatalf("key %q = %#v, want %#v", k, got[k], want)
				}
			}
		})
	}
}

func TestMergeReplacesArrays(t *testing.T) {
	def := Content{"title": "A", "items": []any{1, 2}}
	custom := Content{"items": []any{3}}

	got := Merge(def, nil, custom)
	want := Content{"title": "A", "items": []any{3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge() = %#v, want %#v", got, want)
	}
}

func TestMergeReplacesNestedObjects(t *testing.T) {
	def := Content{"button": map[string]any{"label": "Go", "url": "/go"}}
	custom := Content{"button": map[string]any{"label": "Stop"}}

	got := Merge(def, custom)
	if _, ok := got.Map("button")["url"]; ok {
		t.Fatalf("nested object was deep merged: %#v", got["button"])
	}
	if got.Button("button").Label != "Stop" {
		t.Fatalf("button label = %q, want Stop", got.Button("button").Label)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	def := Content{"title": "A", "items": []any{map[string]any{"title": "x"}}}
	variant := Content{"badge": "v"}
	custom := Content{"items": []any{map[string]any{"title": "y"}}}

	defBefore := def.Clone()
	variantBefore := variant.Clone()
	customBefore := custom.Clone()

	got := Merge(def, variant, custom)
	got["title"] = "changed"
	got.List("items")[0]["title"] = "mutated"

	if !reflect.DeepEqual(def, defBefore) {
		t.Fatalf("default layer mutated: %#v", def)
	}
	if !reflect.DeepEqual(variant, variantBefore) {
		t.Fatalf("variant layer mutated: %#v", variant)
	}
	if !reflect.DeepEqual(custom, customBefore) {
		t.Fatalf("custom layer mutated: %#v", custom)
	}
}

func TestMergeNilLayers(t *testing.T) {
	got := Merge(nil, Content{"title": "A"}, nil)
	if got.String("title") != "A" {
		t.Fatalf("title = %q, want A", got.String("title"))
	}
	if empty := Merge(); empty == nil || len(empty) != 0 {
		t.Fatalf("Merge() with no layers = %#v, want empty content", empty)
	}
}

func TestMergeRawToleratesMalformedLayers(t *testing.T) {
	tests := []struct {
		name    string
		def     string
		variant string
		custom  string
		want    Content
	}{
		{
			name:    "malformed_variant",
			def:     `{"title":"A"}`,
			variant: `{"title":`,
			custom:  `{"subtitle":"S"}`,
			want:    Content{"title": "A", "subtitle": "S"},
		},
		{
			name:   "malformed_default",
			def:    `not json`,
			custom: `{"title":"C"}`,
			want:   Content{"title": "C"},
		},
		{
			name:    "null_and_empty",
			def:     `{"title":"A"}`,
			variant: `null`,
			custom:  ``,
			want:    Content{"title": "A"},
		},
		{
			name:   "array_is_not_a_layer",
			def:    `{"title":"A"}`,
			custom: `[1,2,3]`,
			want:   Content{"title": "A"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := MergeRaw([]byte(test.def), []byte(test.variant), []byte(test.custom))
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("MergeRaw() = %#v, want %#v", got, test.want)
			}
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	c := Content{"b": 1, "a": []any{"x"}, "c": map[string]any{"z": 1, "y": 2}}
	first, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Encode(c)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("Encode() not deterministic: %s vs %s", again, first)
		}
	}
}
