// Package content holds the schema-free content records carried by sections and the
// overlay rules used to combine them.
package content

import (
	"fmt"
	"strconv"
	"strings"
)

// Content is the effective data of one section. Its shape is decided by the section's
// type tag; values are strings, numbers, bools, nested Content/maps and lists.
type Content map[string]any

// Button is the common {label,url} pair used by calls to action and menus.
type Button struct {
	Label string
	URL   string
}

// Clone returns a deep copy so callers can mutate the result without touching c.
func (c Content) Clone() Content {
	if c == nil {
		return Content{}
	}
	out := make(Content, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case Content:
		return typed.Clone()
	case map[string]any:
		return map[string]any(Content(typed).Clone())
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = map[string]any(Content(item).Clone())
		}
		return out
	case []Content:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = map[string]any(item.Clone())
		}
		return out
	case []string:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	default:
		return v
	}
}

// Has reports whether key is present, regardless of its value.
func (c Content) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the value at key formatted as text, or "" when absent.
func (c Content) String(key string) string {
	return asString(c[key])
}

// StringOr returns String(key) or fallback when the value is empty.
func (c Content) StringOr(key, fallback string) string {
	if s := strings.TrimSpace(c.String(key)); s != "" {
		return s
	}
	return fallback
}

// Int returns the value at key as an int. Strings holding integers are accepted.
func (c Content) Int(key string, fallback int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

// Bool returns the value at key as a bool; "true"/"on"/"1" strings count as true.
func (c Content) Bool(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
	}
	return false
}

// Map returns the nested object at key, or an empty Content.
func (c Content) Map(key string) Content {
	return asContent(c[key])
}

// List returns the list of objects at key. Non-object entries are wrapped as {"text": v}.
func (c Content) List(key string) []Content {
	raw := asSlice(c[key])
	out := make([]Content, 0, len(raw))
	for _, item := range raw {
		if m := asContent(item); m != nil && isObject(item) {
			out = append(out, m)
			continue
		}
		out = append(out, Content{"text": asString(item)})
	}
	return out
}

// Len returns the number of entries of the list at key.
func (c Content) Len(key string) int {
	return len(asSlice(c[key]))
}

// Button reads a {label,url} object at key.
func (c Content) Button(key string) Button {
	m := c.Map(key)
	return Button{Label: m.String("label"), URL: m.String("url")}
}

// Lines splits a newline separated text field into trimmed, non-empty lines.
func (c Content) Lines(key string) []string {
	var out []string
	for _, line := range strings.Split(c.String(key), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isObject(v any) bool {
	switch v.(type) {
	case Content, map[string]any:
		return true
	}
	return false
}

func asContent(v any) Content {
	switch typed := v.(type) {
	case Content:
		return typed
	case map[string]any:
		return Content(typed)
	}
	return Content{}
}

func asSlice(v any) []any {
	switch typed := v.(type) {
	case []any:
		return typed
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	case []Content:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	case []string:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	}
	return nil
}

func asString(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}
