package sections

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/codr1/pagecraft/internal/content"
)

// ErrInvalidNumber is returned for a number field whose value is not a whole number.
var ErrInvalidNumber = errors.New("not a whole number")

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextArea FieldKind = "textarea"
	FieldURL      FieldKind = "url"
	FieldImage    FieldKind = "image"
	FieldNumber   FieldKind = "number"
	FieldToggle   FieldKind = "toggle"
	FieldMarkdown FieldKind = "markdown"
	FieldButton   FieldKind = "button"
	FieldList     FieldKind = "list"
)

// Field describes one editable entry of a family's content.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind
	// Item describes the fields of each entry when Kind is FieldList.
	Item []Field
	// NewItem builds the entry appended by "add".
	NewItem func() content.Content
	// IndexKeys name top-level keys that hold a position in this list and must be
	// re-pointed when an entry is removed.
	IndexKeys []string
}

// Family groups the variants that share one content shape.
type Family struct {
	Name     string
	Label    string
	Defaults func() content.Content
	Fields   []Field
}

// Field returns the top-level field with key.
func (f *Family) Field(key string) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	for _, field := range f.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// ListField returns the list field with key.
func (f *Family) ListField(key string) (Field, bool) {
	field, ok := f.Field(key)
	if !ok || field.Kind != FieldList {
		return Field{}, false
	}
	return field, true
}

// KindAt resolves the field kind addressed by a dotted content path.
func (f *Family) KindAt(path string) FieldKind {
	segments := strings.Split(strings.Trim(path, "."), ".")
	field, ok := f.Field(segments[0])
	if !ok {
		return FieldText
	}
	switch {
	case field.Kind == FieldList && len(segments) >= 3:
		for _, item := range field.Item {
			if item.Key == segments[2] {
				return item.Kind
			}
		}
		return FieldText
	case field.Kind == FieldButton:
		return FieldText
	}
	return field.Kind
}

// isIndexKey reports whether key holds a position in one of the family's lists.
func (f *Family) isIndexKey(key string) bool {
	for _, field := range f.Fields {
		for _, indexKey := range field.IndexKeys {
			if indexKey == key {
				return true
			}
		}
	}
	return false
}

// Coerce converts a submitted form value to the type stored for path. An empty list
// position means none (-1).
func (f *Family) Coerce(path, raw string) (any, error) {
	switch f.KindAt(path) {
	case FieldNumber:
		v := strings.TrimSpace(raw)
		if v == "" && f.isIndexKey(strings.Trim(path, ".")) {
			return -1, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s = %q: %w", path, raw, ErrInvalidNumber)
		}
		return n, nil
	case FieldToggle:
		v := strings.ToLower(strings.TrimSpace(raw))
		return v == "true" || v == "on" || v == "1", nil
	}
	return raw, nil
}
