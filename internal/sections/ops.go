package sections

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codr1/pagecraft/internal/content"
)

var ErrNotAList = errors.New("field is not a list")

// SetField stores a submitted form value at path, converted to the field's type.
// Number fields reject values that are not whole numbers with ErrInvalidNumber.
// Tags without a family keep the raw string.
func (r *Registry) SetField(tag string, c content.Content, path, raw string) (content.Content, error) {
	var value any = raw
	if f, ok := r.FamilyForTag(tag); ok {
		coerced, err := f.Coerce(path, raw)
		if err != nil {
			return nil, err
		}
		value = coerced
	}
	return content.SetPath(c, path, value)
}

// AddItem appends the family's new entry to the list at key.
func (r *Registry) AddItem(tag string, c content.Content, key string) (content.Content, error) {
	field, err := r.listField(tag, key)
	if err != nil {
		return nil, err
	}
	item := content.Content{}
	if field.NewItem != nil {
		item = field.NewItem()
	}
	return content.AppendItem(c, key, item), nil
}

// RemoveItem deletes entry index of the list at key and re-points every position
// based key that refers into that list.
func (r *Registry) RemoveItem(tag string, c content.Content, key string, index int) (content.Content, error) {
	field, err := r.listField(tag, key)
	if err != nil {
		return nil, err
	}
	out, err := content.RemoveItem(c, key, index)
	if err != nil {
		return nil, err
	}
	for _, indexKey := range field.IndexKeys {
		content.ShiftIndex(out, indexKey, index)
	}
	return out, nil
}

func (r *Registry) listField(tag, key string) (Field, error) {
	key = strings.TrimSpace(key)
	f, ok := r.FamilyForTag(tag)
	if !ok {
		return Field{}, fmt.Errorf("%s has no %q list: %w", tag, key, ErrNotAList)
	}
	field, ok := f.ListField(key)
	if !ok {
		return Field{}, fmt.Errorf("%s has no %q list: %w", tag, key, ErrNotAList)
	}
	return field, nil
}
