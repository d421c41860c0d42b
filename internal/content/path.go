package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyPath    = errors.New("content path is empty")
	ErrInvalidPath  = errors.New("content path does not match content shape")
	ErrIndexInvalid = errors.New("list index out of range")
)

// SetPath returns a copy of c with value stored at a dotted path such as
// "features.2.title" or "button.url". Missing objects along the path are created;
// list indexes must already exist.
func SetPath(c Content, path string, value any) (Content, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, ErrEmptyPath
	}
	out := c.Clone()
	if err := setIn(out, segments, value); err != nil {
		return nil, fmt.Errorf("set %q: %w", path, err)
	}
	return out, nil
}

// GetPath reads the value at a dotted path, reporting whether it exists.
func GetPath(c Content, path string) (any, bool) {
	var current any = c
	for _, seg := range splitPath(path) {
		switch node := current.(type) {
		case Content:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = v
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = v
		default:
			list := asSlice(current)
			idx, err := strconv.Atoi(seg)
			if list == nil || err != nil || idx < 0 || idx >= len(list) {
				return nil, false
			}
			current = list[idx]
		}
	}
	return current, true
}

// AppendItem returns a copy of c with item added to the end of the list at key.
func AppendItem(c Content, key string, item Content) Content {
	out := c.Clone()
	list := asSlice(out[key])
	next := make([]any, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, map[string]any(item.Clone()))
	out[key] = next
	return out
}

// RemoveItem returns a copy of c without entry index of the list at key.
func RemoveItem(c Content, key string, index int) (Content, error) {
	out := c.Clone()
	list := asSlice(out[key])
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("remove %s[%d]: %w", key, index, ErrIndexInvalid)
	}
	next := make([]any, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)
	out[key] = next
	return out, nil
}

// ShiftIndex re-points a position based lookup after the list entry at removed was
// deleted: the removed position becomes -1 and later positions move down by one.
// It updates c in place; pass a copy the caller owns.
func ShiftIndex(c Content, key string, removed int) Content {
	if !c.Has(key) {
		return c
	}
	current := c.Int(key, -1)
	switch {
	case current == removed:
		c[key] = -1
	case current > removed:
		c[key] = current - 1
	}
	return c
}

func splitPath(path string) []string {
	path = strings.Trim(strings.TrimSpace(path), ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func setIn(node Content, segments []string, value any) error {
	key := segments[0]
	if len(segments) == 1 {
		node[key] = value
		return nil
	}

	child := node[key]
	switch typed := child.(type) {
	case nil:
		next := Content{}
		node[key] = map[string]any(next)
		return setIn(next, segments[1:], value)
	case Content:
		return setIn(typed, segments[1:], value)
	case map[string]any:
		return setIn(Content(typed), segments[1:], value)
	}

	list := asSlice(child)
	if list == nil {
		return ErrInvalidPath
	}
	idx, err := strconv.Atoi(segments[1])
	if err != nil || idx < 0 || idx >= len(list) {
		return ErrIndexInvalid
	}
	if len(segments) == 2 {
		list[idx] = value
		node[key] = list
		return nil
	}
	item, ok := list[idx].(map[string]any)
	if !ok {
		if c, isContent := list[idx].(Content); isContent {
			item = c
		} else {
			item = map[string]any{}
			list[idx] = item
		}
	}
	node[key] = list
	return setIn(Content(item), segments[2:], value)
}
