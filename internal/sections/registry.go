// Package sections maps section type tags to their default content, their edit form
// and the two markup generators (live display and static export) that must stay in
// lockstep.
package sections

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
)

const familySeparator = "-"

var (
	ErrDuplicateType   = errors.New("section type already registered")
	ErrMissingRenderer = errors.New("section type needs both a display and an export generator")
	ErrMissingFamily   = errors.New("section type has no family")
	ErrInvalidTag      = errors.New("section type tag is invalid")
)

// Target says where generated markup will live.
type Target int

const (
	// TargetLive is the preview inside the editor, where the editor page script runs.
	TargetLive Target = iota
	// TargetStatic is the exported document, driven only by its inline glue script.
	TargetStatic
)

// View is everything a fragment generator may read.
type View struct {
	Section models.Section
	Content content.Content
	Theme   models.Theme
	Target  Target
}

// Fragment writes the markup of one section.
type Fragment func(m *Markup, v View)

// EditFragment writes the editable form of one section.
type EditFragment func(m *Markup, v View, e EditEndpoints)

// Type is one registered section type tag.
type Type struct {
	Tag          string
	Name         string
	Description  string
	PreviewImage string
	Family       *Family
	// Preset overlays the family defaults for this variant.
	Preset  content.Content
	Edit    EditFragment
	Display Fragment
	Export  Fragment
}

// CatalogEntry is what the section picker shows for one type.
type CatalogEntry struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PreviewImageURL string `json:"previewImageUrl"`
	GroupLabel      string `json:"groupLabel"`
}

// Registry is the single dispatch table for section types.
type Registry struct {
	mu       sync.RWMutex
	types    map[string]*Type
	order    []string
	families map[string]*Family
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

func NewRegistry() *Registry {
	return &Registry{
		types:    make(map[string]*Type),
		families: make(map[string]*Family),
	}
}

// Default returns the registry holding every built-in section type.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		if err := registerBuiltins(r); err != nil {
			panic(fmt.Sprintf("register built-in section types: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// FamilyOf returns the family part of a tag: everything before the first separator.
func FamilyOf(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.Index(tag, familySeparator); i >= 0 {
		return tag[:i]
	}
	return tag
}

// Register adds a type. Its family is registered on first use. A type must carry both a
// display and an export generator.
func (r *Registry) Register(t Type) error {
	t.Tag = strings.TrimSpace(t.Tag)
	if t.Tag == "" {
		return ErrInvalidTag
	}
	if t.Family == nil {
		return fmt.Errorf("%s: %w", t.Tag, ErrMissingFamily)
	}
	if FamilyOf(t.Tag) != t.Family.Name {
		return fmt.Errorf("%s: tag prefix does not match family %q: %w", t.Tag, t.Family.Name, ErrInvalidTag)
	}
	if t.Display == nil || t.Export == nil {
		return fmt.Errorf("%s: %w", t.Tag, ErrMissingRenderer)
	}
	if t.Edit == nil {
		t.Edit = schemaEditor(t.Family.Fields)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[t.Tag]; exists {
		return fmt.Errorf("%s: %w", t.Tag, ErrDuplicateType)
	}
	if existing, ok := r.families[t.Family.Name]; ok && existing != t.Family {
		return fmt.Errorf("%s: family %q registered twice", t.Tag, t.Family.Name)
	}
	r.families[t.Family.Name] = t.Family
	registered := t
	r.types[t.Tag] = &registered
	r.order = append(r.order, t.Tag)
	return nil
}

// Lookup returns the registered type for an exact tag.
func (r *Registry) Lookup(tag string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[tag]
	return t, ok
}

// Family returns a registered family by name.
func (r *Registry) Family(name string) (*Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[name]
	return f, ok
}

// FamilyForTag resolves the family of any tag, registered or not.
func (r *Registry) FamilyForTag(tag string) (*Family, bool) {
	if t, ok := r.Lookup(tag); ok {
		return t.Family, true
	}
	return r.Family(FamilyOf(tag))
}

// DefaultContent returns fresh default content for tag. Registered tags get their
// family defaults overlaid by the variant preset; tags of a known family fall back to
// the family defaults; anything else gets an empty object.
func (r *Registry) DefaultContent(tag string) content.Content {
	if t, ok := r.Lookup(tag); ok {
		return content.Merge(t.Family.Defaults(), t.Preset)
	}
	if f, ok := r.Family(FamilyOf(tag)); ok {
		return f.Defaults()
	}
	return content.Content{}
}

// Tags lists registered tags in registration order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DisplayTags lists the tags of the live display dispatch table, sorted.
func (r *Registry) DisplayTags() []string {
	return r.tagsWhere(func(t *Type) bool { return t.Display != nil })
}

// ExportTags lists the tags of the export dispatch table, sorted.
func (r *Registry) ExportTags() []string {
	return r.tagsWhere(func(t *Type) bool { return t.Export != nil })
}

func (r *Registry) tagsWhere(keep func(*Type) bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for tag, t := range r.types {
		if keep(t) {
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// Catalog lists every registered type for the section picker, in registration order.
func (r *Registry) Catalog() []CatalogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]CatalogEntry, 0, len(r.order))
	for _, tag := range r.order {
		t := r.types[tag]
		entries = append(entries, CatalogEntry{
			Type:            t.Tag,
			Name:            t.Name,
			Description:     t.Description,
			PreviewImageURL: t.PreviewImage,
			GroupLabel:      t.Family.Label,
		})
	}
	return entries
}
