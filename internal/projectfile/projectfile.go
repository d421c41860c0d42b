// Package projectfile reads standalone project documents, the JSON or YAML files the
// CLI exports without a database.
package projectfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
	"github.com/codr1/pagecraft/internal/themes"
)

var (
	ErrUnknownFormat      = errors.New("unknown project file format")
	ErrDuplicateSectionID = errors.New("duplicate section id")
)

type Colors struct {
	Primary   string `json:"primary" yaml:"primary" validate:"omitempty,hexcolor"`
	Secondary string `json:"secondary" yaml:"secondary" validate:"omitempty,hexcolor"`
	Accent    string `json:"accent" yaml:"accent" validate:"omitempty,hexcolor"`
}

type Section struct {
	ID      string         `json:"id" yaml:"id"`
	Type    string         `json:"type" yaml:"type" validate:"required"`
	Content map[string]any `json:"content" yaml:"content"`
}

// Document is one page. Theme names a catalog theme and Fonts a font collection; both
// fall back to the catalog defaults when empty.
type Document struct {
	Name     string    `json:"name" yaml:"name" validate:"required"`
	Theme    string    `json:"theme" yaml:"theme"`
	Fonts    string    `json:"fonts" yaml:"fonts"`
	Colors   Colors    `json:"colors" yaml:"colors"`
	Sections []Section `json:"sections" yaml:"sections" validate:"dive"`
}

// Read parses the document at path; the extension picks the format.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read project file: %w", err)
	}
	doc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data as json (".json") or yaml (".yaml", ".yml") and validates it.
func Parse(data []byte, ext string) (Document, error) {
	var doc Document
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return Document{}, fmt.Errorf("%s failed %q validation", strings.TrimPrefix(fe.Namespace(), "Document."), fe.Tag())
		}
		return Document{}, err
	}
	return doc, nil
}

// Project builds the project the document describes. Section content is laid over the
// type's default content; sections without an id get one from their position so that
// exports of an unchanged file are identical. Given ids must be unique and generated
// ids skip them.
func (d Document) Project(catalog *themes.Catalog, registry *sections.Registry) (models.Project, error) {
	if registry == nil {
		registry = sections.Default()
	}
	themeID := strings.TrimSpace(d.Theme)
	if themeID == "" {
		themeID = catalog.DefaultID
	}
	theme, ok := catalog.Theme(themeID)
	if !ok {
		return models.Project{}, fmt.Errorf("unknown theme %q", themeID)
	}
	if d.Fonts != "" {
		collection, ok := catalog.FontCollection(d.Fonts)
		if !ok {
			return models.Project{}, fmt.Errorf("unknown font collection %q", d.Fonts)
		}
		theme = theme.WithFonts(collection.Fonts)
	}
	theme, err := theme.ApplyCustomColors(d.Colors.Primary, d.Colors.Secondary, d.Colors.Accent)
	if err != nil {
		return models.Project{}, fmt.Errorf("colors: %w", err)
	}

	project := models.Project{
		ID:       slug(d.Name),
		Name:     d.Name,
		ThemeID:  themeID,
		Theme:    theme.Resolved(),
		Sections: make([]models.Section, 0, len(d.Sections)),
	}
	ids, err := d.sectionIDs()
	if err != nil {
		return models.Project{}, err
	}
	for i, s := range d.Sections {
		custom, err := normalize(s.Content)
		if err != nil {
			return models.Project{}, fmt.Errorf("section %d (%s): %w", i, s.Type, err)
		}
		id := ids[i]
		project.Sections = append(project.Sections, models.Section{
			ID:        id,
			ProjectID: project.ID,
			Type:      s.Type,
			Content:   content.Merge(registry.DefaultContent(s.Type), custom),
			Order:     i,
		})
	}
	return project, nil
}

// sectionIDs returns the id of every section: the given one, or section-N for the
// first N from the section's position up that no other section claims.
func (d Document) sectionIDs() ([]string, error) {
	ids := make([]string, len(d.Sections))
	taken := make(map[string]int, len(d.Sections))
	for i, s := range d.Sections {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			continue
		}
		if first, ok := taken[id]; ok {
			return nil, fmt.Errorf("sections %d and %d both use %q: %w", first, i, id, ErrDuplicateSectionID)
		}
		taken[id] = i
		ids[i] = id
	}
	for i := range ids {
		if ids[i] != "" {
			continue
		}
		for n := i + 1; ; n++ {
			id := fmt.Sprintf("section-%d", n)
			if _, ok := taken[id]; !ok {
				taken[id] = i
				ids[i] = id
				break
			}
		}
	}
	return ids, nil
}

// normalize round-trips yaml values through json so numbers and nested maps have the
// same shapes as stored content.
func normalize(raw map[string]any) (content.Content, error) {
	if len(raw) == 0 {
		return content.Content{}, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return content.Decode(data)
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
