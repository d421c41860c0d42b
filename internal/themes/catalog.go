// Package themes loads the embedded theme catalog and font collections.
package themes

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/codr1/pagecraft/assets"
	"github.com/codr1/pagecraft/internal/models"
)

type catalogEntry struct {
	models.Theme `yaml:",inline"`
	Default      bool `yaml:"default"`
}

type catalogFile struct {
	Themes []catalogEntry `yaml:"themes"`
}

type fontsFile struct {
	Collections []models.FontCollection `yaml:"collections"`
}

// Catalog is the fixed list of themes and font collections offered to the customizer.
type Catalog struct {
	Themes    []models.Theme
	Fonts     []models.FontCollection
	DefaultID string
}

var (
	builtin     *Catalog
	builtinErr  error
	builtinOnce sync.Once
)

// Builtin parses the embedded catalog once.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Load(assets.FS)
	})
	return builtin, builtinErr
}

// Load reads themes.yaml and fonts.yaml from fsys. Every theme is resolved and must
// validate; exactly one may be marked default, and without one the first theme is.
func Load(fsys fs.FS) (*Catalog, error) {
	themes, defaultID, err := parseThemes(fsys)
	if err != nil {
		return nil, err
	}
	fonts, err := parseFonts(fsys)
	if err != nil {
		return nil, err
	}
	return &Catalog{Themes: themes, Fonts: fonts, DefaultID: defaultID}, nil
}

func parseThemes(fsys fs.FS) ([]models.Theme, string, error) {
	raw, err := fs.ReadFile(fsys, assets.ThemesPath)
	if err != nil {
		return nil, "", fmt.Errorf("open themes file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, "", fmt.Errorf("parse themes file: %w", err)
	}
	if len(file.Themes) == 0 {
		return nil, "", fmt.Errorf("themes file defines no themes")
	}

	themes := make([]models.Theme, 0, len(file.Themes))
	seen := make(map[string]bool, len(file.Themes))
	defaultID := ""
	for i, entry := range file.Themes {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, "", fmt.Errorf("theme %d has no id", i+1)
		}
		if seen[id] {
			return nil, "", fmt.Errorf("duplicate theme id %q", id)
		}
		seen[id] = true

		if entry.Default {
			if defaultID != "" {
				return nil, "", fmt.Errorf("multiple default themes: %q and %q", defaultID, id)
			}
			defaultID = id
		}

		theme := entry.Theme.Resolved()
		if err := theme.Validate(); err != nil {
			return nil, "", fmt.Errorf("invalid theme %q: %w", id, err)
		}
		themes = append(themes, theme)
	}
	if defaultID == "" {
		defaultID = themes[0].ID
	}
	return themes, defaultID, nil
}

func parseFonts(fsys fs.FS) ([]models.FontCollection, error) {
	raw, err := fs.ReadFile(fsys, assets.FontsPath)
	if err != nil {
		return nil, fmt.Errorf("open fonts file: %w", err)
	}
	var file fontsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse fonts file: %w", err)
	}
	for _, collection := range file.Collections {
		if err := collection.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Collections, nil
}

// Theme returns the catalog theme with id.
func (c *Catalog) Theme(id string) (models.Theme, bool) {
	for _, theme := range c.Themes {
		if theme.ID == id {
			return theme, true
		}
	}
	return models.Theme{}, false
}

// Default returns the catalog's default theme.
func (c *Catalog) Default() models.Theme {
	if theme, ok := c.Theme(c.DefaultID); ok {
		return theme
	}
	return models.DefaultTheme()
}

// FontCollection returns the font collection with id.
func (c *Catalog) FontCollection(id string) (models.FontCollection, bool) {
	for _, collection := range c.Fonts {
		if collection.ID == id {
			return collection, true
		}
	}
	return models.FontCollection{}, false
}
