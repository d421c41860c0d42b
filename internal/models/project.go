package models

import (
	"sort"
	"time"

	"github.com/codr1/pagecraft/internal/content"
)

// Section is one content block on a page. Order is its zero-based display position and
// is dense and unique within a project after every completed mutation.
type Section struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"projectId,omitempty"`
	Type      string          `json:"type"`
	Content   content.Content `json:"content"`
	Order     int             `json:"order"`
}

// Project owns an ordered collection of sections and points at one active theme.
// Theme holds the active theme including any customizer edits; ThemeID names the
// catalog entry it started from.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ThemeID   string    `json:"themeId"`
	Theme     Theme     `json:"theme"`
	Published bool      `json:"published"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SortedSections returns the sections ordered by Order ascending. The sort is stable,
// so sections sharing an order keep their slice position.
func (p Project) SortedSections() []Section {
	return SortSections(p.Sections)
}

// SortSections returns a stably sorted copy of sections.
func SortSections(sections []Section) []Section {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// OrderIsDense reports whether the orders of sections form exactly {0..N-1}.
func OrderIsDense(sections []Section) bool {
	seen := make([]bool, len(sections))
	for _, s := range sections {
		if s.Order < 0 || s.Order >= len(sections) || seen[s.Order] {
			return false
		}
		seen[s.Order] = true
	}
	return true
}
