package themes

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/codr1/pagecraft/internal/models"
)

// Match is a catalog theme ranked by how close its primary color is to a brand color.
type Match struct {
	Theme    models.Theme `json:"theme"`
	Distance float64      `json:"distance"`
}

// Nearest ranks the catalog themes by the CIE Lab distance between their primary color
// and hex, closest first.
func (c *Catalog) Nearest(hex string) ([]Match, error) {
	target, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	matches := make([]Match, 0, len(c.Themes))
	for _, theme := range c.Themes {
		primary, err := colorful.Hex(theme.Colors.Primary)
		if err != nil {
			continue
		}
		matches = append(matches, Match{Theme: theme, Distance: target.DistanceLab(primary)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches, nil
}
