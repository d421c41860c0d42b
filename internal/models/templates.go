package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/codr1/pagecraft/internal/content"
)

// SectionTemplate is an admin-managed catalog entry carrying default data and any
// number of named variant overrides, stored as raw JSON.
type SectionTemplate struct {
	ID           int64                      `json:"id"`
	Type         string                     `json:"type"`
	Name         string                     `json:"name"`
	CategorySlug string                     `json:"categorySlug"`
	DefaultData  json.RawMessage            `json:"defaultData"`
	Variants     map[string]json.RawMessage `json:"variants,omitempty"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
}

// Placement is a template placed on a user's site with an optional variant and the
// user's own custom data.
type Placement struct {
	ID         int64           `json:"id"`
	ProjectID  string          `json:"projectId"`
	Template   SectionTemplate `json:"template"`
	Variant    string          `json:"variant,omitempty"`
	CustomData json.RawMessage `json:"customData,omitempty"`
	Order      int             `json:"order"`
}

// EffectiveContent merges default, variant and custom layers. Malformed JSON in any
// layer is treated as an empty layer.
func (p Placement) EffectiveContent() content.Content {
	var variant json.RawMessage
	if p.Variant != "" && p.Template.Variants != nil {
		variant = p.Template.Variants[p.Variant]
	}
	return content.MergeRaw(p.Template.DefaultData, variant, p.CustomData)
}

// Section converts the placement into the section shape used by renderers and export.
func (p Placement) Section() Section {
	return Section{
		ID:        placementSectionID(p.ID),
		ProjectID: p.ProjectID,
		Type:      p.Template.Type,
		Content:   p.EffectiveContent(),
		Order:     p.Order,
	}
}

func placementSectionID(id int64) string {
	return "placement-" + strconv.FormatInt(id, 10)
}
