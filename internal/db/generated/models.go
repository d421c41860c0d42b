package dbgen

import "time"

type Project struct {
	ID        string
	Name      string
	ThemeID   string
	ThemeJSON string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Section struct {
	ID        string
	ProjectID string
	Type      string
	Content   string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SectionTemplate struct {
	ID           int64
	Type         string
	Name         string
	CategorySlug string
	DefaultData  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SectionTemplateVariant struct {
	TemplateID  int64
	Name        string
	VariantData string
}

type Placement struct {
	ID         int64
	ProjectID  string
	TemplateID int64
	Variant    string
	CustomData string
	Position   int64
}
