package themes

import "github.com/codr1/pagecraft/internal/models"

// Theme is a catalog theme as listed in the customizer.
type Theme struct {
	models.Theme
	IsActive bool
}

// PanelData backs the theme customizer of one project.
type PanelData struct {
	ProjectID string
	Active    models.Theme
	ActiveID  string
	Themes    []Theme
	Fonts     []models.FontCollection
	// Endpoints
	SelectURL string
	ColorsURL string
	FontsURL  string
}

func NewTheme(theme models.Theme, activeThemeID string) Theme {
	return Theme{
		Theme:    theme,
		IsActive: theme.ID != "" && theme.ID == activeThemeID,
	}
}

func NewThemes(rows []models.Theme, activeThemeID string) []Theme {
	themes := make([]Theme, len(rows))
	for i, row := range rows {
		themes[i] = NewTheme(row, activeThemeID)
	}
	return themes
}
