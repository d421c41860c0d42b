package editor

import (
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
	themetempl "github.com/codr1/pagecraft/internal/templates/components/themes"
)

// PageData is everything the editor page shows for one project.
type PageData struct {
	Project  models.Project
	Registry *sections.Registry
	Catalog  []sections.CatalogEntry
	Themes   themetempl.PanelData
}

// ListData renders the ordered section list.
type ListData struct {
	ProjectID string
	Sections  []models.Section
	Theme     models.Theme
	Registry  *sections.Registry
	// Editing lists the section ids shown in editing mode.
	Editing map[string]bool
}

// ProjectsData backs the project list page.
type ProjectsData struct {
	Projects       []models.Project
	Themes         []models.Theme
	DefaultThemeID string
}

// Endpoints returns the editing callbacks of one section.
func Endpoints(projectID, sectionID string) sections.EditEndpoints {
	base := sectionPath(projectID, sectionID)
	return sections.EditEndpoints{
		Field:      base + "/fields",
		AddItem:    base + "/items/add",
		RemoveItem: base + "/items/remove",
		Raw:        base + "/content",
		Delete:     base + "/delete",
		MoveUp:     base + "/move-up",
		MoveDown:   base + "/move-down",
		Toggle:     base + "/mode",
		Target:     "#" + ShellID(sectionID),
		ListTarget: "#" + SectionListID,
	}
}
