package editor

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
	themetempl "github.com/codr1/pagecraft/internal/templates/components/themes"
)

func component(write func(m *sections.Markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m sections.Markup
		write(&m)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

// Page is the full editor body: toolbar, section picker, section list and theme panel.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var head sections.Markup
		writeTopbar(&head, data.Project)
		head.Open("div", "class", "pc-workspace")
		head.Open("div", "class", "pc-canvas")
		writePicker(&head, data.Project.ID, data.Catalog)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		list := SectionList(ListData{
			ProjectID: data.Project.ID,
			Sections:  data.Project.Sections,
			Theme:     data.Project.Theme,
			Registry:  data.Registry,
		})
		if err := list.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</div>"); err != nil {
			return err
		}
		if err := themetempl.Panel(data.Themes).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}

func writeTopbar(m *sections.Markup, project models.Project) {
	m.Open("header", "class", "pc-topbar")
	m.Open("a", "href", ProjectsPath(), "class", "pc-tool")
	m.Text("All projects")
	m.Close("a")
	m.Elem("h1", project.Name)
	m.Open("a", "href", ExportPath(project.ID), "class", "pc-tool", "download", "index.html")
	m.Text("Download HTML")
	m.Close("a")
	publishLabel := "Publish"
	if project.Published {
		publishLabel = "Republish"
	}
	m.Elem("button", publishLabel,
		"type", "button", "class", "pc-tool",
		"hx-post", PublishPath(project.ID), "hx-target", "#pc-notices", "hx-swap", "innerHTML",
	)
	m.Close("header")
}

// writePicker lists every registered type grouped by family label.
func writePicker(m *sections.Markup, projectID string, catalog []sections.CatalogEntry) {
	m.Open("details", "class", "pc-picker")
	m.Elem("summary", "Add section")
	group := ""
	open := false
	for _, entry := range catalog {
		if entry.GroupLabel != group {
			if open {
				m.Close("div")
			}
			group = entry.GroupLabel
			m.Elem("h3", group)
			m.Open("div", "class", "pc-picker-group")
			open = true
		}
		m.Open("button",
			"type", "button", "class", "pc-picker-item",
			"hx-post", SectionsPath(projectID), "hx-vals", sections.HxVals("type", entry.Type),
			"hx-target", "#"+SectionListID, "hx-swap", "outerHTML",
		)
		m.Void("img", "src", entry.PreviewImageURL, "alt", "", "loading", "lazy")
		m.Elem("strong", entry.Name)
		m.Elem("span", entry.Description, "class", "pc-muted")
		m.Close("button")
	}
	if open {
		m.Close("div")
	}
	m.Close("details")
}

// SectionList renders every section in order inside its editor shell. It reloads itself
// when the server triggers refreshSections.
func SectionList(data ListData) templ.Component {
	return component(func(m *sections.Markup) {
		m.Open("div",
			"id", SectionListID, "class", "pc-page pc-section-list",
			"hx-get", SectionsPath(data.ProjectID), "hx-trigger", "refreshSections from:body",
			"hx-swap", "outerHTML",
		)
		if len(data.Sections) == 0 {
			m.Elem("p", "This page is empty. Add a section to get started.", "class", "pc-empty")
		}
		for _, section := range models.SortSections(data.Sections) {
			mode := sections.ModeDisplay
			if data.Editing[section.ID] {
				mode = sections.ModeEditing
			}
			writeShell(m, data.ProjectID, section, data.Theme, mode, data.Registry)
		}
		m.Close("div")
	})
}

// SectionShell renders one section with its controls in the given mode.
func SectionShell(projectID string, section models.Section, theme models.Theme, mode sections.Mode, registry *sections.Registry) templ.Component {
	return component(func(m *sections.Markup) {
		writeShell(m, projectID, section, theme, mode, registry)
	})
}

func writeShell(m *sections.Markup, projectID string, section models.Section, theme models.Theme, mode sections.Mode, registry *sections.Registry) {
	if registry == nil {
		registry = sections.Default()
	}
	e := Endpoints(projectID, section.ID)
	m.Open("div",
		"id", ShellID(section.ID), "class", "pc-shell",
		"data-section-id", section.ID, "data-mode", mode.String(),
	)
	if mode == sections.ModeDisplay {
		sections.Toolbar(m, section.ID, mode, e)
	}
	m.Raw(registry.RenderString(section, theme, mode, e))
	m.Close("div")
	m.Newline()
}

// Projects is the project list with a create form.
func Projects(data ProjectsData) templ.Component {
	return component(func(m *sections.Markup) {
		m.Open("main", "class", "pc-projects")
		m.Elem("h1", "Your sites")
		m.Open("form", "class", "pc-form-fields", "hx-post", "/api/v1/projects", "hx-target", "#pc-notices")
		m.Open("label", "class", "pc-field")
		m.Elem("span", "Name")
		m.Void("input", "type", "text", "name", "name", "required", "true", "placeholder", "My new site")
		m.Close("label")
		m.Open("label", "class", "pc-field")
		m.Elem("span", "Theme")
		m.Open("select", "name", "theme_id")
		for _, t := range data.Themes {
			selected := "false"
			if t.ID == data.DefaultThemeID {
				selected = "true"
			}
			m.Elem("option", t.Name, "value", t.ID, "selected", selected)
		}
		m.Close("select")
		m.Close("label")
		m.Elem("button", "Create site", "type", "submit", "class", "pc-button pc-button-primary")
		m.Close("form")

		m.Open("ul", "class", "pc-project-list")
		for _, p := range data.Projects {
			m.Open("li")
			m.Open("a", "href", EditorPath(p.ID))
			m.Text(p.Name)
			m.Close("a")
			status := "draft"
			if p.Published {
				status = "published"
			}
			m.Elem("span", strings.ToUpper(status[:1])+status[1:], "class", "pc-badge")
			m.Close("li")
		}
		m.Close("ul")
		m.Close("main")
	})
}
