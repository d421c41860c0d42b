// internal/api/editor/handlers.go
package editor

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/api/apiutil"
	"github.com/codr1/pagecraft/internal/api/htmx"
	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
	"github.com/codr1/pagecraft/internal/store"
	editortempl "github.com/codr1/pagecraft/internal/templates/components/editor"
	themetempl "github.com/codr1/pagecraft/internal/templates/components/themes"
	"github.com/codr1/pagecraft/internal/templates/layouts"
	"github.com/codr1/pagecraft/internal/themes"
)

const (
	editorQueryTimeout = 5 * time.Second
	projectIDParam     = "project"
	sectionIDParam     = "section"
)

var (
	projects *store.Projects
	catalog  *themes.Catalog
	initOnce sync.Once
)

type sectionCreateRequest struct {
	Type string `json:"type"`
}

type orderRequest struct {
	IDs  []string `json:"ids"`
	From *int     `json:"from"`
	To   *int     `json:"to"`
}

type contentRequest struct {
	Content content.Content `json:"content"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(p *store.Projects, c *themes.Catalog) {
	if p == nil || c == nil {
		return
	}
	initOnce.Do(func() {
		projects = p
		catalog = c
	})
}

// /projects/{project}/editor
func HandleEditorPage(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	project, err := projects.Get(ctx, r.PathValue(projectIDParam))
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load project")
		return
	}

	registry := projects.Registry()
	data := editortempl.PageData{
		Project:  project,
		Registry: registry,
		Catalog:  registry.Catalog(),
		Themes:   PanelData(project, catalog),
	}
	page := layouts.Base(project.Name, &project.Theme, editortempl.Page(data))
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render editor page", "Failed to render page")
}

// /api/v1/projects/{project}/sections
func HandleSectionList(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	project, s, ok := loadProject(ctx, w, r)
	if !ok {
		return
	}
	if !htmx.IsRequest(r) {
		apiutil.WriteJSON(w, http.StatusOK, s.Sections())
		return
	}
	renderList(w, r, project, s, nil)
}

// POST /api/v1/projects/{project}/sections
func HandleSectionCreate(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	req, err := decodeSectionCreateRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := projects.Registry().Lookup(req.Type); !ok {
		http.Error(w, "Unknown section type", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	project, s, ok := loadProject(ctx, w, r)
	if !ok {
		return
	}
	section, err := s.AddSection(ctx, req.Type)
	if err != nil {
		writeStoreError(w, r, err, "Failed to add section")
		return
	}
	log.Ctx(r.Context()).Info().
		Str("project_id", project.ID).
		Str("section_id", section.ID).
		Str("section_type", section.Type).
		Msg("Section added")

	if !htmx.IsRequest(r) {
		apiutil.WriteJSON(w, http.StatusCreated, section)
		return
	}
	renderList(w, r, project, s, map[string]bool{section.ID: true})
}

// POST /api/v1/projects/{project}/sections/order
func HandleSectionOrder(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	req, err := decodeOrderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	project, s, ok := loadProject(ctx, w, r)
	if !ok {
		return
	}
	if req.From != nil && req.To != nil {
		err = s.Reorder(ctx, *req.From, *req.To)
	} else {
		err = s.ReorderIDs(ctx, req.IDs)
	}
	if err != nil {
		writeStoreError(w, r, err, "Failed to reorder sections")
		return
	}
	respondWithList(w, r, project, s)
}

// POST /api/v1/projects/{project}/sections/{section}/mode
func HandleSectionMode(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		renderShell(w, r, project, section, sections.ParseMode(r.FormValue("mode")))
	})
}

// POST /api/v1/projects/{project}/sections/{section}/fields
func HandleSectionField(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		path := strings.TrimSpace(r.FormValue("path"))
		if path == "" {
			http.Error(w, "path is required", http.StatusBadRequest)
			return
		}
		value := r.FormValue("value")
		editContent(ctx, w, r, project, s, section.ID, "Failed to set field", func(current models.Section) (content.Content, error) {
			return projects.Registry().SetField(current.Type, current.Content, path, value)
		})
	})
}

// POST /api/v1/projects/{project}/sections/{section}/items/add
func HandleItemAdd(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		key := strings.TrimSpace(r.FormValue("key"))
		if key == "" {
			http.Error(w, "key is required", http.StatusBadRequest)
			return
		}
		editContent(ctx, w, r, project, s, section.ID, "Failed to add item", func(current models.Section) (content.Content, error) {
			return projects.Registry().AddItem(current.Type, current.Content, key)
		})
	})
}

// POST /api/v1/projects/{project}/sections/{section}/items/remove
func HandleItemRemove(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		key := strings.TrimSpace(r.FormValue("key"))
		if key == "" {
			http.Error(w, "key is required", http.StatusBadRequest)
			return
		}
		index, err := apiutil.ParseNonNegativeIntField(r.FormValue("index"), "index")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		editContent(ctx, w, r, project, s, section.ID, "Failed to remove item", func(current models.Section) (content.Content, error) {
			return projects.Registry().RemoveItem(current.Type, current.Content, key, index)
		})
	})
}

// POST /api/v1/projects/{project}/sections/{section}/content
func HandleSectionContent(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		c, err := decodeContentRequest(r)
		if err != nil {
			if htmx.IsRequest(r) {
				apiutil.WriteHTMLFeedback(w, http.StatusBadRequest, "The data is not a valid JSON object.")
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		saveContent(ctx, w, r, project, s, section, c)
	})
}

// POST /api/v1/projects/{project}/sections/{section}/delete
func HandleSectionDelete(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := s.DeleteSection(ctx, section.ID); err != nil {
			writeStoreError(w, r, err, "Failed to delete section")
			return
		}
		log.Ctx(r.Context()).Info().
			Str("project_id", project.ID).
			Str("section_id", section.ID).
			Msg("Section deleted")
		respondWithList(w, r, project, s)
	})
}

// POST /api/v1/projects/{project}/sections/{section}/move-up
func HandleSectionMoveUp(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := s.MoveUp(ctx, section.ID); err != nil {
			writeStoreError(w, r, err, "Failed to move section")
			return
		}
		respondWithList(w, r, project, s)
	})
}

// POST /api/v1/projects/{project}/sections/{section}/move-down
func HandleSectionMoveDown(w http.ResponseWriter, r *http.Request) {
	withSection(w, r, func(ctx context.Context, project models.Project, s *store.Store, section models.Section) {
		if err := s.MoveDown(ctx, section.ID); err != nil {
			writeStoreError(w, r, err, "Failed to move section")
			return
		}
		respondWithList(w, r, project, s)
	})
}

// PanelData builds the theme customizer data of project.
func PanelData(project models.Project, c *themes.Catalog) themetempl.PanelData {
	data := themetempl.PanelData{
		ProjectID: project.ID,
		Active:    project.Theme.Resolved(),
		ActiveID:  project.ThemeID,
		SelectURL: editortempl.ThemePath(project.ID),
		ColorsURL: editortempl.ThemeColorsPath(project.ID),
		FontsURL:  editortempl.ThemeFontsPath(project.ID),
	}
	if c != nil {
		data.Themes = themetempl.NewThemes(c.Themes, project.ThemeID)
		data.Fonts = c.Fonts
	}
	return data
}

func withSection(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, project models.Project, s *store.Store, section models.Section)) {
	if !initialized(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	project, s, ok := loadProject(ctx, w, r)
	if !ok {
		return
	}
	section, err := s.Section(r.PathValue(sectionIDParam))
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Section not found")
		return
	}
	fn(ctx, project, s, section)
}

func loadProject(ctx context.Context, w http.ResponseWriter, r *http.Request) (models.Project, *store.Store, bool) {
	projectID := strings.TrimSpace(r.PathValue(projectIDParam))
	if projectID == "" {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return models.Project{}, nil, false
	}
	project, err := projects.Get(ctx, projectID)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load project")
		return models.Project{}, nil, false
	}
	s, err := projects.Sections(ctx, projectID)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load sections")
		return models.Project{}, nil, false
	}
	return project, s, true
}

func saveContent(ctx context.Context, w http.ResponseWriter, r *http.Request, project models.Project, s *store.Store, section models.Section, c content.Content) {
	updated, err := s.UpdateSectionContent(ctx, section.ID, c)
	if err != nil {
		writeStoreError(w, r, err, "Failed to save section content")
		return
	}
	respondWithSection(w, r, project, updated)
}

// editContent applies edit to the section's latest content under the store lock.
func editContent(ctx context.Context, w http.ResponseWriter, r *http.Request, project models.Project, s *store.Store, id, msg string, edit func(models.Section) (content.Content, error)) {
	updated, err := s.EditSectionContent(ctx, id, edit)
	if err != nil {
		writeStoreError(w, r, err, msg)
		return
	}
	respondWithSection(w, r, project, updated)
}

func respondWithSection(w http.ResponseWriter, r *http.Request, project models.Project, section models.Section) {
	if !htmx.IsRequest(r) {
		apiutil.WriteJSON(w, http.StatusOK, section)
		return
	}
	renderShell(w, r, project, section, sections.ModeEditing)
}

// writeStoreError also asks the page to reload the section list after a persistence
// failure, since the store now holds the repository's state.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var persistErr *store.PersistenceError
	if errors.As(err, &persistErr) {
		htmx.Trigger(w, "refreshSections")
	}
	apiutil.WriteStoreError(w, r, err, msg)
}

func respondWithList(w http.ResponseWriter, r *http.Request, project models.Project, s *store.Store) {
	if !htmx.IsRequest(r) {
		apiutil.WriteJSON(w, http.StatusOK, s.Sections())
		return
	}
	renderList(w, r, project, s, nil)
}

func renderList(w http.ResponseWriter, r *http.Request, project models.Project, s *store.Store, editing map[string]bool) {
	component := editortempl.SectionList(editortempl.ListData{
		ProjectID: project.ID,
		Sections:  s.Sections(),
		Theme:     project.Theme,
		Registry:  projects.Registry(),
		Editing:   editing,
	})
	apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render section list", "Failed to render sections")
}

func renderShell(w http.ResponseWriter, r *http.Request, project models.Project, section models.Section, mode sections.Mode) {
	component := editortempl.SectionShell(project.ID, section, project.Theme, mode, projects.Registry())
	apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render section", "Failed to render section")
}

func initialized(w http.ResponseWriter, r *http.Request) bool {
	if projects == nil {
		log.Ctx(r.Context()).Error().Msg("Editor handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return false
	}
	return true
}

func decodeSectionCreateRequest(r *http.Request) (sectionCreateRequest, error) {
	var req sectionCreateRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Type = apiutil.FirstNonEmpty(r.FormValue("type"), r.FormValue("section_type"))
	}
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		return req, errors.New("type is required")
	}
	return req, nil
}

func decodeOrderRequest(r *http.Request) (orderRequest, error) {
	var req orderRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.IDs = apiutil.ParseIDList(r.FormValue("ids"))
		if r.FormValue("from") != "" || r.FormValue("to") != "" {
			from, err := apiutil.ParseNonNegativeIntField(r.FormValue("from"), "from")
			if err != nil {
				return req, err
			}
			to, err := apiutil.ParseNonNegativeIntField(r.FormValue("to"), "to")
			if err != nil {
				return req, err
			}
			req.From, req.To = &from, &to
		}
	}
	if (req.From == nil) != (req.To == nil) {
		return req, errors.New("from and to must be given together")
	}
	if req.From == nil && len(req.IDs) == 0 {
		return req, errors.New("ids or from and to are required")
	}
	return req, nil
}

func decodeContentRequest(r *http.Request) (content.Content, error) {
	if apiutil.IsJSONRequest(r) {
		var req contentRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		if req.Content == nil {
			return content.Content{}, nil
		}
		return req.Content, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return content.Decode([]byte(r.FormValue("content")))
}
