package editor

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/api/apiutil"
	"github.com/codr1/pagecraft/internal/api/htmx"
	editortempl "github.com/codr1/pagecraft/internal/templates/components/editor"
	"github.com/codr1/pagecraft/internal/templates/layouts"
)

type projectCreateRequest struct {
	Name    string `json:"name"`
	ThemeID string `json:"themeId"`
}

// /projects
func HandleProjectsPage(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	list, err := projects.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to list projects")
		return
	}
	data := editortempl.ProjectsData{
		Projects:       list,
		Themes:         catalog.Themes,
		DefaultThemeID: catalog.DefaultID,
	}
	defaultTheme := catalog.Default()
	page := layouts.Base("Your sites", &defaultTheme, editortempl.Projects(data))
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render projects page", "Failed to render page")
}

// GET /api/v1/projects
func HandleProjectsList(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	list, err := projects.List(ctx)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to list projects")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, list); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write projects response")
	}
}

// POST /api/v1/projects
func HandleProjectCreate(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	req, err := decodeProjectCreateRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	theme := catalog.Default()
	themeID := catalog.DefaultID
	if req.ThemeID != "" {
		picked, ok := catalog.Theme(req.ThemeID)
		if !ok {
			http.Error(w, "Unknown theme", http.StatusBadRequest)
			return
		}
		theme, themeID = picked, req.ThemeID
	}

	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	project, err := projects.Create(ctx, req.Name, themeID, theme)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to create project")
		return
	}
	log.Ctx(r.Context()).Info().Str("project_id", project.ID).Str("theme_id", themeID).Msg("Project created")

	if htmx.IsRequest(r) {
		htmx.Redirect(w, editortempl.EditorPath(project.ID))
		apiutil.WriteHTMLFeedback(w, http.StatusCreated, "Site created.")
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusCreated, project); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write project response")
	}
}

// DELETE /api/v1/projects/{project}
func HandleProjectDelete(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), editorQueryTimeout)
	defer cancel()

	projectID := strings.TrimSpace(r.PathValue(projectIDParam))
	if err := projects.Delete(ctx, projectID); err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to delete project")
		return
	}
	if htmx.IsRequest(r) {
		htmx.Redirect(w, editortempl.ProjectsPath())
		apiutil.WriteHTMLFeedback(w, http.StatusOK, "Site deleted.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeProjectCreateRequest(r *http.Request) (projectCreateRequest, error) {
	var req projectCreateRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.FormValue("name")
		req.ThemeID = apiutil.FirstNonEmpty(r.FormValue("theme_id"), r.FormValue("themeId"))
	}
	req.ThemeID = strings.TrimSpace(req.ThemeID)
	return req, nil
}

