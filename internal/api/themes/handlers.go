// internal/api/themes/handlers.go
package themes

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/api/apiutil"
	"github.com/codr1/pagecraft/internal/api/htmx"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/store"
	"github.com/codr1/pagecraft/internal/themes"
)

const (
	themeQueryTimeout = 5 * time.Second
	projectIDParam    = "project"
)

var (
	projects *store.Projects
	catalog  *themes.Catalog
	initOnce sync.Once
)

type themeSelectRequest struct {
	ThemeID string `json:"themeId"`
}

type themeColorsRequest struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type themeFontsRequest struct {
	CollectionID string `json:"collectionId"`
}

type catalogResponse struct {
	Themes    []models.Theme          `json:"themes"`
	Fonts     []models.FontCollection `json:"fonts"`
	DefaultID string                  `json:"defaultId"`
}

type themeResponse struct {
	ThemeID string       `json:"themeId"`
	Theme   models.Theme `json:"theme"`
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

// GET /api/v1/themes
func HandleThemesList(w http.ResponseWriter, r *http.Request) {
	if catalog == nil {
		log.Ctx(r.Context()).Error().Msg("Theme catalog not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, catalogResponse{
		Themes:    catalog.Themes,
		Fonts:     catalog.Fonts,
		DefaultID: catalog.DefaultID,
	})
}

// POST /api/v1/projects/{project}/theme
func HandleProjectThemeSet(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	var req themeSelectRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		req.ThemeID = r.FormValue("theme_id")
	}

	themeID := strings.TrimSpace(req.ThemeID)
	theme, ok := catalog.Theme(themeID)
	if !ok {
		writeValidationError(w, r, "Unknown theme")
		return
	}

	updateTheme(w, r, func(models.Project) (string, models.Theme, error) {
		return themeID, theme, nil
	})
}

// POST /api/v1/projects/{project}/theme/colors
func HandleProjectThemeColors(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	var req themeColorsRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		req = themeColorsRequest{
			Primary:   r.FormValue("primary"),
			Secondary: r.FormValue("secondary"),
			Accent:    r.FormValue("accent"),
		}
	}
	if strings.TrimSpace(req.Primary+req.Secondary+req.Accent) == "" {
		writeValidationError(w, r, "At least one color is required")
		return
	}

	updateTheme(w, r, func(project models.Project) (string, models.Theme, error) {
		theme, err := project.Theme.ApplyCustomColors(req.Primary, req.Secondary, req.Accent)
		if err != nil {
			return "", models.Theme{}, err
		}
		return project.ThemeID, theme, nil
	})
}

// POST /api/v1/projects/{project}/theme/fonts
func HandleProjectThemeFonts(w http.ResponseWriter, r *http.Request) {
	if !initialized(w, r) {
		return
	}
	var req themeFontsRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		req.CollectionID = r.FormValue("collection_id")
	}

	collection, ok := catalog.FontCollection(strings.TrimSpace(req.CollectionID))
	if !ok {
		writeValidationError(w, r, "Unknown font collection")
		return
	}

	updateTheme(w, r, func(project models.Project) (string, models.Theme, error) {
		return project.ThemeID, project.Theme.WithFonts(collection.Fonts), nil
	})
}

// updateTheme loads the project, lets change derive the new theme and stores it. The
// editor page carries the theme variables in its head, so htmx callers get a refresh.
func updateTheme(w http.ResponseWriter, r *http.Request, change func(models.Project) (string, models.Theme, error)) {
	logger := log.Ctx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	projectID := r.PathValue(projectIDParam)
	project, err := projects.Get(ctx, projectID)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load project")
		return
	}

	themeID, theme, err := change(project)
	if err != nil {
		writeValidationError(w, r, err.Error())
		return
	}
	resolved, err := projects.SetTheme(ctx, project.ID, themeID, theme)
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to save theme")
		return
	}

	logger.Info().
		Str("project_id", project.ID).
		Str("theme_id", themeID).
		Msg("Project theme updated")

	if htmx.IsRequest(r) {
		htmx.Refresh(w)
		apiutil.WriteHTMLFeedback(w, http.StatusOK, "Theme updated")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, themeResponse{ThemeID: themeID, Theme: resolved})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, msg string) {
	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, http.StatusBadRequest, msg)
		return
	}
	http.Error(w, msg, http.StatusBadRequest)
}

func initialized(w http.ResponseWriter, r *http.Request) bool {
	if projects == nil || catalog == nil {
		log.Ctx(r.Context()).Error().Msg("Theme handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return false
	}
	return true
}
