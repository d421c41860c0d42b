// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/codr1/pagecraft/internal/api"
	"github.com/codr1/pagecraft/internal/api/editor"
	"github.com/codr1/pagecraft/internal/api/sites"
	"github.com/codr1/pagecraft/internal/api/themes"
)

func newServer(a *app) *http.Server {
	router := http.NewServeMux()

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	editor.InitHandlers(a.projects, a.catalog)
	themes.InitHandlers(a.projects, a.catalog)
	sites.InitHandlers(a.projects, a.exporter, a.publisher, a.limiter, a.config.App.TrustProxy)

	registerRoutes(router)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(a.config.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /projects", editor.HandleProjectsPage)
	mux.HandleFunc("GET /projects/{project}/editor", editor.HandleEditorPage)
	mux.HandleFunc("GET /projects/{project}/export", sites.HandleExportDownload)
	mux.HandleFunc("GET /projects/{project}/preview", sites.HandleExportPreview)

	// Projects
	mux.HandleFunc("GET /api/v1/projects", editor.HandleProjectsList)
	mux.HandleFunc("POST /api/v1/projects", editor.HandleProjectCreate)
	mux.HandleFunc("DELETE /api/v1/projects/{project}", editor.HandleProjectDelete)
	mux.HandleFunc("POST /api/v1/projects/{project}/publish", sites.HandlePublish)

	// Sections
	mux.HandleFunc("GET /api/v1/projects/{project}/sections", editor.HandleSectionList)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections", editor.HandleSectionCreate)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/order", editor.HandleSectionOrder)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/mode", editor.HandleSectionMode)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/fields", editor.HandleSectionField)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/items/add", editor.HandleItemAdd)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/items/remove", editor.HandleItemRemove)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/content", editor.HandleSectionContent)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/delete", editor.HandleSectionDelete)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/move-up", editor.HandleSectionMoveUp)
	mux.HandleFunc("POST /api/v1/projects/{project}/sections/{section}/move-down", editor.HandleSectionMoveDown)

	// Themes
	mux.HandleFunc("GET /api/v1/themes", themes.HandleThemesList)
	mux.HandleFunc("POST /api/v1/projects/{project}/theme", themes.HandleProjectThemeSet)
	mux.HandleFunc("POST /api/v1/projects/{project}/theme/colors", themes.HandleProjectThemeColors)
	mux.HandleFunc("POST /api/v1/projects/{project}/theme/fonts", themes.HandleProjectThemeFonts)
}
