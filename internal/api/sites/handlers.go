// internal/api/sites/handlers.go
package sites

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/api/apiutil"
	"github.com/codr1/pagecraft/internal/api/htmx"
	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/publish"
	"github.com/codr1/pagecraft/internal/ratelimit"
	"github.com/codr1/pagecraft/internal/store"
)

const (
	exportTimeout  = 10 * time.Second
	projectIDParam = "project"
)

var (
	projects   *store.Projects
	exporter   *export.Exporter
	publisher  *publish.Publisher
	limiter    *ratelimit.Limiter
	trustProxy bool
	initOnce   sync.Once
)

type publishResponse struct {
	ProjectID string `json:"projectId"`
	Path      string `json:"path"`
}

// InitHandlers must be called during server startup before handling requests. A nil
// publisher disables publishing; downloads still work. A nil limiter disables
// throttling.
func InitHandlers(p *store.Projects, e *export.Exporter, pub *publish.Publisher, l *ratelimit.Limiter, behindProxy bool) {
	if p == nil || e == nil {
		return
	}
	initOnce.Do(func() {
		projects = p
		exporter = e
		publisher = pub
		limiter = l
		trustProxy = behindProxy
	})
}

// GET /projects/{project}/export
func HandleExportDownload(w http.ResponseWriter, r *http.Request) {
	writeExport(w, r, true)
}

// GET /projects/{project}/preview
func HandleExportPreview(w http.ResponseWriter, r *http.Request) {
	writeExport(w, r, false)
}

func writeExport(w http.ResponseWriter, r *http.Request, attachment bool) {
	if projects == nil || exporter == nil {
		log.Ctx(r.Context()).Error().Msg("Site handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
	defer cancel()

	project, err := projects.Get(ctx, r.PathValue(projectIDParam))
	if err != nil {
		apiutil.WriteStoreError(w, r, err, "Failed to load project")
		return
	}
	html := exporter.ExportHTML(project, project.Theme)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if attachment {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.IndexFile))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("project_id", project.ID).Msg("Failed to write export")
		return
	}
	log.Ctx(r.Context()).Info().
		Str("project_id", project.ID).
		Int("bytes", len(html)).
		Bool("download", attachment).
		Msg("Exported site")
}

// POST /api/v1/projects/{project}/publish
func HandlePublish(w http.ResponseWriter, r *http.Request) {
	if publisher == nil {
		writeFeedback(w, r, http.StatusServiceUnavailable, "Publishing is not configured")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
	defer cancel()

	projectID := r.PathValue(projectIDParam)
	ip := ratelimit.ClientIP(r, trustProxy)
	if limiter != nil {
		if decision := limiter.Allow(projectID, ip); !decision.Allowed {
			ratelimit.LogRejected(r.Context(), projectID, ip, decision)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			writeFeedback(w, r, http.StatusTooManyRequests, "Please wait before publishing again")
			return
		}
	}

	path, err := publisher.Publish(ctx, projectID)
	if err != nil {
		if errors.Is(err, publish.ErrNoOutputDir) {
			writeFeedback(w, r, http.StatusServiceUnavailable, "Publishing is not configured")
			return
		}
		apiutil.WriteStoreError(w, r, err, "Failed to publish site")
		return
	}
	if limiter != nil {
		limiter.Record(projectID, ip)
	}

	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, http.StatusOK, "Site published")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, publishResponse{ProjectID: projectID, Path: path})
}

func writeFeedback(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if htmx.IsRequest(r) {
		apiutil.WriteHTMLFeedback(w, status, msg)
		return
	}
	http.Error(w, msg, status)
}
