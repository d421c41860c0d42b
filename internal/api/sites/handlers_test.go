package sites

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/publish"
	"github.com/codr1/pagecraft/internal/ratelimit"
	"github.com/codr1/pagecraft/internal/store"
	"github.com/codr1/pagecraft/internal/testutil"
)

func setup(t *testing.T, outputDir string) models.Project {
	t.Helper()
	ctx := context.Background()

	repo := testutil.NewTestRepository(t)
	projects = store.NewProjects(repo, repo, nil)
	exporter = export.NewExporter(nil, export.DefaultOptions())
	publisher = nil
	limiter = nil
	if outputDir != "" {
		publisher = publish.NewPublisher(projects, exporter, outputDir, nil)
	}
	t.Cleanup(func() {
		projects = nil
		exporter = nil
		publisher = nil
		limiter = nil
	})

	project, err := projects.Create(ctx, "Acme", "modern", models.DefaultTheme())
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	s, err := projects.Sections(ctx, project.ID)
	if err != nil {
		t.Fatalf("open sections: %v", err)
	}
	if _, err := s.AddSection(ctx, "hero-split"); err != nil {
		t.Fatalf("add section: %v", err)
	}
	return project
}

func newMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /projects/{project}/export", HandleExportDownload)
	mux.HandleFunc("GET /projects/{project}/preview", HandleExportPreview)
	mux.HandleFunc("POST /api/v1/projects/{project}/publish", HandlePublish)
	return mux
}

func serve(method, path string, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, req)
	return rec
}

func TestHandleExportDownload(t *testing.T) {
	project := setup(t, "")

	rec := serve(http.MethodGet, "/projects/"+project.ID+"/export", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="index.html"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.Contains(body, "Build a website you are proud of") {
		t.Fatalf("unexpected export: %.200s", body)
	}

	preview := serve(http.MethodGet, "/projects/"+project.ID+"/preview", false)
	if preview.Header().Get("Content-Disposition") != "" || preview.Body.String() != body {
		t.Fatalf("preview differs from download")
	}

	if rec := serve(http.MethodGet, "/projects/missing/export", false); rec.Code != http.StatusNotFound {
		t.Fatalf("missing project status = %d", rec.Code)
	}
}

func TestHandlePublish(t *testing.T) {
	dir := t.TempDir()
	project := setup(t, dir)

	rec := serve(http.MethodPost, "/api/v1/projects/"+project.ID+"/publish", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp publishResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, err := os.ReadFile(resp.Path)
	if err != nil {
		t.Fatalf("read published page: %v", err)
	}
	if !strings.Contains(string(data), "Build a website you are proud of") {
		t.Fatalf("published page missing section")
	}

	stored, err := projects.Get(context.Background(), project.ID)
	if err != nil || !stored.Published {
		t.Fatalf("project not marked published: %+v, %v", stored, err)
	}

	rec = serve(http.MethodPost, "/api/v1/projects/"+project.ID+"/publish", true)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Site published") {
		t.Fatalf("htmx publish = %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandlePublishNotConfigured(t *testing.T) {
	project := setup(t, "")

	rec := serve(http.MethodPost, "/api/v1/projects/"+project.ID+"/publish", true)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Publishing is not configured") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandlePublishRateLimited(t *testing.T) {
	project := setup(t, t.TempDir())
	limiter = ratelimit.New(ratelimit.Config{Cooldown: time.Minute})

	path := "/api/v1/projects/" + project.ID + "/publish"
	if rec := serve(http.MethodPost, path, false); rec.Code != http.StatusOK {
		t.Fatalf("first publish status = %d", rec.Code)
	}
	rec := serve(http.MethodPost, path, true)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second publish status = %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
}
