package themes

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/store"
	"github.com/codr1/pagecraft/internal/testutil"
	"github.com/codr1/pagecraft/internal/themes"
)

func setup(t *testing.T) models.Project {
	t.Helper()

	repo := testutil.NewTestRepository(t)
	c, err := themes.Builtin()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	projects = store.NewProjects(repo, repo, nil)
	catalog = c
	t.Cleanup(func() {
		projects = nil
		catalog = nil
	})

	project, err := projects.Create(context.Background(), "Acme", c.DefaultID, c.Default())
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func newMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/themes", HandleThemesList)
	mux.HandleFunc("POST /api/v1/projects/{project}/theme", HandleProjectThemeSet)
	mux.HandleFunc("POST /api/v1/projects/{project}/theme/colors", HandleProjectThemeColors)
	mux.HandleFunc("POST /api/v1/projects/{project}/theme/fonts", HandleProjectThemeFonts)
	return mux
}

func postForm(path string, form url.Values, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, req)
	return rec
}

func storedTheme(t *testing.T, projectID string) (string, models.Theme) {
	t.Helper()
	project, err := projects.Get(context.Background(), projectID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	return project.ThemeID, project.Theme
}

func TestHandleThemesList(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/themes", nil)
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.DefaultID != "modern" || len(resp.Themes) == 0 || len(resp.Fonts) == 0 {
		t.Fatalf("catalog = %+v", resp)
	}
}

func TestHandleProjectThemeSet(t *testing.T) {
	project := setup(t)
	path := "/api/v1/projects/" + project.ID + "/theme"

	rec := postForm(path, url.Values{"theme_id": {"forest"}}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("HX-Refresh") != "true" {
		t.Fatalf("expected HX-Refresh header")
	}
	themeID, theme := storedTheme(t, project.ID)
	if themeID != "forest" || theme.Colors.Primary != "#15803d" {
		t.Fatalf("stored theme = %s %s", themeID, theme.Colors.Primary)
	}

	tests := []struct {
		name   string
		path   string
		form   url.Values
		status int
	}{
		{name: "unknown_theme", path: path, form: url.Values{"theme_id": {"neon"}}, status: http.StatusBadRequest},
		{name: "missing_theme", path: path, form: url.Values{}, status: http.StatusBadRequest},
		{name: "missing_project", path: "/api/v1/projects/missing/theme", form: url.Values{"theme_id": {"forest"}}, status: http.StatusNotFound},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := postForm(test.path, test.form, false)
			if rec.Code != test.status {
				t.Fatalf("status = %d, want %d", rec.Code, test.status)
			}
		})
	}
}

func TestHandleProjectThemeColors(t *testing.T) {
	project := setup(t)
	path := "/api/v1/projects/" + project.ID + "/theme/colors"

	rec := postForm(path, url.Values{"primary": {"#0f766e"}}, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp themeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ThemeID != "modern" || resp.Theme.Colors.Primary != "#0f766e" {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Theme.Colors.PrimaryLight == "" || resp.Theme.Colors.PrimaryLight == project.Theme.Colors.PrimaryLight {
		t.Fatalf("primary tints were not recomputed: %q", resp.Theme.Colors.PrimaryLight)
	}
	if resp.Theme.Colors.Secondary != project.Theme.Colors.Secondary {
		t.Fatalf("secondary changed to %q", resp.Theme.Colors.Secondary)
	}

	tests := []struct {
		name string
		form url.Values
	}{
		{name: "no_colors", form: url.Values{}},
		{name: "invalid_hex", form: url.Values{"accent": {"orange"}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := postForm(path, test.form, true)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "pc-notice-error") {
				t.Fatalf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestHandleProjectThemeFonts(t *testing.T) {
	project := setup(t)
	path := "/api/v1/projects/" + project.ID + "/theme/fonts"

	rec := postForm(path, url.Values{"collection_id": {"editorial"}}, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	_, theme := storedTheme(t, project.ID)
	if theme.Fonts.Secondary != "Playfair Display" || theme.Colors.Primary != project.Theme.Colors.Primary {
		t.Fatalf("stored theme = %+v", theme)
	}

	rec = postForm(path, url.Values{"collection_id": {"comic"}}, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown collection status = %d", rec.Code)
	}
}

func TestHandlersRequireInit(t *testing.T) {
	rec := postForm("/api/v1/projects/p1/theme", url.Values{"theme_id": {"forest"}}, false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}
