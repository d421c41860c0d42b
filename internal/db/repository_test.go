package db_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/db"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/store"
	"github.com/codr1/pagecraft/internal/testutil"
)

func newRepo(t *testing.T) *db.Repository {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	if err := repo.CreateProject(context.Background(), models.Project{
		ID:      "p1",
		Name:    "Acme",
		ThemeID: "modern",
		Theme:   models.DefaultTheme(),
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	return repo
}

func TestProjectRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	theme := models.DefaultTheme()
	theme.Colors.Primary = "#0f766e"
	if err := repo.UpdateProjectTheme(ctx, "p1", "custom", theme); err != nil {
		t.Fatalf("UpdateProjectTheme() error = %v", err)
	}
	if err := repo.SetProjectPublished(ctx, "p1", true); err != nil {
		t.Fatalf("SetProjectPublished() error = %v", err)
	}

	project, err := repo.GetProject(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProject() error = %v", err)
	}
	if project.Name != "Acme" || project.ThemeID != "custom" || !project.Published {
		t.Fatalf("project = %+v", project)
	}
	if project.Theme.Colors.Primary != "#0f766e" {
		t.Fatalf("theme primary = %q", project.Theme.Colors.Primary)
	}

	published, err := repo.ListPublishedProjects(ctx)
	if err != nil || len(published) != 1 {
		t.Fatalf("ListPublishedProjects() = %v, %v", published, err)
	}
}

func TestProjectNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if _, err := repo.GetProject(ctx, "missing"); !errors.Is(err, store.ErrProjectNotFound) {
		t.Fatalf("GetProject() error = %v", err)
	}
	if err := repo.SetProjectPublished(ctx, "missing", true); !errors.Is(err, store.ErrProjectNotFound) {
		t.Fatalf("SetProjectPublished() error = %v", err)
	}
	if err := repo.DeleteProject(ctx, "missing"); !errors.Is(err, store.ErrProjectNotFound) {
		t.Fatalf("DeleteProject() error = %v", err)
	}
}

func TestSectionsPersistThroughStore(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	s, err := store.Load(ctx, "p1", repo, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, tag := range []string{"header-simple", "hero-split", "footer-simple"} {
		if _, err := s.AddSection(ctx, tag); err != nil {
			t.Fatalf("AddSection(%s) error = %v", tag, err)
		}
	}
	if err := s.Reorder(ctx, 2, 0); err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	hero := s.Sections()[2]
	if _, err := s.UpdateSectionContent(ctx, hero.ID, content.Content{"title": "Hello"}); err != nil {
		t.Fatalf("UpdateSectionContent() error = %v", err)
	}

	reloaded, err := store.Load(ctx, "p1", repo, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Sections()
	wantTypes := []string{"footer-simple", "header-simple", "hero-split"}
	for i, section := range got {
		if section.Type != wantTypes[i] || section.Order != i {
			t.Fatalf("section %d = %s@%d, want %s@%d", i, section.Type, section.Order, wantTypes[i], i)
		}
	}
	if got[2].Content.String("title") != "Hello" {
		t.Fatalf("content = %v", got[2].Content)
	}

	if err := reloaded.DeleteSection(ctx, got[1].ID); err != nil {
		t.Fatalf("DeleteSection() error = %v", err)
	}
	rows, err := repo.ListSections(ctx, "p1")
	if err != nil {
		t.Fatalf("ListSections() error = %v", err)
	}
	if len(rows) != 2 || !models.OrderIsDense(rows) {
		t.Fatalf("rows after delete = %+v", rows)
	}
}

func TestUpdateSectionOrderIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	for i, id := range []string{"a", "b"} {
		if err := repo.CreateSection(ctx, models.Section{ID: id, ProjectID: "p1", Type: "cta-simple", Order: i}); err != nil {
			t.Fatalf("CreateSection() error = %v", err)
		}
	}

	err := repo.UpdateSectionOrder(ctx, "p1", []string{"b", "missing"})
	if !errors.Is(err, store.ErrSectionNotFound) {
		t.Fatalf("UpdateSectionOrder() error = %v", err)
	}
	rows, err := repo.ListSections(ctx, "p1")
	if err != nil {
		t.Fatalf("ListSections() error = %v", err)
	}
	if rows[0].ID != "a" || rows[0].Order != 0 || rows[1].Order != 1 {
		t.Fatalf("partial reorder was committed: %+v", rows)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	if err := repo.CreateSection(ctx, models.Section{ID: "a", ProjectID: "p1", Type: "cta-simple"}); err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	if err := repo.DeleteProject(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	rows, err := repo.ListSections(ctx, "p1")
	if err != nil {
		t.Fatalf("ListSections() error = %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("sections survived project delete: %+v", rows)
	}
}

func TestMaterializePlacements(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	if err := repo.CreateSection(ctx, models.Section{ID: "existing", ProjectID: "p1", Type: "header-simple"}); err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}

	templateID, err := repo.CreateSectionTemplate(ctx, models.SectionTemplate{
		Type:        "hero-split",
		Name:        "Hero",
		DefaultData: json.RawMessage(`{"title":"Default","subtitle":"Sub","items":[1,2]}`),
		Variants: map[string]json.RawMessage{
			"dark":   json.RawMessage(`{"title":"Dark"}`),
			"broken": json.RawMessage(`{not json`),
		},
	})
	if err != nil {
		t.Fatalf("CreateSectionTemplate() error = %v", err)
	}
	placements := []models.Placement{
		{ProjectID: "p1", Template: models.SectionTemplate{ID: templateID}, Variant: "dark", CustomData: json.RawMessage(`{"items":[3]}`), Order: 0},
		{ProjectID: "p1", Template: models.SectionTemplate{ID: templateID}, Variant: "broken", Order: 1},
	}
	for _, p := range placements {
		if _, err := repo.CreatePlacement(ctx, p); err != nil {
			t.Fatalf("CreatePlacement() error = %v", err)
		}
	}

	listed, err := repo.ListPlacements(ctx, "p1")
	if err != nil || len(listed) != 2 {
		t.Fatalf("ListPlacements() = %v, %v", listed, err)
	}
	first := listed[0].EffectiveContent()
	if first.String("title") != "Dark" || first.String("subtitle") != "Sub" || first.Len("items") != 1 {
		t.Fatalf("effective content = %v", first)
	}

	n, err := repo.MaterializePlacements(ctx, "p1")
	if err != nil || n != 2 {
		t.Fatalf("MaterializePlacements() = %d, %v", n, err)
	}
	rows, err := repo.ListSections(ctx, "p1")
	if err != nil {
		t.Fatalf("ListSections() error = %v", err)
	}
	if len(rows) != 3 || !models.OrderIsDense(rows) || rows[0].ID != "existing" {
		t.Fatalf("sections = %+v", rows)
	}
	if rows[2].Content.String("title") != "Default" {
		t.Fatalf("malformed variant should contribute nothing: %v", rows[2].Content)
	}

	remaining, err := repo.ListPlacements(ctx, "p1")
	if err != nil || len(remaining) != 0 {
		t.Fatalf("placements left behind: %v, %v", remaining, err)
	}
	if n, err := repo.MaterializePlacements(ctx, "p1"); err != nil || n != 0 {
		t.Fatalf("second MaterializePlacements() = %d, %v", n, err)
	}
}

func TestRunMigrationCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")

	tests := []struct {
		command string
		want    string
		wantErr bool
	}{
		{command: "version", want: "No migrations applied"},
		{command: "up", want: "Version: 1, Dirty: false"},
		{command: "up", want: "No change"},
		{command: "version", want: "Version: 1, Dirty: false"},
		{command: "sideways", wantErr: true},
	}
	for _, test := range tests {
		got, err := db.RunMigrationCommand(path, test.command)
		if (err != nil) != test.wantErr {
			t.Fatalf("RunMigrationCommand(%s) error = %v", test.command, err)
		}
		if got != test.want {
			t.Fatalf("RunMigrationCommand(%s) = %q, want %q", test.command, got, test.want)
		}
	}
}
