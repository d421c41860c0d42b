package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
)

type memoryRepo struct {
	sections   map[string]models.Section
	failWrites error
	failList   error
	writes     int
}

func newMemoryRepo(initial ...models.Section) *memoryRepo {
	r := &memoryRepo{sections: make(map[string]models.Section)}
	for _, s := range initial {
		r.sections[s.ID] = s
	}
	return r
}

func (r *memoryRepo) ListSections(ctx context.Context, projectID string) ([]models.Section, error) {
	if r.failList != nil {
		return nil, r.failList
	}
	out := make([]models.Section, 0, len(r.sections))
	for _, s := range r.sections {
		if s.ProjectID == projectID {
			s.Content = s.Content.Clone()
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) write() error {
	r.writes++
	return r.failWrites
}

func (r *memoryRepo) CreateSection(ctx context.Context, s models.Section) error {
	if err := r.write(); err != nil {
		return err
	}
	r.sections[s.ID] = s
	return nil
}

func (r *memoryRepo) UpdateSectionContent(ctx context.Context, projectID, id string, c content.Content) error {
	if err := r.write(); err != nil {
		return err
	}
	s := r.sections[id]
	s.Content = c
	r.sections[id] = s
	return nil
}

func (r *memoryRepo) UpdateSectionOrder(ctx context.Context, projectID string, ids []string) error {
	if err := r.write(); err != nil {
		return err
	}
	for i, id := range ids {
		s := r.sections[id]
		s.Order = i
		r.sections[id] = s
	}
	return nil
}

func (r *memoryRepo) DeleteSection(ctx context.Context, projectID, id string) error {
	if err := r.write(); err != nil {
		return err
	}
	delete(r.sections, id)
	return nil
}

func sequentialIDs(s *Store) {
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("s%02d", n)
	}
}

func newTestStore(t *testing.T, repo *memoryRepo) *Store {
	t.Helper()
	s, err := Load(context.Background(), "p1", repo, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	sequentialIDs(s)
	return s
}

func sectionIDs(list []models.Section) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func assertDense(t *testing.T, list []models.Section) {
	t.Helper()
	for i, s := range list {
		if s.Order != i {
			t.Fatalf("section %s at position %d has order %d", s.ID, i, s.Order)
		}
	}
	if !models.OrderIsDense(list) {
		t.Fatalf("orders not dense: %v", list)
	}
}

func TestAddSectionOnEmptyProject(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)

	section, err := s.AddSection(ctx, "hero-split")
	if err != nil {
		t.Fatalf("AddSection() error = %v", err)
	}
	if section.Order != 0 {
		t.Fatalf("order = %d, want 0", section.Order)
	}
	for _, key := range []string{"title", "subtitle", "buttonText", "buttonLink", "image"} {
		if section.Content.String(key) == "" {
			t.Fatalf("content %q empty", key)
		}
	}
	if _, ok := repo.sections[section.ID]; !ok {
		t.Fatalf("section not persisted")
	}
}

func TestDeleteFirstOfTwo(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(
		models.Section{ID: "a", ProjectID: "p1", Type: "hero-split", Order: 0, Content: content.Content{}},
		models.Section{ID: "b", ProjectID: "p1", Type: "cta-gradient", Order: 1, Content: content.Content{}},
	)
	s := newTestStore(t, repo)

	if err := s.DeleteSection(ctx, "a"); err != nil {
		t.Fatalf("DeleteSection() error = %v", err)
	}
	got := s.Sections()
	if len(got) != 1 || got[0].ID != "b" || got[0].Order != 0 {
		t.Fatalf("sections = %+v, want [b@0]", got)
	}
	if repo.sections["b"].Order != 0 {
		t.Fatalf("persisted order = %d, want 0", repo.sections["b"].Order)
	}
}

func TestOrderStaysDenseUnderRandomOperations(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	rng := rand.New(rand.NewSource(7))
	tags := []string{"hero-split", "cta-gradient", "faq-accordion", "mystery-box"}

	for step := 0; step < 300; step++ {
		current := s.Sections()
		n := len(current)
		var err error
		switch op := rng.Intn(6); {
		case op == 0 || n == 0:
			_, err = s.AddSection(ctx, tags[rng.Intn(len(tags))])
		case op == 1:
			err = s.DeleteSection(ctx, current[rng.Intn(n)].ID)
		case op == 2:
			err = s.Reorder(ctx, rng.Intn(n), rng.Intn(n))
		case op == 3:
			err = s.MoveTo(ctx, current[rng.Intn(n)].ID, rng.Intn(n))
		case op == 4:
			err = s.MoveUp(ctx, current[rng.Intn(n)].ID)
		default:
			ids := sectionIDs(current)
			rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
			err = s.ReorderIDs(ctx, ids)
		}
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		assertDense(t, s.Sections())

		persisted, _ := repo.ListSections(ctx, "p1")
		if !models.OrderIsDense(persisted) {
			t.Fatalf("step %d: persisted orders not dense", step)
		}
	}
}

func TestReorderSameIndexIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	for _, tag := range []string{"header-simple", "hero-split", "footer-simple"} {
		if _, err := s.AddSection(ctx, tag); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}
	before := s.Sections()
	writes := repo.writes

	if err := s.Reorder(ctx, 1, 1); err != nil {
		t.Fatalf("Reorder(1, 1) error = %v", err)
	}
	after := s.Sections()
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Order != after[i].Order {
			t.Fatalf("Reorder(1, 1) changed %v to %v", before, after)
		}
	}
	if repo.writes != writes {
		t.Fatalf("Reorder(1, 1) wrote to the repository")
	}
}

func TestReorderMovesSection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemoryRepo())
	for i := 0; i < 4; i++ {
		if _, err := s.AddSection(ctx, "cta-simple"); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "down", from: 0, to: 2, want: []string{"s02", "s03", "s01", "s04"}},
		{name: "up", from: 3, to: 0, want: []string{"s04", "s02", "s03", "s01"}},
		{name: "adjacent", from: 1, to: 2, want: []string{"s04", "s03", "s02", "s01"}},
	}
	for _, test := range tests {
		if err := s.Reorder(ctx, test.from, test.to); err != nil {
			t.Fatalf("%s: Reorder() error = %v", test.name, err)
		}
		got := s.Sections()
		assertDense(t, got)
		if fmt.Sprint(sectionIDs(got)) != fmt.Sprint(test.want) {
			t.Fatalf("%s: order = %v, want %v", test.name, sectionIDs(got), test.want)
		}
	}

	if err := s.Reorder(ctx, 0, 4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Reorder out of range error = %v", err)
	}
}

func TestMoveUpDownAtEdges(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	for i := 0; i < 3; i++ {
		if _, err := s.AddSection(ctx, "cta-simple"); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}
	writes := repo.writes

	if err := s.MoveUp(ctx, "s01"); err != nil {
		t.Fatalf("MoveUp(first) error = %v", err)
	}
	if err := s.MoveDown(ctx, "s03"); err != nil {
		t.Fatalf("MoveDown(last) error = %v", err)
	}
	if repo.writes != writes {
		t.Fatalf("edge moves wrote to the repository")
	}

	if err := s.MoveDown(ctx, "s01"); err != nil {
		t.Fatalf("MoveDown() error = %v", err)
	}
	if got := sectionIDs(s.Sections()); fmt.Sprint(got) != "[s02 s01 s03]" {
		t.Fatalf("order = %v", got)
	}
	if err := s.MoveUp(ctx, "missing"); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("MoveUp(missing) error = %v", err)
	}
}

func TestReorderIDsValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemoryRepo())
	for i := 0; i < 2; i++ {
		if _, err := s.AddSection(ctx, "cta-simple"); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}
	for _, ids := range [][]string{
		{"s01"},
		{"s01", "s01"},
		{"s01", "zz"},
	} {
		if err := s.ReorderIDs(ctx, ids); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("ReorderIDs(%v) error = %v, want ErrInvalidOrder", ids, err)
		}
	}
	if err := s.ReorderIDs(ctx, []string{"s02", "s01"}); err != nil {
		t.Fatalf("ReorderIDs() error = %v", err)
	}
	if got := sectionIDs(s.Sections()); fmt.Sprint(got) != "[s02 s01]" {
		t.Fatalf("order = %v", got)
	}
}

func TestUpdateSectionContentKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	first, _ := s.AddSection(ctx, "hero-split")
	second, _ := s.AddSection(ctx, "cta-simple")

	edited, err := content.SetPath(second.Content, "title", "Changed")
	if err != nil {
		t.Fatalf("SetPath() error = %v", err)
	}
	updated, err := s.UpdateSectionContent(ctx, second.ID, edited)
	if err != nil {
		t.Fatalf("UpdateSectionContent() error = %v", err)
	}
	if updated.Order != 1 || updated.Content.String("title") != "Changed" {
		t.Fatalf("updated = %+v", updated)
	}
	edited["title"] = "mutated after save"
	if got, _ := s.Section(second.ID); got.Content.String("title") != "Changed" {
		t.Fatalf("store shares content with caller")
	}
	if got, _ := s.Section(first.ID); got.Order != 0 {
		t.Fatalf("first section order = %d", got.Order)
	}
	if _, err := s.UpdateSectionContent(ctx, "missing", edited); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("missing section error = %v", err)
	}
}

func TestEditSectionContentSerializesEdits(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	section, err := s.AddSection(ctx, "hero-split")
	if err != nil {
		t.Fatalf("AddSection() error = %v", err)
	}

	const editors = 50
	var wg sync.WaitGroup
	for i := 0; i < editors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.EditSectionContent(ctx, section.ID, func(current models.Section) (content.Content, error) {
				return content.SetPath(current.Content, fmt.Sprintf("note%d", i), "kept")
			})
			if err != nil {
				t.Errorf("EditSectionContent(%d) error = %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, _ := s.Section(section.ID)
	for i := 0; i < editors; i++ {
		if got.Content.String(fmt.Sprintf("note%d", i)) != "kept" {
			t.Fatalf("edit %d lost; content = %v", i, got.Content)
		}
	}
	if stored := repo.sections[section.ID].Content; len(stored) != len(got.Content) {
		t.Fatalf("repository has %d keys, store has %d", len(stored), len(got.Content))
	}

	writes := repo.writes
	rejected := errors.New("bad value")
	if _, err := s.EditSectionContent(ctx, section.ID, func(models.Section) (content.Content, error) {
		return nil, rejected
	}); !errors.Is(err, rejected) {
		t.Fatalf("EditSectionContent() error = %v, want %v", err, rejected)
	}
	if repo.writes != writes {
		t.Fatalf("failed edit wrote to the repository")
	}
	if _, err := s.EditSectionContent(ctx, "missing", func(c models.Section) (content.Content, error) {
		return c.Content, nil
	}); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("missing section error = %v", err)
	}
}

func TestPersistenceFailureReloadsFromRepository(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	for i := 0; i < 3; i++ {
		if _, err := s.AddSection(ctx, "cta-simple"); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}

	cause := errors.New("disk full")
	repo.failWrites = cause

	err := s.Reorder(ctx, 0, 2)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Reorder() error = %v, want PersistenceError", err)
	}
	if !errors.Is(err, cause) || !perr.Reloaded {
		t.Fatalf("PersistenceError = %+v", perr)
	}
	if got := sectionIDs(s.Sections()); fmt.Sprint(got) != "[s01 s02 s03]" {
		t.Fatalf("order after failed reorder = %v, want repository order", got)
	}

	if _, err := s.AddSection(ctx, "hero-split"); !errors.As(err, &perr) {
		t.Fatalf("AddSection() error = %v, want PersistenceError", err)
	}
	if len(s.Sections()) != 3 {
		t.Fatalf("failed add left %d sections", len(s.Sections()))
	}

	if err := s.DeleteSection(ctx, "s02"); !errors.As(err, &perr) {
		t.Fatalf("DeleteSection() error = %v, want PersistenceError", err)
	}
	assertDense(t, s.Sections())
	if len(s.Sections()) != 3 {
		t.Fatalf("failed delete left %d sections", len(s.Sections()))
	}
}

func TestPersistenceFailureRestoresWhenReloadFails(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	s := newTestStore(t, repo)
	for i := 0; i < 2; i++ {
		if _, err := s.AddSection(ctx, "cta-simple"); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}
	repo.failWrites = errors.New("timeout")
	repo.failList = errors.New("offline")

	err := s.MoveDown(ctx, "s01")
	var perr *PersistenceError
	if !errors.As(err, &perr) || perr.Reloaded {
		t.Fatalf("MoveDown() error = %v, want unreloaded PersistenceError", err)
	}
	got := s.Sections()
	assertDense(t, got)
	if fmt.Sprint(sectionIDs(got)) != "[s01 s02]" {
		t.Fatalf("order = %v, want previous order", sectionIDs(got))
	}
}

func TestReloadRepairsOrder(t *testing.T) {
	repo := newMemoryRepo(
		models.Section{ID: "a", ProjectID: "p1", Type: "hero-split", Order: 4},
		models.Section{ID: "b", ProjectID: "p1", Type: "cta-simple", Order: 1},
		models.Section{ID: "c", ProjectID: "p1", Type: "footer-simple", Order: 1},
		models.Section{ID: "other", ProjectID: "p2", Type: "footer-simple", Order: 0},
	)
	s := newTestStore(t, repo)

	got := s.Sections()
	assertDense(t, got)
	if fmt.Sprint(sectionIDs(got)) != "[b c a]" {
		t.Fatalf("order = %v, want [b c a]", sectionIDs(got))
	}
	if repo.sections["a"].Order != 2 || repo.sections["c"].Order != 1 {
		t.Fatalf("repaired order not persisted: %+v", repo.sections)
	}
}
