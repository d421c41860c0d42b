// Package store owns the ordered sections of one project. Every mutation is applied to
// the local list first and then persisted; when persistence fails the list is rebuilt
// from the repository, which is the durable source of truth.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrIndexOutOfRange = errors.New("section index out of range")
	ErrInvalidOrder    = errors.New("order must list every section exactly once")
)

// Repository is the persistence boundary for sections. Implementations must make every
// call safe to retry.
type Repository interface {
	ListSections(ctx context.Context, projectID string) ([]models.Section, error)
	CreateSection(ctx context.Context, section models.Section) error
	UpdateSectionContent(ctx context.Context, projectID, sectionID string, c content.Content) error
	// UpdateSectionOrder sets each listed section's order to its position in ids.
	UpdateSectionOrder(ctx context.Context, projectID string, ids []string) error
	DeleteSection(ctx context.Context, projectID, sectionID string) error
}

// PersistenceError reports a repository failure after a local mutation. The store has
// already reloaded (or, if that failed too, restored) its list when it is returned.
type PersistenceError struct {
	Op       string
	Err      error
	Reloaded bool
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: persistence failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store holds the sections of one project sorted by order. Order is dense after every
// completed call.
type Store struct {
	mu        sync.Mutex
	projectID string
	repo      Repository
	registry  *sections.Registry
	sections  []models.Section
	newID     func() string
}

// New returns an empty store. Call Reload to fill it from the repository.
func New(projectID string, repo Repository, registry *sections.Registry) *Store {
	if registry == nil {
		registry = sections.Default()
	}
	return &Store{
		projectID: projectID,
		repo:      repo,
		registry:  registry,
		newID:     uuid.NewString,
	}
}

// Load returns a store filled from the repository.
func Load(ctx context.Context, projectID string, repo Repository, registry *sections.Registry) (*Store, error) {
	s := New(projectID, repo, registry)
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ProjectID() string {
	return s.projectID
}

// Sections returns a copy of the sections in display order.
func (s *Store) Sections() []models.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSections(s.sections)
}

// Section returns a copy of one section.
func (s *Store) Section(id string) (models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Section{}, fmt.Errorf("%s: %w", id, ErrSectionNotFound)
	}
	return cloneSection(s.sections[i]), nil
}

// Reload replaces the local list with the repository's. Stored orders that are not a
// dense permutation are renumbered in their stored sequence and written back.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

func (s *Store) reloadLocked(ctx context.Context) error {
	loaded, err := s.repo.ListSections(ctx, s.projectID)
	if err != nil {
		return fmt.Errorf("list sections: %w", err)
	}
	sorted := models.SortSections(loaded)
	dense := models.OrderIsDense(sorted)
	renumber(sorted)
	s.sections = sorted

	if !dense {
		log.Warn().
			Str("project_id", s.projectID).
			Int("sections", len(sorted)).
			Msg("Repaired non-dense section order")
		if err := s.repo.UpdateSectionOrder(ctx, s.projectID, ids(sorted)); err != nil {
			log.Error().Err(err).Str("project_id", s.projectID).Msg("Failed to persist repaired section order")
		}
	}
	return nil
}

// AddSection appends a section of type tag holding the tag's default content.
func (s *Store) AddSection(ctx context.Context, tag string) (models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section := models.Section{
		ID:        s.newID(),
		ProjectID: s.projectID,
		Type:      tag,
		Content:   s.registry.DefaultContent(tag),
		Order:     len(s.sections),
	}
	snapshot := cloneSections(s.sections)
	s.sections = append(s.sections, section)

	if err := s.repo.CreateSection(ctx, cloneSection(section)); err != nil {
		return models.Section{}, s.reconcile(ctx, "add section", snapshot, err)
	}
	return cloneSection(section), nil
}

// UpdateSectionContent replaces a section's content. Order is untouched.
func (s *Store) UpdateSectionContent(ctx context.Context, id string, c content.Content) (models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Section{}, fmt.Errorf("%s: %w", id, ErrSectionNotFound)
	}
	return s.saveContentLocked(ctx, i, c)
}

// EditSectionContent saves the content edit returns for the section's current state.
// The store stays locked from read to write, so concurrent edits of one section see
// each other. An edit error leaves the section and the repository untouched.
func (s *Store) EditSectionContent(ctx context.Context, id string, edit func(models.Section) (content.Content, error)) (models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Section{}, fmt.Errorf("%s: %w", id, ErrSectionNotFound)
	}
	c, err := edit(cloneSection(s.sections[i]))
	if err != nil {
		return models.Section{}, err
	}
	return s.saveContentLocked(ctx, i, c)
}

func (s *Store) saveContentLocked(ctx context.Context, i int, c content.Content) (models.Section, error) {
	snapshot := cloneSections(s.sections)
	s.sections[i].Content = c.Clone()

	if err := s.repo.UpdateSectionContent(ctx, s.projectID, s.sections[i].ID, s.sections[i].Content.Clone()); err != nil {
		return models.Section{}, s.reconcile(ctx, "update section content", snapshot, err)
	}
	return cloneSection(s.sections[i]), nil
}

// DeleteSection removes a section and renumbers the rest in their current sequence.
func (s *Store) DeleteSection(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrSectionNotFound)
	}
	snapshot := cloneSections(s.sections)
	s.sections = append(s.sections[:i:i], s.sections[i+1:]...)
	renumber(s.sections)

	if err := s.repo.DeleteSection(ctx, s.projectID, id); err != nil {
		return s.reconcile(ctx, "delete section", snapshot, err)
	}
	if err := s.repo.UpdateSectionOrder(ctx, s.projectID, ids(s.sections)); err != nil {
		return s.reconcile(ctx, "delete section", snapshot, err)
	}
	return nil
}

// Reorder moves the section at position from to position to. Equal positions change
// nothing and do not touch the repository.
func (s *Store) Reorder(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveLocked(ctx, from, to)
}

// MoveTo moves a section to newIndex.
func (s *Store) MoveTo(ctx context.Context, id string, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrSectionNotFound)
	}
	return s.moveLocked(ctx, i, newIndex)
}

// MoveUp moves a section one position earlier. The first section stays put.
func (s *Store) MoveUp(ctx context.Context, id string) error {
	return s.step(ctx, id, -1)
}

// MoveDown moves a section one position later. The last section stays put.
func (s *Store) MoveDown(ctx context.Context, id string) error {
	return s.step(ctx, id, 1)
}

func (s *Store) step(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrSectionNotFound)
	}
	to := i + delta
	if to < 0 || to >= len(s.sections) {
		return nil
	}
	return s.moveLocked(ctx, i, to)
}

// ReorderIDs puts the sections in the given sequence. ids must name every section once.
func (s *Store) ReorderIDs(ctx context.Context, order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(order) != len(s.sections) {
		return fmt.Errorf("got %d ids for %d sections: %w", len(order), len(s.sections), ErrInvalidOrder)
	}
	byID := make(map[string]models.Section, len(s.sections))
	for _, section := range s.sections {
		byID[section.ID] = section
	}
	next := make([]models.Section, 0, len(order))
	for _, id := range order {
		section, ok := byID[id]
		if !ok {
			return fmt.Errorf("%s: %w", id, ErrInvalidOrder)
		}
		delete(byID, id)
		next = append(next, section)
	}
	if sameSequence(next, s.sections) {
		return nil
	}

	snapshot := cloneSections(s.sections)
	s.sections = next
	renumber(s.sections)
	return s.persistOrder(ctx, "reorder sections", snapshot)
}

func (s *Store) moveLocked(ctx context.Context, from, to int) error {
	n := len(s.sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d to %d of %d: %w", from, to, n, ErrIndexOutOfRange)
	}
	if from == to {
		return nil
	}

	snapshot := cloneSections(s.sections)
	moved := s.sections[from]
	rest := make([]models.Section, 0, n)
	rest = append(rest, s.sections[:from]...)
	rest = append(rest, s.sections[from+1:]...)

	next := make([]models.Section, 0, n)
	next = append(next, rest[:to]...)
	next = append(next, moved)
	next = append(next, rest[to:]...)
	s.sections = next
	renumber(s.sections)
	return s.persistOrder(ctx, "reorder sections", snapshot)
}

func (s *Store) persistOrder(ctx context.Context, op string, snapshot []models.Section) error {
	if err := s.repo.UpdateSectionOrder(ctx, s.projectID, ids(s.sections)); err != nil {
		return s.reconcile(ctx, op, snapshot, err)
	}
	return nil
}

// reconcile rebuilds the list from the repository after a failed write. Only when the
// reload fails as well is the pre-operation snapshot put back.
func (s *Store) reconcile(ctx context.Context, op string, snapshot []models.Section, cause error) error {
	logger := log.With().Str("project_id", s.projectID).Str("op", op).Logger()
	logger.Error().Err(cause).Msg("Section persistence failed; reloading")

	reloaded := true
	if err := s.reloadLocked(ctx); err != nil {
		logger.Error().Err(err).Msg("Reload after persistence failure failed; restoring previous state")
		s.sections = snapshot
		reloaded = false
	}
	return &PersistenceError{Op: op, Err: cause, Reloaded: reloaded}
}

func (s *Store) indexOf(id string) int {
	for i, section := range s.sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

func renumber(list []models.Section) {
	for i := range list {
		list[i].Order = i
	}
}

func ids(list []models.Section) []string {
	out := make([]string, len(list))
	for i, section := range list {
		out[i] = section.ID
	}
	return out
}

func sameSequence(a, b []models.Section) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func cloneSection(section models.Section) models.Section {
	section.Content = section.Content.Clone()
	return section
}

func cloneSections(list []models.Section) []models.Section {
	out := make([]models.Section, len(list))
	for i, section := range list {
		out[i] = cloneSection(section)
	}
	return out
}
