package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/content"
	dbgen "github.com/codr1/pagecraft/internal/db/generated"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/store"
)

// Repository stores projects, sections and legacy placements in SQLite. It satisfies
// store.Repository and store.ProjectRepository.
type Repository struct {
	db  *DB
	now func() time.Time
}

var (
	_ store.Repository        = (*Repository)(nil)
	_ store.ProjectRepository = (*Repository)(nil)
)

func NewRepository(database *DB) *Repository {
	return &Repository{db: database, now: time.Now}
}

func (r *Repository) CreateProject(ctx context.Context, project models.Project) error {
	themeJSON, err := json.Marshal(project.Theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	now := r.now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = now
	}
	return r.db.Queries.CreateProject(ctx, dbgen.CreateProjectParams{
		ID:        project.ID,
		Name:      project.Name,
		ThemeID:   project.ThemeID,
		ThemeJSON: string(themeJSON),
		Published: project.Published,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	})
}

func (r *Repository) GetProject(ctx context.Context, id string) (models.Project, error) {
	row, err := r.db.Queries.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, store.ErrProjectNotFound
		}
		return models.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	return toProject(row), nil
}

func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.Queries.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return toProjects(rows), nil
}

// ListPublishedProjects returns the projects the publish job re-exports.
func (r *Repository) ListPublishedProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.Queries.ListPublishedProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published projects: %w", err)
	}
	return toProjects(rows), nil
}

func (r *Repository) UpdateProjectTheme(ctx context.Context, id, themeID string, theme models.Theme) error {
	themeJSON, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	n, err := r.db.Queries.UpdateProjectTheme(ctx, dbgen.UpdateProjectThemeParams{
		ThemeID:   themeID,
		ThemeJSON: string(themeJSON),
		UpdatedAt: r.now().UTC(),
		ID:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrProjectNotFound
	}
	return nil
}

func (r *Repository) SetProjectPublished(ctx context.Context, id string, published bool) error {
	n, err := r.db.Queries.SetProjectPublished(ctx, dbgen.SetProjectPublishedParams{
		Published: published,
		UpdatedAt: r.now().UTC(),
		ID:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrProjectNotFound
	}
	return nil
}

func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	n, err := r.db.Queries.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrProjectNotFound
	}
	return nil
}

func (r *Repository) ListSections(ctx context.Context, projectID string) ([]models.Section, error) {
	rows, err := r.db.Queries.ListSections(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	sections := make([]models.Section, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, models.Section{
			ID:        row.ID,
			ProjectID: row.ProjectID,
			Type:      row.Type,
			Content:   content.ParseLayer("content", []byte(row.Content)),
			Order:     int(row.Position),
		})
	}
	return sections, nil
}

func (r *Repository) CreateSection(ctx context.Context, section models.Section) error {
	data, err := content.Encode(section.Content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	now := r.now().UTC()
	return r.db.Queries.CreateSection(ctx, dbgen.CreateSectionParams{
		ID:        section.ID,
		ProjectID: section.ProjectID,
		Type:      section.Type,
		Content:   string(data),
		Position:  int64(section.Order),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (r *Repository) UpdateSectionContent(ctx context.Context, projectID, sectionID string, c content.Content) error {
	data, err := content.Encode(c)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	n, err := r.db.Queries.UpdateSectionContent(ctx, dbgen.UpdateSectionContentParams{
		Content:   string(data),
		UpdatedAt: r.now().UTC(),
		ProjectID: projectID,
		ID:        sectionID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrSectionNotFound
	}
	return nil
}

// UpdateSectionOrder writes every position in one transaction, so readers never see a
// half-applied reorder.
func (r *Repository) UpdateSectionOrder(ctx context.Context, projectID string, ids []string) error {
	now := r.now().UTC()
	return r.db.RunInTx(ctx, func(q *dbgen.Queries) error {
		for i, id := range ids {
			n, err := q.UpdateSectionPosition(ctx, dbgen.UpdateSectionPositionParams{
				Position:  int64(i),
				UpdatedAt: now,
				ProjectID: projectID,
				ID:        id,
			})
			if err != nil {
				return fmt.Errorf("update position of %s: %w", id, err)
			}
			if n == 0 {
				return fmt.Errorf("update position of %s: %w", id, store.ErrSectionNotFound)
			}
		}
		return nil
	})
}

// DeleteSection is idempotent: deleting a missing section succeeds.
func (r *Repository) DeleteSection(ctx context.Context, projectID, sectionID string) error {
	return r.db.Queries.DeleteSection(ctx, projectID, sectionID)
}

// CreateSectionTemplate stores a catalog template with its variants and returns its id.
func (r *Repository) CreateSectionTemplate(ctx context.Context, tmpl models.SectionTemplate) (int64, error) {
	var id int64
	err := r.db.RunInTx(ctx, func(q *dbgen.Queries) error {
		now := r.now().UTC()
		var err error
		id, err = q.CreateSectionTemplate(ctx, dbgen.CreateSectionTemplateParams{
			Type:         tmpl.Type,
			Name:         tmpl.Name,
			CategorySlug: tmpl.CategorySlug,
			DefaultData:  rawOrEmpty(tmpl.DefaultData),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		names := make([]string, 0, len(tmpl.Variants))
		for name := range tmpl.Variants {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := q.UpsertSectionTemplateVariant(ctx, dbgen.UpsertSectionTemplateVariantParams{
				TemplateID:  id,
				Name:        name,
				VariantData: rawOrEmpty(tmpl.Variants[name]),
			}); err != nil {
				return fmt.Errorf("create variant %s: %w", name, err)
			}
		}
		return nil
	})
	return id, err
}

func (r *Repository) CreatePlacement(ctx context.Context, p models.Placement) (int64, error) {
	return r.db.Queries.CreatePlacement(ctx, dbgen.CreatePlacementParams{
		ProjectID:  p.ProjectID,
		TemplateID: p.Template.ID,
		Variant:    p.Variant,
		CustomData: rawOrEmpty(p.CustomData),
		Position:   int64(p.Order),
	})
}

// ListPlacements returns the legacy placements of a project with the template default
// data and the selected variant's data attached.
func (r *Repository) ListPlacements(ctx context.Context, projectID string) ([]models.Placement, error) {
	rows, err := r.db.Queries.ListPlacements(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	placements := make([]models.Placement, 0, len(rows))
	for _, row := range rows {
		tmpl := models.SectionTemplate{
			ID:           row.Template.ID,
			Type:         row.Template.Type,
			Name:         row.Template.Name,
			CategorySlug: row.Template.CategorySlug,
			DefaultData:  json.RawMessage(row.Template.DefaultData),
			CreatedAt:    row.Template.CreatedAt,
			UpdatedAt:    row.Template.UpdatedAt,
		}
		if row.Placement.Variant != "" && row.VariantData != "" {
			tmpl.Variants = map[string]json.RawMessage{
				row.Placement.Variant: json.RawMessage(row.VariantData),
			}
		}
		placements = append(placements, models.Placement{
			ID:         row.Placement.ID,
			ProjectID:  row.Placement.ProjectID,
			Template:   tmpl,
			Variant:    row.Placement.Variant,
			CustomData: json.RawMessage(row.Placement.CustomData),
			Order:      int(row.Placement.Position),
		})
	}
	return placements, nil
}

// MaterializePlacements converts the legacy placements of a project into sections
// holding their effective content. The new sections are appended after the existing
// ones and the placements are removed, all in one transaction. It returns the number of
// sections created.
func (r *Repository) MaterializePlacements(ctx context.Context, projectID string) (int, error) {
	placements, err := r.ListPlacements(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if len(placements) == 0 {
		return 0, nil
	}
	existing, err := r.ListSections(ctx, projectID)
	if err != nil {
		return 0, err
	}

	now := r.now().UTC()
	err = r.db.RunInTx(ctx, func(q *dbgen.Queries) error {
		for i, p := range placements {
			section := p.Section()
			data, err := content.Encode(section.Content)
			if err != nil {
				return fmt.Errorf("encode placement %d: %w", p.ID, err)
			}
			if err := q.CreateSection(ctx, dbgen.CreateSectionParams{
				ID:        section.ID,
				ProjectID: projectID,
				Type:      section.Type,
				Content:   string(data),
				Position:  int64(len(existing) + i),
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				return fmt.Errorf("create section for placement %d: %w", p.ID, err)
			}
		}
		return q.DeletePlacements(ctx, projectID)
	})
	if err != nil {
		return 0, err
	}
	log.Info().
		Str("project_id", projectID).
		Int("count", len(placements)).
		Msg("Materialized placements into sections")
	return len(placements), nil
}

func toProjects(rows []dbgen.Project) []models.Project {
	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, toProject(row))
	}
	return projects
}

func toProject(row dbgen.Project) models.Project {
	project := models.Project{
		ID:        row.ID,
		Name:      row.Name,
		ThemeID:   row.ThemeID,
		Published: row.Published,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(row.ThemeJSON), &project.Theme); err != nil {
		log.Warn().Err(err).Str("project_id", row.ID).Msg("Stored theme is malformed; using default theme")
		project.Theme = models.DefaultTheme()
	}
	project.Theme = project.Theme.Resolved()
	return project
}

func rawOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
