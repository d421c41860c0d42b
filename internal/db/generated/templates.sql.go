package dbgen

import (
	"context"
	"time"
)

const createSectionTemplate = `
INSERT INTO section_templates (type, name, category_slug, default_data, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id
`

type CreateSectionTemplateParams struct {
	Type         string
	Name         string
	CategorySlug string
	DefaultData  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (q *Queries) CreateSectionTemplate(ctx context.Context, arg CreateSectionTemplateParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createSectionTemplate,
		arg.Type,
		arg.Name,
		arg.CategorySlug,
		arg.DefaultData,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertSectionTemplateVariant = `
INSERT INTO section_template_variants (template_id, name, variant_data)
VALUES (?, ?, ?)
ON CONFLICT (template_id, name) DO UPDATE SET variant_data = excluded.variant_data
`

type UpsertSectionTemplateVariantParams struct {
	TemplateID  int64
	Name        string
	VariantData string
}

func (q *Queries) UpsertSectionTemplateVariant(ctx context.Context, arg UpsertSectionTemplateVariantParams) error {
	_, err := q.db.ExecContext(ctx, upsertSectionTemplateVariant, arg.TemplateID, arg.Name, arg.VariantData)
	return err
}

const createPlacement = `
INSERT INTO placements (project_id, template_id, variant, custom_data, position)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`

type CreatePlacementParams struct {
	ProjectID  string
	TemplateID int64
	Variant    string
	CustomData string
	Position   int64
}

func (q *Queries) CreatePlacement(ctx context.Context, arg CreatePlacementParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createPlacement,
		arg.ProjectID,
		arg.TemplateID,
		arg.Variant,
		arg.CustomData,
		arg.Position,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listPlacements = `
SELECT
    p.id, p.project_id, p.template_id, p.variant, p.custom_data, p.position,
    t.type, t.name, t.category_slug, t.default_data, t.created_at, t.updated_at,
    COALESCE(v.variant_data, '') AS variant_data
FROM placements p
JOIN section_templates t ON t.id = p.template_id
LEFT JOIN section_template_variants v ON v.template_id = p.template_id AND v.name = p.variant
WHERE p.project_id = ?
ORDER BY p.position, p.id
`

type ListPlacementsRow struct {
	Placement   Placement
	Template    SectionTemplate
	VariantData string
}

func (q *Queries) ListPlacements(ctx context.Context, projectID string) ([]ListPlacementsRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlacements, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListPlacementsRow{}
	for rows.Next() {
		var i ListPlacementsRow
		if err := rows.Scan(
			&i.Placement.ID,
			&i.Placement.ProjectID,
			&i.Placement.TemplateID,
			&i.Placement.Variant,
			&i.Placement.CustomData,
			&i.Placement.Position,
			&i.Template.Type,
			&i.Template.Name,
			&i.Template.CategorySlug,
			&i.Template.DefaultData,
			&i.Template.CreatedAt,
			&i.Template.UpdatedAt,
			&i.VariantData,
		); err != nil {
			return nil, err
		}
		i.Template.ID = i.Placement.TemplateID
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deletePlacements = `
DELETE FROM placements
WHERE project_id = ?
`

func (q *Queries) DeletePlacements(ctx context.Context, projectID string) error {
	_, err := q.db.ExecContext(ctx, deletePlacements, projectID)
	return err
}
