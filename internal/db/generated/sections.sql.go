package dbgen

import (
	"context"
	"time"
)

const listSections = `
SELECT id, project_id, type, content, position, created_at, updated_at
FROM sections
WHERE project_id = ?
ORDER BY position, created_at, id
`

func (q *Queries) ListSections(ctx context.Context, projectID string) ([]Section, error) {
	rows, err := q.db.QueryContext(ctx, listSections, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Section{}
	for rows.Next() {
		var i Section
		if err := rows.Scan(
			&i.ID,
			&i.ProjectID,
			&i.Type,
			&i.Content,
			&i.Position,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
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

const createSection = `
INSERT INTO sections (id, project_id, type, content, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    type = excluded.type,
    content = excluded.content,
    position = excluded.position,
    updated_at = excluded.updated_at
`

type CreateSectionParams struct {
	ID        string
	ProjectID string
	Type      string
	Content   string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSection is an upsert so a retried create is harmless.
func (q *Queries) CreateSection(ctx context.Context, arg CreateSectionParams) error {
	_, err := q.db.ExecContext(ctx, createSection,
		arg.ID,
		arg.ProjectID,
		arg.Type,
		arg.Content,
		arg.Position,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateSectionContent = `
UPDATE sections
SET content = ?, updated_at = ?
WHERE project_id = ? AND id = ?
`

type UpdateSectionContentParams struct {
	Content   string
	UpdatedAt time.Time
	ProjectID string
	ID        string
}

func (q *Queries) UpdateSectionContent(ctx context.Context, arg UpdateSectionContentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateSectionContent, arg.Content, arg.UpdatedAt, arg.ProjectID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateSectionPosition = `
UPDATE sections
SET position = ?, updated_at = ?
WHERE project_id = ? AND id = ?
`

type UpdateSectionPositionParams struct {
	Position  int64
	UpdatedAt time.Time
	ProjectID string
	ID        string
}

func (q *Queries) UpdateSectionPosition(ctx context.Context, arg UpdateSectionPositionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateSectionPosition, arg.Position, arg.UpdatedAt, arg.ProjectID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteSection = `
DELETE FROM sections
WHERE project_id = ? AND id = ?
`

func (q *Queries) DeleteSection(ctx context.Context, projectID, id string) error {
	_, err := q.db.ExecContext(ctx, deleteSection, projectID, id)
	return err
}
