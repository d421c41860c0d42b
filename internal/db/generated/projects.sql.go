package dbgen

import (
	"context"
	"time"
)

const createProject = `
INSERT INTO projects (id, name, theme_id, theme_json, published, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateProjectParams struct {
	ID        string
	Name      string
	ThemeID   string
	ThemeJSON string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) error {
	_, err := q.db.ExecContext(ctx, createProject,
		arg.ID,
		arg.Name,
		arg.ThemeID,
		arg.ThemeJSON,
		arg.Published,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getProject = `
SELECT id, name, theme_id, theme_json, published, created_at, updated_at
FROM projects
WHERE id = ?
`

func (q *Queries) GetProject(ctx context.Context, id string) (Project, error) {
	row := q.db.QueryRowContext(ctx, getProject, id)
	var i Project
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.ThemeID,
		&i.ThemeJSON,
		&i.Published,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listProjects = `
SELECT id, name, theme_id, theme_json, published, created_at, updated_at
FROM projects
ORDER BY created_at, id
`

func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	return q.queryProjects(ctx, listProjects)
}

const listPublishedProjects = `
SELECT id, name, theme_id, theme_json, published, created_at, updated_at
FROM projects
WHERE published = 1
ORDER BY created_at, id
`

func (q *Queries) ListPublishedProjects(ctx context.Context) ([]Project, error) {
	return q.queryProjects(ctx, listPublishedProjects)
}

func (q *Queries) queryProjects(ctx context.Context, query string) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Project{}
	for rows.Next() {
		var i Project
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.ThemeID,
			&i.ThemeJSON,
			&i.Published,
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

const updateProjectTheme = `
UPDATE projects
SET theme_id = ?, theme_json = ?, updated_at = ?
WHERE id = ?
`

type UpdateProjectThemeParams struct {
	ThemeID   string
	ThemeJSON string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateProjectTheme(ctx context.Context, arg UpdateProjectThemeParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateProjectTheme, arg.ThemeID, arg.ThemeJSON, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setProjectPublished = `
UPDATE projects
SET published = ?, updated_at = ?
WHERE id = ?
`

type SetProjectPublishedParams struct {
	Published bool
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) SetProjectPublished(ctx context.Context, arg SetProjectPublishedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setProjectPublished, arg.Published, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteProject = `
DELETE FROM projects
WHERE id = ?
`

func (q *Queries) DeleteProject(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteProject, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
