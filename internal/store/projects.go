package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/sections"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectName     = errors.New("project name is required")
	ErrInvalidTheme    = errors.New("invalid theme")
)

// ProjectRepository persists projects and their active theme. Sections are stored
// through Repository.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) error
	GetProject(ctx context.Context, id string) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProjectTheme(ctx context.Context, id, themeID string, theme models.Theme) error
	SetProjectPublished(ctx context.Context, id string, published bool) error
	DeleteProject(ctx context.Context, id string) error
}

// Projects opens projects and keeps one section Store per open project.
type Projects struct {
	mu       sync.Mutex
	projects ProjectRepository
	sections Repository
	registry *sections.Registry
	stores   map[string]*Store
	now      func() time.Time
}

func NewProjects(projects ProjectRepository, sectionRepo Repository, registry *sections.Registry) *Projects {
	if registry == nil {
		registry = sections.Default()
	}
	return &Projects{
		projects: projects,
		sections: sectionRepo,
		registry: registry,
		stores:   make(map[string]*Store),
		now:      time.Now,
	}
}

func (p *Projects) Registry() *sections.Registry {
	return p.registry
}

// Create stores a new empty project using theme as its active theme.
func (p *Projects) Create(ctx context.Context, name, themeID string, theme models.Theme) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, ErrProjectName
	}
	resolved := theme.Resolved()
	if err := resolved.Validate(); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	now := p.now().UTC()
	project := models.Project{
		ID:        uuid.NewString(),
		Name:      name,
		ThemeID:   themeID,
		Theme:     resolved,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.projects.CreateProject(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	project.Sections = []models.Section{}
	return project, nil
}

// Get returns a project with its sections in display order.
func (p *Projects) Get(ctx context.Context, id string) (models.Project, error) {
	project, err := p.projects.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	s, err := p.Sections(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	project.Sections = s.Sections()
	return project, nil
}

func (p *Projects) List(ctx context.Context) ([]models.Project, error) {
	return p.projects.ListProjects(ctx)
}

// Sections returns the section store of a project, loading it on first use.
func (p *Projects) Sections(ctx context.Context, projectID string) (*Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.stores[projectID]; ok {
		return s, nil
	}
	s, err := Load(ctx, projectID, p.sections, p.registry)
	if err != nil {
		return nil, err
	}
	p.stores[projectID] = s
	return s, nil
}

// SetTheme swaps the active theme of a project. The theme is resolved against the
// default per role and must validate.
func (p *Projects) SetTheme(ctx context.Context, id, themeID string, theme models.Theme) (models.Theme, error) {
	resolved := theme.Resolved()
	if err := resolved.Validate(); err != nil {
		return models.Theme{}, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	if err := p.projects.UpdateProjectTheme(ctx, id, themeID, resolved); err != nil {
		return models.Theme{}, fmt.Errorf("update theme: %w", err)
	}
	return resolved, nil
}

func (p *Projects) SetPublished(ctx context.Context, id string, published bool) error {
	if err := p.projects.SetProjectPublished(ctx, id, published); err != nil {
		return fmt.Errorf("set published: %w", err)
	}
	return nil
}

// Delete removes a project and its sections.
func (p *Projects) Delete(ctx context.Context, id string) error {
	if err := p.projects.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	p.mu.Lock()
	delete(p.stores, id)
	p.mu.Unlock()
	return nil
}
