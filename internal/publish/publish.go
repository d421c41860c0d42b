// Package publish writes the static export of projects to the output directory.
package publish

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/models"
)

var ErrNoOutputDir = errors.New("publish output directory is not configured")

// ProjectSource loads projects with their sections in order.
type ProjectSource interface {
	Get(ctx context.Context, id string) (models.Project, error)
	SetPublished(ctx context.Context, id string, published bool) error
}

// PublishedLister lists the projects the scheduled job re-exports.
type PublishedLister interface {
	ListPublishedProjects(ctx context.Context) ([]models.Project, error)
}

// Notifier is told about every successful publish.
type Notifier interface {
	NotifyPublished(ctx context.Context, project models.Project, path string)
}

type Publisher struct {
	projects  ProjectSource
	exporter  *export.Exporter
	outputDir string
	notifier  Notifier
}

func NewPublisher(projects ProjectSource, exporter *export.Exporter, outputDir string, notifier Notifier) *Publisher {
	if exporter == nil {
		exporter = export.NewExporter(nil, export.DefaultOptions())
	}
	return &Publisher{
		projects:  projects,
		exporter:  exporter,
		outputDir: strings.TrimSpace(outputDir),
		notifier:  notifier,
	}
}

// SiteDir is where the site of projectID is written.
func (p *Publisher) SiteDir(projectID string) string {
	return filepath.Join(p.outputDir, filepath.Base(filepath.Clean("/"+projectID)))
}

// Publish exports a project, writes it to its site directory, marks it published and
// notifies.
func (p *Publisher) Publish(ctx context.Context, projectID string) (string, error) {
	return p.publish(ctx, projectID, true)
}

func (p *Publisher) publish(ctx context.Context, projectID string, notify bool) (string, error) {
	if p.outputDir == "" {
		return "", ErrNoOutputDir
	}
	project, err := p.projects.Get(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("load project: %w", err)
	}
	path, err := export.WriteSite(p.SiteDir(project.ID), p.exporter.ExportHTML(project, project.Theme))
	if err != nil {
		return "", err
	}
	if !project.Published {
		if err := p.projects.SetPublished(ctx, project.ID, true); err != nil {
			return "", err
		}
		project.Published = true
	}

	log.Ctx(ctx).Info().
		Str("project_id", project.ID).
		Str("path", path).
		Int("sections", len(project.Sections)).
		Msg("Published site")
	if notify && p.notifier != nil {
		p.notifier.NotifyPublished(ctx, project, path)
	}
	return path, nil
}

// PublishAll re-exports every published project without notifying. One failing project
// does not stop the others; the number published and the joined errors are returned.
func (p *Publisher) PublishAll(ctx context.Context, lister PublishedLister) (int, error) {
	projects, err := lister.ListPublishedProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("list published projects: %w", err)
	}
	var errs []error
	published := 0
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := p.publish(ctx, project.ID, false); err != nil {
			errs = append(errs, fmt.Errorf("project %s: %w", project.ID, err))
			continue
		}
		published++
	}
	return published, errors.Join(errs...)
}
