package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/models"
	"github.com/codr1/pagecraft/internal/projectfile"
	"github.com/codr1/pagecraft/internal/sections"
	"github.com/codr1/pagecraft/internal/themes"
)

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "export <project-file>",
		Short: "Render a JSON or YAML project file to a static index.html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toStdout {
				project, html, err := renderFile(args[0], opts)
				if err != nil {
					return err
				}
				log.Debug().Str("project_id", project.ID).Int("bytes", len(html)).Msg("Rendered project")
				_, err = io.WriteString(cmd.OutOrStdout(), html)
				return err
			}
			path, err := exportFile(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the page instead of writing it")

	return cmd
}

func renderFile(path string, opts *exportOptions) (models.Project, string, error) {
	doc, err := projectfile.Read(path)
	if err != nil {
		return models.Project{}, "", err
	}
	catalog, err := themes.Builtin()
	if err != nil {
		return models.Project{}, "", fmt.Errorf("load theme catalog: %w", err)
	}
	registry := sections.Default()
	project, err := doc.Project(catalog, registry)
	if err != nil {
		return models.Project{}, "", fmt.Errorf("%s: %w", path, err)
	}
	html := export.NewExporter(registry, opts.exporterOptions()).ExportHTML(project, project.Theme)
	return project, html, nil
}

// exportFile renders path into <out>/<project slug>/index.html and returns the page path.
func exportFile(path string, opts *exportOptions) (string, error) {
	project, html, err := renderFile(path, opts)
	if err != nil {
		return "", err
	}
	written, err := export.WriteSite(filepath.Join(opts.outDir, project.ID), html)
	if err != nil {
		return "", err
	}
	log.Info().
		Str("project_id", project.ID).
		Int("sections", len(project.Sections)).
		Str("path", written).
		Msg("Exported site")
	return written, nil
}
