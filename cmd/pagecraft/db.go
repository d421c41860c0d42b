package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/codr1/pagecraft/internal/db"
)

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|version>",
		Short:     "Apply, roll back or inspect the database migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.Database.Filename), 0o755); err != nil {
				return fmt.Errorf("create database directory: %w", err)
			}
			result, err := db.RunMigrationCommand(cfg.Database.Filename, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newMaterializeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "materialize-placements <project-id>...",
		Short: "Turn legacy template placements into editable sections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			database, err := db.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			repo := db.NewRepository(database)
			for _, projectID := range args {
				n, err := repo.MaterializePlacements(ctx, projectID)
				if err != nil {
					return fmt.Errorf("project %s: %w", projectID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sections created\n", projectID, n)
			}
			return nil
		},
	}
}
