package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codr1/pagecraft/internal/sections"
	"github.com/codr1/pagecraft/internal/themes"
)

func newCatalogCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the section types that can be added to a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := sections.Default().Catalog()
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tGROUP\tNAME")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Type, entry.GroupLabel, entry.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newThemesCmd() *cobra.Command {
	var (
		jsonOutput bool
		near       string
	)

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes and font collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := themes.Builtin()
			if err != nil {
				return fmt.Errorf("load theme catalog: %w", err)
			}
			if near != "" {
				return printNearest(cmd.OutOrStdout(), catalog, near, jsonOutput)
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), catalog)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "THEME\tNAME\tPRIMARY\tFONTS")
			for _, theme := range catalog.Themes {
				id := theme.ID
				if id == catalog.DefaultID {
					id += " (default)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s / %s\n", id, theme.Name, theme.Colors.Primary, theme.Fonts.Primary, theme.Fonts.Secondary)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "FONTS\tNAME\tDESCRIPTION")
			for _, collection := range catalog.Fonts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", collection.ID, collection.Name, collection.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&near, "near", "", "Rank themes by closeness to a brand color (hex)")

	return cmd
}

func printNearest(w io.Writer, catalog *themes.Catalog, hex string, jsonOutput bool) error {
	matches, err := catalog.Nearest(hex)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(w, matches)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "THEME\tPRIMARY\tDISTANCE")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%.4f\n", m.Theme.ID, m.Theme.Colors.Primary, m.Distance)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
