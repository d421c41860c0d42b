package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codr1/pagecraft/internal/config"
	"github.com/codr1/pagecraft/internal/export"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pagecraft",
		Short:         "Export and manage pagecraft sites from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flags.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "config/app.yaml", "Path to the yaml configuration file")

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newMigrateCmd(flags))
	cmd.AddCommand(newMaterializeCmd(flags))

	return cmd
}

// exportOptions are the document references shared by export and watch.
type exportOptions struct {
	outDir      string
	tailwindURL string
	noFonts     bool
	noIcons     bool
}

func (o *exportOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.outDir, "out", "o", "public", "Directory the site folder is written to")
	cmd.Flags().StringVar(&o.tailwindURL, "tailwind", "", "Tailwind CDN URL to reference from the page")
	cmd.Flags().BoolVar(&o.noFonts, "no-google-fonts", false, "Leave out the Google Fonts stylesheet")
	cmd.Flags().BoolVar(&o.noIcons, "no-icons", false, "Leave out the Font Awesome stylesheet")
}

func (o *exportOptions) exporterOptions() export.Options {
	opts := export.DefaultOptions()
	opts.TailwindURL = o.tailwindURL
	opts.GoogleFonts = !o.noFonts
	if o.noIcons {
		opts.FontAwesomeURL = ""
	}
	return opts
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	return config.Load(flags.configPath)
}
