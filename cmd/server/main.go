// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/pagecraft/internal/config"
	"github.com/codr1/pagecraft/internal/db"
	"github.com/codr1/pagecraft/internal/email"
	"github.com/codr1/pagecraft/internal/export"
	"github.com/codr1/pagecraft/internal/publish"
	"github.com/codr1/pagecraft/internal/ratelimit"
	"github.com/codr1/pagecraft/internal/scheduler"
	"github.com/codr1/pagecraft/internal/sections"
	"github.com/codr1/pagecraft/internal/store"
	"github.com/codr1/pagecraft/internal/themes"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Features.EnableDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func configPath() string {
	path := flag.String("config", "", "path to the yaml configuration file")
	flag.Parse()
	if *path != "" {
		return *path
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "config/app.yaml"
}

// app holds the services the HTTP layer and the scheduler share.
type app struct {
	config    *config.Config
	database  *db.DB
	projects  *store.Projects
	repo      *db.Repository
	catalog   *themes.Catalog
	exporter  *export.Exporter
	publisher *publish.Publisher
	limiter   *ratelimit.Limiter
	scheduler *scheduler.Scheduler
}

func newApp(cfg *config.Config) (*app, error) {
	database, err := db.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	catalog, err := themes.Builtin()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("load theme catalog: %w", err)
	}

	registry := sections.Default()
	repo := db.NewRepository(database)
	projects := store.NewProjects(repo, repo, registry)
	exporter := export.NewExporter(registry, export.Options{
		TailwindURL:    tailwindURL(cfg),
		FontAwesomeURL: cfg.Export.FontAwesomeURL,
		GoogleFonts:    cfg.Export.GoogleFonts,
	})

	var notifier publish.Notifier
	if cfg.Publish.Notify {
		client, err := email.NewSESClient(context.Background(), email.SESConfig{
			Region:          cfg.Email.Region,
			Sender:          cfg.Email.Sender,
			AccessKeyID:     cfg.Email.AccessKey,
			SecretAccessKey: cfg.Email.SecretKey,
		})
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("create email client: %w", err)
		}
		notifier = email.NewPublishNotifier(client, cfg.Email.Recipient, cfg.App.BaseURL)
	}

	return &app{
		config:    cfg,
		database:  database,
		projects:  projects,
		repo:      repo,
		catalog:   catalog,
		exporter:  exporter,
		publisher: publish.NewPublisher(projects, exporter, cfg.Export.OutputDir, notifier),
		limiter: ratelimit.New(ratelimit.Config{
			Cooldown:     cfg.Publish.Cooldown,
			MaxPerHour:   cfg.Publish.MaxPerHour,
			MaxIPPerHour: cfg.Publish.MaxIPPerHour,
		}),
	}, nil
}

func tailwindURL(cfg *config.Config) string {
	if !cfg.Features.EnableTailwind {
		return ""
	}
	return cfg.Export.TailwindURL
}

func (a *app) close() {
	if err := a.database.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
}

func (a *app) startScheduler() error {
	if !a.config.Publish.Enabled {
		return nil
	}
	sched, err := scheduler.New()
	if err != nil {
		return err
	}
	if err := sched.AddPublishJob(a.config.Publish.Schedule, a.publisher, a.repo); err != nil {
		_ = sched.Stop()
		return fmt.Errorf("register publish job: %w", err)
	}
	sched.Start()
	a.scheduler = sched
	log.Info().Str("schedule", a.config.Publish.Schedule).Msg("Scheduled publishing enabled")
	return nil
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg)

	application, err := newApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.close()

	if err := application.startScheduler(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	server := newServer(application)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if application.scheduler != nil {
			if err := application.scheduler.Stop(); err != nil {
				log.Error().Err(err).Msg("Failed to stop scheduler")
			}
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
