// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver" validate:"required,oneof=sqlite"`
	Filename string `yaml:"filename" validate:"required"`
}

type ExportConfig struct {
	OutputDir      string `yaml:"output_dir" validate:"required"`
	TailwindURL    string `yaml:"tailwind_url" validate:"omitempty,url"`
	FontAwesomeURL string `yaml:"font_awesome_url" validate:"omitempty,url"`
	GoogleFonts    bool   `yaml:"google_fonts"`
}

type PublishConfig struct {
	Enabled bool `yaml:"enabled"`
	// Schedule is a standard five-field cron expression.
	Schedule string `yaml:"schedule" validate:"required_if=Enabled true"`
	Notify   bool   `yaml:"notify"`

	// Manual publish throttling
	Cooldown     time.Duration `yaml:"cooldown" validate:"min=0"`
	MaxPerHour   int           `yaml:"max_per_hour" validate:"min=0"`
	MaxIPPerHour int           `yaml:"max_ip_per_hour" validate:"min=0"`
}

type EmailConfig struct {
	Region    string `yaml:"region"`
	Sender    string `yaml:"sender" validate:"omitempty,email"`
	Recipient string `yaml:"recipient" validate:"omitempty,email"`
	AccessKey string `yaml:"-"` // Loaded from environment
	SecretKey string `yaml:"-"` // Loaded from environment
}

type Config struct {
	App struct {
		Name        string `yaml:"name" validate:"required"`
		Environment string `yaml:"environment" validate:"omitempty,oneof=development staging production test"`
		Port        int    `yaml:"port" validate:"required,min=1,max=65535"`
		BaseURL     string `yaml:"base_url" validate:"omitempty,url"`
		TrustProxy  bool   `yaml:"trust_proxy"`
		SecretKey   string `yaml:"-"` // Loaded from environment
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Export   ExportConfig   `yaml:"export"`
	Publish  PublishConfig  `yaml:"publish"`
	Email    EmailConfig    `yaml:"email"`

	Features struct {
		EnableDebug    bool `yaml:"enable_debug"`
		EnableTailwind bool `yaml:"enable_tailwind"`
	} `yaml:"features"`
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes yaml configuration, applies defaults and environment secrets, and
// validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.App.SecretKey = os.Getenv("APP_SECRET_KEY")
	cfg.Email.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Email.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	if region := os.Getenv("AWS_REGION"); region != "" && cfg.Email.Region == "" {
		cfg.Email.Region = region
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used for keys missing from the file.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "pagecraft"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.Database = DatabaseConfig{Driver: "sqlite", Filename: "data/pagecraft.db"}
	cfg.Export = ExportConfig{
		OutputDir:      "public",
		FontAwesomeURL: "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css",
		GoogleFonts:    true,
	}
	cfg.Publish = PublishConfig{
		Schedule:     "0 * * * *",
		Cooldown:     10 * time.Second,
		MaxPerHour:   30,
		MaxIPPerHour: 120,
	}
	return cfg
}

func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%s failed %q validation", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag())
		}
		return err
	}

	if c.Publish.Enabled {
		if _, err := cronParser.Parse(c.Publish.Schedule); err != nil {
			return fmt.Errorf("publish schedule %q: %w", c.Publish.Schedule, err)
		}
	}
	if c.Publish.Notify {
		if c.Email.Sender == "" || c.Email.Recipient == "" {
			return fmt.Errorf("publish notifications need email sender and recipient")
		}
		if c.Email.Region == "" {
			return fmt.Errorf("publish notifications need an email region")
		}
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "" || c.App.Environment == "development"
}
