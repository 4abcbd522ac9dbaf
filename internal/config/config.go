// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Export struct {
		BetweenTermAndDefinition string `yaml:"between_term_and_definition" validate:"required"`
		BetweenCards             string `yaml:"between_cards" validate:"required"`
	} `yaml:"export"`
	Print struct {
		FontSize    *float64 `yaml:"font_size" validate:"required,gte=5,lte=30"`
		Rows        *int     `yaml:"rows" validate:"required,gte=1"`
		Columns     *int     `yaml:"columns" validate:"required,gte=1"`
		ShowBorders *bool    `yaml:"show_borders"`
		Orientation string   `yaml:"orientation" validate:"oneof=portrait landscape"`
	} `yaml:"print"`
	PaperSize string `yaml:"paper_size" validate:"oneof=A3 A4 A5 Letter Legal Tabloid"`
	OutputDir string `yaml:"output_dir" validate:"required"`
}

// paperSizeRule must list the same sizes as the PaperSize tag.
const paperSizeRule = "oneof=A3 A4 A5 Letter Legal Tabloid"

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault falls back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func applyDefaults(cfg *Config) {
	defaults := models.DefaultExportSettings()
	if cfg.Export.BetweenTermAndDefinition == "" {
		cfg.Export.BetweenTermAndDefinition = defaults.BetweenTermAndDefinition
	}
	if cfg.Export.BetweenCards == "" {
		cfg.Export.BetweenCards = defaults.BetweenCards
	}

	opts := models.DefaultPrintOptions()
	if cfg.Print.FontSize == nil {
		cfg.Print.FontSize = &opts.FontSize
	}
	if cfg.Print.Rows == nil {
		cfg.Print.Rows = &opts.Rows
	}
	if cfg.Print.Columns == nil {
		cfg.Print.Columns = &opts.Columns
	}
	if cfg.Print.ShowBorders == nil {
		cfg.Print.ShowBorders = &opts.ShowBorders
	}
	if cfg.Print.Orientation == "" {
		cfg.Print.Orientation = string(opts.Orientation)
	}
	if cfg.PaperSize == "" {
		cfg.PaperSize = "Letter"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./cardprint-output"
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ValidatePaperSize checks a paper size given outside the config file.
func ValidatePaperSize(paper string) error {
	if err := validate.Var(paper, paperSizeRule); err != nil {
		return fmt.Errorf("%w: paper size %q must be one of A3, A4, A5, Letter, Legal or Tabloid", ErrInvalidConfig, paper)
	}
	return nil
}

func (c *Config) ExportSettings() models.ExportSettings {
	return models.ExportSettings{
		BetweenTermAndDefinition: c.Export.BetweenTermAndDefinition,
		BetweenCards:             c.Export.BetweenCards,
	}
}

func (c *Config) PrintOptions() models.PrintOptions {
	return models.PrintOptions{
		FontSize:    *c.Print.FontSize,
		Rows:        *c.Print.Rows,
		Columns:     *c.Print.Columns,
		ShowBorders: *c.Print.ShowBorders,
		Orientation: models.Orientation(c.Print.Orientation),
	}
}
