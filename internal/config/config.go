package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// ValidationError is a fatal configuration error surfaced before any
// collection begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Config holds the resolved inputs of an analysis run.
type Config struct {
	ProjectPath        string            `yaml:"project_path" validate:"required"`
	AnalysisPeriodDays int               `yaml:"analysis_period_days" validate:"gt=0"`
	EnabledCategories  []string          `yaml:"enabled_categories" validate:"min=1"`
	Thresholds         models.Thresholds `yaml:"thresholds"`
	OutputDir          string            `yaml:"output_dir"`
	HistoryDB          string            `yaml:"history_db"`
	CSVPath            string            `yaml:"csv_path"`
	Timeout            time.Duration     `yaml:"timeout"`
	LogLevel           string            `yaml:"log_level"`
	LogFormat          string            `yaml:"log_format"`
}

// Default returns a Config with the documented defaults: 30-day window,
// all categories enabled, 80/60/40 thresholds.
func Default() Config {
	return Config{
		AnalysisPeriodDays: 30,
		EnabledCategories:  nil, // resolved to all known categories in Validate
		Thresholds:         models.DefaultThresholds(),
		OutputDir:          ".",
		Timeout:            60 * time.Second,
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

// LoadFile merges a YAML config file into cfg. Missing file is an error;
// fields absent from the file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// Validate checks the configuration against the set of known category names
// and normalizes the enabled-category list. It returns a *ValidationError on
// the first problem found; nothing runs after a failed validation.
func (c *Config) Validate(knownCategories []string) error {
	if c.EnabledCategories == nil {
		c.EnabledCategories = append([]string(nil), knownCategories...)
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return &ValidationError{
				Field:  strings.ToLower(f.Field()),
				Reason: fmt.Sprintf("failed %q constraint", f.Tag()),
			}
		}
		return &ValidationError{Field: "config", Reason: err.Error()}
	}

	t := c.Thresholds
	if !(t.High > t.Medium && t.Medium > t.Low && t.Low > 0) {
		return &ValidationError{
			Field:  "thresholds",
			Reason: fmt.Sprintf("must satisfy high > medium > low > 0, got %g/%g/%g", t.High, t.Medium, t.Low),
		}
	}

	known := make(map[string]bool, len(knownCategories))
	for _, name := range knownCategories {
		known[name] = true
	}
	seen := make(map[string]bool)
	var enabled []string
	for _, name := range c.EnabledCategories {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !known[name] {
			return &ValidationError{
				Field:  "enabled_categories",
				Reason: fmt.Sprintf("unknown category %q (known: %s)", name, strings.Join(knownCategories, ", ")),
			}
		}
		if !seen[name] {
			seen[name] = true
			enabled = append(enabled, name)
		}
	}
	if len(enabled) == 0 {
		return &ValidationError{Field: "enabled_categories", Reason: "no categories enabled"}
	}
	sort.Strings(enabled)
	c.EnabledCategories = enabled

	return nil
}

// Enabled reports whether the named category is part of this run.
func (c *Config) Enabled(category string) bool {
	for _, name := range c.EnabledCategories {
		if name == category {
			return true
		}
	}
	return false
}

// Params returns the run parameters recorded in the report.
func (c *Config) Params() models.RunParams {
	return models.RunParams{
		ProjectPath:        c.ProjectPath,
		AnalysisPeriodDays: c.AnalysisPeriodDays,
		EnabledCategories:  append([]string(nil), c.EnabledCategories...),
		Thresholds:         c.Thresholds,
	}
}
