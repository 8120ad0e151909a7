// Package config loads and validates the analysis configuration: the reader
// persona, the job to be done, and the document set. It uses koanf to read
// the config file, with environment variables taking precedence for paths.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Persona is the stated reader driving relevance weighting.
type Persona struct {
	Role            string   `json:"role"`
	Expertise       []string `json:"expertise"`
	ExperienceLevel string   `json:"experience_level"`
}

// Config holds all settings for one analysis run.
type Config struct {
	InputDir   string // directory holding the documents
	OutputPath string // where the result JSON is written

	Persona     Persona
	JobToBeDone string

	// Documents is the explicit file list from the config; empty means
	// auto-discover the input directory.
	Documents []string

	MaxSections    int // extracted_sections cap
	MaxSubsections int // subsection_analysis cap
	TopForSubs     int // how many top sections feed subsection analysis
}

// Configuration validation errors.
var (
	ErrMissingPersona     = errors.New("persona with a role is required")
	ErrMissingJob         = errors.New("job_to_be_done is required")
	ErrMissingInputDir    = errors.New("input directory is required")
	ErrConfigFileNotFound = errors.New("config file not found")
)

// Defaults for non-required settings.
const (
	DefaultInputDir        = "input"
	DefaultOutputPath      = "output/analysis_result.json"
	DefaultExperienceLevel = "intermediate"
	DefaultMaxSections     = 20
	DefaultMaxSubsections  = 20
	DefaultTopForSubs      = 10
)

// Load reads the config file at path and applies environment overrides.
// YAML and JSON files are supported, keyed on extension.
func Load(path string) (*Config, error) {
	// Pick up a local .env if present; real env vars win.
	_ = godotenv.Load()

	if path == "" {
		return nil, ErrConfigFileNotFound
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
	}

	k := koanf.New(".")
	parser := koanf.Parser(kjson.Parser())
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}

	cfg := &Config{
		InputDir:   getEnvOrKoanf("ANALYST_INPUT_DIR", k, "input_dir", DefaultInputDir),
		OutputPath: getEnvOrKoanf("ANALYST_OUTPUT_PATH", k, "output_path", DefaultOutputPath),
		Persona: Persona{
			Role:            k.String("persona.role"),
			Expertise:       k.Strings("persona.expertise"),
			ExperienceLevel: k.String("persona.experience_level"),
		},
		JobToBeDone:    jobText(k),
		Documents:      documentList(k),
		MaxSections:    intOr(k, "max_sections", DefaultMaxSections),
		MaxSubsections: intOr(k, "max_subsections", DefaultMaxSubsections),
		TopForSubs:     DefaultTopForSubs,
	}
	if cfg.Persona.ExperienceLevel == "" {
		cfg.Persona.ExperienceLevel = DefaultExperienceLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.Persona.Role == "" {
		return ErrMissingPersona
	}
	if strings.TrimSpace(c.JobToBeDone) == "" {
		return ErrMissingJob
	}
	if c.InputDir == "" {
		return ErrMissingInputDir
	}
	return nil
}

// jobText accepts both forms of job_to_be_done: a bare string, or an object
// with a task field.
func jobText(k *koanf.Koanf) string {
	if task := k.String("job_to_be_done.task"); task != "" {
		return task
	}
	return k.String("job_to_be_done")
}

// documentList accepts document entries as bare filenames or as objects with
// a filename field.
func documentList(k *koanf.Koanf) []string {
	raw := k.Get("documents")
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var docs []string
	for _, item := range items {
		switch v := item.(type) {
		case string:
			docs = append(docs, v)
		case map[string]interface{}:
			if name, ok := v["filename"].(string); ok && name != "" {
				docs = append(docs, name)
			}
		}
	}
	return docs
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the
// koanf value, otherwise the default.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey, fallback string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	if val := k.String(koanfKey); val != "" {
		return val
	}
	return fallback
}

func intOr(k *koanf.Koanf, key string, fallback int) int {
	if v := k.Int(key); v > 0 {
		return v
	}
	return fallback
}
