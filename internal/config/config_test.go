package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"input_dir": "docs",
		"output_path": "out/result.json",
		"persona": {
			"role": "Investment Analyst",
			"expertise": ["financial modeling", "valuation"],
			"experience_level": "advanced"
		},
		"job_to_be_done": "Analyze revenue trends across annual reports",
		"documents": ["report_2023.pdf", {"filename": "report_2024.pdf"}],
		"max_sections": 5
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.InputDir != "docs" {
		t.Errorf("InputDir = %q, want docs", cfg.InputDir)
	}
	if cfg.OutputPath != "out/result.json" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if cfg.Persona.Role != "Investment Analyst" {
		t.Errorf("Role = %q", cfg.Persona.Role)
	}
	if len(cfg.Persona.Expertise) != 2 || cfg.Persona.Expertise[0] != "financial modeling" {
		t.Errorf("Expertise = %v", cfg.Persona.Expertise)
	}
	if cfg.Persona.ExperienceLevel != "advanced" {
		t.Errorf("ExperienceLevel = %q", cfg.Persona.ExperienceLevel)
	}
	if cfg.JobToBeDone != "Analyze revenue trends across annual reports" {
		t.Errorf("JobToBeDone = %q", cfg.JobToBeDone)
	}
	// Mixed string and object document entries.
	if len(cfg.Documents) != 2 || cfg.Documents[1] != "report_2024.pdf" {
		t.Errorf("Documents = %v", cfg.Documents)
	}
	if cfg.MaxSections != 5 {
		t.Errorf("MaxSections = %d, want 5", cfg.MaxSections)
	}
	if cfg.MaxSubsections != DefaultMaxSubsections {
		t.Errorf("MaxSubsections = %d, want default %d", cfg.MaxSubsections, DefaultMaxSubsections)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
persona:
  role: Student
job_to_be_done:
  task: Understand exam topics
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Persona.Role != "Student" {
		t.Errorf("Role = %q", cfg.Persona.Role)
	}
	// Object form of job_to_be_done.
	if cfg.JobToBeDone != "Understand exam topics" {
		t.Errorf("JobToBeDone = %q", cfg.JobToBeDone)
	}
	if cfg.Persona.ExperienceLevel != DefaultExperienceLevel {
		t.Errorf("ExperienceLevel = %q, want default", cfg.Persona.ExperienceLevel)
	}
	if cfg.InputDir != DefaultInputDir {
		t.Errorf("InputDir = %q, want default", cfg.InputDir)
	}
}

func TestLoad_MissingPersona(t *testing.T) {
	path := writeConfig(t, "config.json", `{"job_to_be_done": "something"}`)
	if _, err := Load(path); !errors.Is(err, ErrMissingPersona) {
		t.Errorf("err = %v, want ErrMissingPersona", err)
	}
}

func TestLoad_MissingJob(t *testing.T) {
	path := writeConfig(t, "config.json", `{"persona": {"role": "Analyst"}}`)
	if _, err := Load(path); !errors.Is(err, ErrMissingJob) {
		t.Errorf("err = %v, want ErrMissingJob", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, ErrConfigFileNotFound) {
		t.Errorf("err = %v, want ErrConfigFileNotFound", err)
	}
	if _, err := Load(""); !errors.Is(err, ErrConfigFileNotFound) {
		t.Errorf("err for empty path = %v, want ErrConfigFileNotFound", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ANALYST_INPUT_DIR", "/env/in")
	t.Setenv("ANALYST_OUTPUT_PATH", "/env/out.json")

	path := writeConfig(t, "config.json", `{
		"input_dir": "docs",
		"output_path": "out/result.json",
		"persona": {"role": "Analyst"},
		"job_to_be_done": "review"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "/env/in" {
		t.Errorf("InputDir = %q, env should win", cfg.InputDir)
	}
	if cfg.OutputPath != "/env/out.json" {
		t.Errorf("OutputPath = %q, env should win", cfg.OutputPath)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		InputDir:    "input",
		Persona:     Persona{Role: "Analyst"},
		JobToBeDone: "review the documents",
	}
	if err := base.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	noRole := base
	noRole.Persona.Role = ""
	if err := noRole.Validate(); !errors.Is(err, ErrMissingPersona) {
		t.Errorf("err = %v, want ErrMissingPersona", err)
	}

	blankJob := base
	blankJob.JobToBeDone = "   "
	if err := blankJob.Validate(); !errors.Is(err, ErrMissingJob) {
		t.Errorf("err = %v, want ErrMissingJob", err)
	}

	noInput := base
	noInput.InputDir = ""
	if err := noInput.Validate(); !errors.Is(err, ErrMissingInputDir) {
		t.Errorf("err = %v, want ErrMissingInputDir", err)
	}
}
