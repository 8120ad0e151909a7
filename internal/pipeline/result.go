package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Result is the serialized output of one analysis run.
type Result struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// Metadata describes the run itself.
type Metadata struct {
	RunID                 string   `json:"run_id"`
	InputDocuments        []string `json:"input_documents"`
	Persona               string   `json:"persona"`
	JobToBeDone           string   `json:"job_to_be_done"`
	ProcessingTimestamp   string   `json:"processing_timestamp"`
	TotalSectionsAnalyzed int      `json:"total_sections_analyzed"`
	ProcessingTimeSeconds float64  `json:"processing_time_seconds"`
	TopSectionsCount      int      `json:"top_sections_count"`
	SubsectionsCount      int      `json:"subsections_count"`
}

// ExtractedSection is one row of the ranked section list.
type ExtractedSection struct {
	Document         string  `json:"document"`
	SectionTitle     string  `json:"section_title"`
	ImportanceRank   int     `json:"importance_rank"`
	PageNumber       int     `json:"page_number"`
	FinalScore       float64 `json:"final_score"`
	PriorityCategory string  `json:"priority_category"`
}

// SubsectionAnalysis is one refined sub-passage row.
type SubsectionAnalysis struct {
	Document       string   `json:"document"`
	PageNumber     int      `json:"page_number"`
	SubsectionID   string   `json:"subsection_id"`
	RefinedText    string   `json:"refined_text"`
	ParentSection  string   `json:"parent_section"`
	RelevanceScore float64  `json:"relevance_score"`
	WordCount      int      `json:"word_count"`
	KeyConcepts    []string `json:"key_concepts"`
}

// Output validation errors.
var (
	ErrMissingSections    = errors.New("extracted_sections list is missing")
	ErrMissingSubsections = errors.New("subsection_analysis list is missing")
	ErrMalformedSection   = errors.New("extracted section row is malformed")
)

// Validate checks the output structure before serialization. A missing list
// or malformed row is a hard failure for the run.
func (r *Result) Validate() error {
	if r.ExtractedSections == nil {
		return ErrMissingSections
	}
	if r.SubsectionAnalysis == nil {
		return ErrMissingSubsections
	}
	for _, s := range r.ExtractedSections {
		if s.Document == "" || s.SectionTitle == "" || s.ImportanceRank < 1 {
			return fmt.Errorf("%w: %q in %q", ErrMalformedSection, s.SectionTitle, s.Document)
		}
	}
	return nil
}

// WriteResult validates the result and writes it as indented JSON, creating
// the output directory if needed.
func WriteResult(path string, result *Result) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("validate result: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
