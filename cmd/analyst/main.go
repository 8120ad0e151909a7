package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/jyothish28/intelligent-document-analyst/internal/config"
	"github.com/jyothish28/intelligent-document-analyst/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "input/config.json", "path to the analysis config file")
	inputDir := flag.String("input", "", "override the documents directory")
	outputPath := flag.String("output", "", "override the result file path")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}

	runner := pipeline.NewRunner(cfg, log)
	result, err := runner.Run()
	if err != nil {
		if errors.Is(err, pipeline.ErrNoSections) {
			log.Error("analysis produced no sections", "error", err)
		} else {
			log.Error("analysis failed", "error", err)
		}
		os.Exit(1)
	}

	if err := pipeline.WriteResult(cfg.OutputPath, result); err != nil {
		log.Error("failed to write result", "error", err)
		os.Exit(1)
	}

	log.Info("analysis complete",
		"output", cfg.OutputPath,
		"seconds", result.Metadata.ProcessingTimeSeconds,
		"top_sections", result.Metadata.TopSectionsCount,
		"subsections", result.Metadata.SubsectionsCount)
}
