package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

// Parser converts raw document bytes into an ordered stream of styled text
// fragments, one entry per span of running text or heading.
type Parser interface {
	Parse(r io.Reader, filename string) ([]fragment.Fragment, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Formats without span-level styling (markdown, docx heading styles, html
// tags) synthesize font sizes so the downstream font heuristics apply
// uniformly. Body text sits at 11pt; heading sizes shrink with depth.
const bodyFontSize = 11.0

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 18
	case 3:
		return 14
	default:
		return 12
	}
}

func headingFragment(text string, page, level int) fragment.Fragment {
	return fragment.Fragment{
		Text:     text,
		Page:     page,
		FontSize: headingFontSize(level),
		Bold:     true,
		FontName: "synthetic-heading",
	}
}

func bodyFragment(text string, page int) fragment.Fragment {
	return fragment.Fragment{
		Text:     text,
		Page:     page,
		FontSize: bodyFontSize,
		FontName: "synthetic-body",
	}
}
