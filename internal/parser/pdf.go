package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

// PDFParser handles PDF files, emitting one fragment per styled text span.
type PDFParser struct{}

func (p *PDFParser) Parse(r io.Reader, filename string) ([]fragment.Fragment, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "analyst-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	return extractPDFFragments(reader)
}

// extractPDFFragments walks every page. The pdf library panics on some
// malformed content streams; a panic fails the document instead of the run.
func extractPDFFragments(reader *pdflib.Reader) (frags []fragment.Fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			frags = nil
			err = fmt.Errorf("read pdf content: %v", r)
		}
	}()

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		frags = append(frags, spansFromContent(page.Content(), i)...)
	}
	return frags, nil
}

// spansFromContent merges the per-character text objects of a page into
// span fragments. A span ends when the font, size or baseline changes.
func spansFromContent(content pdflib.Content, pageNum int) []fragment.Fragment {
	var frags []fragment.Fragment

	var cur *fragment.Fragment
	var prevEnd float64

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(cur.Text)
		if cur.Text != "" {
			frags = append(frags, *cur)
		}
		cur = nil
	}

	for _, t := range content.Text {
		if cur != nil && sameSpan(cur, t) {
			// Re-insert the space the text objects dropped when the
			// horizontal gap exceeds a fraction of the font size.
			if t.X-prevEnd > t.FontSize*0.2 {
				cur.Text += " "
			}
			cur.Text += t.S
			cur.X1 = t.X + t.W
			prevEnd = t.X + t.W
			continue
		}
		flush()
		cur = &fragment.Fragment{
			Text:     t.S,
			Page:     pageNum,
			X0:       t.X,
			Y0:       t.Y,
			X1:       t.X + t.W,
			Y1:       t.Y + t.FontSize,
			FontSize: t.FontSize,
			Bold:     fontIsBold(t.Font),
			Italic:   fontIsItalic(t.Font),
			FontName: t.Font,
		}
		prevEnd = t.X + t.W
	}
	flush()

	return frags
}

func sameSpan(cur *fragment.Fragment, t pdflib.Text) bool {
	return cur.FontName == t.Font &&
		cur.FontSize == t.FontSize &&
		math.Abs(cur.Y0-t.Y) < 0.5
}

func fontIsBold(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}

func fontIsItalic(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}
