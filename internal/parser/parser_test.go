package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{"notes.txt", &TextParser{}},
		{"README.md", &MarkdownParser{}},
		{"guide.markdown", &MarkdownParser{}},
		{"data.csv", &CSVParser{}},
		{"page.html", &HTMLParser{}},
		{"page.HTM", &HTMLParser{}},
		{"paper.pdf", &PDFParser{}},
		{"report.docx", &DOCXParser{}},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ForFile(tt.filename)
			if err != nil {
				t.Fatalf("ForFile(%q): %v", tt.filename, err)
			}
			if gotT, wantT := typeName(got), typeName(tt.want); gotT != wantT {
				t.Errorf("ForFile(%q) = %s, want %s", tt.filename, gotT, wantT)
			}
		})
	}

	if _, err := ForFile("archive.zip"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *TextParser:
		return "TextParser"
	case *MarkdownParser:
		return "MarkdownParser"
	case *CSVParser:
		return "CSVParser"
	case *HTMLParser:
		return "HTMLParser"
	case *PDFParser:
		return "PDFParser"
	case *DOCXParser:
		return "DOCXParser"
	}
	return "unknown"
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.txt", "b.PDF", "c.docx", "d.htm", "e.markdown"} {
		if !IsSupportedExtension(name) {
			t.Errorf("%q should be supported", name)
		}
	}
	for _, name := range []string{"a.zip", "b.exe", "noext"} {
		if IsSupportedExtension(name) {
			t.Errorf("%q should not be supported", name)
		}
	}
}

func TestTextParser(t *testing.T) {
	input := "First paragraph line one.\nLine two continues.\n\nSecond paragraph stands alone.\n"

	frags, err := (&TextParser{}).Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Text != "First paragraph line one. Line two continues." {
		t.Errorf("unexpected first paragraph: %q", frags[0].Text)
	}
	if frags[1].Text != "Second paragraph stands alone." {
		t.Errorf("unexpected second paragraph: %q", frags[1].Text)
	}
	for _, f := range frags {
		if f.FontSize != bodyFontSize || f.Bold {
			t.Errorf("plain text fragments must use body styling: %+v", f)
		}
	}
}

func TestMarkdownParser(t *testing.T) {
	input := "# Top Heading\n\nBody paragraph under the top heading.\n\n## Nested Heading\n\nMore body text follows here.\n"

	frags, err := (&MarkdownParser{}).Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 4 {
		t.Fatalf("expected 4 fragments, got %d: %+v", len(frags), frags)
	}

	if frags[0].Text != "Top Heading" || !frags[0].Bold || frags[0].FontSize != headingFontSize(1) {
		t.Errorf("h1 fragment wrong: %+v", frags[0])
	}
	if frags[2].Text != "Nested Heading" || frags[2].FontSize != headingFontSize(2) {
		t.Errorf("h2 fragment wrong: %+v", frags[2])
	}
	if frags[1].Text != "Body paragraph under the top heading." || frags[1].Bold {
		t.Errorf("body fragment wrong: %+v", frags[1])
	}
}

func TestMarkdownParser_MultiLineParagraph(t *testing.T) {
	input := "# Heading\n\nLine one of the paragraph\ncontinues on line two.\n"

	frags, err := (&MarkdownParser{}).Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %+v", len(frags), frags)
	}

	// Both source lines of the paragraph must appear once, in order.
	got := strings.Join(strings.Fields(frags[1].Text), " ")
	want := "Line one of the paragraph continues on line two."
	if got != want {
		t.Errorf("paragraph text = %q, want %q", got, want)
	}
}

func TestHTMLParser(t *testing.T) {
	input := `<html><head><style>p{color:red}</style></head><body>
<h1>Main Title</h1>
<p>Opening paragraph text.</p>
<h2>Subsection</h2>
<p><strong>Emphasized lead.</strong></p>
<script>ignore("this");</script>
<nav>menu items</nav>
</body></html>`

	frags, err := (&HTMLParser{}).Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 4 {
		t.Fatalf("expected 4 fragments, got %d: %+v", len(frags), frags)
	}

	if frags[0].Text != "Main Title" || frags[0].FontSize != headingFontSize(1) {
		t.Errorf("h1 fragment wrong: %+v", frags[0])
	}
	if frags[1].Text != "Opening paragraph text." || frags[1].Bold {
		t.Errorf("paragraph fragment wrong: %+v", frags[1])
	}
	if frags[2].Text != "Subsection" || frags[2].FontSize != headingFontSize(2) {
		t.Errorf("h2 fragment wrong: %+v", frags[2])
	}
	if frags[3].Text != "Emphasized lead." || !frags[3].Bold {
		t.Errorf("strong paragraph should be marked bold: %+v", frags[3])
	}
}

func TestCSVParser(t *testing.T) {
	input := "name,city\nAda,London\nGrace,Arlington\n"

	frags, err := (&CSVParser{}).Parse(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 2 {
		t.Fatalf("expected header and one batch, got %d", len(frags))
	}

	if frags[0].Text != "name city" || !frags[0].Bold {
		t.Errorf("header fragment wrong: %+v", frags[0])
	}
	body := frags[1].Text
	for _, want := range []string{"name: Ada.", "city: London.", "name: Grace.", "city: Arlington."} {
		if !strings.Contains(body, want) {
			t.Errorf("batch text missing %q: %q", want, body)
		}
	}
}

func TestCSVParser_Empty(t *testing.T) {
	frags, err := (&CSVParser{}).Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 0 {
		t.Errorf("expected no fragments for empty input, got %d", len(frags))
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.md", "skip.bin", "c.csv", "d.markdown"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.csv"),
		filepath.Join(dir, "d.markdown"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
