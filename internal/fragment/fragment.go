package fragment

// Fragment is a minimal unit of styled text handed over by the extraction
// layer: a string plus its page, position and font attributes. Fragments are
// consumed read-only by the section builder.
type Fragment struct {
	Text     string
	Page     int // 1-indexed
	X0, Y0   float64
	X1, Y1   float64
	FontSize float64
	Bold     bool
	Italic   bool
	FontName string
}

// WordCount returns the number of whitespace-separated words in the fragment.
func (f Fragment) WordCount() int {
	n := 0
	inWord := false
	for _, r := range f.Text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
	return n
}
