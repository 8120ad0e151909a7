// Package section recovers logical document sections from a stream of styled
// text fragments. Headings are detected with adaptive font statistics and
// textual patterns; running text between headings accumulates into the
// currently open section.
package section

// Section is a titled run of document text.
type Section struct {
	Document     string
	Page         int
	Title        string
	Content      string
	FontSize     float64
	Bold         bool
	HeadingLevel int // 1 (most prominent) to 4
}
