package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

// TextParser handles plain text files. Each paragraph becomes one body
// fragment; heading recovery is left entirely to the pattern heuristics.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]fragment.Fragment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frags []fragment.Fragment
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			frags = append(frags, bodyFragment(current.String(), 1))
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(strings.TrimSpace(line))
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return frags, nil
}
