package icons

import (
	"fmt"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

var spriteHeader = []string{
	"<!--",
	"Octicons 24px icons converted for Frappe Framework",
	"Source: https://github.com/primer/octicons",
	"License: MIT",
	"-->",
	`<svg id="frappe-symbols" aria-hidden="true" style="display: none;" class="icon" xmlns="` + svgNamespace + `">`,
}

// Sprite accumulates the lines of a symbol sprite document. It is append-only
// and is rendered once with Bytes.
type Sprite struct {
	lines  []string
	count  int
	closed bool
}

// NewSprite returns a sprite holding the provenance comment and the opening
// root element.
func NewSprite() *Sprite {
	lines := make([]string, len(spriteHeader), len(spriteHeader)+64)
	copy(lines, spriteHeader)
	return &Sprite{lines: lines}
}

// Add appends one <symbol> block. Inner markup is re-indented two tabs deep:
// a single-line payload is kept as is, a multi-line payload is emitted one
// trimmed line at a time with blank lines dropped.
func (s *Sprite) Add(symbolID, viewBox, inner string) {
	s.lines = append(s.lines, fmt.Sprintf("\t<symbol viewBox=\"%s\" xmlns=\"%s\" id=\"%s\">", viewBox, svgNamespace, symbolID))

	content := strings.TrimSpace(inner)
	contentLines := strings.Split(content, "\n")
	if len(contentLines) == 1 {
		s.lines = append(s.lines, "\t\t"+content)
	} else {
		for _, line := range contentLines {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				s.lines = append(s.lines, "\t\t"+trimmed)
			}
		}
	}

	s.lines = append(s.lines, "\t</symbol>", "")
	s.count++
}

// Close appends the closing root tag. Further calls are no-ops.
func (s *Sprite) Close() {
	if s.closed {
		return
	}
	s.lines = append(s.lines, "</svg>")
	s.closed = true
}

// Len returns the number of symbols added.
func (s *Sprite) Len() int {
	return s.count
}

// Bytes joins the lines with newlines. There is no trailing newline.
func (s *Sprite) Bytes() []byte {
	return []byte(strings.Join(s.lines, "\n"))
}
