// Package source defines grammar source split into lines and the cursor used to walk them.
package source

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Source contains grammar description text and its line boundaries.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source. name is used in error messages only.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	if len(content) > 0 && content[len(content)-1] == '\n' {
		lineCnt--
	}
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCount returns the number of lines, trailing line feed does not start a new line.
// Empty source has one empty line.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// Text returns raw content of line number n (1-based) without line terminator.
// Returns empty string if there is no such line.
func (s *Source) Text(n int) string {
	if n <= 0 || n > len(s.lineStarts) {
		return ""
	}

	start := s.lineStarts[n-1]
	end := len(s.content)
	if n < len(s.lineStarts) {
		end = s.lineStarts[n] - 1
	}
	if end > start && s.content[end-1] == '\n' {
		end--
	}
	if end > start && s.content[end-1] == '\r' {
		end--
	}
	return string(s.content[start:end])
}

// Lines returns raw content of all lines.
func (s *Source) Lines() []string {
	res := make([]string, len(s.lineStarts))
	for i := range res {
		res[i] = s.Text(i + 1)
	}
	return res
}

// Line returns line number n (1-based).
func (s *Source) Line(n int) Line {
	raw := s.Text(n)
	text := strings.TrimSpace(raw)
	col := 1
	if text != "" {
		col = utf8.RuneCountInString(raw[:strings.Index(raw, text)]) + 1
	}
	return Line{src: s, num: n, col: col, raw: raw, text: text}
}

// LineCol converts byte offset to line and column numbers (both 1-based).
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := 0
	left, right := 0, len(s.lineStarts)-1
	for left <= right {
		index := (left + right) >> 1
		if s.lineStarts[index] <= pos {
			lineIndex = index
			left = index + 1
		} else {
			right = index - 1
		}
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Line is a single source line.
// Line implements scaffold.SourcePos, column points to the first non-space character.
type Line struct {
	src  *Source
	num  int
	col  int
	raw  string
	text string
}

// Source returns the source containing this line or nil for a zero Line.
func (l Line) Source() *Source {
	return l.src
}

func (l Line) SourceName() string {
	if l.src == nil {
		return ""
	}
	return l.src.name
}

func (l Line) Line() int {
	return l.num
}

func (l Line) Col() int {
	return l.col
}

// Raw returns line content as is, without line terminator.
func (l Line) Raw() string {
	return l.raw
}

// Text returns line content with leading and trailing spaces removed.
func (l Line) Text() string {
	return l.text
}

// IsBlank reports whether line contains nothing but spaces.
func (l Line) IsBlank() bool {
	return l.text == ""
}

// IsComment reports whether line is a # comment.
func (l Line) IsComment() bool {
	return strings.HasPrefix(l.text, "#")
}

// Pos returns position of n-th byte of trimmed line text.
func (l Line) Pos(n int) Pos {
	col := l.col
	if n > 0 && n <= len(l.text) {
		col += utf8.RuneCountInString(l.text[:n])
	}
	return Pos{l.src, l.num, col}
}

// Pos is a position inside a source.
type Pos struct {
	src       *Source
	line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

// Cursor walks source lines one at a time.
// A single cursor is shared by all block parsers, each one consumes its own block
// and leaves cursor at the first line it did not consume.
type Cursor struct {
	src  *Source
	next int
}

// NewCursor creates cursor positioned at the first line of s.
func NewCursor(s *Source) *Cursor {
	return &Cursor{src: s, next: 1}
}

func (c *Cursor) Source() *Source {
	return c.src
}

// IsEmpty reports whether all lines are consumed.
func (c *Cursor) IsEmpty() bool {
	return c.next > c.src.LineCount()
}

// Peek returns next line without consuming it.
// Returns false if there are no more lines.
func (c *Cursor) Peek() (Line, bool) {
	if c.IsEmpty() {
		return Line{}, false
	}

	return c.src.Line(c.next), true
}

// Next returns next line and consumes it.
// Returns false if there are no more lines.
func (c *Cursor) Next() (Line, bool) {
	l, ok := c.Peek()
	if ok {
		c.next++
	}
	return l, ok
}

// Skip consumes next line, if any.
func (c *Cursor) Skip() {
	if !c.IsEmpty() {
		c.next++
	}
}

// LineNum returns the number of the next line to be consumed.
func (c *Cursor) LineNum() int {
	return c.next
}
