package format

import "strings"

// Formatter accumulates printed text and tracks the current block depth.
// A Formatter is used for a single document and is not safe for concurrent use.
type Formatter struct {
	buf   strings.Builder
	width int
	depth int
}

// NewFormatter returns an empty Formatter for the given style.
func NewFormatter(style Style) *Formatter {
	return &Formatter{width: style.indentWidth()}
}

// Indent writes the leading spaces for the current depth. It must be called at
// most once per line, before anything else is written on it.
func (f *Formatter) Indent() {
	f.buf.WriteString(strings.Repeat(" ", f.width*f.depth))
}

// Write appends text verbatim.
func (f *Formatter) Write(text string) {
	f.buf.WriteString(text)
}

// Endline terminates the current line.
func (f *Formatter) Endline() {
	f.buf.WriteByte('\n')
}

// StartBlock opens a brace block and moves one level deeper.
func (f *Formatter) StartBlock() {
	f.buf.WriteByte('{')
	f.Endline()
	f.depth++
}

// EndBlock moves one level up and closes the block on its own line.
// Calling it without a matching StartBlock panics.
func (f *Formatter) EndBlock() {
	if f.depth == 0 {
		panic("format: EndBlock without matching StartBlock")
	}
	f.depth--
	f.Indent()
	f.buf.WriteByte('}')
	f.Endline()
}

// Depth reports the number of blocks currently open.
func (f *Formatter) Depth() int {
	return f.depth
}

// String returns the accumulated text. Every block must have been closed.
func (f *Formatter) String() string {
	if f.depth != 0 {
		panic("format: unbalanced blocks at end of document")
	}
	return f.buf.String()
}
