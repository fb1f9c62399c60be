package format

// DefaultIndentWidth is the number of spaces per nesting level used when a
// Style does not set one.
const DefaultIndentWidth = 2

// Style describes layout preferences of the printer.
type Style struct {
	// IndentWidth is the number of spaces written per nesting level.
	// Values below 1 fall back to DefaultIndentWidth.
	IndentWidth int
}

// DefaultStyle returns the style used by gqlfmt.ToString.
func DefaultStyle() Style {
	return Style{IndentWidth: DefaultIndentWidth}
}

func (s Style) indentWidth() int {
	if s.IndentWidth < 1 {
		return DefaultIndentWidth
	}
	return s.IndentWidth
}
