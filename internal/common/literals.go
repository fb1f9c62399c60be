package common

import (
	"strconv"
	"strings"
	"text/scanner"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/graph-gophers/gqlfmt/ast"
)

// BasicLit is a single literal token as it appears in the source.
type BasicLit struct {
	Type  rune
	Text  string
	Block bool
}

func ParseLiteral(l *Lexer, constOnly bool) ast.Value {
	switch l.Peek() {
	case '$':
		if constOnly {
			l.SyntaxError("variable not allowed")
			panic("unreachable")
		}
		l.ConsumeToken('$')
		return &ast.Variable{Name: l.ConsumeIdent()}

	case scanner.Int, scanner.Float, scanner.String, scanner.Ident:
		return basicValue(l, l.ConsumeLiteral(), "")

	case '-':
		l.ConsumeToken('-')
		if p := l.Peek(); p != scanner.Int && p != scanner.Float {
			l.SyntaxError("invalid negative number")
		}
		return basicValue(l, l.ConsumeLiteral(), "-")

	case '[':
		l.ConsumeToken('[')
		list := &ast.ListValue{}
		for l.Peek() != ']' {
			list.Values = append(list.Values, ParseLiteral(l, constOnly))
		}
		l.ConsumeToken(']')
		return list

	case '{':
		l.ConsumeToken('{')
		obj := &ast.ObjectValue{}
		for l.Peek() != '}' {
			name := l.ConsumeIdent()
			l.ConsumeToken(':')
			value := ParseLiteral(l, constOnly)
			obj.Fields = append(obj.Fields, &ast.ObjectField{Name: name, Value: value})
		}
		l.ConsumeToken('}')
		return obj

	default:
		l.SyntaxError("invalid value")
		panic("unreachable")
	}
}

func basicValue(l *Lexer, lit *BasicLit, sign string) ast.Value {
	switch lit.Type {
	case scanner.Int:
		if !isNumber(lit.Text, false) {
			l.SyntaxError("invalid integer " + strconv.Quote(sign+lit.Text))
		}
		n, err := strconv.ParseInt(sign+lit.Text, 10, 64)
		if err != nil {
			l.SyntaxError("invalid integer " + strconv.Quote(sign+lit.Text))
		}
		return ast.IntValue(n)

	case scanner.Float:
		if !isNumber(lit.Text, true) {
			l.SyntaxError("invalid float " + strconv.Quote(sign+lit.Text))
		}
		f, err := strconv.ParseFloat(sign+lit.Text, 64)
		if err != nil {
			l.SyntaxError("invalid float " + strconv.Quote(sign+lit.Text))
		}
		return ast.FloatValue(f)

	case scanner.String:
		if lit.Block {
			return ast.StringValue(BlockStringValue(lit.Text))
		}
		s, ok := unquote(lit.Text)
		if !ok {
			l.SyntaxError("invalid string " + lit.Text)
		}
		return ast.StringValue(s)

	default:
		switch lit.Text {
		case "true":
			return ast.BooleanValue(true)
		case "false":
			return ast.BooleanValue(false)
		case "null":
			return ast.NullValue{}
		}
		return ast.EnumValue(lit.Text)
	}
}

// isNumber reports whether s is an unsigned IntValue or, when float is set,
// a FloatValue. The scanner also accepts hex, octal, underscores and forms
// like ".5" or "1." that GraphQL does not.
//
// http://spec.graphql.org/draft/#sec-Int-Value
func isNumber(s string, float bool) bool {
	i := digits(s, 0)
	switch {
	case i == 0:
		return false
	case s[0] == '0' && i > 1:
		return false
	}
	if !float {
		return i == len(s)
	}
	var frac, exp bool
	if i < len(s) && s[i] == '.' {
		j := digits(s, i+1)
		if j == i+1 {
			return false
		}
		i, frac = j, true
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		j := digits(s, i)
		if j == i {
			return false
		}
		i, exp = j, true
	}
	return i == len(s) && (frac || exp)
}

func digits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// unquote decodes a quoted GraphQL string token.
//
// http://spec.graphql.org/draft/#sec-String-Value.Semantics
func unquote(text string) (string, bool) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", false
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, true
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(body) {
			return "", false
		}
		switch body[i] {
		case '"', '\\', '/':
			b.WriteByte(body[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, ok := hex4(body, i+1)
			if !ok {
				return "", false
			}
			i += 4
			if utf16.IsSurrogate(r) {
				// Only a high surrogate followed by an escaped low surrogate is valid.
				if r >= 0xdc00 || i+2 >= len(body) || body[i+1] != '\\' || body[i+2] != 'u' {
					return "", false
				}
				lo, ok := hex4(body, i+3)
				if !ok {
					return "", false
				}
				r = utf16.DecodeRune(r, lo)
				if r == utf8.RuneError {
					return "", false
				}
				i += 6
			}
			b.WriteRune(r)
		default:
			return "", false
		}
	}
	if !utf8.ValidString(b.String()) {
		return "", false
	}
	return b.String(), true
}

// hex4 decodes the four hex digits of a \u escape starting at body[i].
func hex4(body string, i int) (rune, bool) {
	if i+4 > len(body) {
		return 0, false
	}
	r, err := strconv.ParseUint(body[i:i+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(r), true
}

// BlockStringValue removes the common indentation and the leading and
// trailing blank lines of a raw block string.
//
// http://spec.graphql.org/draft/#BlockStringValue()
func BlockStringValue(raw string) string {
	lines := strings.Split(strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(raw), "\n")

	common := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if common < 0 || indent < common {
			common = indent
		}
	}
	if common > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < common {
				lines[i] = ""
			} else {
				lines[i] = lines[i][common:]
			}
		}
	}

	for len(lines) > 0 && leadingWhitespace(lines[0]) == len(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && leadingWhitespace(lines[len(lines)-1]) == len(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
