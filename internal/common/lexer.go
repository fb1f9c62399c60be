package common

import (
	"fmt"
	"strings"
	"text/scanner"

	"github.com/graph-gophers/gqlfmt/errors"
)

type syntaxError string

type Lexer struct {
	sc   *scanner.Scanner
	next rune
}

func NewLexer(s string) *Lexer {
	sc := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings,
	}
	sc.Init(strings.NewReader(s))
	// Escapes are validated by unquote; the scanner must not print to stderr.
	sc.Error = func(*scanner.Scanner, string) {}

	return &Lexer{sc: sc}
}

func (l *Lexer) CatchSyntaxError(f func()) (errRes *errors.QueryError) {
	defer func() {
		if err := recover(); err != nil {
			if err, ok := err.(syntaxError); ok {
				errRes = errors.Errorf("syntax error: %s", err)
				errRes.Locations = []errors.Location{l.Location()}
				return
			}
			panic(err)
		}
	}()

	f()
	return
}

func (l *Lexer) Peek() rune {
	return l.next
}

// ConsumeWhitespace consumes whitespace and tokens equivalent to whitespace (e.g. commas and comments).
func (l *Lexer) ConsumeWhitespace() {
	for {
		l.next = l.sc.Scan()

		if l.next == ',' {
			// Similar to white space and line terminators, commas (',') are used to improve the
			// legibility of source text and separate lexical tokens but are otherwise syntactically and
			// semantically insignificant within GraphQL documents.
			//
			// http://spec.graphql.org/draft/#sec-Insignificant-Commas
			continue
		}

		if l.next == '#' {
			// GraphQL source documents may contain single-line comments, starting with the '#' marker.
			// Comments are dropped; the printer does not preserve them.
			l.consumeComment()
			continue
		}

		break
	}
}

func (l *Lexer) ConsumeIdent() string {
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return name
}

func (l *Lexer) ConsumeKeyword(keyword string) {
	if l.next != scanner.Ident || l.sc.TokenText() != keyword {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %q", l.sc.TokenText(), keyword))
	}
	l.ConsumeWhitespace()
}

// ConsumeLiteral consumes an Int, Float, String or Name token.
func (l *Lexer) ConsumeLiteral() *BasicLit {
	lit := &BasicLit{Type: l.next, Text: l.sc.TokenText()}
	if lit.Type == scanner.String && lit.Text == `""` && l.sc.Peek() == '"' {
		l.sc.Next()
		lit.Text = l.consumeBlockString()
		lit.Block = true
	}
	l.ConsumeWhitespace()
	return lit
}

func (l *Lexer) ConsumeToken(expected rune) {
	if l.next != expected {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %s", l.sc.TokenText(), scanner.TokenString(expected)))
	}
	l.ConsumeWhitespace()
}

func (l *Lexer) SyntaxError(message string) {
	panic(syntaxError(message))
}

func (l *Lexer) Location() errors.Location {
	return errors.Location{
		Line:   l.sc.Line,
		Column: l.sc.Column,
	}
}

// consumeBlockString reads the raw characters of a block string up to the
// closing triple quote. The opening triple quote has already been consumed.
func (l *Lexer) consumeBlockString() string {
	var b strings.Builder
	quotes := 0
	for {
		next := l.sc.Next()
		switch next {
		case scanner.EOF:
			l.SyntaxError("unterminated block string")
		case '"':
			quotes++
			b.WriteRune(next)
			if quotes == 3 {
				raw := b.String()
				return raw[:len(raw)-3]
			}
			continue
		case '\\':
			// \""" is the only escape sequence of a block string.
			n := 0
			for n < 3 && l.sc.Peek() == '"' {
				l.sc.Next()
				n++
			}
			if n < 3 {
				b.WriteRune(next)
			}
			b.WriteString(strings.Repeat(`"`, n))
		default:
			b.WriteRune(next)
		}
		quotes = 0
	}
}

// consumeComment consumes all characters from `#` to the first encountered line terminator.
func (l *Lexer) consumeComment() {
	if l.next != '#' {
		panic("consumeComment used in wrong context")
	}

	for {
		next := l.sc.Next()
		if next == '\r' || next == '\n' || next == scanner.EOF {
			break
		}
	}
}
