package common

import (
	"github.com/graph-gophers/gqlfmt/ast"
)

func ParseType(l *Lexer) ast.Type {
	t := parseNullType(l)
	if l.Peek() == '!' {
		l.ConsumeToken('!')
		return &ast.NonNullType{OfType: t}
	}
	return t
}

func parseNullType(l *Lexer) ast.Type {
	if l.Peek() == '[' {
		l.ConsumeToken('[')
		ofType := ParseType(l)
		l.ConsumeToken(']')
		return &ast.ListType{OfType: ofType}
	}

	return &ast.NamedType{Name: l.ConsumeIdent()}
}
