package common

import "github.com/graph-gophers/gqlfmt/ast"

func ParseDirectives(l *Lexer) ast.DirectiveList {
	var directives ast.DirectiveList
	for l.Peek() == '@' {
		l.ConsumeToken('@')
		d := &ast.Directive{}
		d.Name = l.ConsumeIdent()
		if l.Peek() == '(' {
			d.Arguments = ParseArgumentList(l)
		}
		directives = append(directives, d)
	}
	return directives
}

func ParseArgumentList(l *Lexer) ast.ArgumentList {
	var args ast.ArgumentList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		name := l.ConsumeIdent()
		l.ConsumeToken(':')
		value := ParseLiteral(l, false)
		args = append(args, &ast.Argument{
			Name:  name,
			Value: value,
		})
	}
	l.ConsumeToken(')')
	return args
}
