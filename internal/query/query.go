package query

import (
	"fmt"
	"text/scanner"

	"github.com/graph-gophers/gqlfmt/ast"
	"github.com/graph-gophers/gqlfmt/errors"
	"github.com/graph-gophers/gqlfmt/internal/common"
)

// Parse parses an executable document.
func Parse(queryString string) (*ast.Document, *errors.QueryError) {
	l := common.NewLexer(queryString)

	var doc *ast.Document
	err := l.CatchSyntaxError(func() { doc = parseDocument(l) })
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseDocument(l *common.Lexer) *ast.Document {
	doc := &ast.Document{}
	l.ConsumeWhitespace()
	for l.Peek() != scanner.EOF {
		if l.Peek() == '{' {
			set := parseSelectionSet(l)
			doc.Definitions = append(doc.Definitions, &set)
			continue
		}

		switch x := l.ConsumeIdent(); x {
		case "query":
			doc.Definitions = append(doc.Definitions, &ast.Query{Operation: parseOperation(l)})

		case "mutation":
			doc.Definitions = append(doc.Definitions, &ast.Mutation{Operation: parseOperation(l)})

		case "subscription":
			doc.Definitions = append(doc.Definitions, &ast.Subscription{Operation: parseOperation(l)})

		case "fragment":
			doc.Definitions = append(doc.Definitions, parseFragment(l))

		default:
			l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "fragment"`, x))
		}
	}
	return doc
}

func parseOperation(l *common.Lexer) ast.Operation {
	var op ast.Operation
	if l.Peek() == scanner.Ident {
		op.Name = l.ConsumeIdent()
	}
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			op.VariableDefinitions = append(op.VariableDefinitions, parseVariableDefinition(l))
		}
		l.ConsumeToken(')')
	}
	op.Directives = common.ParseDirectives(l)
	op.SelectionSet = parseSelectionSet(l)
	return op
}

func parseVariableDefinition(l *common.Lexer) *ast.VariableDefinition {
	l.ConsumeToken('$')
	v := &ast.VariableDefinition{}
	v.Name = l.ConsumeIdent()
	l.ConsumeToken(':')
	v.Type = common.ParseType(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		v.DefaultValue = common.ParseLiteral(l, true)
	}
	v.Directives = common.ParseDirectives(l)
	return v
}

func parseFragment(l *common.Lexer) *ast.FragmentDefinition {
	f := &ast.FragmentDefinition{}
	f.Name = l.ConsumeIdent()
	l.ConsumeKeyword("on")
	f.TypeCondition = ast.TypeCondition{On: l.ConsumeIdent()}
	f.Directives = common.ParseDirectives(l)
	f.SelectionSet = parseSelectionSet(l)
	return f
}

func parseSelectionSet(l *common.Lexer) ast.SelectionSet {
	var set ast.SelectionSet
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		set.Items = append(set.Items, parseSelection(l))
	}
	l.ConsumeToken('}')
	return set
}

func parseSelection(l *common.Lexer) ast.Selection {
	if l.Peek() == '.' {
		return parseSpread(l)
	}
	return parseField(l)
}

func parseField(l *common.Lexer) *ast.Field {
	f := &ast.Field{}
	f.Name = l.ConsumeIdent()
	if l.Peek() == ':' {
		l.ConsumeToken(':')
		f.Alias = f.Name
		f.Name = l.ConsumeIdent()
	}
	if l.Peek() == '(' {
		f.Arguments = common.ParseArgumentList(l)
	}
	f.Directives = common.ParseDirectives(l)
	if l.Peek() == '{' {
		f.SelectionSet = parseSelectionSet(l)
	}
	return f
}

func parseSpread(l *common.Lexer) ast.Selection {
	l.ConsumeToken('.')
	l.ConsumeToken('.')
	l.ConsumeToken('.')

	f := &ast.InlineFragment{}
	if l.Peek() == scanner.Ident {
		name := l.ConsumeIdent()
		if name != "on" {
			return &ast.FragmentSpread{
				Name:       name,
				Directives: common.ParseDirectives(l),
			}
		}
		f.TypeCondition = &ast.TypeCondition{On: l.ConsumeIdent()}
	}
	f.Directives = common.ParseDirectives(l)
	f.SelectionSet = parseSelectionSet(l)
	return f
}
