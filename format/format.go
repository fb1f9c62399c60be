// Package format prints query documents as canonical, indented GraphQL text.
//
// A Formatter is a small block writer: it knows about indentation and braces
// and nothing else. Display maps every node kind of package ast onto calls to
// that writer.
package format

import "github.com/graph-gophers/gqlfmt/ast"

// Document renders doc with the given style.
func Document(doc *ast.Document, style Style) string {
	f := NewFormatter(style)
	displayDocument(f, doc)
	return f.String()
}
