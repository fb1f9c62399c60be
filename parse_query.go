package gqlfmt

import (
	"github.com/graph-gophers/gqlfmt/ast"
	"github.com/graph-gophers/gqlfmt/errors"
	"github.com/graph-gophers/gqlfmt/internal/query"
)

// ParseQuery parses a GraphQL query string and returns the AST root node and
// any errors. It only serves to expose the internal query.Parse function.
func ParseQuery(queryString string) (*ast.Document, *errors.QueryError) {
	return query.Parse(queryString)
}
