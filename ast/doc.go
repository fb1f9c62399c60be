/*
Package ast represents executable GraphQL documents in code.

The tree is built by a parser (see [github.com/graph-gophers/gqlfmt.ParseQuery])
or by hand, and is treated as read-only by the printer. Every union of the
[GraphQL specification] (definitions, selections, values and types) is a
closed interface: only the types in this package implement it.

The names of the Go types, whenever possible, match 1:1 with the names from
the specification.

[GraphQL specification]: https://spec.graphql.org
*/
package ast
