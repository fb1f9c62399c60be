package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/gqlfmt/ast"
)

func FuzzParseQuery(f *testing.F) {
	f.Add("query Get($id: Int!) { user(id: $id) { name } }")
	f.Fuzz(func(t *testing.T, queryStr string) {
		Parse(queryStr)
	})
}

func TestParseOperations(t *testing.T) {
	doc, err := Parse(`
		# leading comment
		query Get($id: ID!, $first: Int = 10) @cached {
			u: user(id: $id) { name }
		}
		mutation { like(id: 1) }
		subscription OnEvent { event }
		{ shorthand }
	`)
	require.Nil(t, err)
	require.Len(t, doc.Definitions, 4)

	q, ok := doc.Definitions[0].(*ast.Query)
	require.True(t, ok, "got %T", doc.Definitions[0])
	assert.Equal(t, "Get", q.Name)
	require.Len(t, q.VariableDefinitions, 2)
	assert.Equal(t, &ast.NonNullType{OfType: &ast.NamedType{Name: "ID"}}, q.VariableDefinitions[0].Type)
	assert.Equal(t, ast.IntValue(10), q.VariableDefinitions[1].DefaultValue)
	assert.Equal(t, "cached", q.Directives[0].Name)

	field := q.SelectionSet.Items[0].(*ast.Field)
	assert.Equal(t, "u", field.Alias)
	assert.Equal(t, "user", field.Name)
	assert.Equal(t, &ast.Variable{Name: "id"}, field.Arguments[0].Value)

	assert.IsType(t, &ast.Mutation{}, doc.Definitions[1])
	assert.Equal(t, "OnEvent", doc.Definitions[2].(*ast.Subscription).Name)
	assert.IsType(t, &ast.SelectionSet{}, doc.Definitions[3])
}

func TestParseVariableDirectives(t *testing.T) {
	doc, err := Parse(`query ($a: Int = 1 @deprecated(reason: "old") @tag, $b: ID @internal) { f }`)
	require.Nil(t, err)

	vars := doc.Definitions[0].(*ast.Query).VariableDefinitions
	require.Len(t, vars, 2)
	assert.Equal(t, ast.IntValue(1), vars[0].DefaultValue)
	require.Len(t, vars[0].Directives, 2)
	assert.Equal(t, "deprecated", vars[0].Directives[0].Name)
	reason, ok := vars[0].Directives[0].Arguments.Get("reason")
	assert.True(t, ok)
	assert.Equal(t, ast.StringValue("old"), reason)
	assert.Equal(t, "tag", vars[0].Directives[1].Name)
	assert.Nil(t, vars[1].DefaultValue)
	require.Len(t, vars[1].Directives, 1)
	assert.Equal(t, "internal", vars[1].Directives[0].Name)
}

func TestParseFragments(t *testing.T) {
	doc, err := Parse(`
		{
			...UserFields @include(if: $full)
			... on Admin { level }
			... @skip(if: true) { id }
		}
		fragment UserFields on User { name }
	`)
	require.Nil(t, err)
	require.Len(t, doc.Definitions, 2)

	items := doc.Definitions[0].(*ast.SelectionSet).Items
	require.Len(t, items, 3)
	spread := items[0].(*ast.FragmentSpread)
	assert.Equal(t, "UserFields", spread.Name)
	assert.Equal(t, "include", spread.Directives[0].Name)

	inline := items[1].(*ast.InlineFragment)
	assert.Equal(t, &ast.TypeCondition{On: "Admin"}, inline.TypeCondition)

	bare := items[2].(*ast.InlineFragment)
	assert.Nil(t, bare.TypeCondition)
	assert.Equal(t, "skip", bare.Directives[0].Name)

	frag := doc.Definitions[1].(*ast.FragmentDefinition)
	assert.Equal(t, "UserFields", frag.Name)
	assert.Equal(t, "User", frag.TypeCondition.On)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"unknown keyword", "schema { a }", `syntax error: unexpected "schema", expecting "fragment"`},
		{"unclosed selection", "{ a", "expecting Ident"},
		{"constant default", "query ($a: Int = $b) { a }", "syntax error: variable not allowed"},
		{"fragment without type", "fragment F { a }", `syntax error: unexpected "{", expecting "on"`},
		{"lone surrogate", `{ a(s: "\uD800") }`, `syntax error: invalid string "\uD800"`},
		{"leading zero", "{ a(x: 007) }", `syntax error: invalid integer "007"`},
		{"float without integer part", "{ a(x: .5) }", `syntax error: invalid float ".5"`},
		{"float without fraction digits", "{ a(x: 1.) }", `syntax error: invalid float "1."`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			require.NotNil(t, err)
			assert.Contains(t, err.Message, tt.want)
			assert.NotEmpty(t, err.Locations)
		})
	}
}
