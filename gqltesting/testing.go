package gqltesting

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/graph-gophers/gqlfmt/ast"
	"github.com/graph-gophers/gqlfmt/errors"
	"github.com/graph-gophers/gqlfmt/format"
	"github.com/graph-gophers/gqlfmt/internal/query"
)

// Test is a printer test case to be used with RunTest(s). Either Document or
// Query must be set; Query is parsed first.
type Test struct {
	Name           string
	Document       *ast.Document
	Query          string
	Style          *format.Style
	ExpectedResult string
	ExpectedError  *errors.QueryError
}

// RunTests runs the given printer test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		name := test.Name
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		t.Run(name, func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single printer test case. Besides comparing the output with
// ExpectedResult it checks that printing is deterministic and that the output
// parses back into a document that prints identically.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	doc := test.Document
	if doc == nil {
		var err *errors.QueryError
		doc, err = query.Parse(test.Query)
		checkError(t, test.ExpectedError, err)
		if err != nil {
			return
		}
	}

	style := format.DefaultStyle()
	if test.Style != nil {
		style = *test.Style
	}

	got := format.Document(doc, style)
	if diff := cmp.Diff(test.ExpectedResult, got); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	if again := format.Document(doc, style); again != got {
		t.Fatalf("printing is not deterministic:\n%s\n%s", got, again)
	}

	reparsed, err := query.Parse(got)
	if err != nil {
		t.Fatalf("output does not parse: %s\n%s", err, got)
	}
	if diff := cmp.Diff(got, format.Document(reparsed, style)); diff != "" {
		t.Fatalf("printing the reparsed output differs (-first +second):\n%s", diff)
	}
}

func checkError(t *testing.T, want, got *errors.QueryError) {
	t.Helper()
	if !cmp.Equal(want, got) {
		t.Log("unexpected error:")
		t.Log("  Got: \n", formatError(got))
		t.Log("  Want: \n", formatError(want))
		t.Fatal()
	}
}

func formatError(err *errors.QueryError) string {
	if err == nil {
		return "(nil)\n"
	}
	return fmt.Sprintf(
		`%s
Rule: %s
Extensions: %+v
`,
		err.Error(),
		err.Rule,
		err.Extensions)
}
