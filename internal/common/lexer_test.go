package common

import (
	"testing"
	"text/scanner"

	"github.com/graph-gophers/gqlfmt/ast"
)

type literalTestCase struct {
	description string
	source      string
	expected    ast.Value
	failure     bool
}

var literalTests = []literalTestCase{{
	description: "integer",
	source:      "42",
	expected:    ast.IntValue(42),
}, {
	description: "negative float",
	source:      "-1.5e3",
	expected:    ast.FloatValue(-1500),
}, {
	description: "string with escapes",
	source:      `"a\"b\\c\/d\né"`,
	expected:    ast.StringValue("a\"b\\c/d\né"),
}, {
	description: "block string is dedented",
	source:      "\"\"\"\n    Hello,\n      World!\n\n    Yours, \\\"\"\"\n  \"\"\"",
	expected:    ast.StringValue("Hello,\n  World!\n\nYours, \"\"\""),
}, {
	description: "keywords",
	source:      "[true false null RED]",
	expected: &ast.ListValue{Values: []ast.Value{
		ast.BooleanValue(true), ast.BooleanValue(false), ast.NullValue{}, ast.EnumValue("RED"),
	}},
}, {
	description: "object with comments and commas",
	source:      "{a: 1, # first\n b: $v}",
	expected: &ast.ObjectValue{Fields: []*ast.ObjectField{
		{Name: "a", Value: ast.IntValue(1)},
		{Name: "b", Value: &ast.Variable{Name: "v"}},
	}},
}, {
	description: "invalid escape",
	source:      `"\q"`,
	failure:     true,
}, {
	description: "unterminated block string",
	source:      `"""abc`,
	failure:     true,
}, {
	description: "dangling minus",
	source:      "-abc",
	failure:     true,
}, {
	description: "unicode escape",
	source:      `"\u0041"`,
	expected:    ast.StringValue("A"),
}, {
	description: "surrogate pair",
	source:      `"\uD83D\uDE00"`,
	expected:    ast.StringValue("\U0001F600"),
}, {
	description: "lone high surrogate",
	source:      `"\uD800"`,
	failure:     true,
}, {
	description: "high surrogate followed by text",
	source:      `"\uD800abc"`,
	failure:     true,
}, {
	description: "lone low surrogate",
	source:      `"\uDE00"`,
	failure:     true,
}, {
	description: "zero",
	source:      "0",
	expected:    ast.IntValue(0),
}, {
	description: "negative zero float",
	source:      "-0.0",
	expected:    ast.FloatValue(0),
}, {
	description: "exponent only",
	source:      "1E+2",
	expected:    ast.FloatValue(100),
}, {
	description: "leading zero",
	source:      "007",
	failure:     true,
}, {
	description: "missing integer part",
	source:      ".5",
	failure:     true,
}, {
	description: "missing fraction digits",
	source:      "1.",
	failure:     true,
}, {
	description: "hex integer",
	source:      "0x1F",
	failure:     true,
}, {
	description: "digit separator",
	source:      "1_000",
	failure:     true,
}}

func TestParseLiteral(t *testing.T) {
	for _, test := range literalTests {
		t.Run(test.description, func(t *testing.T) {
			lex := NewLexer(test.source)
			var got ast.Value
			err := lex.CatchSyntaxError(func() {
				lex.ConsumeWhitespace()
				got = ParseLiteral(lex, false)
				if lex.Peek() != scanner.EOF {
					lex.SyntaxError("trailing input")
				}
			})
			if test.failure {
				if err == nil {
					t.Fatalf("expected a syntax error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !equalValues(got, test.expected) {
				t.Errorf("got %#v, want %#v", got, test.expected)
			}
		})
	}
}

func TestConstOnlyRejectsVariables(t *testing.T) {
	lex := NewLexer("$id")
	err := lex.CatchSyntaxError(func() {
		lex.ConsumeWhitespace()
		ParseLiteral(lex, true)
	})
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if want := "syntax error: variable not allowed"; err.Message != want {
		t.Errorf("got %q, want %q", err.Message, want)
	}
}

func TestIsNumber(t *testing.T) {
	for _, test := range []struct {
		text  string
		float bool
		want  bool
	}{
		{"0", false, true},
		{"10", false, true},
		{"01", false, false},
		{"", false, false},
		{"1.5e3", true, true},
		{"0.1", true, true},
		{"1e-7", true, true},
		{"1.5", false, false},
		{"00.1", true, false},
		{"1", true, false},
		{"1.e3", true, false},
		{"1e", true, false},
		{"1e+", true, false},
	} {
		if got := isNumber(test.text, test.float); got != test.want {
			t.Errorf("isNumber(%q, %v) = %v, want %v", test.text, test.float, got, test.want)
		}
	}
}

func equalValues(a, b ast.Value) bool {
	switch a := a.(type) {
	case *ast.ListValue:
		b, ok := b.(*ast.ListValue)
		if !ok || len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !equalValues(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case *ast.ObjectValue:
		b, ok := b.(*ast.ObjectValue)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !equalValues(a.Fields[i].Value, b.Fields[i].Value) {
				return false
			}
		}
		return true
	case *ast.Variable:
		b, ok := b.(*ast.Variable)
		return ok && a.Name == b.Name
	default:
		return a == b
	}
}
