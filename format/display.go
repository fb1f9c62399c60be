package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/graph-gophers/gqlfmt/ast"
)

// Display writes node and everything below it to f.
func Display(f *Formatter, node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		displayDocument(f, n)
	case ast.Definition:
		displayDefinition(f, n)
	case ast.Selection:
		displaySelection(f, n)
	case *ast.VariableDefinition:
		displayVariableDefinition(f, n)
	case ast.Type:
		displayType(f, n)
	case ast.Value:
		displayValue(f, n)
	case *ast.Argument:
		displayArgument(f, n.Name, n.Value)
	case *ast.ObjectField:
		displayArgument(f, n.Name, n.Value)
	case *ast.Directive:
		displayDirective(f, n)
	case *ast.TypeCondition:
		displayTypeCondition(f, n)
	default:
		panic(fmt.Sprintf("format: unexpected node %T", node))
	}
}

func displayDocument(f *Formatter, doc *ast.Document) {
	for _, def := range doc.Definitions {
		displayDefinition(f, def)
	}
}

func displayDefinition(f *Formatter, def ast.Definition) {
	switch d := def.(type) {
	case *ast.SelectionSet:
		displaySelectionSet(f, d)
	case *ast.Query:
		displayOperation(f, "query", &d.Operation)
	case *ast.Mutation:
		displayOperation(f, "mutation", &d.Operation)
	case *ast.Subscription:
		displayOperation(f, "subscription", &d.Operation)
	case *ast.FragmentDefinition:
		displayFragmentDefinition(f, d)
	default:
		panic(fmt.Sprintf("format: unexpected definition %T", def))
	}
}

// displaySelectionSet writes a selection set that stands on its own line,
// such as the query shorthand.
func displaySelectionSet(f *Formatter, set *ast.SelectionSet) {
	f.Indent()
	displayBlock(f, set)
}

func displayBlock(f *Formatter, set *ast.SelectionSet) {
	f.StartBlock()
	for _, item := range set.Items {
		displaySelection(f, item)
	}
	f.EndBlock()
}

func displayOperation(f *Formatter, keyword string, op *ast.Operation) {
	f.Indent()
	f.Write(keyword)
	if op.Name != "" {
		f.Write(" ")
		f.Write(op.Name)
	}
	if len(op.VariableDefinitions) > 0 {
		if op.Name == "" {
			f.Write(" ")
		}
		f.Write("(")
		for _, v := range op.VariableDefinitions {
			displayVariableDefinition(f, v)
		}
		f.Write(")")
	}
	displayDirectives(f, op.Directives)
	f.Write(" ")
	displayBlock(f, &op.SelectionSet)
}

func displayFragmentDefinition(f *Formatter, frag *ast.FragmentDefinition) {
	f.Indent()
	f.Write("fragment ")
	f.Write(frag.Name)
	f.Write(" ")
	displayTypeCondition(f, &frag.TypeCondition)
	displayDirectives(f, frag.Directives)
	f.Write(" ")
	displayBlock(f, &frag.SelectionSet)
}

func displaySelection(f *Formatter, sel ast.Selection) {
	switch s := sel.(type) {
	case *ast.Field:
		displayField(f, s)
	case *ast.InlineFragment:
		displayInlineFragment(f, s)
	case *ast.FragmentSpread:
		displayFragmentSpread(f, s)
	default:
		panic(fmt.Sprintf("format: unexpected selection %T", sel))
	}
}

func displayField(f *Formatter, field *ast.Field) {
	f.Indent()
	if field.Alias != "" {
		f.Write(field.Alias)
		f.Write(": ")
	}
	f.Write(field.Name)
	displayArguments(f, field.Arguments)
	displayDirectives(f, field.Directives)
	if len(field.SelectionSet.Items) > 0 {
		f.Write(" ")
		displayBlock(f, &field.SelectionSet)
	} else {
		f.Endline()
	}
}

func displayInlineFragment(f *Formatter, frag *ast.InlineFragment) {
	f.Indent()
	f.Write("... ")
	if frag.TypeCondition != nil {
		displayTypeCondition(f, frag.TypeCondition)
		f.Write(" ")
	}
	for _, d := range frag.Directives {
		displayDirective(f, d)
		f.Write(" ")
	}
	displayBlock(f, &frag.SelectionSet)
}

func displayFragmentSpread(f *Formatter, spread *ast.FragmentSpread) {
	f.Indent()
	f.Write("...")
	f.Write(spread.Name)
	displayDirectives(f, spread.Directives)
	f.Endline()
}

func displayTypeCondition(f *Formatter, cond *ast.TypeCondition) {
	f.Write("on ")
	f.Write(cond.On)
}

// displayArguments writes "(a: 1, b: 2)", or nothing for an empty list.
func displayArguments(f *Formatter, args ast.ArgumentList) {
	if len(args) == 0 {
		return
	}
	f.Write("(")
	for i, arg := range args {
		if i > 0 {
			f.Write(", ")
		}
		displayArgument(f, arg.Name, arg.Value)
	}
	f.Write(")")
}

func displayArgument(f *Formatter, name string, value ast.Value) {
	f.Write(name)
	f.Write(": ")
	displayValue(f, value)
}

// displayDirectives writes each directive preceded by a space.
func displayDirectives(f *Formatter, dirs ast.DirectiveList) {
	for _, d := range dirs {
		f.Write(" ")
		displayDirective(f, d)
	}
}

func displayDirective(f *Formatter, d *ast.Directive) {
	f.Write("@")
	f.Write(d.Name)
	displayArguments(f, d.Arguments)
}

func displayVariableDefinition(f *Formatter, v *ast.VariableDefinition) {
	f.Write("$")
	f.Write(v.Name)
	f.Write(": ")
	displayType(f, v.Type)
	if v.DefaultValue != nil {
		f.Write(" = ")
		displayValue(f, v.DefaultValue)
	}
	displayDirectives(f, v.Directives)
}

func displayType(f *Formatter, t ast.Type) {
	switch t := t.(type) {
	case *ast.NamedType:
		f.Write(t.Name)
	case *ast.ListType:
		f.Write("[")
		displayType(f, t.OfType)
		f.Write("]")
	case *ast.NonNullType:
		displayType(f, t.OfType)
		f.Write("!")
	default:
		panic(fmt.Sprintf("format: unexpected type %T", t))
	}
}

func displayValue(f *Formatter, value ast.Value) {
	switch v := value.(type) {
	case *ast.Variable:
		f.Write("$")
		f.Write(v.Name)
	case ast.IntValue:
		f.Write(strconv.FormatInt(int64(v), 10))
	case ast.FloatValue:
		f.Write(formatFloat(float64(v)))
	case ast.StringValue:
		f.Write(Quote(string(v)))
	case ast.BooleanValue:
		if v {
			f.Write("true")
		} else {
			f.Write("false")
		}
	case ast.NullValue:
		f.Write("null")
	case ast.EnumValue:
		f.Write(string(v))
	case *ast.ListValue:
		f.Write("[")
		for i, item := range v.Values {
			if i > 0 {
				f.Write(", ")
			}
			displayValue(f, item)
		}
		f.Write("]")
	case *ast.ObjectValue:
		f.Write("{")
		for i, field := range v.Fields {
			if i > 0 {
				f.Write(", ")
			}
			displayArgument(f, field.Name, field.Value)
		}
		f.Write("}")
	default:
		panic(fmt.Sprintf("format: unexpected value %T", value))
	}
}

// formatFloat prints v so that it reads back as a FloatValue: whole numbers
// keep a fractional part. GraphQL has no spelling for NaN or infinities.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("format: non-finite float %v", v))
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
