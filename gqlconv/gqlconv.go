// Package gqlconv converts documents parsed by github.com/vektah/gqlparser/v2
// into package ast, so they can be printed by gqlfmt.
package gqlconv

import (
	"fmt"
	"strconv"

	gqlast "github.com/vektah/gqlparser/v2/ast"

	"github.com/graph-gophers/gqlfmt/ast"
)

// FromQueryDocument converts doc. Operations come first, followed by
// fragments, because gqlparser does not keep their relative order. An
// anonymous query without variables or directives becomes the selection set
// shorthand.
func FromQueryDocument(doc *gqlast.QueryDocument) (*ast.Document, error) {
	c := &converter{}
	out := &ast.Document{}
	for _, op := range doc.Operations {
		out.Definitions = append(out.Definitions, c.operation(op))
	}
	for _, frag := range doc.Fragments {
		out.Definitions = append(out.Definitions, &ast.FragmentDefinition{
			Name:          frag.Name,
			TypeCondition: ast.TypeCondition{On: frag.TypeCondition},
			Directives:    c.directives(frag.Directives),
			SelectionSet:  c.selectionSet(frag.SelectionSet),
		})
	}
	if c.err != nil {
		return nil, c.err
	}
	return out, nil
}

// converter keeps the first error so the recursive helpers stay simple.
type converter struct {
	err error
}

func (c *converter) operation(op *gqlast.OperationDefinition) ast.OperationDefinition {
	if op.Operation == gqlast.Query && op.Name == "" && len(op.VariableDefinitions) == 0 && len(op.Directives) == 0 {
		set := c.selectionSet(op.SelectionSet)
		return &set
	}

	o := ast.Operation{
		Name:         op.Name,
		Directives:   c.directives(op.Directives),
		SelectionSet: c.selectionSet(op.SelectionSet),
	}
	for _, v := range op.VariableDefinitions {
		def := &ast.VariableDefinition{Name: v.Variable, Type: c.typ(v.Type), Directives: c.directives(v.Directives)}
		if v.DefaultValue != nil {
			def.DefaultValue = c.value(v.DefaultValue)
		}
		o.VariableDefinitions = append(o.VariableDefinitions, def)
	}

	switch op.Operation {
	case gqlast.Mutation:
		return &ast.Mutation{Operation: o}
	case gqlast.Subscription:
		return &ast.Subscription{Operation: o}
	default:
		return &ast.Query{Operation: o}
	}
}

func (c *converter) selectionSet(set gqlast.SelectionSet) ast.SelectionSet {
	var out ast.SelectionSet
	for _, sel := range set {
		switch s := sel.(type) {
		case *gqlast.Field:
			f := &ast.Field{
				Name:         s.Name,
				Arguments:    c.arguments(s.Arguments),
				Directives:   c.directives(s.Directives),
				SelectionSet: c.selectionSet(s.SelectionSet),
			}
			if s.Alias != s.Name {
				f.Alias = s.Alias
			}
			out.Items = append(out.Items, f)
		case *gqlast.InlineFragment:
			f := &ast.InlineFragment{
				Directives:   c.directives(s.Directives),
				SelectionSet: c.selectionSet(s.SelectionSet),
			}
			if s.TypeCondition != "" {
				f.TypeCondition = &ast.TypeCondition{On: s.TypeCondition}
			}
			out.Items = append(out.Items, f)
		case *gqlast.FragmentSpread:
			out.Items = append(out.Items, &ast.FragmentSpread{
				Name:       s.Name,
				Directives: c.directives(s.Directives),
			})
		default:
			c.fail(fmt.Errorf("gqlconv: unexpected selection %T", sel))
		}
	}
	return out
}

func (c *converter) arguments(args gqlast.ArgumentList) ast.ArgumentList {
	var out ast.ArgumentList
	for _, arg := range args {
		out = append(out, &ast.Argument{Name: arg.Name, Value: c.value(arg.Value)})
	}
	return out
}

func (c *converter) directives(dirs gqlast.DirectiveList) ast.DirectiveList {
	var out ast.DirectiveList
	for _, d := range dirs {
		out = append(out, &ast.Directive{Name: d.Name, Arguments: c.arguments(d.Arguments)})
	}
	return out
}

func (c *converter) typ(t *gqlast.Type) ast.Type {
	var out ast.Type
	if t.Elem != nil {
		out = &ast.ListType{OfType: c.typ(t.Elem)}
	} else {
		out = &ast.NamedType{Name: t.NamedType}
	}
	if t.NonNull {
		out = &ast.NonNullType{OfType: out}
	}
	return out
}

func (c *converter) value(v *gqlast.Value) ast.Value {
	switch v.Kind {
	case gqlast.Variable:
		return &ast.Variable{Name: v.Raw}
	case gqlast.IntValue:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			c.fail(fmt.Errorf("gqlconv: invalid integer %q: %w", v.Raw, err))
		}
		return ast.IntValue(n)
	case gqlast.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			c.fail(fmt.Errorf("gqlconv: invalid float %q: %w", v.Raw, err))
		}
		return ast.FloatValue(f)
	case gqlast.StringValue, gqlast.BlockValue:
		return ast.StringValue(v.Raw)
	case gqlast.BooleanValue:
		return ast.BooleanValue(v.Raw == "true")
	case gqlast.NullValue:
		return ast.NullValue{}
	case gqlast.EnumValue:
		return ast.EnumValue(v.Raw)
	case gqlast.ListValue:
		list := &ast.ListValue{}
		for _, child := range v.Children {
			list.Values = append(list.Values, c.value(child.Value))
		}
		return list
	case gqlast.ObjectValue:
		obj := &ast.ObjectValue{}
		for _, child := range v.Children {
			obj.Fields = append(obj.Fields, &ast.ObjectField{Name: child.Name, Value: c.value(child.Value)})
		}
		return obj
	default:
		c.fail(fmt.Errorf("gqlconv: unexpected value kind %d", v.Kind))
		return ast.NullValue{}
	}
}

func (c *converter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
