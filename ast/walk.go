package ast

import "fmt"

// Walk traverses the tree rooted at node depth-first in pre-order, calling fn
// for every node. If fn returns false the children of that node are skipped.
// Nested selection sets of fields and fragments are not visited as nodes of
// their own; their items are.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			Walk(d, fn)
		}
	case *SelectionSet:
		walkSelections(n.Items, fn)
	case *Query:
		walkOperation(&n.Operation, fn)
	case *Mutation:
		walkOperation(&n.Operation, fn)
	case *Subscription:
		walkOperation(&n.Operation, fn)
	case *FragmentDefinition:
		Walk(&n.TypeCondition, fn)
		walkDirectives(n.Directives, fn)
		walkSelections(n.SelectionSet.Items, fn)
	case *Field:
		walkArguments(n.Arguments, fn)
		walkDirectives(n.Directives, fn)
		walkSelections(n.SelectionSet.Items, fn)
	case *InlineFragment:
		if n.TypeCondition != nil {
			Walk(n.TypeCondition, fn)
		}
		walkDirectives(n.Directives, fn)
		walkSelections(n.SelectionSet.Items, fn)
	case *FragmentSpread:
		walkDirectives(n.Directives, fn)
	case *Directive:
		walkArguments(n.Arguments, fn)
	case *Argument:
		Walk(n.Value, fn)
	case *VariableDefinition:
		Walk(n.Type, fn)
		if n.DefaultValue != nil {
			Walk(n.DefaultValue, fn)
		}
		walkDirectives(n.Directives, fn)
	case *ListType:
		Walk(n.OfType, fn)
	case *NonNullType:
		Walk(n.OfType, fn)
	case *ListValue:
		for _, v := range n.Values {
			Walk(v, fn)
		}
	case *ObjectValue:
		for _, f := range n.Fields {
			Walk(f, fn)
		}
	case *ObjectField:
		Walk(n.Value, fn)
	case *TypeCondition, *NamedType, *Variable, IntValue, FloatValue,
		StringValue, BooleanValue, NullValue, EnumValue:
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", node))
	}
}

func walkOperation(op *Operation, fn func(Node) bool) {
	for _, v := range op.VariableDefinitions {
		Walk(v, fn)
	}
	walkDirectives(op.Directives, fn)
	walkSelections(op.SelectionSet.Items, fn)
}

func walkSelections(sels []Selection, fn func(Node) bool) {
	for _, sel := range sels {
		Walk(sel, fn)
	}
}

func walkArguments(args ArgumentList, fn func(Node) bool) {
	for _, arg := range args {
		Walk(arg, fn)
	}
}

func walkDirectives(dirs DirectiveList, fn func(Node) bool) {
	for _, d := range dirs {
		Walk(d, fn)
	}
}
