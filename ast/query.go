package ast

// Node is implemented by every element of a query document.
type Node interface {
	node()
}

// Document is the root of an executable GraphQL document.
//
// http://spec.graphql.org/draft/#sec-Document
type Document struct {
	Definitions []Definition
}

// Definition is either an OperationDefinition or a *FragmentDefinition.
//
// http://spec.graphql.org/draft/#ExecutableDefinition
type Definition interface {
	Node
	isDefinition()
}

// OperationDefinition is one of *SelectionSet (query shorthand), *Query,
// *Mutation or *Subscription.
//
// http://spec.graphql.org/draft/#sec-Language.Operations
type OperationDefinition interface {
	Definition
	isOperation()
}

// Operation holds what the three named operation kinds have in common.
type Operation struct {
	Name                string
	VariableDefinitions []*VariableDefinition
	Directives          DirectiveList
	SelectionSet        SelectionSet
}

// Query is a read-only fetch.
type Query struct {
	Operation
}

// Mutation is a write followed by a fetch.
type Mutation struct {
	Operation
}

// Subscription is a long-lived request that fetches data in response to
// source events.
type Subscription struct {
	Operation
}

// SelectionSet is an ordered list of selections. The order is significant and
// is preserved by the printer.
//
// http://spec.graphql.org/draft/#sec-Selection-Sets
type SelectionSet struct {
	Items []Selection
}

// Selection is one of *Field, *InlineFragment or *FragmentSpread.
//
// http://spec.graphql.org/draft/#Selection
type Selection interface {
	Node
	isSelection()
}

// Field requests a single piece of information, optionally under an alias.
//
// http://spec.graphql.org/draft/#sec-Language.Fields
type Field struct {
	Alias        string
	Name         string
	Arguments    ArgumentList
	Directives   DirectiveList
	SelectionSet SelectionSet
}

// Argument is a name/value pair passed to a field or directive.
//
// http://spec.graphql.org/draft/#sec-Language.Arguments
type Argument struct {
	Name  string
	Value Value
}

// ArgumentList keeps arguments in source order. Names are not required to be
// unique.
type ArgumentList []*Argument

// Get returns the value of the first argument called name.
func (l ArgumentList) Get(name string) (Value, bool) {
	for _, arg := range l {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Directive annotates a field, fragment or operation.
//
// http://spec.graphql.org/draft/#sec-Language.Directives
type Directive struct {
	Name      string
	Arguments ArgumentList
}

// DirectiveList keeps directives in source order.
type DirectiveList []*Directive

// Get returns the first directive called name, or nil.
func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// VariableDefinition declares an input parameter of an operation.
//
// http://spec.graphql.org/draft/#sec-Language.Variables
type VariableDefinition struct {
	Name         string
	Type         Type
	DefaultValue Value
	Directives   DirectiveList
}

// TypeCondition restricts a fragment to a named type.
//
// http://spec.graphql.org/draft/#sec-Type-Conditions
type TypeCondition struct {
	On string
}

// InlineFragment is a selection set applied under an optional type condition.
//
// http://spec.graphql.org/draft/#sec-Inline-Fragments
type InlineFragment struct {
	TypeCondition *TypeCondition
	Directives    DirectiveList
	SelectionSet  SelectionSet
}

// FragmentSpread references a fragment definition by name.
//
// http://spec.graphql.org/draft/#FragmentSpread
type FragmentSpread struct {
	Name       string
	Directives DirectiveList
}

// FragmentDefinition is a reusable, named selection set.
//
// http://spec.graphql.org/draft/#FragmentDefinition
type FragmentDefinition struct {
	Name          string
	TypeCondition TypeCondition
	Directives    DirectiveList
	SelectionSet  SelectionSet
}

func (*Document) node()           {}
func (*SelectionSet) node()       {}
func (*Query) node()              {}
func (*Mutation) node()           {}
func (*Subscription) node()       {}
func (*Field) node()              {}
func (*Argument) node()           {}
func (*Directive) node()          {}
func (*VariableDefinition) node() {}
func (*TypeCondition) node()      {}
func (*InlineFragment) node()     {}
func (*FragmentSpread) node()     {}
func (*FragmentDefinition) node() {}

func (*SelectionSet) isDefinition()       {}
func (*Query) isDefinition()              {}
func (*Mutation) isDefinition()           {}
func (*Subscription) isDefinition()       {}
func (*FragmentDefinition) isDefinition() {}

func (*SelectionSet) isOperation() {}
func (*Query) isOperation()        {}
func (*Mutation) isOperation()     {}
func (*Subscription) isOperation() {}

func (*Field) isSelection()          {}
func (*InlineFragment) isSelection() {}
func (*FragmentSpread) isSelection() {}
