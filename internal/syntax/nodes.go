// Package syntax defines the declaration-language syntax tree together
// with a printer and parser for the subset of Bicep that resource
// insertion produces. Trees are immutable: rewrites build new trees and
// share untouched subtrees.
package syntax

// Node is implemented by every syntax tree node.
type Node interface {
	node()
}

// Expression is implemented by nodes usable as a declaration body or a
// property/array value.
type Expression interface {
	Node
	expression()
}

// Declaration is a top-level resource declaration:
//
//	resource <name> '<type>@<apiVersion>' = <body>
type Declaration struct {
	Name string // sanitized identifier, may be empty
	Type string // fully qualified type reference with api version
	Body Expression
}

// Property is one key/value entry of an ObjectExpr. Keys keep document
// order; the printer emits them in slice order.
type Property struct {
	Key   string
	Value Expression
}

type ObjectExpr struct {
	Properties []Property
}

type ArrayExpr struct {
	Items []Expression
}

type StringLit struct {
	Value string
}

// IntLit holds a 32-bit integer literal. Values outside this range are
// lowered to string literals before they ever reach the tree.
type IntLit struct {
	Value int32
}

type BoolLit struct {
	Value bool
}

type NullLit struct{}

// Ident is a bare identifier expression.
type Ident struct {
	Name string
}

func (*Declaration) node() {}
func (Property) node()     {}
func (*ObjectExpr) node()  {}
func (*ArrayExpr) node()   {}
func (*StringLit) node()   {}
func (*IntLit) node()      {}
func (*BoolLit) node()     {}
func (*NullLit) node()     {}
func (*Ident) node()       {}

func (*ObjectExpr) expression() {}
func (*ArrayExpr) expression()  {}
func (*StringLit) expression()  {}
func (*IntLit) expression()     {}
func (*BoolLit) expression()    {}
func (*NullLit) expression()    {}
func (*Ident) expression()      {}
