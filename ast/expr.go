// Package ast defines the syntax tree produced by the parser: expressions,
// assignment targets, statements, the parent back-references that link a
// child to its container, and the walker that verifies them.
package ast

import (
	"math/big"

	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// Node is anything with a source location and a printable shape.
type Node interface {
	Loc() source.Location
	String() string
}

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	// Identifier is a variable reference.
	Identifier struct {
		Start  source.Location
		Name   string
		Parent ExprParent
	}

	StringLiteral struct {
		Start  source.Location
		Value  string
		Parent ExprParent
	}

	NumberLiteral struct {
		Start  source.Location
		Value  float64
		Parent ExprParent
	}

	BigIntLiteral struct {
		Start  source.Location
		Value  *big.Int
		Parent ExprParent
	}

	// ArrayElement is one slot of an array literal. A nil Value is an
	// elision (`[,10]` has one before the 10).
	ArrayElement struct {
		Spread bool
		Value  Expr
	}

	ArrayLiteral struct {
		LeftBracket source.Location
		Elements    []ArrayElement
		Parent      ExprParent
	}

	// ObjectProperty is one `key: value` entry. Shorthand entries carry a
	// synthesized Identifier value named after the key.
	ObjectProperty struct {
		KeyLoc    source.Location
		Key       string
		Value     Expr
		Shorthand bool
	}

	ObjectLiteral struct {
		LeftBrace  source.Location
		Properties []ObjectProperty
		Parent     ExprParent
	}

	// MemberExpression is a property lookup. Plain `a.b` stores a synthetic
	// StringLiteral property so that dotted and computed access share one
	// shape; Computed marks `a[b]`, Optional marks `a?.b` / `a?.[b]`.
	MemberExpression struct {
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
		Parent   ExprParent
	}

	// CallExpression covers plain calls, `new` calls (including the
	// zero-argument `new a` form) and optional-chained calls `a?.()`.
	CallExpression struct {
		NewLoc    source.Location // valid only when New is set
		Callee    Expr
		Arguments []Expr
		New       bool
		Optional  bool
		Parent    ExprParent
	}

	UnaryExpression struct {
		OpLoc   source.Location
		Op      UnaryOp
		Operand Expr
		Parent  ExprParent
	}

	// UpdateExpression is prefix or postfix `++`/`--`. The operand is
	// restricted to a variable or member-lookup target.
	UpdateExpression struct {
		OpLoc     source.Location
		Decrement bool
		Prefix    bool
		Operand   SimpleTarget
		Parent    ExprParent
	}

	BinaryExpression struct {
		Op     token.Kind
		Left   Expr
		Right  Expr
		Parent ExprParent
	}

	// Assignment is plain `=`; its target may be a full destructuring form.
	Assignment struct {
		Target Pattern
		Right  Expr
		Parent ExprParent
	}

	// UpdateAssignment is a compound assignment (`+=` through `??=`); its target
	// is restricted to a variable or member lookup.
	UpdateAssignment struct {
		Op     token.Kind
		Target SimpleTarget
		Right  Expr
		Parent ExprParent
	}
)

func (*Identifier) _expr()       {}
func (*StringLiteral) _expr()    {}
func (*NumberLiteral) _expr()    {}
func (*BigIntLiteral) _expr()    {}
func (*ArrayLiteral) _expr()     {}
func (*ObjectLiteral) _expr()    {}
func (*MemberExpression) _expr() {}
func (*CallExpression) _expr()   {}
func (*UnaryExpression) _expr()  {}
func (*UpdateExpression) _expr() {}
func (*BinaryExpression) _expr() {}
func (*Assignment) _expr()       {}
func (*UpdateAssignment) _expr() {}

func (n *Identifier) Loc() source.Location       { return n.Start }
func (n *StringLiteral) Loc() source.Location    { return n.Start }
func (n *NumberLiteral) Loc() source.Location    { return n.Start }
func (n *BigIntLiteral) Loc() source.Location    { return n.Start }
func (n *ArrayLiteral) Loc() source.Location     { return n.LeftBracket }
func (n *ObjectLiteral) Loc() source.Location    { return n.LeftBrace }
func (n *MemberExpression) Loc() source.Location { return n.Object.Loc() }
func (n *UnaryExpression) Loc() source.Location  { return n.OpLoc }
func (n *UpdateExpression) Loc() source.Location {
	if n.Prefix {
		return n.OpLoc
	}
	return n.Operand.Loc()
}
func (n *BinaryExpression) Loc() source.Location { return n.Left.Loc() }
func (n *Assignment) Loc() source.Location       { return n.Target.Loc() }
func (n *UpdateAssignment) Loc() source.Location { return n.Target.Loc() }

func (n *CallExpression) Loc() source.Location {
	if n.New {
		return n.NewLoc
	}
	return n.Callee.Loc()
}

// UnaryOp is the operator of a UnaryExpression.
type UnaryOp int

const (
	UnaryNot UnaryOp = iota // !
	UnaryBitwiseNot
	UnaryPositive
	UnaryNegate
	UnaryTypeOf
	UnaryVoid
	UnaryDelete
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNot:
		return "!"
	case UnaryBitwiseNot:
		return "~"
	case UnaryPositive:
		return "+"
	case UnaryNegate:
		return "-"
	case UnaryTypeOf:
		return "typeof"
	case UnaryVoid:
		return "void"
	case UnaryDelete:
		return "delete"
	}
	return "unary(?)"
}

// Keyword reports whether the operator is spelled as a word rather than
// punctuation.
func (op UnaryOp) Keyword() bool {
	return op == UnaryTypeOf || op == UnaryVoid || op == UnaryDelete
}
