package ast

import "github.com/quartzjs/quartz/source"

type (
	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	// ExpressionStatement is a bare expression in statement position.
	ExpressionStatement struct {
		Expression Expr
		Parent     StmtParent
	}

	// BlockStatement is a `{ ... }` statement sequence.
	BlockStatement struct {
		LeftBrace source.Location
		Body      []Stmt
		Parent    StmtParent
	}

	// LetStatement is a `let <target> = <init>` binding.
	LetStatement struct {
		Let    source.Location
		Target Pattern
		Init   Expr
		Parent StmtParent
	}

	// Program is the top-level statement sequence of one source buffer.
	Program struct {
		Start source.Location
		Body  []Stmt
	}
)

func (*ExpressionStatement) _stmt() {}
func (*BlockStatement) _stmt()      {}
func (*LetStatement) _stmt()        {}

func (n *ExpressionStatement) Loc() source.Location { return n.Expression.Loc() }
func (n *BlockStatement) Loc() source.Location      { return n.LeftBrace }
func (n *LetStatement) Loc() source.Location        { return n.Let }
func (n *Program) Loc() source.Location             { return n.Start }
