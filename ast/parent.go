package ast

import "fmt"

// Parent back-references are non-owning: they never participate in keeping
// a node alive and exist only so tree shape can be verified. A nil parent
// means "not attached yet". One union per child kind enumerates the
// syntactic contexts that kind of child may occupy.

// ExprParent is the set of nodes that may directly own an expression.
type ExprParent interface {
	_exprParent()
}

func (*ExpressionStatement) _exprParent() {}
func (*LetStatement) _exprParent()        {}
func (*Assignment) _exprParent()          {}
func (*UpdateAssignment) _exprParent()    {}
func (*BinaryExpression) _exprParent()    {}
func (*UnaryExpression) _exprParent()     {}
func (*CallExpression) _exprParent()      {}
func (*MemberExpression) _exprParent()    {}
func (*ArrayLiteral) _exprParent()        {}
func (*ObjectLiteral) _exprParent()       {}
func (*MemberTarget) _exprParent()        {}
func (*ObjectPattern) _exprParent()       {}

// StmtParent is the set of nodes that may directly own a statement.
type StmtParent interface {
	_stmtParent()
}

func (*Program) _stmtParent()        {}
func (*BlockStatement) _stmtParent() {}

// PatternParent is the set of nodes that may directly own an assignment
// target.
type PatternParent interface {
	_patternParent()
}

func (*LetStatement) _patternParent()     {}
func (*Assignment) _patternParent()       {}
func (*UpdateAssignment) _patternParent() {}
func (*UpdateExpression) _patternParent() {}
func (*ArrayPattern) _patternParent()     {}
func (*ObjectPattern) _patternParent()    {}

// CheckParents walks the whole tree from the root and verifies that every
// stored parent back-reference names the node that actually owns the child
// right now. A mismatch is a construction or mutation bug, never a
// consequence of malformed input, so it panics instead of returning an
// error. The walk is read-only and idempotent.
func CheckParents(p *Program) {
	for _, s := range p.Body {
		checkStmt(s, p)
	}
}

func assertParent(child Node, got, want any) {
	if got != want {
		panic(fmt.Sprintf(
			"ast: parent mismatch at %s: %T declares parent %T, actual owner is %T",
			child.Loc(), child, got, want,
		))
	}
}

func checkStmt(s Stmt, parent StmtParent) {
	switch n := s.(type) {
	case *ExpressionStatement:
		assertParent(n, n.Parent, parent)
		checkExpr(n.Expression, n)
	case *BlockStatement:
		assertParent(n, n.Parent, parent)
		for _, inner := range n.Body {
			checkStmt(inner, n)
		}
	case *LetStatement:
		assertParent(n, n.Parent, parent)
		checkPattern(n.Target, n)
		checkExpr(n.Init, n)
	default:
		panic(fmt.Sprintf("ast: unknown statement %T", s))
	}
}

func checkExpr(e Expr, parent ExprParent) {
	switch n := e.(type) {
	case *Identifier:
		assertParent(n, n.Parent, parent)
	case *StringLiteral:
		assertParent(n, n.Parent, parent)
	case *NumberLiteral:
		assertParent(n, n.Parent, parent)
	case *BigIntLiteral:
		assertParent(n, n.Parent, parent)
	case *ArrayLiteral:
		assertParent(n, n.Parent, parent)
		for _, el := range n.Elements {
			if el.Value != nil {
				checkExpr(el.Value, n)
			}
		}
	case *ObjectLiteral:
		assertParent(n, n.Parent, parent)
		for _, prop := range n.Properties {
			checkExpr(prop.Value, n)
		}
	case *MemberExpression:
		assertParent(n, n.Parent, parent)
		checkExpr(n.Object, n)
		checkExpr(n.Property, n)
	case *CallExpression:
		assertParent(n, n.Parent, parent)
		checkExpr(n.Callee, n)
		for _, arg := range n.Arguments {
			checkExpr(arg, n)
		}
	case *UnaryExpression:
		assertParent(n, n.Parent, parent)
		checkExpr(n.Operand, n)
	case *UpdateExpression:
		assertParent(n, n.Parent, parent)
		checkPattern(n.Operand, n)
	case *BinaryExpression:
		assertParent(n, n.Parent, parent)
		checkExpr(n.Left, n)
		checkExpr(n.Right, n)
	case *Assignment:
		assertParent(n, n.Parent, parent)
		checkPattern(n.Target, n)
		checkExpr(n.Right, n)
	case *UpdateAssignment:
		assertParent(n, n.Parent, parent)
		checkPattern(n.Target, n)
		checkExpr(n.Right, n)
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", e))
	}
}

func checkPattern(pat Pattern, parent PatternParent) {
	switch n := pat.(type) {
	case *IdentifierTarget:
		assertParent(n, n.Parent, parent)
	case *MemberTarget:
		assertParent(n, n.Parent, parent)
		checkExpr(n.Expr, n)
	case *ArrayPattern:
		assertParent(n, n.Parent, parent)
		for _, el := range n.Elements {
			if el != nil {
				checkPattern(el, n)
			}
		}
		if n.Rest != nil {
			checkPattern(n.Rest, n)
		}
	case *ObjectPattern:
		assertParent(n, n.Parent, parent)
		for _, entry := range n.Properties {
			checkPattern(entry.Target, n)
			if entry.Default != nil {
				checkExpr(entry.Default, n)
			}
		}
		if n.Rest != nil {
			checkPattern(n.Rest, n)
		}
	default:
		panic(fmt.Sprintf("ast: unknown pattern %T", pat))
	}
}
