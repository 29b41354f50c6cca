package ast

import "fmt"

// The setters below stamp a child's parent back-reference after the child
// has been attached to a container that already lives at a stable address.
// The parser uses them for its two-phase construction; tools that rewrite
// trees use them to keep CheckParents happy.

func SetExprParent(child Expr, parent ExprParent) {
	switch n := child.(type) {
	case *Identifier:
		n.Parent = parent
	case *StringLiteral:
		n.Parent = parent
	case *NumberLiteral:
		n.Parent = parent
	case *BigIntLiteral:
		n.Parent = parent
	case *ArrayLiteral:
		n.Parent = parent
	case *ObjectLiteral:
		n.Parent = parent
	case *MemberExpression:
		n.Parent = parent
	case *CallExpression:
		n.Parent = parent
	case *UnaryExpression:
		n.Parent = parent
	case *UpdateExpression:
		n.Parent = parent
	case *BinaryExpression:
		n.Parent = parent
	case *Assignment:
		n.Parent = parent
	case *UpdateAssignment:
		n.Parent = parent
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", child))
	}
}

func SetStmtParent(child Stmt, parent StmtParent) {
	switch n := child.(type) {
	case *ExpressionStatement:
		n.Parent = parent
	case *BlockStatement:
		n.Parent = parent
	case *LetStatement:
		n.Parent = parent
	default:
		panic(fmt.Sprintf("ast: unknown statement %T", child))
	}
}

func SetPatternParent(child Pattern, parent PatternParent) {
	switch n := child.(type) {
	case *IdentifierTarget:
		n.Parent = parent
	case *MemberTarget:
		n.Parent = parent
	case *ArrayPattern:
		n.Parent = parent
	case *ObjectPattern:
		n.Parent = parent
	default:
		panic(fmt.Sprintf("ast: unknown pattern %T", child))
	}
}
