package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quartzjs/quartz/ast"
)

// wire builds `let t = left + right` with every back-reference stamped.
func wire() (*ast.Program, *ast.BinaryExpression) {
	left := &ast.Identifier{Name: "left"}
	right := &ast.NumberLiteral{Value: 1}
	sum := &ast.BinaryExpression{Left: left, Right: right}
	ast.SetExprParent(left, sum)
	ast.SetExprParent(right, sum)

	target := &ast.IdentifierTarget{Name: "t"}
	stmt := &ast.LetStatement{Target: target, Init: sum}
	ast.SetPatternParent(target, stmt)
	ast.SetExprParent(sum, stmt)

	program := &ast.Program{Body: []ast.Stmt{stmt}}
	ast.SetStmtParent(stmt, program)
	return program, sum
}

func TestCheckParentsAccepts(t *testing.T) {
	program, _ := wire()
	require.NotPanics(t, func() { ast.CheckParents(program) })
	// The walk is read-only; running it twice must agree with itself.
	require.NotPanics(t, func() { ast.CheckParents(program) })
}

func TestCheckParentsRejectsUnstamped(t *testing.T) {
	program, sum := wire()
	sum.Left.(*ast.Identifier).Parent = nil
	require.PanicsWithValue(t,
		"ast: parent mismatch at ?:0:0: *ast.Identifier declares parent <nil>, actual owner is *ast.BinaryExpression",
		func() { ast.CheckParents(program) })
}

func TestCheckParentsRejectsStaleReference(t *testing.T) {
	program, sum := wire()
	// Replace a child without restamping it: the new node still points at
	// nothing and must be caught.
	sum.Right = &ast.NumberLiteral{Value: 2}
	require.Panics(t, func() { ast.CheckParents(program) })

	// Restamping repairs the tree.
	ast.SetExprParent(sum.Right, sum)
	require.NotPanics(t, func() { ast.CheckParents(program) })
}

func TestCheckParentsWalksPatterns(t *testing.T) {
	element := &ast.IdentifierTarget{Name: "a"}
	rest := &ast.IdentifierTarget{Name: "r"}
	pattern := &ast.ArrayPattern{Elements: []ast.Pattern{element, nil}, Rest: rest}
	ast.SetPatternParent(element, pattern)
	ast.SetPatternParent(rest, pattern)

	init := &ast.Identifier{Name: "xs"}
	stmt := &ast.LetStatement{Target: pattern, Init: init}
	ast.SetPatternParent(pattern, stmt)
	ast.SetExprParent(init, stmt)
	program := &ast.Program{Body: []ast.Stmt{stmt}}
	ast.SetStmtParent(stmt, program)

	require.NotPanics(t, func() { ast.CheckParents(program) })

	rest.Parent = nil
	require.Panics(t, func() { ast.CheckParents(program) })
}

func TestSettersRejectUnknownNodes(t *testing.T) {
	require.Panics(t, func() { ast.SetExprParent(nil, &ast.ExpressionStatement{}) })
}
