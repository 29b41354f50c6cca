package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/parser"
	"github.com/quartzjs/quartz/source"
)

// parse runs the full pipeline and verifies parent back-references on
// every tree it hands out.
func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.ParseString(src, source.Eval())
	require.NoError(t, err, "parse(%q)", src)
	ast.CheckParents(program)
	return program
}

// exprString parses a single-statement program and renders its shape.
func exprString(t *testing.T, src string) string {
	t.Helper()
	program := parse(t, src)
	require.Len(t, program.Body, 1, "parse(%q)", src)
	return program.Body[0].String()
}

func parseError(t *testing.T, src string) *parser.Error {
	t.Helper()
	_, err := parser.ParseString(src, source.Eval())
	require.Error(t, err, "parse(%q) should fail", src)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr, "parse(%q)", src)
	return perr
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"2 - 3 - 4", "((2 - 3) - 4)"},
		{"2 / 3 % 4", "((2 / 3) % 4)"},
		{"a || b && c", "(a || (b && c))"},
		{"a && b ?? c", "((a && b) ?? c)"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a < b == c < d", "((a < b) == (c < d))"},
		{"a << b < c", "((a << b) < c)"},
		{"a === b !== c", "((a === b) !== c)"},
		{"a >> b >>> c", "((a >> b) >>> c)"},
		{"a in b", "(a in b)"},
		{"a instanceof b", "(a instanceof b)"},
		{"a in b == c", "((a in b) == c)"},
		{"typeof a + b", "((typeof a) + b)"},
		{"-a * b", "((-a) * b)"},
		{"!a || b", "((!a) || b)"},
		{"~a & b", "((~a) & b)"},
		{"void 0", "(void 0)"},
		{"delete a.b", "(delete a.b)"},
		{"a, b, c", "((a , b) , c)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}
}

func TestRightAssociativity(t *testing.T) {
	require.Equal(t, "(2 ** (3 ** 2))", exprString(t, "2 ** 3 ** 2"))
	require.Equal(t, "(a = (b = c))", exprString(t, "a = b = c"))
	require.Equal(t, "((-a) ** b)", exprString(t, "-a ** b"))
}

func TestUpdateExpressions(t *testing.T) {
	require.Equal(t, "(a++)", exprString(t, "a++"))
	require.Equal(t, "(a--)", exprString(t, "a--"))
	require.Equal(t, "(++a)", exprString(t, "++a"))
	require.Equal(t, "(++a.b)", exprString(t, "++a.b"))
	require.Equal(t, "(a[0]--)", exprString(t, "a[0]--"))

	require.Equal(t, parser.InvalidUpdateOperand, parseError(t, "5++").Kind)
	require.Equal(t, parser.InvalidUpdateOperand, parseError(t, "++5").Kind)
	require.Equal(t, parser.InvalidUpdateOperand, parseError(t, "++f()").Kind)
}

func TestMemberAndCallChains(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a.b.c", "a.b.c"},
		{"a[b]", "a[b]"},
		{"a[b + 1].c", "a[(b + 1)].c"},
		{"a[b, c]", "a[(b , c)]"},
		{"f()", "f()"},
		{"f(1, 2)", "f(1, 2)"},
		{"f(a, (b, c))", "f(a, (b , c))"},
		{"f(a)(b)", "f(a)(b)"},
		{"f(a).b[c]", "f(a).b[c]"},
		{"a?.b", "a?.b"},
		{"a?.[b]", "a?.[b]"},
		{"a?.(b)", "a?.(b)"},
		{"a?.b.c?.[d]", "a?.b.c?.[d]"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}
}

func TestNewExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"new a", "new a()"},
		{"new a()", "new a()"},
		{"new a.b(c)", "new a.b(c)"},
		{"new a().b", "new a().b"},
		{"new new a()()", "new new a()()"},
		{"new new a", "new new a()()"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}
}

func TestArrayLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"[]", "[]"},
		{"[1, 2]", "[1, 2]"},
		{"[,10]", "[, 10]"},
		{"[10,,,20]", "[10, , , 20]"},
		{"[...a, b]", "[...a, b]"},
		{"[a, ...b, ...c]", "[a, ...b, ...c]"},
		{"[[1], [2]]", "[[1], [2]]"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}
}

func TestObjectLiterals(t *testing.T) {
	// Parenthesized so the opening brace is not taken as a block.
	tests := []struct {
		src  string
		want string
	}{
		{"({})", "{}"},
		{"({a: 1})", "{a: 1}"},
		{"({a: 1, b})", "{a: 1, b}"},
		{`({"two words": 1})`, `{"two words": 1}`},
		{"({10: a})", `{"10": a}`},
		{`({"plain": 1})`, "{plain: 1}"},
		{"({a: {b: c}})", "{a: {b: c}}"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}

	err := parseError(t, "({a 1})")
	require.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a = 1", "(a = 1)"},
		{"a.b = c", "(a.b = c)"},
		{"a[0].b = c", "(a[0].b = c)"},
		{"a += 1", "(a += 1)"},
		{"a.b **= 2", "(a.b **= 2)"},
		{"a >>>= b", "(a >>>= b)"},
		{"a ??= b", "(a ??= b)"},
		{"a = b, c = d", "((a = b) , (c = d))"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}

	require.Equal(t, parser.InvalidAssignmentTarget, parseError(t, "f() = b").Kind)
	require.Equal(t, parser.InvalidAssignmentTarget, parseError(t, "a + b = c").Kind)
}

func TestDestructuringAssignment(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"[a, b] = c", "([a, b] = c)"},
		{"[a, , b] = c", "([a, , b] = c)"},
		{"[a, ...r] = c", "([a, ...r] = c)"},
		{"[[a], b.c] = d", "([[a], b.c] = d)"},
		{"({a} = b)", "({a: a} = b)"},
		{"({a: x, b: [y]} = c)", "({a: x, b: [y]} = c)"},
		{`({"a b": x} = c)`, `({"a b": x} = c)`},
		{"y = {a = 1} = x", "(y = ({a: a = 1} = x))"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}

	require.Equal(t, parser.RestElementNotLast, parseError(t, "[...r, b] = c").Kind)
	require.Equal(t, parser.InvalidDestructuringOperator, parseError(t, "[a] += b").Kind)
	require.Equal(t, parser.InvalidDestructuringOperator, parseError(t, "({a} *= b)").Kind)
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"let a = 1", "let a = 1"},
		{"let a = b = c", "let a = (b = c)"},
		{"let [a, , b] = c", "let [a, , b] = c"},
		{"let [a, ...r] = c", "let [a, ...r] = c"},
		{"let {a, b: [c], ...r} = d", "let {a: a, b: [c], ...r} = d"},
		{"let {a = 1} = b", "let {a: a = 1} = b"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.src), "source %q", tt.src)
	}

	// Without a binding target, `let` is an ordinary variable name.
	require.Equal(t, "(let + 1)", exprString(t, "let + 1"))
	require.Equal(t, "(let = 5)", exprString(t, "let = 5"))

	err := parseError(t, "let a + 1")
	require.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestBlocks(t *testing.T) {
	require.Equal(t, "{ a; b }", exprString(t, "{ a; b }"))
	require.Equal(t, "{ let a = 1; { b } }", exprString(t, "{ let a = 1; { b } }"))
}

func TestSemicolonInsertion(t *testing.T) {
	program := parse(t, "let a = 1\nlet b = 2")
	require.Equal(t, "let a = 1; let b = 2", program.String())

	program = parse(t, "a = 1; b = 2;")
	require.Equal(t, "(a = 1); (b = 2)", program.String())

	program = parse(t, "a\nb")
	require.Len(t, program.Body, 2)

	// A block comment containing a line break separates statements too.
	program = parse(t, "a = 1 /* x\ny */ b = 2")
	require.Len(t, program.Body, 2)

	err := parseError(t, "let a = 1 let b = 2")
	require.Equal(t, parser.UnexpectedToken, err.Kind)
	err = parseError(t, "a b")
	require.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestUnsupportedStatements(t *testing.T) {
	for _, src := range []string{"if (a) b", "return 1", "while (a) b", "function f() {}"} {
		err := parseError(t, src)
		require.Equal(t, parser.SyntaxGeneric, err.Kind, "source %q", src)
	}

	// Reserved words are rejected only in statement position.
	require.Equal(t, "f(a)", exprString(t, "f(a)"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind parser.ErrorKind
	}{
		{"a + ;", parser.ExpectedExpression},
		{"a +", parser.UnexpectedEOF},
		{"a.", parser.UnexpectedEOF},
		{"a?.", parser.UnexpectedEOF},
		{"new", parser.UnexpectedEOF},
		{"a.5", parser.UnexpectedToken},
		{"f(a b)", parser.UnexpectedToken},
		{"[a b]", parser.UnexpectedToken},
	}
	for _, tt := range tests {
		err := parseError(t, tt.src)
		require.Equal(t, tt.kind, err.Kind, "source %q: %s", tt.src, err.Message)
	}
}

func TestSyntaxErrorDiagnostic(t *testing.T) {
	_, err := parser.ParseString("a +\n+", source.Eval())
	require.Error(t, err)
	var syn *parser.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Contains(t, syn.Diagnostic(), "eval:")
	require.Contains(t, syn.Diagnostic(), "Syntax Error: ")

	// Lexical failures surface through the same type.
	_, err = parser.ParseString(`"unclosed`, source.Eval())
	require.Error(t, err)
	require.ErrorAs(t, err, &syn)
	require.Equal(t, "eval:1:1\nSyntax Error: unterminated string literal", syn.Diagnostic())
}

func TestBigIntAndStringAtoms(t *testing.T) {
	require.Equal(t, "(2n + 3n)", exprString(t, "2n + 3n"))
	require.Equal(t, `("a" + "b")`, exprString(t, `"a" + "b"`))
}

func TestParentsVerifiedOnLargePrograms(t *testing.T) {
	// parse() runs CheckParents; this exercises every node kind at once.
	parse(t, `
		let {a = f(1n), b: [c, , ...r]} = source
		a.b[c + 1] = new Thing(c, [...r, "x"]) ?? (c++, typeof b)
	`)
}
