package ast

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The String forms below exist so tests can assert tree shape compactly.
// Every compound expression prints fully parenthesized, which makes
// precedence and associativity visible in the output.

func (n *Identifier) String() string { return n.Name }

func (n *StringLiteral) String() string { return strconv.Quote(n.Value) }

func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *BigIntLiteral) String() string { return n.Value.String() + "n" }

func (n *ArrayLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		switch {
		case el.Value == nil:
			parts[i] = ""
		case el.Spread:
			parts[i] = "..." + el.Value.String()
		default:
			parts[i] = el.Value.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (n *ObjectLiteral) String() string {
	parts := make([]string, len(n.Properties))
	for i, prop := range n.Properties {
		if prop.Shorthand {
			parts[i] = prop.Key
		} else {
			parts[i] = propertyKey(prop.Key) + ": " + prop.Value.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// propertyKey renders an object key: bare when it reads as an identifier,
// quoted otherwise, so string and identifier keys stay distinguishable.
func propertyKey(key string) string {
	if isIdentifierKey(key) {
		return key
	}
	return strconv.Quote(key)
}

func isIdentifierKey(key string) bool {
	for i, c := range key {
		switch {
		case c == '$' || c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return key != ""
}

func (n *MemberExpression) String() string {
	var b strings.Builder
	b.WriteString(n.Object.String())
	if n.Optional {
		b.WriteString("?.")
	}
	if n.Computed {
		b.WriteString("[" + n.Property.String() + "]")
		return b.String()
	}
	if !n.Optional {
		b.WriteString(".")
	}
	if lit, ok := n.Property.(*StringLiteral); ok {
		b.WriteString(lit.Value)
	} else {
		b.WriteString(n.Property.String())
	}
	return b.String()
}

func (n *CallExpression) String() string {
	args := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		args[i] = arg.String()
	}
	var b strings.Builder
	if n.New {
		b.WriteString("new ")
	}
	b.WriteString(n.Callee.String())
	if n.Optional {
		b.WriteString("?.")
	}
	b.WriteString("(" + strings.Join(args, ", ") + ")")
	return b.String()
}

func (n *UnaryExpression) String() string {
	if n.Op.Keyword() {
		return "(" + n.Op.String() + " " + n.Operand.String() + ")"
	}
	return "(" + n.Op.String() + n.Operand.String() + ")"
}

func (n *UpdateExpression) String() string {
	op := "++"
	if n.Decrement {
		op = "--"
	}
	if n.Prefix {
		return "(" + op + n.Operand.String() + ")"
	}
	return "(" + n.Operand.String() + op + ")"
}

func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *Assignment) String() string {
	return "(" + n.Target.String() + " = " + n.Right.String() + ")"
}

func (n *UpdateAssignment) String() string {
	return "(" + n.Target.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *IdentifierTarget) String() string { return n.Name }

func (n *MemberTarget) String() string { return n.Expr.String() }

func (n *ArrayPattern) String() string {
	parts := make([]string, 0, len(n.Elements)+1)
	for _, el := range n.Elements {
		if el == nil {
			parts = append(parts, "")
		} else {
			parts = append(parts, el.String())
		}
	}
	if n.Rest != nil {
		parts = append(parts, "..."+n.Rest.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (n *ObjectPattern) String() string {
	keys := maps.Keys(n.Properties)
	slices.Sort(keys)
	parts := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		entry := n.Properties[key]
		part := propertyKey(key) + ": " + entry.Target.String()
		if entry.Default != nil {
			part += " = " + entry.Default.String()
		}
		parts = append(parts, part)
	}
	if n.Rest != nil {
		parts = append(parts, "..."+n.Rest.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (n *ExpressionStatement) String() string { return n.Expression.String() }

func (n *BlockStatement) String() string {
	parts := make([]string, len(n.Body))
	for i, s := range n.Body {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (n *LetStatement) String() string {
	return "let " + n.Target.String() + " = " + n.Init.String()
}

func (n *Program) String() string {
	parts := make([]string, len(n.Body))
	for i, s := range n.Body {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}
