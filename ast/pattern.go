package ast

import "github.com/quartzjs/quartz/source"

type (
	// Pattern is an assignment target: the left side of `let` bindings and
	// assignments.
	Pattern interface {
		Node
		_pattern()
	}

	// SimpleTarget is the narrow target shape (variable or member lookup
	// only) required by compound assignment and update expressions.
	SimpleTarget interface {
		Pattern
		_simpleTarget()
	}

	// IdentifierTarget binds a plain variable.
	IdentifierTarget struct {
		Start  source.Location
		Name   string
		Parent PatternParent
	}

	// MemberTarget assigns through a property lookup. The wrapped
	// expression's parent back-reference points at this target.
	MemberTarget struct {
		Expr   *MemberExpression
		Parent PatternParent
	}

	// ArrayPattern destructures by position. A nil element is a skipped
	// slot; Rest, when present, is syntactically last.
	ArrayPattern struct {
		LeftBracket source.Location
		Elements    []Pattern
		Rest        Pattern
		Parent      PatternParent
	}

	// ObjectPatternEntry is one `key: target` or `key = default` entry.
	ObjectPatternEntry struct {
		KeyLoc  source.Location
		Target  Pattern
		Default Expr // nil when the entry has no default
	}

	// ObjectPattern destructures by key. Entries are an unordered map from
	// property name to target; Rest, when present, is syntactically last.
	ObjectPattern struct {
		LeftBrace  source.Location
		Properties map[string]*ObjectPatternEntry
		Rest       Pattern
		Parent     PatternParent
	}
)

func (*IdentifierTarget) _pattern() {}
func (*MemberTarget) _pattern()     {}
func (*ArrayPattern) _pattern()     {}
func (*ObjectPattern) _pattern()    {}

func (*IdentifierTarget) _simpleTarget() {}
func (*MemberTarget) _simpleTarget()     {}

func (n *IdentifierTarget) Loc() source.Location { return n.Start }
func (n *MemberTarget) Loc() source.Location     { return n.Expr.Loc() }
func (n *ArrayPattern) Loc() source.Location     { return n.LeftBracket }
func (n *ObjectPattern) Loc() source.Location    { return n.LeftBrace }
