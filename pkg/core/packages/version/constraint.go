package version

import (
	"fmt"
	"strings"
)

// ConstraintOp is a comparison operator applied to a canonical version.
type ConstraintOp string

const (
	OpEqual          ConstraintOp = "="
	OpLess           ConstraintOp = "<"
	OpLessOrEqual    ConstraintOp = "<="
	OpGreater        ConstraintOp = ">"
	OpGreaterOrEqual ConstraintOp = ">="
	OpNotEqual       ConstraintOp = "!="
	OpDiffers        ConstraintOp = "<>"
)

// Constraint is a node of a parsed constraint expression. The set of
// implementations is closed: AnyConstraint, VersionConstraint and
// MultiConstraint are the only variants the parser produces.
type Constraint interface {
	fmt.Stringer
	// Matches reports whether a canonical version satisfies the constraint.
	Matches(canonical string) bool
	// Pretty returns the original user-written expression when one was
	// attached, the structural form otherwise.
	Pretty() string
	// SetPretty attaches the original expression text. The expression
	// parser sets it once on the root of each parsed expression.
	SetPretty(pretty string)
}

// AnyConstraint matches every version. It is produced by pure wildcard
// expressions such as "*" or "x.x".
type AnyConstraint struct {
	pretty string
}

func (c *AnyConstraint) String() string            { return "[]" }
func (c *AnyConstraint) Matches(string) bool       { return true }
func (c *AnyConstraint) SetPretty(pretty string)   { c.pretty = pretty }
func (c *AnyConstraint) Pretty() string {
	if c.pretty != "" {
		return c.pretty
	}
	return c.String()
}

// VersionConstraint applies a single comparison operator to a canonical
// version bound.
type VersionConstraint struct {
	Operator ConstraintOp
	Version  string
	pretty   string
}

func (c *VersionConstraint) String() string          { return string(c.Operator) + " " + c.Version }
func (c *VersionConstraint) SetPretty(pretty string) { c.pretty = pretty }
func (c *VersionConstraint) Pretty() string {
	if c.pretty != "" {
		return c.pretty
	}
	return c.String()
}

// Matches compares a canonical version against the constraint's bound.
// Branch references ("dev-" forms) have no position in the version order
// and only support (in)equality.
func (c *VersionConstraint) Matches(canonical string) bool {
	if strings.HasPrefix(c.Version, "dev-") || strings.HasPrefix(canonical, "dev-") {
		switch c.Operator {
		case OpEqual:
			return canonical == c.Version
		case OpNotEqual, OpDiffers:
			return canonical != c.Version
		}
		return false
	}

	comparison := Compare(canonical, c.Version)
	switch c.Operator {
	case OpEqual:
		return comparison == 0
	case OpLess:
		return comparison < 0
	case OpLessOrEqual:
		return comparison <= 0
	case OpGreater:
		return comparison > 0
	case OpGreaterOrEqual:
		return comparison >= 0
	case OpNotEqual, OpDiffers:
		return comparison != 0
	}
	return false
}

// MultiConstraint combines child constraints conjunctively (AND) or
// disjunctively (OR). The parser only builds groups with at least two
// children; single results collapse to the child itself.
type MultiConstraint struct {
	Constraints []Constraint
	Conjunctive bool
	pretty      string
}

func (c *MultiConstraint) String() string {
	parts := make([]string, len(c.Constraints))
	for i, constraint := range c.Constraints {
		parts[i] = constraint.String()
	}
	separator := " "
	if !c.Conjunctive {
		separator = " || "
	}
	return "[" + strings.Join(parts, separator) + "]"
}

func (c *MultiConstraint) SetPretty(pretty string) { c.pretty = pretty }
func (c *MultiConstraint) Pretty() string {
	if c.pretty != "" {
		return c.pretty
	}
	return c.String()
}

// Matches evaluates the children with short-circuit AND/OR semantics.
func (c *MultiConstraint) Matches(canonical string) bool {
	if c.Conjunctive {
		for _, constraint := range c.Constraints {
			if !constraint.Matches(canonical) {
				return false
			}
		}
		return true
	}
	for _, constraint := range c.Constraints {
		if constraint.Matches(canonical) {
			return true
		}
	}
	return false
}
