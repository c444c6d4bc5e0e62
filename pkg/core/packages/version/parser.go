package version

import (
	"regexp"
	"strings"
)

var (
	// Stability pins. The whole-expression form tolerates an empty core
	// ("@dev" alone), the per-atom form does not.
	rePinnedExpression = regexp.MustCompile(`(?i)^([^,\s]*?)@(stable|RC|beta|alpha|dev)$`)
	rePinnedAtom       = regexp.MustCompile(`(?i)^([^,\s]+?)@(stable|RC|beta|alpha|dev)$`)
	// Dev references may carry a #fragment that pins a commit; the fragment
	// plays no role in constraint matching.
	reDevReference = regexp.MustCompile(`(?i)^(dev-[^,\s@]+?|[^,\s@]+?\.x-dev)#.+$`)

	reOrSplit  = regexp.MustCompile(`\s*\|\s*`)
	reAndSplit = regexp.MustCompile(`\s*,\s*`)

	reAnyAtom       = regexp.MustCompile(`(?i)^[x*](\.[x*])*$`)
	reTildeRange    = regexp.MustCompile(`(?i)^~(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?` + modifierPattern + `$`)
	reWildcardRange = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?\.[x*]$`)
	reOperatorAtom  = regexp.MustCompile(`^(<>|!=|>=?|<=?|==?)?\s*(.*)$`)
)

// ParseConstraints parses a constraint expression into a constraint tree.
// The expression is split on "|" into OR groups and on "," into AND
// tokens; each token contributes one or two atoms. The original text is
// attached to the returned root as its pretty form.
func ParseConstraints(expression string) (Constraint, error) {
	pretty := expression
	text := strings.TrimSpace(expression)

	// A whole-expression stability pin only selects the bare expression;
	// unlike the per-atom pin it does not constrain matching any further.
	if match := rePinnedExpression.FindStringSubmatch(text); match != nil {
		if match[1] == "" {
			text = "*"
		} else {
			text = match[1]
		}
	}

	if match := reDevReference.FindStringSubmatch(text); match != nil {
		text = match[1]
	}

	orParts := reOrSplit.Split(text, -1)
	orGroups := make([]Constraint, 0, len(orParts))
	for _, orPart := range orParts {
		var atoms []Constraint
		for _, token := range reAndSplit.Split(orPart, -1) {
			parsed, err := parseConstraint(token)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, parsed...)
		}
		if len(atoms) == 1 {
			orGroups = append(orGroups, atoms[0])
		} else {
			orGroups = append(orGroups, &MultiConstraint{Constraints: atoms, Conjunctive: true})
		}
	}

	var root Constraint
	if len(orGroups) == 1 {
		root = orGroups[0]
	} else {
		root = &MultiConstraint{Constraints: orGroups, Conjunctive: false}
	}
	root.SetPretty(pretty)
	return root, nil
}

// parseConstraint parses one constraint token into its atoms. Range forms
// (tilde, trailing wildcard) expand into a lower and an upper bound, so
// the result holds one or two constraints.
func parseConstraint(token string) ([]Constraint, error) {
	var stabilityModifier string
	if match := rePinnedAtom.FindStringSubmatch(token); match != nil {
		token = match[1]
		if !strings.EqualFold(match[2], "stable") {
			stabilityModifier = match[2]
		}
	}

	if reAnyAtom.MatchString(token) {
		return []Constraint{&AnyConstraint{}}, nil
	}

	if match := reTildeRange.FindStringSubmatch(token); match != nil {
		position := 1
		for i := 4; i > 1; i-- {
			if match[i] != "" {
				position = i
				break
			}
		}

		// Without an explicit modifier a tilde range starts at the dev
		// releases of its base version.
		stabilitySuffix := ""
		if match[5] != "" {
			stabilitySuffix = "-" + expandStability(match[5]) + match[6]
		}
		if match[7] != "" {
			stabilitySuffix += "-dev"
		}
		if stabilitySuffix == "" {
			stabilitySuffix = "-dev"
		}

		lowVersion, ok := manipulateSegments(match, position, 0, "0")
		if !ok {
			return nil, &InvalidConstraintError{Constraint: token}
		}
		lowerBound := &VersionConstraint{Operator: OpGreaterOrEqual, Version: lowVersion + stabilitySuffix}

		// The upper bound increments the segment before the last explicit
		// one, so ~1.2 stays below 2.0 and ~1.2.3 below 1.3.
		highPosition := max(1, position-1)
		highVersion, ok := manipulateSegments(match, highPosition, 1, "0")
		if !ok {
			return nil, &InvalidConstraintError{Constraint: token}
		}
		upperBound := &VersionConstraint{Operator: OpLess, Version: highVersion + "-dev"}

		return []Constraint{lowerBound, upperBound}, nil
	}

	if match := reWildcardRange.FindStringSubmatch(token); match != nil {
		position := 1
		for i := 3; i > 1; i-- {
			if match[i] != "" {
				position = i
				break
			}
		}

		lowVersion, ok := manipulateSegments(match, position, 0, "0")
		if !ok {
			return nil, &InvalidConstraintError{Constraint: token}
		}
		highVersion, ok := manipulateSegments(match, position, 1, "0")
		if !ok {
			return nil, &InvalidConstraintError{Constraint: token}
		}
		upperBound := &VersionConstraint{Operator: OpLess, Version: highVersion + "-dev"}

		// "0.x" style ranges bound nothing from below; the lower bound is
		// omitted entirely.
		if lowVersion+"-dev" == "0.0.0.0-dev" {
			return []Constraint{upperBound}, nil
		}
		return []Constraint{
			&VersionConstraint{Operator: OpGreaterOrEqual, Version: lowVersion + "-dev"},
			upperBound,
		}, nil
	}

	match := reOperatorAtom.FindStringSubmatch(token)
	normalized, err := Normalize(match[2])
	if err != nil {
		return nil, &InvalidConstraintError{Constraint: token, Inner: err}
	}

	if stabilityModifier != "" && ParseStability(normalized) == StabilityStable {
		normalized += "-" + stabilityModifier
	} else if match[1] == "<" && !strings.HasSuffix(strings.ToLower(match[2]), "-stable") {
		// A plain "<" bound would admit the dev releases of its own target
		// under a naive comparison; pushing the bound down to the target's
		// dev version keeps them excluded.
		normalized += "-dev"
	}

	operator := OpEqual
	if match[1] != "" && match[1] != "==" {
		operator = ConstraintOp(match[1])
	}
	return []Constraint{&VersionConstraint{Operator: operator, Version: normalized}}, nil
}
