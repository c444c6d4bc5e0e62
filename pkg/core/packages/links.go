package packages

import (
	"fmt"
	"strings"

	"github.com/mwaldt/packwise/pkg/core/packages/version"
)

// SelfVersion is the constraint sentinel that ties a dependency to the
// declaring package's own version instead of an independent expression.
const SelfVersion = "self.version"

// Link records one dependency edge from a source package to a target
// package under a parsed constraint. Links are value data; they are not
// modified after construction.
type Link struct {
	Source           string
	Target           string // always lowercased
	Constraint       version.Constraint
	Description      string
	PrettyConstraint string
}

func (l *Link) String() string {
	return fmt.Sprintf("%s %s %s (%s)", l.Source, l.Description, l.Target, l.PrettyConstraint)
}

// ParseLinks resolves a map of target name to constraint expression into
// dependency links keyed by lowercased target name. Targets that collide
// after lowercasing overwrite earlier entries.
func ParseLinks(source, sourceVersion, description string, constraints ConstraintMap) (map[string]*Link, error) {
	links := make(map[string]*Link, len(constraints))
	for target, constraintText := range constraints {
		expression := constraintText
		if expression == SelfVersion {
			// The dependency tracks whatever version the source package
			// currently is.
			expression = sourceVersion
		}
		parsed, err := version.ParseConstraints(expression)
		if err != nil {
			return nil, fmt.Errorf("parsing constraint %q for %q: %w", constraintText, target, err)
		}
		key := strings.ToLower(target)
		links[key] = &Link{
			Source:           source,
			Target:           key,
			Constraint:       parsed,
			Description:      description,
			PrettyConstraint: constraintText,
		}
	}
	return links, nil
}
