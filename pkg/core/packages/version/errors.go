package version

import "fmt"

// InvalidVersionError reports a string that matched no version or branch
// grammar. Hint carries an alias-context note when the surrounding
// expression shows the string was used as an alias source or target.
type InvalidVersionError struct {
	Version string
	Hint    string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version string %q%s", e.Version, e.Hint)
}

// InvalidConstraintError reports a constraint token that matched no atom
// grammar. Inner holds the nested version-normalization failure when the
// token reached the operator form.
type InvalidConstraintError struct {
	Constraint string
	Inner      error
}

func (e *InvalidConstraintError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("could not parse version constraint %q: %v", e.Constraint, e.Inner)
	}
	return fmt.Sprintf("could not parse version constraint %q", e.Constraint)
}

func (e *InvalidConstraintError) Unwrap() error { return e.Inner }
