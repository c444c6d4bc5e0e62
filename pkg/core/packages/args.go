package packages

import (
	"regexp"
	"strings"
)

// NameVersionPair is one package name with an optional version string.
type NameVersionPair struct {
	Name    string
	Version string
}

// rePairSeparator collapses a single "name=version" or "name:version"
// separator into the space-separated form.
var rePairSeparator = regexp.MustCompile(`^([^=: ]+)[=: ](.*)$`)

// ParseNameVersionPairs interprets a CLI-style token list as name/version
// pairs. "name=1.0", "name:1.0" and "name 1.0" are equivalent; a bare
// name token also absorbs the following token as its version unless that
// token looks like another package name (contains a "/").
func ParseNameVersionPairs(tokens []string) []NameVersionPair {
	pairs := make([]NameVersionPair, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		pair := rePairSeparator.ReplaceAllString(strings.TrimSpace(tokens[i]), "$1 $2")
		if !strings.Contains(pair, " ") && i+1 < len(tokens) && !strings.Contains(tokens[i+1], "/") {
			pair += " " + tokens[i+1]
			i++
		}
		if name, pairVersion, found := strings.Cut(pair, " "); found {
			pairs = append(pairs, NameVersionPair{Name: name, Version: pairVersion})
		} else {
			pairs = append(pairs, NameVersionPair{Name: pair})
		}
	}
	return pairs
}
