// Package version implements the version grammar of packwise: it
// normalizes free-form version and branch strings into a canonical,
// comparable form and parses constraint expressions (operators, tilde
// ranges, wildcard ranges, OR/AND grouping, stability pins) into an
// evaluable constraint tree.
package version

import (
	"regexp"
	"strings"
)

// Stability describes the release maturity of a version, ordered from
// least to most stable.
type Stability int

const (
	StabilityDev Stability = iota
	StabilityAlpha
	StabilityBeta
	StabilityRC
	StabilityStable
)

// String returns the display form of a stability tag.
func (s Stability) String() string {
	switch s {
	case StabilityDev:
		return "dev"
	case StabilityAlpha:
		return "alpha"
	case StabilityBeta:
		return "beta"
	case StabilityRC:
		return "RC"
	case StabilityStable:
		return "stable"
	default:
		return "unknown"
	}
}

// modifierPattern is the trailing stability modifier grammar shared by the
// normalizer, the stability classifier and the tilde range parser.
// It contributes three capture groups: the stability word, its numeric
// suffix, and a trailing dev marker.
const modifierPattern = `[._-]?(?:(stable|beta|b|RC|alpha|a|patch|pl|p)(?:[.-]?(\d+))?)?([.-]?dev)?`

var (
	reFragment    = regexp.MustCompile(`#.+$`)
	reModifierEnd = regexp.MustCompile(`(?i)` + modifierPattern + `$`)
)

// ParseStability derives the stability tag of a version string. A hash
// fragment is ignored, dev branches are always dev, and otherwise the
// trailing modifier decides.
func ParseStability(version string) Stability {
	version = reFragment.ReplaceAllString(version, "")

	if strings.HasPrefix(version, "dev-") || strings.HasSuffix(version, "-dev") {
		return StabilityDev
	}

	match := reModifierEnd.FindStringSubmatch(strings.ToLower(version))
	if match != nil {
		if match[3] != "" {
			return StabilityDev
		}
		switch match[1] {
		case "beta", "b":
			return StabilityBeta
		case "alpha", "a":
			return StabilityAlpha
		case "rc":
			return StabilityRC
		}
	}
	return StabilityStable
}

// NormalizeStability lowercases a stability token. The token "rc" is the
// one exception and keeps its capitalized display form "RC".
func NormalizeStability(stability string) string {
	stability = strings.ToLower(stability)
	if stability == "rc" {
		return "RC"
	}
	return stability
}

// expandStability expands a shorthand modifier letter into the full
// stability name used in canonical output.
func expandStability(stability string) string {
	switch strings.ToLower(stability) {
	case "a":
		return "alpha"
	case "b":
		return "beta"
	case "p", "pl":
		return "patch"
	case "rc":
		return "RC"
	default:
		return strings.ToLower(stability)
	}
}
