package version

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reAlias      = regexp.MustCompile(`^([^,\s]+) +as +([^,\s]+)$`)
	reMainBranch = regexp.MustCompile(`(?i)^(?:dev-)?(?:master|trunk|default)$`)
	// Classical versioning: optional v, 1-3 leading digits, up to three more
	// numeric groups, optional trailing modifier.
	reClassical = regexp.MustCompile(`(?i)^v?(\d{1,3})(\.\d+)?(\.\d+)?(\.\d+)?` + modifierPattern + `$`)
	// Date-based versioning: a year, 1-6 two-digit groups with optional
	// separators, an optional separated short final group, optional trailing
	// modifier. The short group requires its separator so that odd all-digit
	// runs (the 9999999 sentinel among them) stay out of this form.
	reDateBased   = regexp.MustCompile(`(?i)^v?(\d{4}(?:[.:-]?\d{2}){1,6}(?:[.:-]\d{1,3})?)` + modifierPattern + `$`)
	reTrailingDev = regexp.MustCompile(`(?i)^(.*?)[.-]?dev$`)
	reNonDigit    = regexp.MustCompile(`\D`)
	// Branch names: optional v, up to four dot-separated groups of digits or
	// wildcard markers.
	reBranch = regexp.MustCompile(`(?i)^v?(\d+|[x*])(\.(?:\d+|[x*]))?(\.(?:\d+|[x*]))?(\.(?:\d+|[x*]))?$`)
)

// Normalize canonicalizes an arbitrary version or branch string into the
// N.N.N.N[-stabilityN][-dev] form or one of the branch sentinels.
func Normalize(version string) (string, error) {
	return NormalizeFull(version, "")
}

// NormalizeFull is Normalize with the surrounding expression the version
// was taken from. The context only improves error messages for alias
// expressions; it never changes the normalization result.
func NormalizeFull(version, fullVersion string) (string, error) {
	version = strings.TrimSpace(version)
	if fullVersion == "" {
		fullVersion = version
	}

	// Strip off aliasing; only the source half is normalized.
	if match := reAlias.FindStringSubmatch(version); match != nil {
		version = match[1]
	}

	// Every "main"-style branch collapses to the same high sentinel.
	if reMainBranch.MatchString(version) {
		return "9999999-dev", nil
	}

	// Arbitrary branch references pass through verbatim.
	if len(version) >= 4 && strings.EqualFold(version[:4], "dev-") {
		return "dev-" + version[4:], nil
	}

	var normalized string
	var modifier []string
	if match := reClassical.FindStringSubmatch(version); match != nil {
		normalized = match[1]
		for _, group := range match[2:5] {
			if group != "" {
				normalized += group
			} else {
				normalized += ".0"
			}
		}
		modifier = match[5:8]
	} else if match := reDateBased.FindStringSubmatch(version); match != nil {
		normalized = reNonDigit.ReplaceAllString(match[1], "-")
		modifier = match[2:5]
	}

	if modifier != nil {
		if modifier[0] != "" {
			if strings.EqualFold(modifier[0], "stable") {
				return normalized, nil
			}
			normalized += "-" + expandStability(modifier[0]) + modifier[1]
		}
		if modifier[2] != "" {
			normalized += "-dev"
		}
		return normalized, nil
	}

	// A trailing dev marker turns the remainder into a branch name. A
	// failure inside the branch path is discarded; the generic error below
	// is reported instead.
	if match := reTrailingDev.FindStringSubmatch(version); match != nil {
		if branch, err := NormalizeBranch(match[1]); err == nil {
			return branch, nil
		}
	}

	return "", &InvalidVersionError{Version: version, Hint: aliasHint(version, fullVersion)}
}

// NormalizeBranch canonicalizes a branch name. Main-style branches
// delegate to NormalizeFull, numeric branches become wildcard-filled
// dev versions, anything else is passed through as dev-<name>.
func NormalizeBranch(name string) (string, error) {
	name = strings.TrimSpace(name)

	switch name {
	case "master", "trunk", "default":
		return NormalizeFull(name, "")
	}

	if match := reBranch.FindStringSubmatch(name); match != nil {
		var version strings.Builder
		for i := 1; i < 5; i++ {
			if match[i] != "" {
				version.WriteString(strings.ReplaceAll(strings.ToLower(match[i]), "*", "x"))
			} else {
				version.WriteString(".x")
			}
		}
		return strings.ReplaceAll(version.String(), "x", "9999999") + "-dev", nil
	}

	return "dev-" + name, nil
}

// aliasHint inspects the full expression a failed version came from and
// explains the failure when the version was one half of an "X as Y" alias.
func aliasHint(version, fullVersion string) string {
	if version == fullVersion {
		return ""
	}
	quoted := regexp.QuoteMeta(version)
	if regexp.MustCompile(` +as +` + quoted + `$`).MatchString(fullVersion) {
		return fmt.Sprintf(" in %q, the alias must be an exact version", fullVersion)
	}
	if regexp.MustCompile(`^` + quoted + ` +as +`).MatchString(fullVersion) {
		return fmt.Sprintf(" in %q, the alias source must be an exact version, if it is a branch name you should prefix it with dev-", fullVersion)
	}
	return ""
}
