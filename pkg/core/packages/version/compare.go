package version

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

// reCanonical matches the canonical output shape of the normalizer:
// numeric segments with . or - separators, an optional expanded stability
// suffix with number, and an optional trailing dev marker.
var reCanonical = regexp.MustCompile(`(?i)^(\d+(?:[.-]\d+)*)(?:-(stable|beta|alpha|RC|patch)(\d*))?(-dev)?$`)

// canonicalOrder holds the pieces of a canonical version that the total
// order is defined over.
type canonicalOrder struct {
	segments  []int
	stability int // dev < alpha < beta < RC < stable < patch
	number    int // numeric stability suffix; -1 when absent
	dev       bool
}

// stabilityOrderRank maps a canonical stability word to its position in
// the version order. Plain releases rank as stable; patch releases of a
// version rank above it.
func stabilityOrderRank(word string, dev bool) int {
	switch strings.ToLower(word) {
	case "alpha":
		return 1
	case "beta":
		return 2
	case "rc":
		return 3
	case "patch":
		return 5
	case "":
		if dev {
			return 0
		}
		return 4
	default:
		return 4
	}
}

func parseCanonical(canonical string) (canonicalOrder, bool) {
	match := reCanonical.FindStringSubmatch(canonical)
	if match == nil {
		return canonicalOrder{}, false
	}

	parts := strings.FieldsFunc(match[1], func(r rune) bool { return r == '.' || r == '-' })
	segments := make([]int, len(parts))
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return canonicalOrder{}, false
		}
		segments[i] = value
	}

	dev := match[4] != ""
	number := -1
	if match[3] != "" {
		number, _ = strconv.Atoi(match[3])
	}
	return canonicalOrder{
		segments:  segments,
		stability: stabilityOrderRank(match[2], dev),
		number:    number,
		dev:       dev,
	}, true
}

// Compare totally orders two canonical versions: numeric segments first,
// then stability rank, then the numeric stability suffix, then the dev
// flag as lower than any release. Strings outside the canonical shape
// (branch references among them) fall back to plain string comparison.
func Compare(a, b string) int {
	orderA, okA := parseCanonical(a)
	orderB, okB := parseCanonical(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}

	segmentCount := max(len(orderA.segments), len(orderB.segments))
	for i := 0; i < segmentCount; i++ {
		if comparison := cmp.Compare(segmentAt(orderA.segments, i), segmentAt(orderB.segments, i)); comparison != 0 {
			return comparison
		}
	}
	if comparison := cmp.Compare(orderA.stability, orderB.stability); comparison != 0 {
		return comparison
	}
	if comparison := cmp.Compare(orderA.number, orderB.number); comparison != 0 {
		return comparison
	}
	if orderA.dev != orderB.dev {
		if orderA.dev {
			return -1
		}
		return 1
	}
	return 0
}

// segmentAt reads a segment with implicit zero padding for missing
// positions.
func segmentAt(segments []int, position int) int {
	if position >= len(segments) {
		return 0
	}
	return segments[position]
}
