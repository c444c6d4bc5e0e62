package version_test

import (
	"testing"

	"github.com/mwaldt/packwise/pkg/core/packages/version"
)

func TestParseStability(t *testing.T) {
	tests := []struct {
		input    string
		expected version.Stability
	}{
		{"1.0.0", version.StabilityStable},
		{"1.2.3.4", version.StabilityStable},
		{"1.0.0-patch3", version.StabilityStable},
		{"1.0.0-pl2", version.StabilityStable},
		{"3.0-RC2", version.StabilityRC},
		{"1.0.0-rc1", version.StabilityRC},
		{"1.0.0-beta2", version.StabilityBeta},
		{"2.0b1", version.StabilityBeta},
		{"1.0.0-alpha5", version.StabilityAlpha},
		{"1.2.0a3", version.StabilityAlpha},
		{"dev-master", version.StabilityDev},
		{"dev-feature/foo", version.StabilityDev},
		{"1.0.x-dev", version.StabilityDev},
		{"9999999-dev", version.StabilityDev},
		{"1.0-beta2-dev", version.StabilityDev},

		// Test: dev references do not affect the classification.
		{"dev-master#abc123", version.StabilityDev},
		{"1.0.0#abc123", version.StabilityStable},
	}

	for _, test := range tests {
		if stability := version.ParseStability(test.input); stability != test.expected {
			t.Errorf("For input %q, expected %v but got %v", test.input, test.expected, stability)
		}
	}
}

func TestStabilityString(t *testing.T) {
	tests := []struct {
		stability version.Stability
		expected  string
	}{
		{version.StabilityDev, "dev"},
		{version.StabilityAlpha, "alpha"},
		{version.StabilityBeta, "beta"},
		{version.StabilityRC, "RC"},
		{version.StabilityStable, "stable"},
	}

	for _, test := range tests {
		if s := test.stability.String(); s != test.expected {
			t.Errorf("Expected %q, got %q", test.expected, s)
		}
	}
}

func TestStabilityOrdering(t *testing.T) {
	// The enum values double as an ordering from least to most stable.
	order := []version.Stability{
		version.StabilityDev,
		version.StabilityAlpha,
		version.StabilityBeta,
		version.StabilityRC,
		version.StabilityStable,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("Expected %v < %v", order[i-1], order[i])
		}
	}
}

func TestNormalizeStability(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RC", "RC"},
		{"rc", "RC"},
		{"Rc", "RC"},
		{"STABLE", "stable"},
		{"Beta", "beta"},
		{"dev", "dev"},
	}

	for _, test := range tests {
		if normalized := version.NormalizeStability(test.input); normalized != test.expected {
			t.Errorf("For input %q, expected %q but got %q", test.input, test.expected, normalized)
		}
	}
}
