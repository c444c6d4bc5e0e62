package version_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mwaldt/packwise/pkg/core/packages/version"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		err      bool
	}{
		// Test: classical versions are padded to four segments.
		{"1.0", "1.0.0.0", false},
		{"v2", "2.0.0.0", false},
		{"1.2.3.4", "1.2.3.4", false},
		{"  1.0.0  ", "1.0.0.0", false},
		{"V1.2", "1.2.0.0", false},

		// Test: stability modifiers expand to their full names.
		{"1.0.0-beta2", "1.0.0.0-beta2", false},
		{"1.0.0b1", "1.0.0.0-beta1", false},
		{"1.0.0-a5", "1.0.0.0-alpha5", false},
		{"1.0.0-rC15-dev", "1.0.0.0-RC15-dev", false},
		{"1.0.0RC1dev", "1.0.0.0-RC1-dev", false},
		{"1.0.0-pl3", "1.0.0.0-patch3", false},
		{"10.4.13-b", "10.4.13.0-beta", false},
		{"1.0.0-stable", "1.0.0.0", false},
		{"1.0-dev", "1.0.0.0-dev", false},

		// Test: main-style branches collapse to the high sentinel.
		{"master", "9999999-dev", false},
		{"trunk", "9999999-dev", false},
		{"DEFAULT", "9999999-dev", false},
		{"dev-master", "9999999-dev", false},

		// Test: arbitrary branches pass through verbatim.
		{"dev-feature/foo", "dev-feature/foo", false},
		{"DEV-Fix", "dev-Fix", false},

		// Test: date-based versions rewrite separators to dashes.
		{"2010.01.02", "2010-01-02", false},
		{"2010-01-02", "2010-01-02", false},
		{"20100102", "20100102", false},
		{"2010-01-02.5", "2010-01-02-5", false},
		{"v20100102", "20100102", false},
		{"2010.01.02-beta5", "2010-01-02-beta5", false},

		// Test: aliases keep only the source half.
		{"1.0.0 as 1.2", "1.0.0.0", false},
		{"dev-master as 1.0", "9999999-dev", false},

		// Test: a trailing dev marker routes through the branch normalizer.
		{"somebranch-dev", "dev-somebranch", false},
		{"2.1.x-dev", "2.1.9999999.9999999-dev", false},

		// Test: invalid input.
		{"", "", true},
		{"foo", "", true},
		{"1.0.0+meta", "", true},
		{"1000", "", true},
	}

	for _, test := range tests {
		normalized, err := version.Normalize(test.input)
		if test.err {
			if err == nil {
				t.Errorf("Expected error for input %q but got %q", test.input, normalized)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
			continue
		}
		if normalized != test.expected {
			t.Errorf("For input %q, expected %q but got %q", test.input, test.expected, normalized)
		}
	}
}

func TestNormalizeIsNotIdempotent(t *testing.T) {
	// The sentinel re-expands through the branch path; callers must not
	// assume normalize(normalize(x)) == normalize(x).
	normalized, err := version.Normalize("9999999-dev")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if normalized == "9999999-dev" {
		t.Fatal("Expected the sentinel to re-expand, but it was returned unchanged")
	}
	if expected := "9999999.9999999.9999999.9999999-dev"; normalized != expected {
		t.Errorf("Expected %q, got %q", expected, normalized)
	}
}

func TestNormalizeAliasErrorHints(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		full        string
		hintPart    string
	}{
		{"AliasTarget", "invalid", "1.0 as invalid", "the alias must be an exact version"},
		{"AliasSource", "invalid", "invalid as 1.0", "the alias source must be an exact version"},
		{"NoContext", "invalid", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := version.NormalizeFull(test.input, test.full)
			if err == nil {
				t.Fatal("Expected an error but got none")
			}
			var invalidErr *version.InvalidVersionError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("Expected InvalidVersionError, got %T", err)
			}
			if test.hintPart == "" {
				if invalidErr.Hint != "" {
					t.Errorf("Expected no hint, got %q", invalidErr.Hint)
				}
				return
			}
			if !strings.Contains(err.Error(), test.hintPart) {
				t.Errorf("Expected error %q to contain %q", err.Error(), test.hintPart)
			}
		})
	}
}

func TestNormalizeBranch(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"master", "9999999-dev"},
		{"trunk", "9999999-dev"},
		{"2.1.x", "2.1.9999999.9999999-dev"},
		{"v1.x", "1.9999999.9999999.9999999-dev"},
		{"3.0", "3.0.9999999.9999999-dev"},
		{"2.1.X", "2.1.9999999.9999999-dev"},
		{"2.*", "2.9999999.9999999.9999999-dev"},
		{"x", "9999999.9999999.9999999.9999999-dev"},
		{"1.2.3.4", "1.2.3.4-dev"},
		{"feature-a", "dev-feature-a"},
		{"feature/foo", "dev-feature/foo"},
	}

	for _, test := range tests {
		normalized, err := version.NormalizeBranch(test.input)
		if err != nil {
			t.Errorf("Unexpected error for branch %q: %v", test.input, err)
			continue
		}
		if normalized != test.expected {
			t.Errorf("For branch %q, expected %q but got %q", test.input, test.expected, normalized)
		}
	}
}
