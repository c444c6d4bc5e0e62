package packages_test

import (
	"reflect"
	"testing"

	"github.com/mwaldt/packwise/pkg/core/packages"
)

func TestParseNameVersionPairs(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected []packages.NameVersionPair
	}{
		{
			name:   "SeparatorForms",
			tokens: []string{"foo/bar=1.0", "baz/qux:2.0"},
			expected: []packages.NameVersionPair{
				{Name: "foo/bar", Version: "1.0"},
				{Name: "baz/qux", Version: "2.0"},
			},
		},
		{
			name:   "FollowingTokenAbsorbedAsVersion",
			tokens: []string{"foo/bar", "1.0", "baz/qux=2.0"},
			expected: []packages.NameVersionPair{
				{Name: "foo/bar", Version: "1.0"},
				{Name: "baz/qux", Version: "2.0"},
			},
		},
		{
			name:   "NameLikeTokenNotAbsorbed",
			tokens: []string{"foo/bar", "baz/qux"},
			expected: []packages.NameVersionPair{
				{Name: "foo/bar"},
				{Name: "baz/qux"},
			},
		},
		{
			name:   "BareNameAtEnd",
			tokens: []string{"foo/bar"},
			expected: []packages.NameVersionPair{
				{Name: "foo/bar"},
			},
		},
		{
			name:   "ConstraintExpressionAsVersion",
			tokens: []string{"foo/bar", ">=1.0,<2.0"},
			expected: []packages.NameVersionPair{
				{Name: "foo/bar", Version: ">=1.0,<2.0"},
			},
		},
		{
			name:     "Empty",
			tokens:   nil,
			expected: []packages.NameVersionPair{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pairs := packages.ParseNameVersionPairs(test.tokens)
			if !reflect.DeepEqual(pairs, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, pairs)
			}
		})
	}
}
