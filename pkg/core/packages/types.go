// Package packages maps package manifests onto the version grammar: it
// loads pack definitions, builds dependency links from their constraint
// maps, and tokenizes CLI-style name/version arguments.
package packages

import (
	"encoding/json"
	"fmt"

	"github.com/mwaldt/packwise/pkg/core/packages/version"
)

// VersionField wraps a raw version string together with its canonical
// form, resolved at unmarshal time so an invalid manifest fails on load.
type VersionField struct {
	Raw       string
	Canonical string
}

func (vf VersionField) String() string {
	if vf.Canonical == "" {
		return "<invalid>"
	}
	return vf.Canonical
}

func (vf *VersionField) set(raw string) error {
	canonical, err := version.Normalize(raw)
	if err != nil {
		return fmt.Errorf("normalizing version %q: %w", raw, err)
	}
	vf.Raw = raw
	vf.Canonical = canonical
	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (vf *VersionField) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("version field is not a string: %w", err)
	}
	return vf.set(raw)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML manifests.
func (vf *VersionField) UnmarshalText(text []byte) error {
	return vf.set(string(text))
}

// ConstraintMap maps a target package name to the raw constraint
// expression a manifest declares for it. Expressions stay unparsed here;
// ParseLinks resolves them, which lets the self.version sentinel see the
// declaring package's version.
type ConstraintMap map[string]string

// PackDefinition mirrors a pack.json / pack.toml manifest.
type PackDefinition struct {
	Name        string        `json:"name" toml:"name"`
	Version     VersionField  `json:"version" toml:"version"`
	Description string        `json:"description" toml:"description"`
	Require     ConstraintMap `json:"require" toml:"require"`
	Conflict    ConstraintMap `json:"conflict" toml:"conflict"`
}

// RequireLinks builds the dependency links for the manifest's require map.
func (d *PackDefinition) RequireLinks() (map[string]*Link, error) {
	return ParseLinks(d.Name, d.Version.Raw, "requires", d.Require)
}

// ConflictLinks builds the dependency links for the manifest's conflict map.
func (d *PackDefinition) ConflictLinks() (map[string]*Link, error) {
	return ParseLinks(d.Name, d.Version.Raw, "conflicts", d.Conflict)
}
