package packages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"

	"github.com/mwaldt/packwise/pkg/logging"
)

// LoadDefinition reads a pack manifest from disk. Manifests with a .toml
// extension use the TOML layout; everything else is parsed as JSON5, so
// hand-written manifests with comments and trailing commas load fine.
func LoadDefinition(path string) (*PackDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var definition PackDefinition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &definition); err != nil {
			return nil, fmt.Errorf("unmarshaling %s: %w", path, err)
		}
	default:
		if err := json5.Unmarshal(data, &definition); err != nil {
			return nil, fmt.Errorf("unmarshaling %s: %w", path, err)
		}
	}

	if definition.Name == "" {
		return nil, fmt.Errorf("manifest %s has an empty package name", path)
	}
	if definition.Version.Canonical == "" {
		return nil, fmt.Errorf("manifest %s is missing the mandatory 'version' field", path)
	}

	logging.Debugf("Loader: Loaded manifest for '%s' (%s) with %d requirements.",
		definition.Name, definition.Version.Canonical, len(definition.Require))
	return &definition, nil
}
