package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPaletteFile applies YAML overrides from path on top of base and
// validates the result. Roles missing from the file keep their base value.
func LoadPaletteFile(path string, base Palettes) (Palettes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read palette file: %w", err)
	}

	var over Palettes
	if err := yaml.Unmarshal(data, &over); err != nil {
		return base, fmt.Errorf("parse palette file %s: %w", path, err)
	}

	merged := Palettes{
		Dark:  base.Dark.Merge(over.Dark),
		Light: base.Light.Merge(over.Light),
	}
	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("palette file %s: %w", path, err)
	}
	return merged, nil
}
