package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Declaration filenames recognized by the repository scanner. TOML is the
// canonical format; YAML is accepted for components ported from other repos.
const (
	FileNameTOML = "manifest.toml"
	FileNameYAML = "manifest.yaml"
)

// IsDeclarationFile returns true if the filename is a recognized declaration file.
func IsDeclarationFile(name string) bool {
	return name == FileNameTOML || name == FileNameYAML
}

// Parse reads a declaration file and returns only the base fields.
// Useful for quick type detection without full parsing.
func Parse(path string) (*BaseDeclaration, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var base BaseDeclaration
	if err := decode(data, path, &base); err != nil {
		return nil, err
	}

	return &base, nil
}

// ParseFile reads a declaration file, detects its type, and returns the fully
// typed declaration. The returned value is either *ImageDeclaration or
// *PipelineDeclaration.
func ParseFile(path string) (interface{}, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	typeName, err := detectType(data, path)
	if err != nil {
		return nil, err
	}

	switch typeName {
	case TypeImage:
		return parseTyped[ImageDeclaration](data, path)
	case TypePipeline:
		return parseTyped[PipelineDeclaration](data, path)
	default:
		return nil, fmt.Errorf("unknown declaration type %q in %s", typeName, path)
	}
}

// parseTyped decodes declaration data into a typed declaration struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var d T
	if err := decode(data, path, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// detectType decodes the declaration into a generic map and extracts the
// mandatory type discriminator.
func detectType(data []byte, path string) (string, error) {
	var raw map[string]interface{}
	if err := decode(data, path, &raw); err != nil {
		return "", err
	}

	typeVal, ok := raw["type"]
	if !ok {
		return "", fmt.Errorf("declaration %s missing required 'type' field", path)
	}

	typeName, ok := typeVal.(string)
	if !ok {
		return "", fmt.Errorf("declaration %s 'type' field is not a string", path)
	}

	return typeName, nil
}

// decode unmarshals declaration data by file extension: .toml via go-toml,
// everything else via YAML (a superset of the JSON some components use).
func decode(data []byte, path string, v interface{}) error {
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decoding declaration %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding declaration %s: %w", path, err)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
