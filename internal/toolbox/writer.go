package toolbox

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultOutputPath is where the aggregate manifest is written.
const DefaultOutputPath = "toolbox.json"

// Write serializes the manifest as indented JSON to path. The manifest is
// written exactly once, at the end of a successful scan; a failure here is
// fatal to the run.
func Write(m *Manifest, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling toolbox manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing toolbox manifest %s: %w", path, err)
	}
	return nil
}
