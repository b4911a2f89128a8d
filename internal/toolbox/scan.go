package toolbox

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gabaker/thorium/internal/manifest"
)

// Discover walks the repository tree rooted at root and returns the
// declaration file paths, at most one per directory. filepath.WalkDir visits
// entries in lexical order, so repeated runs against an unchanged tree yield
// the same sequence and last-write-wins merges stay deterministic. The root
// directory itself is skipped: a declaration there would shadow the toolbox
// config. Symlink loops are not detected; callers must ensure none exist.
func Discover(root string) ([]string, error) {
	cleanRoot := filepath.Clean(root)

	var paths []string
	seen := make(map[string]bool)
	err := filepath.WalkDir(cleanRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !manifest.IsDeclarationFile(d.Name()) {
			return nil
		}

		dir := filepath.Dir(path)
		if dir == cleanRoot {
			return nil
		}
		// manifest.toml sorts before manifest.yaml, so TOML wins when a
		// directory carries both.
		if seen[dir] {
			return nil
		}
		seen[dir] = true

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return paths, nil
}
