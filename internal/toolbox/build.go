package toolbox

import (
	"fmt"
	"path/filepath"

	"github.com/gabaker/thorium/internal/manifest"
)

// DefaultVersion is the merge-key version used when a declaration omits one.
const DefaultVersion = "latest"

// Result holds the outcome of a repository scan: the aggregate manifest plus
// the per-declaration warnings accumulated along the way.
type Result struct {
	Manifest *Manifest
	Warnings []string
}

// BuildManifest scans the repository rooted at root and aggregates every
// declaration into a toolbox manifest. Per-declaration problems (decode
// failures, schema issues, missing fields, unresolvable config_from
// references) are collected as warnings and do not abort the scan; only a
// failed directory walk makes the whole build fail.
func BuildManifest(cfg *Config, root string, overridePath bool) (*Result, error) {
	paths, err := Discover(root)
	if err != nil {
		return nil, err
	}

	ctx := Context{
		Registries:   cfg.EffectiveRegistries(),
		OverridePath: overridePath,
	}
	agg := NewAggregator(cfg)

	var warnings []string
	for _, path := range paths {
		// Schema validation is advisory: issues are reported, but the
		// declaration is still processed with whatever fields decoded.
		if result, err := manifest.ValidateFile(path); err == nil && !result.Valid {
			for _, issue := range result.Issues {
				warnings = append(warnings, fmt.Sprintf("%s: schema%s: %s", path, issue.Path, issue.Message))
			}
		}

		parsed, err := manifest.ParseFile(path)
		if err != nil {
			// Skip-and-warn: one undecodable declaration must not take
			// down the rest of the scan.
			warnings = append(warnings, err.Error())
			continue
		}

		dir := filepath.Dir(path)
		switch decl := parsed.(type) {
		case *manifest.ImageDeclaration:
			rec, ws := ImageFields(decl, dir, ctx)
			for _, w := range ws {
				warnings = append(warnings, fmt.Sprintf("%s: %s", path, w))
			}
			agg.MergeImage(decl.Name, versionKey(decl.Version), rec)
		case *manifest.PipelineDeclaration:
			rec, ws := PipelineFields(decl, dir)
			for _, w := range ws {
				warnings = append(warnings, fmt.Sprintf("%s: %s", path, w))
			}
			agg.MergePipeline(decl.Name, versionKey(decl.Version), rec)
		}
	}

	return &Result{Manifest: agg.Manifest(), Warnings: warnings}, nil
}

// versionKey returns the merge-key version for a declaration.
func versionKey(version string) string {
	if version == "" {
		return DefaultVersion
	}
	return version
}
