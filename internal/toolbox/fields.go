package toolbox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabaker/thorium/internal/manifest"
)

// ImageFields builds the image record for one declaration. dir is the
// directory containing the declaration file; the build context and any
// config_from reference resolve against it. Validation problems are returned
// as warnings and still permit a partial record.
func ImageFields(decl *manifest.ImageDeclaration, dir string, ctx Context) (ImageRecord, []string) {
	rec := ImageRecord{
		BuildPath:         ResolveBuildPath(dir, decl.BuildPath),
		BuildImage:        decl.BuildImage(),
		ImageTags:         []string{},
		AllowBaseOverride: decl.AllowOverride(),
		BaseImageToken:    decl.BaseImageToken,
	}

	var warnings []string
	if decl.Name == "" {
		warnings = append(warnings, "no name found, skipping image tags")
	} else {
		tags, tagWarnings := BuildTags(decl.Name, decl.ImageName, decl.Version, ctx.Registries, ctx.OverridePath)
		rec.ImageTags = tags
		warnings = append(warnings, tagWarnings...)
	}

	if decl.ConfigFrom != "" && decl.Config == nil {
		cfg, err := loadConfigFrom(dir, decl.ConfigFrom)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("loading config_from: %v", err))
		} else {
			if len(rec.ImageTags) > 0 {
				cfg["image"] = rec.ImageTags[0]
			} else {
				warnings = append(warnings, fmt.Sprintf("no image tag available to inject into config for %q", decl.Name))
			}
			rec.Config = cfg
		}
	}

	return rec, warnings
}

// PipelineFields builds the pipeline record for one declaration. Pipelines
// carry no registry tags, so an external config is attached without the
// image annotation that images receive.
func PipelineFields(decl *manifest.PipelineDeclaration, dir string) (PipelineRecord, []string) {
	rec := PipelineRecord{
		Description: decl.Description,
		Images:      decl.Images,
	}
	if rec.Images == nil {
		rec.Images = map[string]interface{}{}
	}

	var warnings []string
	if decl.ConfigFrom != "" && decl.Config == nil {
		cfg, err := loadConfigFrom(dir, decl.ConfigFrom)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("loading config_from: %v", err))
		} else {
			rec.Config = cfg
		}
	}

	return rec, warnings
}

// ResolveBuildPath resolves a declared build path against the directory of
// the declaration that carries it. "." and "./" (and an omitted path) mean
// that directory itself, with no trailing separator.
func ResolveBuildPath(dir, declared string) string {
	if declared == "" || declared == "." || declared == "./" {
		return dir
	}
	return filepath.Join(dir, declared)
}

// loadConfigFrom reads an external JSON configuration file referenced by a
// declaration, resolved relative to the declaration's directory.
func loadConfigFrom(dir, ref string) (map[string]interface{}, error) {
	path := filepath.Join(dir, ref)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg map[string]interface{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding JSON config %s: %w", path, err)
	}
	return cfg, nil
}
