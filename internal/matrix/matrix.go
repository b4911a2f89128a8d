package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/gabaker/thorium/internal/toolbox"
)

// Entry is one build-matrix item handed to the CI build workflow.
type Entry struct {
	BuildPath string   `json:"build_path"`
	ImageName string   `json:"image_name"`
	ImageTags []string `json:"image_tags"`
}

// rawManifest mirrors toolbox.Manifest for decoding. Handwritten manifests
// may omit fields the aggregator always writes, so booleans decode through
// pointers to keep "absent" distinct from "false".
type rawManifest struct {
	Name       string                                       `json:"name" toml:"name"`
	Registry   string                                       `json:"registry" toml:"registry"`
	Registries []string                                     `json:"registries" toml:"registries"`
	Pipelines  map[string]map[string]toolbox.PipelineRecord `json:"pipelines" toml:"pipelines"`
	Images     map[string]map[string]rawImage               `json:"images" toml:"images"`
}

type rawImage struct {
	BuildPath         string                 `json:"build_path" toml:"build_path"`
	BuildImage        *bool                  `json:"build_image" toml:"build_image"`
	ImageTags         []string               `json:"image_tags" toml:"image_tags"`
	AllowBaseOverride *bool                  `json:"allow_base_override" toml:"allow_base_override"`
	BaseImageToken    string                 `json:"base_image_token" toml:"base_image_token"`
	Config            map[string]interface{} `json:"config" toml:"config"`
}

// normalize applies the record defaults: an omitted build_image or
// allow_base_override means true, omitted image_tags means an empty list.
func (r rawImage) normalize() toolbox.ImageRecord {
	rec := toolbox.ImageRecord{
		BuildPath:         r.BuildPath,
		BuildImage:        true,
		ImageTags:         r.ImageTags,
		AllowBaseOverride: true,
		BaseImageToken:    r.BaseImageToken,
		Config:            r.Config,
	}
	if r.BuildImage != nil {
		rec.BuildImage = *r.BuildImage
	}
	if r.AllowBaseOverride != nil {
		rec.AllowBaseOverride = *r.AllowBaseOverride
	}
	if rec.ImageTags == nil {
		rec.ImageTags = []string{}
	}
	return rec
}

// Load reads a toolbox manifest from path, decoding JSON or TOML by file
// extension. A manifest without an images section is rejected: there is
// nothing to build from it.
func Load(path string) (*toolbox.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading toolbox manifest %s: %w", path, err)
	}

	var raw rawManifest
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding TOML toolbox manifest %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding JSON toolbox manifest %s: %w", path, err)
		}
	}

	if raw.Images == nil {
		return nil, fmt.Errorf("toolbox manifest %s has no images section", path)
	}

	m := &toolbox.Manifest{
		Name:       raw.Name,
		Registry:   raw.Registry,
		Registries: raw.Registries,
		Pipelines:  raw.Pipelines,
		Images:     make(map[string]map[string]toolbox.ImageRecord, len(raw.Images)),
	}
	if m.Pipelines == nil {
		m.Pipelines = map[string]map[string]toolbox.PipelineRecord{}
	}
	for name, versions := range raw.Images {
		records := make(map[string]toolbox.ImageRecord, len(versions))
		for version, img := range versions {
			records[version] = img.normalize()
		}
		m.Images[name] = records
	}

	return m, nil
}

// Generate emits one entry per buildable image version. Versions with
// build_image false are skipped silently; versions missing a build path or
// a registry image name (config.image) are reported as problems and omitted.
// Entries are ordered by image name, then version, so repeated runs against
// the same manifest produce the same matrix.
func Generate(m *toolbox.Manifest) ([]Entry, []string) {
	entries := []Entry{}
	var problems []string

	for _, name := range sortedKeys(m.Images) {
		versions := m.Images[name]
		for _, version := range sortedKeys(versions) {
			rec := versions[version]
			if !rec.BuildImage {
				continue
			}

			imageName := ""
			if img, ok := rec.Config["image"].(string); ok {
				imageName = img
			}

			if rec.BuildPath == "" || imageName == "" {
				problems = append(problems, fmt.Sprintf(
					"image %q version %q with empty build_path (%s) or image name (%s)",
					name, version, rec.BuildPath, imageName))
				continue
			}

			entries = append(entries, Entry{
				BuildPath: rec.BuildPath,
				ImageName: imageName,
				ImageTags: rec.ImageTags,
			})
		}
	}

	return entries, problems
}

// sortedKeys returns the map keys in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
