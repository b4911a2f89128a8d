package toolbox

// Manifest is the aggregate toolbox manifest describing every discovered
// image and pipeline. Records are keyed by component name, then by version.
type Manifest struct {
	Name       string                               `json:"name" toml:"name"`
	Registry   string                               `json:"registry" toml:"registry"`
	Registries []string                             `json:"registries" toml:"registries"`
	Pipelines  map[string]map[string]PipelineRecord `json:"pipelines" toml:"pipelines"`
	Images     map[string]map[string]ImageRecord    `json:"images" toml:"images"`
}

// ImageRecord is the normalized form of an image declaration. BuildPath is
// the resolved container build context; ImageTags holds one fully qualified
// registry/image:version tag per distinct registry.
type ImageRecord struct {
	BuildPath         string                 `json:"build_path" toml:"build_path"`
	BuildImage        bool                   `json:"build_image" toml:"build_image"`
	ImageTags         []string               `json:"image_tags" toml:"image_tags"`
	AllowBaseOverride bool                   `json:"allow_base_override" toml:"allow_base_override"`
	BaseImageToken    string                 `json:"base_image_token,omitempty" toml:"base_image_token,omitempty"`
	Config            map[string]interface{} `json:"config,omitempty" toml:"config,omitempty"`
}

// PipelineRecord is the normalized form of a pipeline declaration. Images is
// the opaque stage-to-image binding map, passed through unmodified.
type PipelineRecord struct {
	Description string                 `json:"description" toml:"description"`
	Images      map[string]interface{} `json:"images" toml:"images"`
	Config      map[string]interface{} `json:"config,omitempty" toml:"config,omitempty"`
}

// Context carries the immutable repository-wide inputs handed to each field
// builder: the effective registry list and the override-path flag. The
// per-declaration directory is passed alongside it, since build contexts and
// config_from references resolve against the declaring directory rather than
// the scan root.
type Context struct {
	Registries   []string
	OverridePath bool
}
