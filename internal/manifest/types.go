package manifest

// BaseDeclaration contains fields shared by image and pipeline declarations.
type BaseDeclaration struct {
	Name       string                 `toml:"name" yaml:"name" json:"name"`
	Type       string                 `toml:"type" yaml:"type" json:"type"`
	Version    string                 `toml:"version" yaml:"version" json:"version"`
	ConfigFrom string                 `toml:"config_from" yaml:"config_from" json:"config_from,omitempty"`
	Config     map[string]interface{} `toml:"config" yaml:"config" json:"config,omitempty"`
}

// ImageDeclaration describes a buildable image component. BuildPath is the
// container build context relative to the repository root ("." or "./" means
// the root itself). ImageName is the registry tag basis unless tag building
// runs with the override-path flag, in which case Name is used instead.
type ImageDeclaration struct {
	BaseDeclaration   `yaml:",inline"`
	BuildPath         string `toml:"build_path" yaml:"build_path" json:"build_path"`
	ImageName         string `toml:"image_name" yaml:"image_name" json:"image_name,omitempty"`
	Build             *bool  `toml:"build" yaml:"build" json:"build,omitempty"`
	BaseImageToken    string `toml:"base_image_token" yaml:"base_image_token" json:"base_image_token,omitempty"`
	AllowBaseOverride *bool  `toml:"allow_base_override" yaml:"allow_base_override" json:"allow_base_override,omitempty"`
}

// BuildImage reports whether this image participates in the build matrix.
// Defaults to true when the declaration omits the build field.
func (d *ImageDeclaration) BuildImage() bool {
	if d.Build == nil {
		return true
	}
	return *d.Build
}

// AllowOverride reports whether the base image may be overridden.
// Defaults to true when the declaration omits the field.
func (d *ImageDeclaration) AllowOverride() bool {
	if d.AllowBaseOverride == nil {
		return true
	}
	return *d.AllowBaseOverride
}

// PipelineDeclaration describes a composition of images into processing
// stages. Images is passed through to the toolbox manifest unmodified.
type PipelineDeclaration struct {
	BaseDeclaration `yaml:",inline"`
	Description     string                 `toml:"description" yaml:"description" json:"description"`
	Images          map[string]interface{} `toml:"images" yaml:"images" json:"images,omitempty"`
}

// Declaration type constants for the type discriminator field.
const (
	TypeImage    = "image"
	TypePipeline = "pipeline"
)

// ValidTypes contains all valid declaration type values.
var ValidTypes = []string{
	TypeImage,
	TypePipeline,
}
