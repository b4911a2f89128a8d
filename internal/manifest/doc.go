// Package manifest handles parsing and validation of toolbox component
// declarations. A declaration is a manifest.toml (or manifest.yaml) file in a
// component's directory describing it as either an image or a pipeline, and is
// validated against the JSON schema embedded in the schema/ subdirectory.
package manifest
