package toolbox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuildManifest_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
image_name = "bar"
`)
	writeFile(t, filepath.Join(root, "b", "manifest.toml"), `
type = "pipeline"
name = "baz"

[images]
stage = "foo"
`)

	cfg := &Config{Name: "tb", Registries: []string{"reg"}}
	result, err := BuildManifest(cfg, root, false)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	m := result.Manifest
	if m.Name != "tb" || m.Registry != "" {
		t.Errorf("identity = (%q, %q), want (tb, empty)", m.Name, m.Registry)
	}
	if want := []string{"reg"}; !reflect.DeepEqual(m.Registries, want) {
		t.Errorf("Registries = %v, want %v", m.Registries, want)
	}

	img, ok := m.Images["foo"]["1.0"]
	if !ok {
		t.Fatalf("Images = %v, want foo/1.0 present", m.Images)
	}
	if want := filepath.Join(root, "a"); img.BuildPath != want {
		t.Errorf("BuildPath = %q, want %q", img.BuildPath, want)
	}
	if !img.BuildImage || !img.AllowBaseOverride {
		t.Error("BuildImage/AllowBaseOverride defaults lost")
	}
	if want := []string{"reg/bar:1.0"}; !reflect.DeepEqual(img.ImageTags, want) {
		t.Errorf("ImageTags = %v, want %v", img.ImageTags, want)
	}

	pipe, ok := m.Pipelines["baz"][DefaultVersion]
	if !ok {
		t.Fatalf("Pipelines = %v, want baz/latest present", m.Pipelines)
	}
	if pipe.Description != "" {
		t.Errorf("Description = %q, want empty default", pipe.Description)
	}
	if pipe.Images["stage"] != "foo" {
		t.Errorf(`Images["stage"] = %v, want "foo"`, pipe.Images["stage"])
	}
}

func TestBuildManifest_LastWriteWinsAcrossFiles(t *testing.T) {
	root := t.TempDir()
	// "a" sorts before "z"; the z declaration is processed last and wins.
	writeFile(t, filepath.Join(root, "a", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
image_name = "first"
`)
	writeFile(t, filepath.Join(root, "z", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
image_name = "second"
`)

	cfg := &Config{Name: "tb", Registries: []string{"reg"}}
	result, err := BuildManifest(cfg, root, false)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}

	img := result.Manifest.Images["foo"]["1.0"]
	if want := []string{"reg/second:1.0"}; !reflect.DeepEqual(img.ImageTags, want) {
		t.Errorf("ImageTags = %v, want %v (later declaration wins)", img.ImageTags, want)
	}
	if want := filepath.Join(root, "z"); img.BuildPath != want {
		t.Errorf("BuildPath = %q, want %q", img.BuildPath, want)
	}
}

func TestBuildManifest_DecodeFailureSkipsDeclaration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bad", "manifest.toml"), "type = \"image\nbroken")
	writeFile(t, filepath.Join(root, "good", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
image_name = "bar"
`)

	cfg := &Config{Name: "tb", Registries: []string{"reg"}}
	result, err := BuildManifest(cfg, root, false)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}

	if _, ok := result.Manifest.Images["foo"]["1.0"]; !ok {
		t.Error("good declaration missing from aggregate")
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected warnings for the undecodable declaration")
	}
}

func TestBuildManifest_UnknownTypeIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widget", "manifest.toml"), "type = \"widget\"\nname = \"w\"\n")

	cfg := &Config{Name: "tb"}
	result, err := BuildManifest(cfg, root, false)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	if len(result.Manifest.Images)+len(result.Manifest.Pipelines) != 0 {
		t.Error("unknown type must not be aggregated")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the unknown type")
	}
}

func TestBuildManifest_OverridePath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
image_name = "bar"
`)

	cfg := &Config{Name: "tb", Registries: []string{"reg"}}
	result, err := BuildManifest(cfg, root, true)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}

	img := result.Manifest.Images["foo"]["1.0"]
	if want := []string{"reg/foo:1.0"}; !reflect.DeepEqual(img.ImageTags, want) {
		t.Errorf("ImageTags = %v, want %v (override_path tags by name)", img.ImageTags, want)
	}
}

func TestBuildManifest_WarningsCarryDeclarationPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
`)

	cfg := &Config{Name: "tb", Registries: []string{"reg"}}
	result, err := BuildManifest(cfg, root, false)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected warnings for missing image_name")
	}
	for _, w := range result.Warnings {
		if !strings.Contains(w, filepath.Join(root, "x", "manifest.toml")) {
			t.Errorf("warning %q does not name the declaration file", w)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "manifest.toml"), `
type = "image"
name = "foo"
version = "1.0"
build_path = "."
image_name = "bar"
`)
	writeFile(t, filepath.Join(root, "b", "manifest.toml"), `
type = "pipeline"
name = "baz"

[images]
stage = "foo"
`)

	cfg := &Config{Name: "tb", Registry: "legacy", Registries: []string{"reg"}}
	result, err := BuildManifest(cfg, root, false)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}

	out := filepath.Join(t.TempDir(), "toolbox.json")
	if err := Write(result.Manifest, out); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var reparsed Manifest
	if err := json.Unmarshal(data, &reparsed); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}

	want := result.Manifest
	if reparsed.Name != want.Name || reparsed.Registry != want.Registry {
		t.Errorf("identity = (%q, %q), want (%q, %q)", reparsed.Name, reparsed.Registry, want.Name, want.Registry)
	}
	if !reflect.DeepEqual(reparsed.Registries, want.Registries) {
		t.Errorf("Registries = %v, want %v", reparsed.Registries, want.Registries)
	}
	if !reflect.DeepEqual(reparsed.Images, want.Images) {
		t.Errorf("Images round trip mismatch:\n got %#v\nwant %#v", reparsed.Images, want.Images)
	}
	if !reflect.DeepEqual(reparsed.Pipelines, want.Pipelines) {
		t.Errorf("Pipelines round trip mismatch:\n got %#v\nwant %#v", reparsed.Pipelines, want.Pipelines)
	}
}

func TestWrite_UnwritablePath(t *testing.T) {
	m := NewAggregator(&Config{Name: "tb"}).Manifest()
	err := Write(m, filepath.Join(t.TempDir(), "missing-dir", "toolbox.json"))
	if err == nil {
		t.Fatal("expected error writing into a missing directory, got nil")
	}
}
