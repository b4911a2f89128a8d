package toolbox

import (
	"reflect"
	"testing"
)

func TestBuildTags_OnePerRegistry(t *testing.T) {
	tags, warnings := BuildTags("clamav", "tools/clamav", "1.3.1", []string{"reg1.io", "reg2.io"}, false)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []string{"reg1.io/tools/clamav:1.3.1", "reg2.io/tools/clamav:1.3.1"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestBuildTags_DuplicateRegistrySuppressed(t *testing.T) {
	tags, _ := BuildTags("foo", "bar", "1.0", []string{"r1", "r2", "r1"}, false)
	want := []string{"r1/bar:1.0", "r2/bar:1.0"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestBuildTags_OverridePathUsesName(t *testing.T) {
	tags, warnings := BuildTags("foo", "bar", "1.0", []string{"reg"}, true)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []string{"reg/foo:1.0"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestBuildTags_EmptyImageName(t *testing.T) {
	tags, warnings := BuildTags("foo", "", "1.0", []string{"reg"}, false)
	if len(tags) != 0 {
		t.Errorf("tags = %v, want none", tags)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
}

func TestBuildTags_EmptyVersion(t *testing.T) {
	tags, warnings := BuildTags("foo", "bar", "", []string{"reg"}, false)
	if len(tags) != 0 {
		t.Errorf("tags = %v, want none", tags)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
}

func TestBuildTags_OverridePathIgnoresEmptyImageName(t *testing.T) {
	tags, warnings := BuildTags("foo", "", "1.0", []string{"reg"}, true)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []string{"reg/foo:1.0"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestBuildTags_NoRegistries(t *testing.T) {
	tags, warnings := BuildTags("foo", "bar", "1.0", nil, false)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(tags) != 0 {
		t.Errorf("tags = %v, want empty", tags)
	}
}
