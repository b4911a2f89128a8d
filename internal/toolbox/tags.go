package toolbox

import "fmt"

// BuildTags constructs the ordered, de-duplicated list of fully qualified
// image tags for one component, one per distinct registry. The tag basis is
// the component name when overridePath is set, otherwise the declared
// image_name. An empty basis or version produces no tags and a warning; the
// component is still aggregated without tags.
func BuildTags(name, imageName, version string, registries []string, overridePath bool) ([]string, []string) {
	basis := imageName
	if overridePath {
		basis = name
	}

	var warnings []string
	if version == "" {
		warnings = append(warnings, fmt.Sprintf("no image version found for %q", name))
	}
	if basis == "" {
		warnings = append(warnings, fmt.Sprintf("no image name found for %q", name))
	}

	tags := []string{}
	if version == "" || basis == "" {
		return tags, warnings
	}

	seen := make(map[string]bool)
	for _, registry := range registries {
		tag := fmt.Sprintf("%s/%s:%s", registry, basis, version)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, warnings
}
