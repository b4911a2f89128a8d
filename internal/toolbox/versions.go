package toolbox

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions orders two version strings for display: "latest" first,
// then semantic versions newest-first, then anything that does not parse as
// semver in lexical order. Merge keys are opaque strings, so this ordering
// is presentation-only and never affects aggregation.
func CompareVersions(a, b string) int {
	if a == DefaultVersion || b == DefaultVersion {
		switch {
		case a == b:
			return 0
		case a == DefaultVersion:
			return -1
		default:
			return 1
		}
	}

	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	switch {
	case aerr == nil && berr == nil:
		return bv.Compare(av)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SortVersions sorts version strings in place using CompareVersions.
func SortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareVersions(versions[i], versions[j]) < 0
	})
}
