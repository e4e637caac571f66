package operations

import "fmt"

// Version is a semantic version triple used to record the minimum feature
// level required to interpret an operation.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// BaseVersion is the feature level of the original operation catalogue.
// Every operation supports at least this version.
var BaseVersion = Version{Major: 1, Minor: 0, Patch: 0}

// String formats the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v is greater than or equal to o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor > o.Minor
	}
	return v.Patch >= o.Patch
}

// Max returns the greater of v and o.
func (v Version) Max(o Version) Version {
	if v.AtLeast(o) {
		return v
	}
	return o
}

// baseVersion is embedded by operations introduced with the original
// catalogue.
type baseVersion struct{}

func (baseVersion) MinimumSupportedVersion() Version { return BaseVersion }

// noClassical is embedded by operations that touch no classical slot.
type noClassical struct{}

func (noClassical) InvolvedClassical() InvolvedClassical { return NoClassical() }
