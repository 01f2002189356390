package artifact

import (
	"strings"

	"github.com/matzehuels/jabu/pkg/errors"
)

// Coordinate identifies a Java artifact in a Maven-layout repository.
//
// Zero values: all fields empty. A zero Coordinate is never produced by
// [Parse] or by the POM parser, but path derivation still accepts it.
type Coordinate struct {
	GroupID    string // Maven groupId (e.g., "org.junit.jupiter")
	ArtifactID string // Maven artifactId (e.g., "junit-jupiter-api")
	Version    string // Exact version string (e.g., "5.10.2")
}

// New returns the coordinate for group, artifactID and version.
func New(group, artifactID, version string) Coordinate {
	return Coordinate{GroupID: group, ArtifactID: artifactID, Version: version}
}

// String returns the coordinate as "groupId:artifactId:version".
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Key returns the version-less "groupId:artifactId" form.
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// GroupSegments splits the groupId on '.'.
// Empty segments are kept, so "org..x" yields ["org", "", "x"]; rejecting
// them is left to whoever turns the segments into a URL.
func (c Coordinate) GroupSegments() []string {
	return strings.Split(c.GroupID, ".")
}

// Less orders coordinates by groupId, then artifactId, then version
// (plain string comparison, not version semantics).
func (c Coordinate) Less(o Coordinate) bool {
	if c.GroupID != o.GroupID {
		return c.GroupID < o.GroupID
	}
	if c.ArtifactID != o.ArtifactID {
		return c.ArtifactID < o.ArtifactID
	}
	return c.Version < o.Version
}

// Parse reads a "groupId:artifactId:version" string.
// All three fields are required and must be non-empty.
func Parse(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid coordinate %q (expected groupId:artifactId:version)", s)
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
				"invalid coordinate %q (empty field)", s)
		}
	}
	return New(parts[0], parts[1], parts[2]), nil
}

// ParseKey reads "groupId:artifactId" and, optionally, a trailing
// ":version". The version is empty when omitted.
func ParseKey(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 3 {
		return Parse(s)
	}
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid coordinate %q (expected groupId:artifactId)", s)
	}
	return Coordinate{GroupID: parts[0], ArtifactID: parts[1]}, nil
}
