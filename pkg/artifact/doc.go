// Package artifact defines the Maven coordinate that identifies a Java artifact.
//
// # Overview
//
// A [Coordinate] is the triple (groupId, artifactId, version):
//
//	c := artifact.Coordinate{
//	    GroupID:    "org.junit.jupiter",
//	    ArtifactID: "junit-jupiter-api",
//	    Version:    "5.10.2",
//	}
//
// Coordinates are plain comparable values. Two coordinates name the same
// artifact iff all three fields are byte-for-byte equal; no case folding or
// separator normalization is applied. They can be used directly as map keys.
//
// # Text Form
//
// [Parse] accepts the usual "group:artifact:version" notation and
// [Coordinate.String] renders it back:
//
//	c, err := artifact.Parse("com.google.guava:guava:33.0.0-jre")
//	fmt.Println(c) // com.google.guava:guava:33.0.0-jre
//
// Path and URL derivation live with the repositories that own a root:
// see [local.Repository] and [remote.Repository].
//
// [local.Repository]: github.com/matzehuels/jabu/pkg/repository/local.Repository
// [remote.Repository]: github.com/matzehuels/jabu/pkg/repository/remote.Repository
package artifact
