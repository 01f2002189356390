// Package remote derives download URLs for artifacts in a Maven-layout
// remote repository.
//
// For a base URL, every artifact maps to
//
//	<base>/maven2/<group segments...>/<artifact>/<version>/<artifact>-<version>.jar
//	<base>/maven2/<group segments...>/<artifact>/<version>/<artifact>-<version>.pom
//
// A [Repository] holds no per-artifact state; all methods are pure and safe
// for concurrent use.
package remote

import (
	"net/url"

	"github.com/matzehuels/jabu/pkg/artifact"
	"github.com/matzehuels/jabu/pkg/errors"
)

const (
	// DefaultURL is Maven Central.
	DefaultURL = "https://repo1.maven.org/"

	// LayoutSegment is the fixed path segment between the base URL and the
	// group directories.
	LayoutSegment = "maven2"

	// JarExt and POMExt end the artifact URL of the binary and the manifest.
	JarExt = ".jar"
	POMExt = ".pom"
)

// Repository is a remote Maven repository identified by its base URL.
type Repository struct {
	base *url.URL
}

// New creates a Repository for an absolute http(s) base URL.
func New(base string) (*Repository, error) {
	u, err := errors.ValidateBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Repository{base: u}, nil
}

// Default returns the Maven Central repository.
func Default() *Repository {
	r, err := New(DefaultURL)
	if err != nil {
		panic(err)
	}
	return r
}

// BaseURL returns the base URL, always with a trailing slash.
func (r *Repository) BaseURL() string { return r.base.String() }

// ArtifactURL returns the URL shared by c's files, without extension.
// It fails with INVALID_COORDINATE when a field cannot be used as a URL
// path segment (empty, "." or "..", or needing percent-encoding).
func (r *Repository) ArtifactURL(c artifact.Coordinate) (string, error) {
	segs := []string{LayoutSegment}
	for _, g := range c.GroupSegments() {
		if err := errors.ValidateSegment("groupId "+c.GroupID, g); err != nil {
			return "", err
		}
		segs = append(segs, g)
	}
	if err := errors.ValidateSegment("artifactId", c.ArtifactID); err != nil {
		return "", err
	}
	if err := errors.ValidateSegment("version", c.Version); err != nil {
		return "", err
	}
	segs = append(segs, c.ArtifactID, c.Version, c.ArtifactID+"-"+c.Version)
	return r.base.JoinPath(segs...).String(), nil
}

// JarURL returns the URL of c's binary.
func (r *Repository) JarURL(c artifact.Coordinate) (string, error) {
	return r.withExt(c, JarExt)
}

// POMURL returns the URL of c's manifest.
func (r *Repository) POMURL(c artifact.Coordinate) (string, error) {
	return r.withExt(c, POMExt)
}

func (r *Repository) withExt(c artifact.Coordinate, ext string) (string, error) {
	u, err := r.ArtifactURL(c)
	if err != nil {
		return "", err
	}
	return u + ext, nil
}
