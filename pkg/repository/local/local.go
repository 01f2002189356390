// Package local implements the filesystem-backed local artifact repository.
//
// An artifact (group, artifact, version) lives in
//
//	<root>/<group segments...>/<artifact>/<version>.jar
//	<root>/<group segments...>/<artifact>/<version>.pom
//
// where the group's dot-separated segments become nested directories. The
// .pom file is the sole witness that an artifact is present; the jar is
// never checked on its own.
//
// Repository methods do no locking. Concurrent saves of the same coordinate
// are last-writer-wins.
package local

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/matzehuels/jabu/pkg/artifact"
	"github.com/matzehuels/jabu/pkg/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// JarExt and POMExt are appended to the version string to form file names.
	JarExt = ".jar"
	POMExt = ".pom"

	// DefaultDir is the repository directory under the user's home.
	DefaultDir = "repo"
)

// Repository is a local artifact repository rooted at a single directory.
type Repository struct {
	root string
}

// New creates a Repository rooted at root. The directory is created lazily
// by the first save.
func New(root string) *Repository {
	return &Repository{root: root}
}

// Default returns the repository at ~/repo.
func Default() (*Repository, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "determine home directory")
	}
	return New(filepath.Join(home, DefaultDir)), nil
}

// Root returns the repository root directory.
func (r *Repository) Root() string { return r.root }

// Dir returns the directory holding every version of c's group and artifact.
func (r *Repository) Dir(c artifact.Coordinate) string {
	parts := append([]string{r.root}, c.GroupSegments()...)
	return filepath.Join(append(parts, c.ArtifactID)...)
}

// JarPath returns the path of c's binary.
func (r *Repository) JarPath(c artifact.Coordinate) string {
	return filepath.Join(r.Dir(c), c.Version+JarExt)
}

// POMPath returns the path of c's manifest.
func (r *Repository) POMPath(c artifact.Coordinate) string {
	return filepath.Join(r.Dir(c), c.Version+POMExt)
}

// Exists reports whether c's POM is present as a readable regular file.
// Any I/O error counts as absence.
func (r *Repository) Exists(c artifact.Coordinate) bool {
	f, err := os.Open(r.POMPath(c))
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}

// SaveJar writes data to c's jar path, creating directories as needed and
// overwriting any previous content. It returns the written path.
func (r *Repository) SaveJar(c artifact.Coordinate, data []byte) (string, error) {
	return r.save(c, r.JarPath(c), data)
}

// SavePOM writes data to c's POM path, creating directories as needed and
// overwriting any previous content. It returns the written path.
func (r *Repository) SavePOM(c artifact.Coordinate, data []byte) (string, error) {
	return r.save(c, r.POMPath(c), data)
}

func (r *Repository) save(c artifact.Coordinate, path string, data []byte) (string, error) {
	if err := os.MkdirAll(r.Dir(c), dirPerm); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "create directory for %s", c)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	return path, nil
}

// ReadPOM returns the saved POM of c.
func (r *Repository) ReadPOM(c artifact.Coordinate) ([]byte, error) {
	data, err := os.ReadFile(r.POMPath(c))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read pom of %s", c)
	}
	return data, nil
}

// AvailableVersions lists the version stems of the files saved for c's
// group and artifact (c.Version is ignored). The extension is discarded, so
// a version with both a jar and a pom appears once. Sub-directories are
// skipped. ok is false when the directory is missing or cannot be listed.
func (r *Repository) AvailableVersions(c artifact.Coordinate) (versions map[string]struct{}, ok bool) {
	entries, err := os.ReadDir(r.Dir(c))
	if err != nil {
		return nil, false
	}
	versions = make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		versions[stem(e)] = struct{}{}
	}
	return versions, true
}

// SortedVersions is [Repository.AvailableVersions] as a sorted slice.
func (r *Repository) SortedVersions(c artifact.Coordinate) ([]string, bool) {
	set, ok := r.AvailableVersions(c)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, true
}

// stem strips the last extension, the way a file stem is usually taken:
// "5.10.2.jar" -> "5.10.2", "1.0" -> "1".
func stem(e fs.DirEntry) string {
	name := e.Name()
	if ext := filepath.Ext(name); ext != "" && ext != name {
		return name[:len(name)-len(ext)]
	}
	return name
}
