package resolve

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jabu/pkg/artifact"
	"github.com/matzehuels/jabu/pkg/pom"
	"github.com/matzehuels/jabu/pkg/transport"
)

// OnFetch is called right before an artifact is downloaded, with the POM URL
// first and the jar URL second. It cannot influence the download.
type OnFetch func(pomURL, jarURL string)

// Store persists downloaded artifacts.
type Store interface {
	Exists(c artifact.Coordinate) bool
	SaveJar(c artifact.Coordinate, data []byte) (string, error)
	SavePOM(c artifact.Coordinate, data []byte) (string, error)
	ReadPOM(c artifact.Coordinate) ([]byte, error)
}

// Locator maps coordinates to download URLs.
type Locator interface {
	JarURL(c artifact.Coordinate) (string, error)
	POMURL(c artifact.Coordinate) (string, error)
}

// Stats summarizes a resolution run.
type Stats struct {
	Fetched []artifact.Coordinate // Artifacts downloaded, in download order
}

// Resolver downloads artifacts into a Store.
type Resolver struct {
	store   Store
	fetcher transport.Fetcher
	logger  *log.Logger
}

// New creates a Resolver. A nil logger uses log.Default().
func New(store Store, fetcher transport.Fetcher, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{store: store, fetcher: fetcher, logger: logger}
}

// FetchOne downloads c's POM and jar from remote and saves them. onFetch may
// be nil. The jar is saved before the POM, so c only counts as present once
// both files are written.
func (r *Resolver) FetchOne(ctx context.Context, c artifact.Coordinate, remote Locator, onFetch OnFetch) error {
	pomURL, err := remote.POMURL(c)
	if err != nil {
		return err
	}
	jarURL, err := remote.JarURL(c)
	if err != nil {
		return err
	}

	if onFetch != nil {
		onFetch(pomURL, jarURL)
	}
	r.logger.Debugf("Fetching %s", c)

	pomData, err := r.fetcher.Get(ctx, pomURL)
	if err != nil {
		return fmt.Errorf("fetch pom of %s: %w", c, err)
	}
	jarData, err := r.fetcher.Get(ctx, jarURL)
	if err != nil {
		return fmt.Errorf("fetch jar of %s: %w", c, err)
	}

	if _, err := r.store.SaveJar(c, jarData); err != nil {
		return err
	}
	if _, err := r.store.SavePOM(c, pomData); err != nil {
		return err
	}
	return nil
}

// Resolve downloads root and, transitively, every dependency declared in
// the downloaded POMs that is not already in the store.
func (r *Resolver) Resolve(ctx context.Context, root artifact.Coordinate, remote Locator, onFetch OnFetch) error {
	_, err := r.ResolveWithStats(ctx, root, remote, onFetch)
	return err
}

// ResolveWithStats is [Resolver.Resolve] that also reports what was
// downloaded. On error, the returned Stats covers the artifacts saved
// before the failure.
func (r *Resolver) ResolveWithStats(ctx context.Context, root artifact.Coordinate, remote Locator, onFetch OnFetch) (*Stats, error) {
	stats := &Stats{}
	frontier := []artifact.Coordinate{root}
	pending := map[artifact.Coordinate]bool{root: true}

	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		delete(pending, c)

		if err := r.FetchOne(ctx, c, remote, onFetch); err != nil {
			return stats, err
		}
		stats.Fetched = append(stats.Fetched, c)

		deps, err := r.dependencies(c)
		if err != nil {
			return stats, err
		}

		added := 0
		for _, d := range deps {
			if pending[d] || r.store.Exists(d) {
				continue
			}
			pending[d] = true
			frontier = append(frontier, d)
			added++
		}
		r.logger.Debugf("%s: %d dependencies, %d new, %d pending", c, len(deps), added, len(frontier))
	}
	return stats, nil
}

// dependencies reads back the saved POM of c and parses it.
func (r *Resolver) dependencies(c artifact.Coordinate) ([]artifact.Coordinate, error) {
	data, err := r.store.ReadPOM(c)
	if err != nil {
		return nil, err
	}
	deps, err := pom.DependenciesBytes(data)
	if err != nil {
		return nil, fmt.Errorf("pom of %s: %w", c, err)
	}
	return deps, nil
}
