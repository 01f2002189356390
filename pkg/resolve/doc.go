// Package resolve downloads artifacts and their transitive dependencies
// into a local repository.
//
// # Overview
//
// A [Resolver] ties together the three collaborators of a download run:
//
//   - a [Store] (normally [local.Repository]) that persists jars and POMs
//   - a [Locator] (normally [remote.Repository]) that maps coordinates to URLs
//   - a [transport.Fetcher] that performs the GETs
//
// [Resolver.FetchOne] downloads a single artifact. [Resolver.Resolve] walks
// the dependency graph from a root artifact:
//
//	r := resolve.New(local.New(dir), transport.NewHTTP(0, nil), logger)
//	err := r.Resolve(ctx, root, remote.Default(), func(pomURL, jarURL string) {
//	    fmt.Println("downloading", pomURL)
//	})
//
// # Traversal
//
// The walk keeps an explicit stack of pending coordinates, popping the most
// recently discovered one first. After an artifact is saved its own POM is
// read back from disk and every dependency that is neither present in the
// store nor already pending is pushed. The store's existence check is the
// only "visited" record, so cycles end once each member has been saved and
// artifacts saved by an earlier run are never downloaded again. The root
// itself is always downloaded.
//
// # Failure
//
// The first error (URL, network, storage or POM parse) stops the run and is
// returned. Artifacts saved before the failure stay in the store. There is
// no retry.
//
// # Concurrency
//
// A run is synchronous and uses a single goroutine. A Resolver holds no
// per-run state, but running two resolutions against the same store at once
// can download an artifact twice (last writer wins).
//
// [local.Repository]: github.com/matzehuels/jabu/pkg/repository/local.Repository
// [remote.Repository]: github.com/matzehuels/jabu/pkg/repository/remote.Repository
// [transport.Fetcher]: github.com/matzehuels/jabu/pkg/transport.Fetcher
package resolve
