// Package pkg provides the libraries behind jabu, a Maven artifact fetcher.
//
// # Overview
//
// jabu downloads jars and POMs from a Maven-layout remote repository into a
// local directory tree, following the dependencies each POM declares:
//
//  1. [artifact] - Coordinates (groupId, artifactId, version)
//  2. [pom] - Extracting declared dependencies from a POM
//  3. [repository/local] - The on-disk repository
//  4. [repository/remote] - URLs in a remote repository
//  5. [transport] - HTTP downloads
//  6. [resolve] - Fetching one artifact or a whole dependency tree
//
// Supporting packages: [errors] (coded errors), [config] (settings),
// [observability] (HTTP hooks) and [buildinfo] (version stamps).
//
// # Data Flow
//
//	root coordinate
//	     ↓
//	[resolve] pops a coordinate, builds URLs with [repository/remote]
//	     ↓
//	[transport] downloads POM and jar
//	     ↓
//	[repository/local] saves jar, then POM
//	     ↓
//	[pom] reads the saved POM, new dependencies are pushed
//
// # Quick Start
//
//	store := local.New("/tmp/repo")
//	r := resolve.New(store, transport.NewHTTP(0, nil), nil)
//	err := r.Resolve(ctx, artifact.New("org.slf4j", "slf4j-api", "2.0.13"), remote.Default(), nil)
package pkg
