// Package repository groups the two sides of artifact retrieval.
//
//   - [local]: the filesystem repository artifacts are saved into
//   - [remote]: URL derivation for a Maven-layout remote repository
//
// [local]: github.com/matzehuels/jabu/pkg/repository/local
// [remote]: github.com/matzehuels/jabu/pkg/repository/remote
package repository
