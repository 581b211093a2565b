// Package diffscan slices unified diff text into per-file segments and
// extracts newly-added TODO annotations from them.
//
// The package is pure string processing: it never touches the filesystem,
// environment, or any external process, which keeps the parsing core
// unit-testable on literal diff fixtures.
package diffscan
