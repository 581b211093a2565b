// Package alias installs and removes the global "git todo" alias pointing at
// the running executable.
package alias
