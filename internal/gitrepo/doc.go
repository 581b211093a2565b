// Package gitrepo exposes the narrow git collaborator surface used by the
// scan and alias services: resolving the repository root, listing branches,
// reading the todo configuration section, managing the global alias, and
// generating the unified diff to scan.
package gitrepo
