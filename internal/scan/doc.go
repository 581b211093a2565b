// Package scan orchestrates the TODO report: it partitions command-line
// arguments, merges file and git configuration, resolves the comparison
// branch, generates the diff through the repository manager, and prints the
// findings the diffscan core extracts.
package scan
