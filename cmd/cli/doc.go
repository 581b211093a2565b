// Package cli constructs the git-todo command-line interface, wiring the
// Cobra root command, configuration loader, structured logging, and the git
// collaborators behind the scan and alias services. Because diff options are
// forwarded to git verbatim, the root command performs its own argument
// partitioning instead of relying on Cobra flag parsing.
package cli
