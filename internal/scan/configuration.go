package scan

import (
	"strconv"
	"strings"
)

const (
	// DefaultContextLinesConstant is the diff context width used when no
	// configuration source provides one.
	DefaultContextLinesConstant = 5

	defaultBranchConfigurationKeyConstant = "default_branch"
	contextLinesConfigurationKeyConstant  = "context_lines"

	gitDefaultBranchConfigurationKeyConstant = "default-branch"
	gitContextLinesConfigurationKeyConstant  = "context-lines"
)

// Configuration captures the scan settings sourced from the configuration
// file and environment variables.
type Configuration struct {
	DefaultBranch string `mapstructure:"default_branch"`
	ContextLines  int    `mapstructure:"context_lines"`
}

// DefaultConfigurationValues exposes the scan defaults registered with the
// configuration loader under the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + "." + defaultBranchConfigurationKeyConstant: "",
		configurationPrefix + "." + contextLinesConfigurationKeyConstant:  DefaultContextLinesConstant,
	}
}

// MergeGitConfigurationEntries overlays repository-level git configuration on
// top of the receiver and returns the merged result. A context-lines entry
// that does not parse as an integer falls back to the fixed default.
func (configuration Configuration) MergeGitConfigurationEntries(configurationEntries map[string]string) Configuration {
	mergedConfiguration := configuration
	if branchName := strings.TrimSpace(configurationEntries[gitDefaultBranchConfigurationKeyConstant]); len(branchName) > 0 {
		mergedConfiguration.DefaultBranch = branchName
	}
	if rawContextLines, entryExists := configurationEntries[gitContextLinesConfigurationKeyConstant]; entryExists {
		parsedContextLines, parseError := strconv.Atoi(strings.TrimSpace(rawContextLines))
		if parseError != nil {
			mergedConfiguration.ContextLines = DefaultContextLinesConstant
		} else {
			mergedConfiguration.ContextLines = parsedContextLines
		}
	}
	return mergedConfiguration
}
