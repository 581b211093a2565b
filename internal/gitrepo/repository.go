package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/camerondm9/git-todo/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant           = "git executor not configured"
	gitRevParseSubcommandConstant               = "rev-parse"
	gitShowTopLevelFlagConstant                 = "--show-toplevel"
	gitBranchSubcommandConstant                 = "branch"
	gitBranchListFlagConstant                   = "--list"
	gitBranchFormatFlagConstant                 = "--format=%(refname:lstrip=2)"
	gitArgumentTerminatorConstant               = "--"
	gitConfigSubcommandConstant                 = "config"
	gitConfigNullFlagConstant                   = "--null"
	gitConfigGetRegexpFlagConstant              = "--get-regexp"
	gitConfigGlobalFlagConstant                 = "--global"
	gitConfigUnsetFlagConstant                  = "--unset"
	todoConfigurationSectionPatternConstant     = `^todo\.`
	todoConfigurationKeyPrefixConstant          = "todo."
	configurationEntrySeparatorConstant         = "\x00"
	configurationKeyValueSeparatorConstant      = "\n"
	aliasConfigurationKeyTemplateConstant       = "alias.%s"
	gitDiffSubcommandConstant                   = "diff"
	gitDiffUnifiedFlagTemplateConstant          = "--unified=%d"
	gitDiffAlgorithmFlagConstant                = "--diff-algorithm=histogram"
	gitDiffNoColorFlagConstant                  = "--no-color"
	gitDiffNoPrefixFlagConstant                 = "--no-prefix"
	gitDiffNoRelativeFlagConstant               = "--no-relative"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	trailingNewlineConstant                     = "\n"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs repository-level git operations through a GitExecutor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager from the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// ResolveRepositoryRoot returns the top-level directory of the enclosing
// working tree. Outside a working tree the executor's failure carries git's
// short diagnostic and exit code unchanged.
func (manager *RepositoryManager) ResolveRepositoryRoot(executionContext context.Context) (string, error) {
	executionResult, executionError := manager.executeGit(executionContext, []string{gitRevParseSubcommandConstant, gitShowTopLevelFlagConstant})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSuffix(executionResult.StandardOutput, trailingNewlineConstant), nil
}

// ListBranches returns the local branch names matching the provided patterns,
// in git's own output order.
func (manager *RepositoryManager) ListBranches(executionContext context.Context, patterns []string) ([]string, error) {
	commandArguments := []string{gitBranchSubcommandConstant, gitBranchListFlagConstant, gitBranchFormatFlagConstant, gitArgumentTerminatorConstant}
	commandArguments = append(commandArguments, patterns...)

	executionResult, executionError := manager.executeGit(executionContext, commandArguments)
	if executionError != nil {
		return nil, executionError
	}

	branchNames := []string{}
	for _, outputLine := range strings.Split(executionResult.StandardOutput, trailingNewlineConstant) {
		if len(outputLine) > 0 {
			branchNames = append(branchNames, outputLine)
		}
	}
	return branchNames, nil
}

// TodoConfiguration reads every entry of the todo configuration section and
// returns it keyed without the section prefix.
func (manager *RepositoryManager) TodoConfiguration(executionContext context.Context) (map[string]string, error) {
	executionResult, executionError := manager.executeGit(executionContext, []string{gitConfigSubcommandConstant, gitConfigNullFlagConstant, gitConfigGetRegexpFlagConstant, todoConfigurationSectionPatternConstant})
	if executionError != nil {
		return nil, executionError
	}

	configurationEntries := map[string]string{}
	for _, rawEntry := range strings.Split(executionResult.StandardOutput, configurationEntrySeparatorConstant) {
		if len(rawEntry) == 0 {
			continue
		}
		entryKey, entryValue, _ := strings.Cut(rawEntry, configurationKeyValueSeparatorConstant)
		entryKey = strings.TrimPrefix(entryKey, todoConfigurationKeyPrefixConstant)
		configurationEntries[entryKey] = entryValue
	}
	return configurationEntries, nil
}

// SetGlobalAlias registers an alias in the user's global git configuration.
func (manager *RepositoryManager) SetGlobalAlias(executionContext context.Context, aliasName string, aliasCommand string) error {
	aliasConfigurationKey := fmt.Sprintf(aliasConfigurationKeyTemplateConstant, aliasName)
	_, executionError := manager.executeGit(executionContext, []string{gitConfigSubcommandConstant, gitConfigGlobalFlagConstant, aliasConfigurationKey, aliasCommand})
	return executionError
}

// UnsetGlobalAlias removes an alias from the user's global git configuration.
func (manager *RepositoryManager) UnsetGlobalAlias(executionContext context.Context, aliasName string) error {
	aliasConfigurationKey := fmt.Sprintf(aliasConfigurationKeyTemplateConstant, aliasName)
	_, executionError := manager.executeGit(executionContext, []string{gitConfigSubcommandConstant, gitConfigGlobalFlagConstant, gitConfigUnsetFlagConstant, aliasConfigurationKey})
	return executionError
}

// DiffOptions configures a diff generation run.
type DiffOptions struct {
	// ContextLines is the number of unified context lines to request.
	ContextLines int
	// DiffArguments holds flag-style arguments forwarded to git diff verbatim.
	DiffArguments []string
	// Revisions holds the revision arguments the diff compares against.
	Revisions []string
}

// GenerateDiff produces the unified diff text for the requested comparison.
// The diff uses histogram ordering, no color codes, and bare paths so the
// segmenter sees a stable format.
func (manager *RepositoryManager) GenerateDiff(executionContext context.Context, options DiffOptions) (string, error) {
	commandArguments := []string{
		gitDiffSubcommandConstant,
		fmt.Sprintf(gitDiffUnifiedFlagTemplateConstant, options.ContextLines),
		gitDiffAlgorithmFlagConstant,
		gitDiffNoColorFlagConstant,
		gitDiffNoPrefixFlagConstant,
		gitDiffNoRelativeFlagConstant,
	}
	commandArguments = append(commandArguments, options.DiffArguments...)
	commandArguments = append(commandArguments, options.Revisions...)

	executionResult, executionError := manager.executeGit(executionContext, commandArguments)
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

func (manager *RepositoryManager) executeGit(executionContext context.Context, commandArguments []string) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments: commandArguments,
		EnvironmentVariables: map[string]string{
			gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant,
		},
	}
	return manager.executor.ExecuteGit(executionContext, commandDetails)
}
