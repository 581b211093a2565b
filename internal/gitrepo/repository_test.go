package gitrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camerondm9/git-todo/internal/execshell"
	"github.com/camerondm9/git-todo/internal/gitrepo"
)

type stubGitExecutor struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.CommandDetails
}

func (executor *stubGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	return executor.executionResult, executor.executionError
}

func TestNewRepositoryManagerValidatesExecutor(t *testing.T) {
	manager, creationError := gitrepo.NewRepositoryManager(nil)
	require.ErrorIs(t, creationError, gitrepo.ErrGitExecutorNotConfigured)
	require.Nil(t, manager)

	manager, creationError = gitrepo.NewRepositoryManager(&stubGitExecutor{})
	require.NoError(t, creationError)
	require.NotNil(t, manager)
}

func TestResolveRepositoryRootTrimsTrailingNewline(t *testing.T) {
	executor := &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: "/home/user/project\n"}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	repositoryRoot, resolveError := manager.ResolveRepositoryRoot(context.Background())
	require.NoError(t, resolveError)
	require.Equal(t, "/home/user/project", repositoryRoot)

	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t, []string{"rev-parse", "--show-toplevel"}, executor.recordedCommands[0].Arguments)
	require.Equal(t, "0", executor.recordedCommands[0].EnvironmentVariables["GIT_TERMINAL_PROMPT"])
}

func TestResolveRepositoryRootPropagatesFailure(t *testing.T) {
	failure := execshell.CommandFailedError{Result: execshell.ExecutionResult{ExitCode: 128, StandardError: "fatal: not a git repository\n"}}
	executor := &stubGitExecutor{executionError: failure}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	_, resolveError := manager.ResolveRepositoryRoot(context.Background())
	var propagated execshell.CommandFailedError
	require.ErrorAs(t, resolveError, &propagated)
	require.Equal(t, 128, propagated.Result.ExitCode)
}

func TestListBranchesSplitsOutputLines(t *testing.T) {
	executor := &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: "develop\nmain\n"}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	branchNames, listError := manager.ListBranches(context.Background(), []string{"develop", "main", "master"})
	require.NoError(t, listError)
	require.Equal(t, []string{"develop", "main"}, branchNames)

	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t,
		[]string{"branch", "--list", "--format=%(refname:lstrip=2)", "--", "develop", "main", "master"},
		executor.recordedCommands[0].Arguments,
	)
}

func TestTodoConfigurationParsesNullSeparatedEntries(t *testing.T) {
	rawOutput := "todo.default-branch\ndevelop\x00todo.context-lines\n8\x00"
	executor := &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: rawOutput}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	configurationEntries, configurationError := manager.TodoConfiguration(context.Background())
	require.NoError(t, configurationError)
	require.Equal(t, map[string]string{"default-branch": "develop", "context-lines": "8"}, configurationEntries)

	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t, []string{"config", "--null", "--get-regexp", `^todo\.`}, executor.recordedCommands[0].Arguments)
}

func TestGlobalAliasCommands(t *testing.T) {
	executor := &stubGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	require.NoError(t, manager.SetGlobalAlias(context.Background(), "todo", "!/usr/local/bin/git-todo"))
	require.NoError(t, manager.UnsetGlobalAlias(context.Background(), "todo"))

	require.Len(t, executor.recordedCommands, 2)
	require.Equal(t, []string{"config", "--global", "alias.todo", "!/usr/local/bin/git-todo"}, executor.recordedCommands[0].Arguments)
	require.Equal(t, []string{"config", "--global", "--unset", "alias.todo"}, executor.recordedCommands[1].Arguments)
}

func TestGenerateDiffBuildsArgumentList(t *testing.T) {
	executor := &stubGitExecutor{executionResult: execshell.ExecutionResult{StandardOutput: "diff --git a a\n"}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	diffText, diffError := manager.GenerateDiff(context.Background(), gitrepo.DiffOptions{
		ContextLines:  5,
		DiffArguments: []string{"--merge-base", "--find-renames"},
		Revisions:     []string{"main"},
	})
	require.NoError(t, diffError)
	require.Equal(t, "diff --git a a\n", diffText)

	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t,
		[]string{
			"diff",
			"--unified=5",
			"--diff-algorithm=histogram",
			"--no-color",
			"--no-prefix",
			"--no-relative",
			"--merge-base",
			"--find-renames",
			"main",
		},
		executor.recordedCommands[0].Arguments,
	)
}
