package scan

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	guessedBranchLogMessageConstant = "guessed main branch"
	guessedBranchLogFieldConstant   = "branch"
)

// ErrNoGuessableBranch reports that none of the commonly used main branch
// names exist in the repository.
var ErrNoGuessableBranch = errors.New("unable to guess the main branch: pass a branch argument or set todo.default-branch in git configuration")

// commonBranchNames lists candidate main branches in preference order.
var commonBranchNames = []string{"develop", "main", "master"}

// BranchLister enumerates local branches matching the provided patterns.
type BranchLister interface {
	ListBranches(executionContext context.Context, branchPatterns []string) ([]string, error)
}

// BranchGuesser picks a comparison branch when neither the command line nor
// the configuration names one.
type BranchGuesser struct {
	logger       *zap.Logger
	branchLister BranchLister
}

// NewBranchGuesser constructs a BranchGuesser backed by the provided lister.
func NewBranchGuesser(logger *zap.Logger, branchLister BranchLister) *BranchGuesser {
	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}
	return &BranchGuesser{logger: resolvedLogger, branchLister: branchLister}
}

// GuessMainBranch returns the first commonly used branch name that exists
// locally, or ErrNoGuessableBranch when none do.
func (guesser *BranchGuesser) GuessMainBranch(executionContext context.Context) (string, error) {
	localBranches, listError := guesser.branchLister.ListBranches(executionContext, commonBranchNames)
	if listError != nil {
		return "", listError
	}
	existingBranches := make(map[string]struct{}, len(localBranches))
	for _, branchName := range localBranches {
		existingBranches[branchName] = struct{}{}
	}
	for _, candidateBranch := range commonBranchNames {
		if _, branchExists := existingBranches[candidateBranch]; branchExists {
			guesser.logger.Info(guessedBranchLogMessageConstant, zap.String(guessedBranchLogFieldConstant, candidateBranch))
			return candidateBranch, nil
		}
	}
	return "", ErrNoGuessableBranch
}
