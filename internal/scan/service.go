package scan

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/camerondm9/git-todo/internal/diffscan"
	"github.com/camerondm9/git-todo/internal/gitrepo"
)

const (
	mergeBaseFlagConstant = "--merge-base"

	repositoryRootLogMessageConstant = "resolved repository root"
	repositoryRootLogFieldConstant   = "path"
	findingCountLogMessageConstant   = "scan completed"
	findingCountLogFieldConstant     = "findings"
)

var (
	// ErrRepositoryServiceNotConfigured indicates the service was built
	// without a repository collaborator.
	ErrRepositoryServiceNotConfigured = errors.New("repository service not configured")
	// ErrOutputWriterNotConfigured indicates the service was built without
	// a report destination.
	ErrOutputWriterNotConfigured = errors.New("output writer not configured")
)

// RepositoryService describes the git operations the scan requires.
type RepositoryService interface {
	ResolveRepositoryRoot(executionContext context.Context) (string, error)
	ListBranches(executionContext context.Context, branchPatterns []string) ([]string, error)
	TodoConfiguration(executionContext context.Context) (map[string]string, error)
	GenerateDiff(executionContext context.Context, diffOptions gitrepo.DiffOptions) (string, error)
}

// Dependencies aggregates the collaborators required by the scan service.
type Dependencies struct {
	Logger     *zap.Logger
	Repository RepositoryService
	Output     io.Writer
}

// Options carries the per-invocation inputs of a scan.
type Options struct {
	Revisions     []string
	DiffArguments []string
	Configuration Configuration
}

// Service runs the end-to-end TODO scan.
type Service struct {
	logger        *zap.Logger
	repository    RepositoryService
	branchGuesser *BranchGuesser
	reporter      *FindingReporter
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Repository == nil {
		return nil, ErrRepositoryServiceNotConfigured
	}
	if dependencies.Output == nil {
		return nil, ErrOutputWriterNotConfigured
	}
	resolvedLogger := dependencies.Logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}
	return &Service{
		logger:        resolvedLogger,
		repository:    dependencies.Repository,
		branchGuesser: NewBranchGuesser(resolvedLogger, dependencies.Repository),
		reporter:      NewFindingReporter(dependencies.Output),
	}, nil
}

// Scan resolves the comparison revisions, generates the diff, and reports
// every newly added TODO annotation it finds. Failures of the underlying git
// invocations propagate unchanged so callers can surface the original exit
// code.
func (service *Service) Scan(executionContext context.Context, scanOptions Options) error {
	repositoryRoot, rootError := service.repository.ResolveRepositoryRoot(executionContext)
	if rootError != nil {
		return rootError
	}
	service.logger.Debug(repositoryRootLogMessageConstant, zap.String(repositoryRootLogFieldConstant, repositoryRoot))

	configurationEntries, configurationError := service.repository.TodoConfiguration(executionContext)
	if configurationError != nil {
		return configurationError
	}
	mergedConfiguration := scanOptions.Configuration.MergeGitConfigurationEntries(configurationEntries)

	diffRevisions := append([]string(nil), scanOptions.Revisions...)
	diffArguments := append([]string(nil), scanOptions.DiffArguments...)
	if len(diffRevisions) == 0 {
		comparisonBranch := mergedConfiguration.DefaultBranch
		if len(comparisonBranch) == 0 {
			guessedBranch, guessError := service.branchGuesser.GuessMainBranch(executionContext)
			if guessError != nil {
				return guessError
			}
			comparisonBranch = guessedBranch
		}
		diffRevisions = []string{comparisonBranch}
	}
	if len(diffRevisions) == 1 {
		diffArguments = append([]string{mergeBaseFlagConstant}, diffArguments...)
	}

	diffText, diffError := service.repository.GenerateDiff(executionContext, gitrepo.DiffOptions{
		ContextLines:  mergedConfiguration.ContextLines,
		DiffArguments: diffArguments,
		Revisions:     diffRevisions,
	})
	if diffError != nil {
		return diffError
	}

	findingCount := 0
	for _, fileSegment := range diffscan.SegmentDiff(diffText) {
		for _, finding := range diffscan.ExtractFindings(fileSegment) {
			if reportError := service.reporter.Report(finding); reportError != nil {
				return reportError
			}
			findingCount++
		}
	}
	service.logger.Debug(findingCountLogMessageConstant, zap.Int(findingCountLogFieldConstant, findingCount))
	return nil
}
