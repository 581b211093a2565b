package alias

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	aliasNameConstant             = "todo"
	aliasCommandTemplateConstant  = "!%s"
	installedMessageTemplate      = "Created alias: git %s\n"
	uninstalledMessageTemplate    = "Removed alias: git %s\n"
	installedLogMessageConstant   = "installed git alias"
	uninstalledLogMessageConstant = "removed git alias"
	aliasLogFieldConstant         = "alias"
	executableLogFieldConstant    = "executable"
)

var (
	// ErrAliasConfiguratorNotConfigured indicates the service was built
	// without a git configuration collaborator.
	ErrAliasConfiguratorNotConfigured = errors.New("alias configurator not configured")
	// ErrExecutableResolverNotConfigured indicates the service cannot
	// locate the running executable.
	ErrExecutableResolverNotConfigured = errors.New("executable resolver not configured")
	// ErrOutputWriterNotConfigured indicates the service was built without
	// a confirmation message destination.
	ErrOutputWriterNotConfigured = errors.New("output writer not configured")
)

// AliasConfigurator manages entries in the global git configuration.
type AliasConfigurator interface {
	SetGlobalAlias(executionContext context.Context, aliasName string, aliasCommand string) error
	UnsetGlobalAlias(executionContext context.Context, aliasName string) error
}

// ExecutableResolver returns the path of the currently running executable.
type ExecutableResolver func() (string, error)

// Dependencies aggregates the collaborators required by the alias service.
type Dependencies struct {
	Logger             *zap.Logger
	Configurator       AliasConfigurator
	ExecutableResolver ExecutableResolver
	Output             io.Writer
}

// Service installs and removes the global alias.
type Service struct {
	logger             *zap.Logger
	configurator       AliasConfigurator
	executableResolver ExecutableResolver
	outputWriter       io.Writer
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Configurator == nil {
		return nil, ErrAliasConfiguratorNotConfigured
	}
	if dependencies.ExecutableResolver == nil {
		return nil, ErrExecutableResolverNotConfigured
	}
	if dependencies.Output == nil {
		return nil, ErrOutputWriterNotConfigured
	}
	resolvedLogger := dependencies.Logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}
	return &Service{
		logger:             resolvedLogger,
		configurator:       dependencies.Configurator,
		executableResolver: dependencies.ExecutableResolver,
		outputWriter:       dependencies.Output,
	}, nil
}

// Install writes the global alias so that "git todo" invokes the current
// executable, then prints a confirmation message.
func (service *Service) Install(executionContext context.Context) error {
	executablePath, resolveError := service.executableResolver()
	if resolveError != nil {
		return resolveError
	}
	normalizedExecutablePath := filepath.ToSlash(executablePath)
	aliasCommand := fmt.Sprintf(aliasCommandTemplateConstant, normalizedExecutablePath)
	if configurationError := service.configurator.SetGlobalAlias(executionContext, aliasNameConstant, aliasCommand); configurationError != nil {
		return configurationError
	}
	service.logger.Debug(installedLogMessageConstant,
		zap.String(aliasLogFieldConstant, aliasNameConstant),
		zap.String(executableLogFieldConstant, normalizedExecutablePath),
	)
	_, writeError := fmt.Fprintf(service.outputWriter, installedMessageTemplate, aliasNameConstant)
	return writeError
}

// Uninstall removes the global alias and prints a confirmation message.
func (service *Service) Uninstall(executionContext context.Context) error {
	if configurationError := service.configurator.UnsetGlobalAlias(executionContext, aliasNameConstant); configurationError != nil {
		return configurationError
	}
	service.logger.Debug(uninstalledLogMessageConstant, zap.String(aliasLogFieldConstant, aliasNameConstant))
	_, writeError := fmt.Fprintf(service.outputWriter, uninstalledMessageTemplate, aliasNameConstant)
	return writeError
}
