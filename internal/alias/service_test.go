package alias_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/camerondm9/git-todo/internal/alias"
)

type recordingAliasConfigurator struct {
	setAliasName    string
	setAliasCommand string
	unsetAliasName  string
	setError        error
	unsetError      error
}

func (configurator *recordingAliasConfigurator) SetGlobalAlias(_ context.Context, aliasName string, aliasCommand string) error {
	configurator.setAliasName = aliasName
	configurator.setAliasCommand = aliasCommand
	return configurator.setError
}

func (configurator *recordingAliasConfigurator) UnsetGlobalAlias(_ context.Context, aliasName string) error {
	configurator.unsetAliasName = aliasName
	return configurator.unsetError
}

func fixedExecutableResolver(executablePath string) alias.ExecutableResolver {
	return func() (string, error) {
		return executablePath, nil
	}
}

func TestNewServiceValidation(t *testing.T) {
	validConfigurator := &recordingAliasConfigurator{}
	validResolver := fixedExecutableResolver("/usr/local/bin/git-todo")
	validOutput := &strings.Builder{}
	testCases := []struct {
		name          string
		dependencies  alias.Dependencies
		expectedError error
	}{
		{
			name:          "missing_configurator",
			dependencies:  alias.Dependencies{ExecutableResolver: validResolver, Output: validOutput},
			expectedError: alias.ErrAliasConfiguratorNotConfigured,
		},
		{
			name:          "missing_resolver",
			dependencies:  alias.Dependencies{Configurator: validConfigurator, Output: validOutput},
			expectedError: alias.ErrExecutableResolverNotConfigured,
		},
		{
			name:          "missing_output",
			dependencies:  alias.Dependencies{Configurator: validConfigurator, ExecutableResolver: validResolver},
			expectedError: alias.ErrOutputWriterNotConfigured,
		},
		{
			name:         "nil_logger_accepted",
			dependencies: alias.Dependencies{Configurator: validConfigurator, ExecutableResolver: validResolver, Output: validOutput},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			service, creationError := alias.NewService(testCase.dependencies)
			if testCase.expectedError != nil {
				require.ErrorIs(t, creationError, testCase.expectedError)
				require.Nil(t, service)
				return
			}
			require.NoError(t, creationError)
			require.NotNil(t, service)
		})
	}
}

func TestServiceInstall(t *testing.T) {
	configurator := &recordingAliasConfigurator{}
	outputBuilder := &strings.Builder{}
	service, creationError := alias.NewService(alias.Dependencies{
		Logger:             zaptest.NewLogger(t),
		Configurator:       configurator,
		ExecutableResolver: fixedExecutableResolver("/opt/tools/git-todo"),
		Output:             outputBuilder,
	})
	require.NoError(t, creationError)
	require.NoError(t, service.Install(context.Background()))
	require.Equal(t, "todo", configurator.setAliasName)
	require.Equal(t, "!/opt/tools/git-todo", configurator.setAliasCommand)
	require.Equal(t, "Created alias: git todo\n", outputBuilder.String())
}

func TestServiceUninstall(t *testing.T) {
	configurator := &recordingAliasConfigurator{}
	outputBuilder := &strings.Builder{}
	service, creationError := alias.NewService(alias.Dependencies{
		Logger:             zaptest.NewLogger(t),
		Configurator:       configurator,
		ExecutableResolver: fixedExecutableResolver("/usr/local/bin/git-todo"),
		Output:             outputBuilder,
	})
	require.NoError(t, creationError)
	require.NoError(t, service.Uninstall(context.Background()))
	require.Equal(t, "todo", configurator.unsetAliasName)
	require.Equal(t, "Removed alias: git todo\n", outputBuilder.String())
}

func TestServiceInstallPropagatesFailures(t *testing.T) {
	resolveFailure := errors.New("executable path unavailable")
	configureFailure := errors.New("git config rejected the alias")
	testCases := []struct {
		name          string
		resolver      alias.ExecutableResolver
		configurator  *recordingAliasConfigurator
		expectedError error
	}{
		{
			name:          "resolver_failure",
			resolver:      func() (string, error) { return "", resolveFailure },
			configurator:  &recordingAliasConfigurator{},
			expectedError: resolveFailure,
		},
		{
			name:          "configurator_failure",
			resolver:      fixedExecutableResolver("/usr/local/bin/git-todo"),
			configurator:  &recordingAliasConfigurator{setError: configureFailure},
			expectedError: configureFailure,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			service, creationError := alias.NewService(alias.Dependencies{
				Configurator:       testCase.configurator,
				ExecutableResolver: testCase.resolver,
				Output:             &strings.Builder{},
			})
			require.NoError(t, creationError)
			require.ErrorIs(t, service.Install(context.Background()), testCase.expectedError)
		})
	}
}
