package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camerondm9/git-todo/internal/utils"
)

const (
	testConfigurationNameConstant   = ".git-todo"
	testConfigurationTypeConstant   = "yaml"
	testEnvironmentPrefixConstant   = "GITTODOTEST"
	testConfigurationFileConstant   = ".git-todo.yaml"
	testConfigurationContent        = "scan:\n  default_branch: develop\n  context_lines: 7\n"
	testEmbeddedConfigurationYAML   = "common:\n  log_level: info\nscan:\n  context_lines: 5\n"
	testContextLinesEnvironmentName = "GITTODOTEST_SCAN_CONTEXT_LINES"
)

type testScanConfiguration struct {
	DefaultBranch string `mapstructure:"default_branch"`
	ContextLines  int    `mapstructure:"context_lines"`
}

type testConfiguration struct {
	Common struct {
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"common"`
	Scan testScanConfiguration `mapstructure:"scan"`
}

func writeTestConfigurationFile(t *testing.T, content string) string {
	t.Helper()
	temporaryDirectory := t.TempDir()
	configurationFilePath := filepath.Join(temporaryDirectory, testConfigurationFileConstant)
	require.NoError(t, os.WriteFile(configurationFilePath, []byte(content), 0o644))
	return configurationFilePath
}

func TestLoadConfigurationFromFile(t *testing.T) {
	configurationFilePath := writeTestConfigurationFile(t, testConfigurationContent)
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var configuration testConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)
	require.NoError(t, loadError)
	require.Equal(t, configurationFilePath, loadedConfiguration.ConfigFileUsed)
	require.Equal(t, "develop", configuration.Scan.DefaultBranch)
	require.Equal(t, 7, configuration.Scan.ContextLines)
}

func TestLoadConfigurationAppliesDefaults(t *testing.T) {
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{t.TempDir()})

	var configuration testConfiguration
	defaultValues := map[string]any{
		"scan.context_lines": 5,
		"common.log_level":   "info",
	}
	_, loadError := loader.LoadConfiguration("", defaultValues, &configuration)
	require.NoError(t, loadError)
	require.Equal(t, 5, configuration.Scan.ContextLines)
	require.Equal(t, "info", configuration.Common.LogLevel)
	require.Empty(t, configuration.Scan.DefaultBranch)
}

func TestLoadConfigurationMergesEmbeddedConfiguration(t *testing.T) {
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{t.TempDir()})
	loader.SetEmbeddedConfiguration([]byte(testEmbeddedConfigurationYAML))

	var configuration testConfiguration
	_, loadError := loader.LoadConfiguration("", nil, &configuration)
	require.NoError(t, loadError)
	require.Equal(t, "info", configuration.Common.LogLevel)
	require.Equal(t, 5, configuration.Scan.ContextLines)
}

func TestLoadConfigurationFileOverridesEmbedded(t *testing.T) {
	configurationFilePath := writeTestConfigurationFile(t, testConfigurationContent)
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)
	loader.SetEmbeddedConfiguration([]byte(testEmbeddedConfigurationYAML))

	var configuration testConfiguration
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)
	require.NoError(t, loadError)
	require.Equal(t, 7, configuration.Scan.ContextLines)
	require.Equal(t, "info", configuration.Common.LogLevel)
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv(testContextLinesEnvironmentName, "9")

	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{t.TempDir()})

	var configuration testConfiguration
	defaultValues := map[string]any{"scan.context_lines": 5}
	_, loadError := loader.LoadConfiguration("", defaultValues, &configuration)
	require.NoError(t, loadError)
	// Environment values arrive as strings; weak decoding converts them.
	require.Equal(t, 9, configuration.Scan.ContextLines)
}

func TestLoadConfigurationRejectsMalformedFile(t *testing.T) {
	configurationFilePath := writeTestConfigurationFile(t, "scan: [not a mapping\n")
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var configuration testConfiguration
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)
	require.Error(t, loadError)
	require.ErrorContains(t, loadError, "failed to read configuration")
}
