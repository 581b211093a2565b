package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camerondm9/git-todo/internal/utils"
)

func TestCreateLoggerSupportedCombinations(t *testing.T) {
	testCases := []struct {
		name      string
		logLevel  utils.LogLevel
		logFormat utils.LogFormat
	}{
		{name: "debug_structured", logLevel: utils.LogLevelDebug, logFormat: utils.LogFormatStructured},
		{name: "info_console", logLevel: utils.LogLevelInfo, logFormat: utils.LogFormatConsole},
		{name: "warn_structured", logLevel: utils.LogLevelWarn, logFormat: utils.LogFormatStructured},
		{name: "error_console", logLevel: utils.LogLevelError, logFormat: utils.LogFormatConsole},
	}

	loggerFactory := utils.NewLoggerFactory()
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			logger, creationError := loggerFactory.CreateLogger(testCase.logLevel, testCase.logFormat)
			require.NoError(t, creationError)
			require.NotNil(t, logger)
		})
	}
}

func TestCreateLoggerRejectsUnsupportedValues(t *testing.T) {
	loggerFactory := utils.NewLoggerFactory()

	_, levelError := loggerFactory.CreateLogger(utils.LogLevel("verbose"), utils.LogFormatConsole)
	require.ErrorContains(t, levelError, "unsupported log level")

	_, formatError := loggerFactory.CreateLogger(utils.LogLevelInfo, utils.LogFormat("plain"))
	require.ErrorContains(t, formatError, "unsupported log format")
}
