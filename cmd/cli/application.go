package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/camerondm9/git-todo/internal/alias"
	"github.com/camerondm9/git-todo/internal/execshell"
	"github.com/camerondm9/git-todo/internal/gitrepo"
	"github.com/camerondm9/git-todo/internal/scan"
	"github.com/camerondm9/git-todo/internal/ui"
	"github.com/camerondm9/git-todo/internal/utils"
)

const (
	applicationUseConstant              = "git-todo [revision ...] [diff option ...]"
	applicationShortDescriptionConstant = "Report TODO comments added relative to a reference branch"
	applicationLongDescriptionConstant  = "git-todo diffs the current state of the repository against a reference branch " +
		"and prints every newly added TODO comment together with the file and line that introduced it. " +
		"Unrecognized options are forwarded to git diff unchanged."
	installFlagNameConstant                 = "install"
	installFlagUsageConstant                = "Install the global \"git todo\" alias pointing at this executable."
	uninstallFlagNameConstant               = "uninstall"
	uninstallFlagUsageConstant              = "Remove the global \"git todo\" alias."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	scanConfigurationKeyConstant            = "scan"
	environmentPrefixConstant               = "GITTODO"
	configurationNameConstant               = ".git-todo"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	defaultConfigurationSearchPathConstant  = "."
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Scan   scan.Configuration             `mapstructure:"scan"`
}

// ApplicationCommonConfiguration stores the logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	embeddedConfiguration, _ := EmbeddedDefaultConfiguration()
	configurationLoader.SetEmbeddedConfiguration(embeddedConfiguration)

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationUseConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown options belong to git diff, so the root command partitions
		// the raw arguments itself instead of letting Cobra reject them.
		DisableFlagParsing: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.run(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	registerToolFlags(cobraCommand.Flags())

	application.rootCommand = cobraCommand

	return application
}

// registerToolFlags declares the tool-owned options on the flag set so the
// generated help output documents them. Parsing happens separately.
func registerToolFlags(flagSet *pflag.FlagSet) {
	flagSet.Bool(installFlagNameConstant, false, installFlagUsageConstant)
	flagSet.Bool(uninstallFlagNameConstant, false, uninstallFlagUsageConstant)
	flagSet.String(configFileFlagNameConstant, "", configFileFlagUsageConstant)
	flagSet.String(logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	flagSet.String(logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) run(command *cobra.Command, arguments []string) error {
	parsedArguments, parseError := scan.ParseArguments(arguments)
	if parseError != nil {
		return parseError
	}

	if parsedArguments.ShowHelp {
		return command.Help()
	}

	if initializationError := application.initializeConfiguration(parsedArguments); initializationError != nil {
		return initializationError
	}

	shellExecutor, executorError := application.buildShellExecutor()
	if executorError != nil {
		return executorError
	}
	repositoryManager, managerError := gitrepo.NewRepositoryManager(shellExecutor)
	if managerError != nil {
		return managerError
	}

	executionContext := command.Context()

	switch {
	case parsedArguments.Install:
		aliasService, aliasError := application.buildAliasService(repositoryManager)
		if aliasError != nil {
			return aliasError
		}
		return aliasService.Install(executionContext)
	case parsedArguments.Uninstall:
		aliasService, aliasError := application.buildAliasService(repositoryManager)
		if aliasError != nil {
			return aliasError
		}
		return aliasService.Uninstall(executionContext)
	default:
		scanService, scanServiceError := scan.NewService(scan.Dependencies{
			Logger:     application.logger,
			Repository: repositoryManager,
			Output:     utils.NewFlushingWriter(os.Stdout),
		})
		if scanServiceError != nil {
			return scanServiceError
		}
		return scanService.Scan(executionContext, scan.Options{
			Revisions:     parsedArguments.Revisions,
			DiffArguments: parsedArguments.DiffArguments,
			Configuration: application.configuration.Scan,
		})
	}
}

func (application *Application) initializeConfiguration(parsedArguments scan.ParsedArguments) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}
	for configurationKey, configurationValue := range scan.DefaultConfigurationValues(scanConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(parsedArguments.ConfigFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if len(parsedArguments.LogLevelOverride) > 0 {
		application.configuration.Common.LogLevel = parsedArguments.LogLevelOverride
	}
	if len(parsedArguments.LogFormatOverride) > 0 {
		application.configuration.Common.LogFormat = parsedArguments.LogFormatOverride
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) buildShellExecutor() (*execshell.ShellExecutor, error) {
	shellExecutor, creationError := execshell.NewShellExecutor(application.logger, execshell.NewOSCommandRunner())
	if creationError != nil {
		return nil, creationError
	}
	if application.humanReadableLoggingEnabled() {
		shellExecutor.RegisterEventObserver(ui.NewConsoleCommandEventLogger(application.logger))
	}
	return shellExecutor, nil
}

func (application *Application) buildAliasService(repositoryManager *gitrepo.RepositoryManager) (*alias.Service, error) {
	return alias.NewService(alias.Dependencies{
		Logger:             application.logger,
		Configurator:       repositoryManager,
		ExecutableResolver: os.Executable,
		Output:             utils.NewFlushingWriter(os.Stdout),
	})
}

func (application *Application) humanReadableLoggingEnabled() bool {
	logFormatValue := strings.TrimSpace(application.configuration.Common.LogFormat)
	return strings.EqualFold(logFormatValue, string(utils.LogFormatConsole))
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}
