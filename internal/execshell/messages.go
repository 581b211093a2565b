package execshell

import (
	"fmt"
	"strings"
)

const (
	commandStartedTemplateConstant         = "Running %s"
	commandSucceededTemplateConstant       = "Completed %s"
	commandFailedTemplateConstant          = "%s failed with exit code %d"
	commandExecutionFailedTemplateConstant = "%s failed: %s"
	commandLabelSeparatorConstant          = " "
	workingDirectorySuffixTemplateConstant = " (in %s)"
	standardErrorSuffixTemplateConstant    = ": %s"
	unknownFailureMessageConstant          = "unknown error"
	gitRevParseSubcommandConstant          = "rev-parse"
	gitConfigSubcommandConstant            = "config"
	gitBranchSubcommandConstant            = "branch"
	gitDiffSubcommandConstant              = "diff"
	gitRevParseOperationSummaryConstant    = "locating the repository root"
	gitConfigOperationSummaryConstant      = "accessing git configuration"
	gitBranchOperationSummaryConstant      = "listing local branches"
	gitDiffOperationSummaryConstant        = "generating the diff"
	operationSummarySuffixTemplateConstant = " while %s"
	flagPrefixConstant                     = "-"
)

// CommandMessageFormatter builds log and error messages describing command execution.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return fmt.Sprintf(commandStartedTemplateConstant, formatter.formatCommandLabel(command))
}

// BuildSuccessMessage formats the message describing a command that exited successfully.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return fmt.Sprintf(commandSucceededTemplateConstant, formatter.formatCommandLabel(command))
}

// BuildFailureMessage formats the message describing a non-zero exit, including
// the operation being attempted and any captured standard error output.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	baseMessage := fmt.Sprintf(commandFailedTemplateConstant, formatter.formatCommandLabel(command), result.ExitCode)
	baseMessage += formatter.formatOperationSummarySuffix(command)

	trimmedStandardError := strings.TrimSpace(result.StandardError)
	if len(trimmedStandardError) == 0 {
		return baseMessage
	}
	return baseMessage + fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

// BuildExecutionFailureMessage formats the message describing a command that could not run.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, formatter.formatCommandLabel(command), failureMessage)
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandLabelSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandLabelSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) > 0 {
		commandLabel += fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
	}
	return commandLabel
}

func (formatter CommandMessageFormatter) formatOperationSummarySuffix(command ShellCommand) string {
	operationSummary := formatter.describeGitOperation(command)
	if len(operationSummary) == 0 {
		return ""
	}
	return fmt.Sprintf(operationSummarySuffixTemplateConstant, operationSummary)
}

func (formatter CommandMessageFormatter) describeGitOperation(command ShellCommand) string {
	if command.Name != CommandGit {
		return ""
	}

	switch formatter.firstNonFlagArgument(command.Details.Arguments) {
	case gitRevParseSubcommandConstant:
		return gitRevParseOperationSummaryConstant
	case gitConfigSubcommandConstant:
		return gitConfigOperationSummaryConstant
	case gitBranchSubcommandConstant:
		return gitBranchOperationSummaryConstant
	case gitDiffSubcommandConstant:
		return gitDiffOperationSummaryConstant
	default:
		return ""
	}
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		if !strings.HasPrefix(argument, flagPrefixConstant) {
			return argument
		}
	}
	return ""
}
