package scan

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	installOptionConstant        = "--install"
	uninstallOptionConstant      = "--uninstall"
	helpOptionConstant           = "--help"
	shortHelpOptionConstant      = "-h"
	configOptionConstant         = "--config"
	logLevelOptionConstant       = "--log-level"
	logFormatOptionConstant      = "--log-format"
	optionPrefixConstant         = "-"
	optionValueSeparatorConstant = "="

	missingOptionValueMessageConstant = "option %s requires a value"
	invalidOptionValueMessageConstant = "invalid value %q for option %s"
)

// ParsedArguments holds the result of partitioning raw command-line
// arguments into tool options, revision arguments, and diff options that are
// forwarded to git verbatim.
type ParsedArguments struct {
	Install           bool
	Uninstall         bool
	ShowHelp          bool
	ConfigFilePath    string
	LogLevelOverride  string
	LogFormatOverride string
	Revisions         []string
	DiffArguments     []string
}

// ParseArguments partitions rawArguments without rejecting unknown options:
// anything starting with a dash that the tool does not recognize belongs to
// git diff and is forwarded unchanged, while bare arguments name revisions.
func ParseArguments(rawArguments []string) (ParsedArguments, error) {
	parsedArguments := ParsedArguments{}
	argumentIndex := 0
	for argumentIndex < len(rawArguments) {
		currentArgument := rawArguments[argumentIndex]
		optionName, inlineValue, hasInlineValue := strings.Cut(currentArgument, optionValueSeparatorConstant)
		switch optionName {
		case installOptionConstant, uninstallOptionConstant, helpOptionConstant, shortHelpOptionConstant:
			optionEnabled := true
			if hasInlineValue {
				parsedValue, parseError := strconv.ParseBool(inlineValue)
				if parseError != nil {
					return ParsedArguments{}, fmt.Errorf(invalidOptionValueMessageConstant, inlineValue, optionName)
				}
				optionEnabled = parsedValue
			}
			switch optionName {
			case installOptionConstant:
				parsedArguments.Install = optionEnabled
			case uninstallOptionConstant:
				parsedArguments.Uninstall = optionEnabled
			default:
				parsedArguments.ShowHelp = optionEnabled
			}
		case configOptionConstant, logLevelOptionConstant, logFormatOptionConstant:
			optionValue := inlineValue
			if !hasInlineValue {
				argumentIndex++
				if argumentIndex >= len(rawArguments) {
					return ParsedArguments{}, fmt.Errorf(missingOptionValueMessageConstant, optionName)
				}
				optionValue = rawArguments[argumentIndex]
			}
			switch optionName {
			case configOptionConstant:
				parsedArguments.ConfigFilePath = optionValue
			case logLevelOptionConstant:
				parsedArguments.LogLevelOverride = optionValue
			case logFormatOptionConstant:
				parsedArguments.LogFormatOverride = optionValue
			}
		default:
			if strings.HasPrefix(currentArgument, optionPrefixConstant) {
				parsedArguments.DiffArguments = append(parsedArguments.DiffArguments, currentArgument)
			} else {
				parsedArguments.Revisions = append(parsedArguments.Revisions, currentArgument)
			}
		}
		argumentIndex++
	}
	return parsedArguments, nil
}
