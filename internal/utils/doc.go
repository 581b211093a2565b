// Package utils exposes reusable helpers consumed across the CLI.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging, plus a writer
// wrapper that keeps streamed report output visible immediately.
package utils
