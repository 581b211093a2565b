// Package ui renders git command lifecycle events as concise console
// messages. Detailed telemetry continues to flow through structured loggers;
// these helpers exist so interactive runs show what the tool is doing.
package ui
