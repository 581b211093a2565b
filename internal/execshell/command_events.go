package execshell

// CommandEventObserver receives lifecycle notifications for the git
// invocations a scan issues (rev-parse, config, diff). The console event
// logger in internal/ui implements it to surface the invocations during
// debugging.
type CommandEventObserver interface {
	// CommandStarted notifies observers that a git invocation is beginning.
	CommandStarted(command ShellCommand)
	// CommandCompleted notifies observers that a git invocation finished and supplies the result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports failures to launch the binary, before any execution result exists.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// noopCommandEventObserver discards all git invocation events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
