package cmd

// ExitCode is the process exit status of a run.
type ExitCode int

const (
	ExitCodeSuccess   ExitCode = 0
	ExitCodeArguments ExitCode = 1
	ExitCodeSeek      ExitCode = 2
	ExitCodeRead      ExitCode = 3
	ExitCodeAlloc     ExitCode = 4
	ExitCodeWrite     ExitCode = 5
	ExitCodeBounds    ExitCode = 6
)
