package cmd

import (
	"errors"

	"github.com/anas-shakeel/bmpfilter/internal/bmp"
	"github.com/anas-shakeel/bmpfilter/internal/bmpio"
)

var errArgumentCount = errors.New("too many arguments")

type ExitCodeError struct {
	originalError error
	exitCode      ExitCode
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.originalError
}

func (e *ExitCodeError) ExitCode() int {
	return int(e.exitCode)
}

func newExitCodeError(err error, code ExitCode) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}

// exitCodeFor returns the exit code for the kind of err, falling back to
// defaultCode for errors of no known kind.
func exitCodeFor(err error, defaultCode ExitCode) ExitCode {
	switch {
	case errors.Is(err, errArgumentCount):
		return ExitCodeArguments
	case errors.Is(err, bmpio.ErrSeek):
		return ExitCodeSeek
	case errors.Is(err, bmpio.ErrRead):
		return ExitCodeRead
	case errors.Is(err, bmpio.ErrAlloc):
		return ExitCodeAlloc
	case errors.Is(err, bmpio.ErrWrite):
		return ExitCodeWrite
	case errors.Is(err, bmp.ErrOutOfBounds), errors.Is(err, bmp.ErrInvalidDimensions):
		return ExitCodeBounds
	}
	return defaultCode
}

// classify wraps err into an *ExitCodeError carrying the exit code of its kind.
func classify(err error, defaultCode ExitCode) error {
	if err == nil {
		return nil
	}

	exitCodeError := &ExitCodeError{}
	if errors.As(err, &exitCodeError) {
		return err
	}

	return newExitCodeError(err, exitCodeFor(err, defaultCode))
}
