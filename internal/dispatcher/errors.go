package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownCommand indicates no handler was registered for a command name.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrInvalidCommand indicates the command is malformed (e.g. has no name).
	ErrInvalidCommand = errors.New("dispatcher: invalid command")

	// ErrCancelled indicates the command was cancelled by a hook.
	ErrCancelled = errors.New("dispatcher: command cancelled by hook")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
