package dispatcher

import (
	"log/slog"

	"github.com/dshills/inkwell/internal/dispatcher/handler"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
)

// PreDispatchHook is called before a command is dispatched.
// Returning false cancels the dispatch.
type PreDispatchHook interface {
	// PreDispatch may modify the command. It must not retain doc.
	PreDispatch(cmd *input.Command, doc document.Document) bool
}

// PostDispatchHook is called after a command is dispatched.
type PostDispatchHook interface {
	// PostDispatch may inspect or annotate the result.
	PostDispatch(cmd *input.Command, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(cmd *input.Command, doc document.Document) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(cmd *input.Command, doc document.Document) bool {
	return f(cmd, doc)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(cmd *input.Command, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(cmd *input.Command, result *handler.Result) {
	f(cmd, result)
}

// LoggingHook logs every dispatched command and its outcome.
type LoggingHook struct {
	logger *slog.Logger
}

// NewLoggingHook creates a post-dispatch hook writing to logger.
func NewLoggingHook(logger *slog.Logger) *LoggingHook {
	return &LoggingHook{logger: logger}
}

// PostDispatch implements PostDispatchHook.
func (h *LoggingHook) PostDispatch(cmd *input.Command, result *handler.Result) {
	if h.logger == nil {
		return
	}
	attrs := []any{
		slog.String("command", cmd.Name),
		slog.String("source", cmd.Source.String()),
		slog.String("status", result.Status.String()),
	}
	if result.Error != nil {
		h.logger.Warn("command failed", append(attrs, slog.Any("error", result.Error))...)
		return
	}
	h.logger.Debug("command dispatched", attrs...)
}
