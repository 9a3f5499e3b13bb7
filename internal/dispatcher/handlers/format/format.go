package format

import (
	"errors"
	"fmt"

	"github.com/dshills/inkwell/internal/dispatcher/handler"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/input"
)

// Command names for format operations.
const (
	CommandToggleMark  = "toggle_mark"
	CommandToggleBlock = "toggle_block"
	CommandAddMark     = "add_mark"
	CommandRemoveMark  = "remove_mark"
	CommandSetBlock    = "set_block"

	CommandToggleBoldMark  = "toggle_bold_mark"  // toggle_mark with mark=bold
	CommandToggleCodeBlock = "toggle_code_block" // toggle_block with type=code
)

// ErrMissingArgument indicates a required payload entry is absent.
var ErrMissingArgument = errors.New("format: missing argument")

type markOp func(document.Document, document.Range, document.Mark) (document.Document, error)

type blockOp func(document.Document, document.Range, string) (document.Document, error)

// Handler handles formatting commands.
type Handler struct {
	priority int
}

// NewHandler creates a new format handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NewHandlerWithPriority creates a format handler with the given priority.
func NewHandlerWithPriority(priority int) *Handler {
	return &Handler{priority: priority}
}

// Commands implements handler.Provider.
func (h *Handler) Commands() []string {
	return []string{
		CommandToggleMark, CommandToggleBlock,
		CommandAddMark, CommandRemoveMark, CommandSetBlock,
		CommandToggleBoldMark, CommandToggleCodeBlock,
	}
}

// CanHandle returns true if this handler can process the command.
func (h *Handler) CanHandle(name string) bool {
	switch name {
	case CommandToggleMark, CommandToggleBlock,
		CommandAddMark, CommandRemoveMark, CommandSetBlock,
		CommandToggleBoldMark, CommandToggleCodeBlock:
		return true
	}
	return false
}

// Priority implements handler.Handler.
func (h *Handler) Priority() int {
	return h.priority
}

// Handle processes a format command.
func (h *Handler) Handle(cmd input.Command, doc document.Document) handler.Result {
	switch cmd.Name {
	case CommandToggleMark:
		return h.mark(cmd, doc, cmd.Payload.GetString(input.PayloadMark), engine.ToggleMark)
	case CommandAddMark:
		return h.mark(cmd, doc, cmd.Payload.GetString(input.PayloadMark), engine.AddMark)
	case CommandRemoveMark:
		return h.mark(cmd, doc, cmd.Payload.GetString(input.PayloadMark), engine.RemoveMark)
	case CommandToggleBoldMark:
		return h.mark(cmd, doc, string(document.MarkBold), engine.ToggleMark)
	case CommandToggleBlock:
		return h.block(cmd, doc, cmd.Payload.GetString(input.PayloadType), engine.ToggleBlock)
	case CommandSetBlock:
		return h.block(cmd, doc, cmd.Payload.GetString(input.PayloadType), engine.SetBlockType)
	case CommandToggleCodeBlock:
		return h.block(cmd, doc, document.TypeCode, engine.ToggleBlock)
	default:
		return handler.Errorf("unknown format command: %s", cmd.Name)
	}
}

func (h *Handler) mark(cmd input.Command, doc document.Document, mark string, op markOp) handler.Result {
	if mark == "" {
		return handler.Error(fmt.Errorf("%w: %s requires %q", ErrMissingArgument, cmd.Name, input.PayloadMark))
	}
	scope, ok := cmd.Payload.Scope()
	if !ok || scope.IsEmpty() {
		return handler.NoOpWithMessage("empty scope")
	}

	out, err := op(doc, scope, document.Mark(mark))
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success(out).WithData(input.PayloadMark, mark)
}

func (h *Handler) block(cmd input.Command, doc document.Document, typ string, op blockOp) handler.Result {
	if typ == "" {
		return handler.Error(fmt.Errorf("%w: %s requires %q", ErrMissingArgument, cmd.Name, input.PayloadType))
	}
	scope, ok := cmd.Payload.Scope()
	if !ok || scope.IsEmpty() {
		return handler.NoOpWithMessage("empty scope")
	}

	out, err := op(doc, scope, typ)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success(out).WithData(input.PayloadType, typ)
}
