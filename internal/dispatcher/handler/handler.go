// Package handler provides the handler interface and result types for command dispatch.
package handler

import (
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
)

// Handler processes a specific command or set of commands.
//
// A handler receives the current document by value and reports the new
// document in its Result. It must never modify the document it was given.
type Handler interface {
	// Handle executes the command against doc and returns a result.
	Handle(cmd input.Command, doc document.Document) Result

	// CanHandle returns true if this handler can process the command.
	CanHandle(name string) bool

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// Provider is a handler that serves a fixed set of command names.
type Provider interface {
	Handler

	// Commands lists the command names the handler serves.
	Commands() []string
}

// Func is the signature of a plain handler function.
type Func func(cmd input.Command, doc document.Document) Result

// HandlerFunc is a function adapter for the Handler interface.
type HandlerFunc struct {
	fn   Func
	prio int
}

// NewHandlerFunc creates a HandlerFunc from a function.
func NewHandlerFunc(fn Func) *HandlerFunc {
	return &HandlerFunc{fn: fn}
}

// NewHandlerFuncWithPriority creates a HandlerFunc with a specified priority.
func NewHandlerFuncWithPriority(fn Func, priority int) *HandlerFunc {
	return &HandlerFunc{fn: fn, prio: priority}
}

// Handle implements Handler.Handle.
func (f *HandlerFunc) Handle(cmd input.Command, doc document.Document) Result {
	if f.fn == nil {
		return Errorf("handler function is nil")
	}
	return f.fn(cmd, doc)
}

// CanHandle implements Handler.CanHandle.
// HandlerFunc always returns true; caller must ensure correct routing.
func (f *HandlerFunc) CanHandle(string) bool {
	return true
}

// Priority implements Handler.Priority.
func (f *HandlerFunc) Priority() int {
	return f.prio
}

// SimpleHandler wraps a function with an explicit command name.
type SimpleHandler struct {
	// Name is the command this handler processes.
	Name string

	// Fn is the handler function.
	Fn Func

	// Prio is the handler priority.
	Prio int
}

// Handle implements Handler.Handle.
func (h *SimpleHandler) Handle(cmd input.Command, doc document.Document) Result {
	if h.Fn == nil {
		return Errorf("handler function is nil")
	}
	return h.Fn(cmd, doc)
}

// CanHandle implements Handler.CanHandle.
func (h *SimpleHandler) CanHandle(name string) bool {
	return name == h.Name
}

// Priority implements Handler.Priority.
func (h *SimpleHandler) Priority() int {
	return h.Prio
}

// Commands implements Provider.
func (h *SimpleHandler) Commands() []string {
	return []string{h.Name}
}
