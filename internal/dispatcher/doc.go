// Package dispatcher executes commands against documents.
//
// The dispatcher is the command registry: it maps symbolic command names to
// handlers and runs them against the current document. A command is data;
// only the handler registered for its name interprets it.
//
// # Execution
//
// When a command is executed:
//
//  1. Pre-dispatch hooks are called (can modify or cancel the command)
//  2. The registry finds the highest-priority handler for the name
//  3. The handler runs with the current document (with optional panic recovery)
//  4. Post-dispatch hooks are called
//  5. Metrics are recorded (if enabled)
//
// Execute always returns a document. On success it is the handler's new
// document; on any failure it is the input document, untouched.
//
// # Handlers
//
// Handlers implement handler.Handler:
//
//	type Handler interface {
//	    Handle(cmd input.Command, doc document.Document) Result
//	    CanHandle(name string) bool
//	    Priority() int
//	}
//
// Handlers that serve several names implement handler.Provider and are
// installed with Install.
//
// # Thread Safety
//
// Registration and execution are safe for concurrent use. Documents are
// immutable values, so the dispatcher never shares mutable state with
// handlers.
package dispatcher
