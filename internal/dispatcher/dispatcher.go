package dispatcher

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/inkwell/internal/dispatcher/handler"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
)

// Dispatcher routes commands to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	config   Config
	metrics  *Metrics

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Execute runs cmd against doc.
//
// The returned document is the handler's result when the status is OK and
// doc itself otherwise. Unknown names produce an error result wrapping
// ErrUnknownCommand; recovered panics wrap ErrPanic.
func (d *Dispatcher) Execute(doc document.Document, cmd input.Command) (document.Document, handler.Result) {
	startTime := time.Now()
	result := d.execute(doc, &cmd)

	d.runPostHooks(&cmd, &result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(cmd.Name, time.Since(startTime), result.Status)
	}

	if result.Status != handler.StatusOK {
		return doc, result
	}
	return result.Document, result
}

func (d *Dispatcher) execute(doc document.Document, cmd *input.Command) handler.Result {
	if cmd.Name == "" {
		return handler.Error(ErrInvalidCommand)
	}

	if !d.runPreHooks(cmd, doc) {
		return handler.CancelledWithMessage("cancelled by hook")
	}

	h := d.registry.Get(cmd.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name))
	}

	if d.config.RecoverFromPanic {
		return d.executeWithRecovery(h, *cmd, doc)
	}
	return h.Handle(*cmd, doc)
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, cmd input.Command, doc document.Document) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w for %s: %v", ErrPanic, cmd.Name, r))

			if d.config.Logger != nil {
				d.config.Logger.Error("handler panic",
					slog.String("command", cmd.Name),
					slog.Any("panic", r),
					slog.String("stack", string(stack[:n])))
			}
			if d.metrics != nil {
				d.metrics.RecordPanic(cmd.Name)
			}
		}
	}()

	return h.Handle(cmd, doc)
}

// RegisterHandler registers a handler for an exact command name.
func (d *Dispatcher) RegisterHandler(name string, h handler.Handler) {
	d.registry.Register(name, h)
}

// RegisterHandlerFunc registers a handler function for a command name.
func (d *Dispatcher) RegisterHandlerFunc(name string, fn handler.Func) {
	d.registry.Register(name, handler.NewHandlerFunc(fn))
}

// Install registers p for every command it provides.
func (d *Dispatcher) Install(p handler.Provider) {
	for _, name := range p.Commands() {
		d.registry.Register(name, p)
	}
}

// UnregisterHandler removes the handlers for a command name.
func (d *Dispatcher) UnregisterHandler(name string) {
	d.registry.Unregister(name)
}

// Has reports whether a handler is registered for name.
func (d *Dispatcher) Has(name string) bool {
	return d.registry.Has(name)
}

// Commands returns the registered command names, sorted.
func (d *Dispatcher) Commands() []string {
	return d.registry.List()
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the command.
func (d *Dispatcher) runPreHooks(cmd *input.Command, doc document.Document) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(cmd, doc) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(cmd *input.Command, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(cmd, result)
	}
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
