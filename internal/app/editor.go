// Package app hosts the editor: it owns the current document, turns key
// events into commands through the shortcut chain, runs them through the
// dispatcher and renders the result.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/dispatcher"
	"github.com/dshills/inkwell/internal/dispatcher/handler"
	"github.com/dshills/inkwell/internal/dispatcher/handlers/format"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/shortcut"
	"github.com/dshills/inkwell/internal/logging"
	"github.com/dshills/inkwell/internal/plugin/lua"
	"github.com/dshills/inkwell/internal/renderer"
	"github.com/dshills/inkwell/internal/renderer/markup"
	"github.com/dshills/inkwell/internal/renderer/term"
)

// SeedText is the text of the paragraph in DefaultDocument.
const SeedText = "A line of text in a paragraph."

// DefaultDocument returns the document an editor starts with when none is given.
func DefaultDocument() document.Document {
	return document.New(
		document.NewBlock(document.TypeParagraph, document.NewText(SeedText)),
	)
}

// ChangeFunc observes every document replacement.
type ChangeFunc func(doc document.Document, cmd input.Command)

// Editor holds exactly one current document and replaces it whenever a
// command succeeds.
type Editor struct {
	mu sync.RWMutex

	id     uuid.UUID
	cfg    config.Config
	logger *slog.Logger

	doc   document.Document
	scope document.Range

	chain      shortcut.Chain
	dispatcher *dispatcher.Dispatcher
	markup     renderer.Renderer[markup.View]
	term       renderer.Renderer[term.View]

	scripts   *lua.State
	listeners []ChangeFunc
	closed    bool

	opts options
}

type options struct {
	doc      *document.Document
	scope    *document.Range
	logger   *slog.Logger
	handlers []handler.Provider
}

// Option configures an Editor.
type Option func(*options)

// WithDocument sets the initial document. It is validated and normalized.
func WithDocument(doc document.Document) Option {
	return func(o *options) { o.doc = &doc }
}

// WithScope sets the initial scope. The default covers the whole document.
func WithScope(r document.Range) Option {
	return func(o *options) { o.scope = &r }
}

// WithLogger sets the logger. The default writes to stderr at the
// configured level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHandlers installs extra command handlers next to the format handler.
func WithHandlers(providers ...handler.Provider) Option {
	return func(o *options) { o.handlers = append(o.handlers, providers...) }
}

// New creates an editor from cfg.
func New(cfg config.Config, opts ...Option) (*Editor, error) {
	e := &Editor{
		id:  uuid.New(),
		cfg: cfg.Clone(),
	}
	for _, opt := range opts {
		opt(&e.opts)
	}

	if err := e.bootstrap(); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// bootstrap initializes components in dependency order.
func (e *Editor) bootstrap() error {
	// 1. Logging
	logger := e.opts.logger
	if logger == nil {
		level, err := e.cfg.LogLevel()
		if err != nil {
			return &InitError{Component: "logging", Err: err}
		}
		logger = logging.New(level)
	}
	e.logger = logger.With("session", e.id.String())

	// 2. Document
	doc := DefaultDocument()
	if e.opts.doc != nil {
		doc = *e.opts.doc
	}
	if err := document.Validate(doc); err != nil {
		return &InitError{Component: "document", Err: err}
	}
	e.doc = engine.Normalize(doc)
	e.scope = document.Whole(e.doc)
	if e.opts.scope != nil {
		e.scope = *e.opts.scope
	}

	// 3. Scripts
	var aliases, markAliases []lua.Alias
	if len(e.cfg.Scripts) > 0 {
		scripts, err := lua.LoadScripts(e.cfg.Scripts, lua.WithLogger(e.logger))
		if err != nil {
			e.logger.Warn("script load failed", "err", err)
		}
		if scripts != nil {
			e.scripts = scripts
			aliases, markAliases = scripts.Aliases(), scripts.MarkAliases()
		}
	}

	// 4. Shortcut chain: scripts, then configured shortcuts, then defaults
	chain, err := e.cfg.Chain()
	if err != nil {
		return &InitError{Component: "shortcuts", Err: err}
	}
	if e.scripts != nil {
		chain = chain.Prepend(e.scripts.Plugins()...)
	}
	e.chain = chain

	// 5. Dispatcher
	dcfg := dispatcher.DefaultConfig().WithMetrics().WithLogger(e.logger)
	e.dispatcher = dispatcher.New(dcfg)
	e.dispatcher.Install(format.NewHandler())
	for _, p := range e.opts.handlers {
		e.dispatcher.Install(p)
	}
	e.dispatcher.RegisterPostHook(dispatcher.NewLoggingHook(e.logger))

	// 6. Renderers
	theme, err := e.cfg.Theme()
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	mnodes, mmarks := markup.Nodes(), markup.Marks()
	tnodes, tmarks := theme.Nodes(), term.Marks()
	for _, a := range append(pairs(e.cfg.AliasPairs()), aliases...) {
		mnodes = mnodes.Alias(a.From, a.To)
		tnodes = tnodes.Alias(a.From, a.To)
	}
	for _, a := range append(pairs(e.cfg.MarkAliasPairs()), markAliases...) {
		mmarks = mmarks.Alias(document.Mark(a.From), document.Mark(a.To))
		tmarks = tmarks.Alias(document.Mark(a.From), document.Mark(a.To))
	}
	e.markup = renderer.New(mnodes, mmarks, markup.Text)
	e.term = renderer.New(tnodes, tmarks, theme.Text)

	e.logger.Debug("editor ready",
		"blocks", e.doc.Len(),
		"shortcuts", e.chain.Len(),
		"render", e.cfg.Render.Mode,
	)
	return nil
}

func pairs(ps [][2]string) []lua.Alias {
	out := make([]lua.Alias, len(ps))
	for i, p := range ps {
		out[i] = lua.Alias{From: p[0], To: p[1]}
	}
	return out
}

// ID returns the session id.
func (e *Editor) ID() string {
	return e.id.String()
}

// Logger returns the session logger.
func (e *Editor) Logger() *slog.Logger {
	return e.logger
}

// Document returns the current document.
func (e *Editor) Document() document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc
}

// Scope returns the current scope.
func (e *Editor) Scope() document.Range {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scope
}

// SetScope replaces the current scope. The scope is checked against the
// current document.
func (e *Editor) SetScope(r document.Range) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !r.IsEmpty() {
		if _, err := r.Resolve(e.doc); err != nil {
			return err
		}
	}
	e.scope = r
	return nil
}

// Chain returns the shortcut chain.
func (e *Editor) Chain() shortcut.Chain {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.chain
}

// Reconfigure rebuilds the shortcut chain from cfg, keeping script
// plugins in front. Render settings are fixed at startup.
func (e *Editor) Reconfigure(cfg config.Config) error {
	chain, err := cfg.Chain()
	if err != nil {
		return err
	}
	e.mu.Lock()
	if e.scripts != nil {
		chain = chain.Prepend(e.scripts.Plugins()...)
	}
	e.chain = chain
	e.cfg.Shortcuts = cfg.Clone().Shortcuts
	e.cfg.Keymap = cfg.Keymap
	e.mu.Unlock()

	e.logger.Info("shortcuts reloaded", "shortcuts", chain.Len())
	return nil
}

// Dispatcher returns the command dispatcher.
func (e *Editor) Dispatcher() *dispatcher.Dispatcher {
	return e.dispatcher
}

// OnChange registers fn to run after every document replacement.
func (e *Editor) OnChange(fn ChangeFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// HandleKey offers ev to the shortcut chain with the current scope.
// It reports whether a plugin claimed the event; a claimed event that
// fails returns the command's error.
func (e *Editor) HandleKey(ev key.Event) (bool, error) {
	e.mu.RLock()
	cmd, ok := e.chain.Handle(ev, e.scope)
	e.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, e.Execute(cmd)
}

// Execute runs cmd against the current document. Commands without a scope
// use the editor's current scope. The document is replaced only when the
// handler succeeds; no-op results return nil.
func (e *Editor) Execute(cmd input.Command) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if _, ok := cmd.Payload.Scope(); !ok {
		cmd = cmd.WithScope(e.scope)
	}
	next, result := e.dispatcher.Execute(e.doc, cmd)
	if result.Status == handler.StatusOK {
		e.doc = next
	}
	listeners := append([]ChangeFunc(nil), e.listeners...)
	e.mu.Unlock()

	switch result.Status {
	case handler.StatusOK:
		for _, fn := range listeners {
			fn(next, cmd)
		}
		return nil
	case handler.StatusNoOp:
		return nil
	case handler.StatusCancelled:
		return &CommandError{Command: cmd.Name, Err: fmt.Errorf("%w: %s", dispatcher.ErrCancelled, result.Message)}
	default:
		return &CommandError{Command: cmd.Name, Err: result.Error}
	}
}

// Markup renders the current document as markup.
func (e *Editor) Markup() string {
	return markup.HTML(e.markup, e.Document())
}

// Lines renders the current document as styled terminal lines.
func (e *Editor) Lines() []term.Line {
	return term.Lines(e.term, e.Document())
}

// View renders the current document in the configured mode: markup text,
// or the plain text of the terminal lines.
func (e *Editor) View() string {
	if e.cfg.Render.Mode == config.RenderTerm {
		lines := e.Lines()
		parts := make([]string, len(lines))
		for i, l := range lines {
			parts[i] = l.String()
		}
		return strings.Join(parts, "\n")
	}
	return e.Markup()
}

// Close releases script resources. The editor rejects commands afterwards.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.scripts != nil {
		e.scripts.Close()
	}
}
