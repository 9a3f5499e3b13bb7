package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/renderer/backend"
	"github.com/dshills/inkwell/internal/renderer/core"
	"github.com/dshills/inkwell/internal/renderer/term"
)

// QuitKey ends the event loop.
var QuitKey = key.NewRuneEvent('q', key.ModCtrl)

// Run paints the document on b and processes key events until QuitKey is
// pressed, the backend closes, or ctx is done. The backend must already be
// initialized. Up and Down move the scope between top-level blocks and
// Home selects the whole document.
func (e *Editor) Run(ctx context.Context, b backend.Backend) error {
	status := e.statusLine()
	e.paint(b, status)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := b.PollEvent()
		switch ev.Type {
		case backend.EventClosed:
			return nil
		case backend.EventResize:
			e.paint(b, status)
			continue
		case backend.EventKey:
		default:
			continue
		}

		err := e.handleKeyEvent(ev.Key)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			e.logger.Warn("key failed", "key", ev.Key.String(), "err", err)
			status = err.Error()
		} else {
			status = e.statusLine()
		}
		e.paint(b, status)
	}
}

func (e *Editor) handleKeyEvent(ev key.Event) error {
	if ev.Equals(QuitKey) {
		return ErrQuit
	}
	if handled, err := e.HandleKey(ev); handled {
		return err
	}

	switch ev.Key {
	case key.KeyUp:
		return e.moveScope(-1)
	case key.KeyDown:
		return e.moveScope(1)
	case key.KeyHome:
		return e.SetScope(document.Whole(e.Document()))
	}
	return nil
}

// moveScope selects the top-level block delta positions away from the
// first block of the current scope.
func (e *Editor) moveScope(delta int) error {
	doc := e.Document()
	if doc.Len() == 0 {
		return nil
	}
	cur := 0
	if scope := e.Scope(); !scope.IsEmpty() && len(scope.Anchor.Path) > 0 {
		cur = scope.Anchor.Path[0]
		if delta < 0 && len(scope.Focus.Path) > 0 && scope.Focus.Path[0] < cur {
			cur = scope.Focus.Path[0]
		}
	}
	next := min(max(cur+delta, 0), doc.Len()-1)
	return e.SetScope(document.BlockRange(doc, document.Path{next}))
}

func (e *Editor) statusLine() string {
	return fmt.Sprintf("scope %s | Ctrl+Q quit", e.Scope())
}

func (e *Editor) paint(b backend.Backend, status string) {
	width, height := b.Size()
	lines := e.Lines()
	if height > 0 && len(lines) > height-1 {
		lines = lines[:height-1]
	}
	for i := len(lines); i < height-1; i++ {
		lines = append(lines, nil)
	}
	statusStyle := core.DefaultStyle().WithAttributes(core.AttrReverse)
	lines = append(lines, term.Line(core.CellsFromString(status, statusStyle)))

	for i := range lines {
		lines[i] = term.Clip(lines[i], width)
	}
	backend.Draw(b, term.Rows(lines))
}
