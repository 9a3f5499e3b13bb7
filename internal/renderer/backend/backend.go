// Package backend provides the terminal backend that paints views and
// reports key presses.
package backend

import (
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventClosed is reported once the backend has shut down.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init prepares the backend for drawing.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the width and height in cells.
	Size() (width, height int)

	// Clear blanks the back buffer.
	Clear()

	// SetCell sets a cell in the back buffer.
	SetCell(x, y int, cell core.Cell)

	// Show flushes the back buffer to the display.
	Show()

	// PollEvent blocks until the next event.
	PollEvent() Event
}

// Draw clears b and paints rows from the top-left corner, clipping to the
// backend size, then shows the result.
func Draw(b Backend, rows [][]core.Cell) {
	width, height := b.Size()
	b.Clear()
	for y, row := range rows {
		if y >= height {
			break
		}
		x := 0
		for _, c := range row {
			if c.IsContinuation() {
				continue
			}
			if x+c.Width > width {
				break
			}
			b.SetCell(x, y, c)
			x += c.Width
		}
	}
	b.Show()
}
