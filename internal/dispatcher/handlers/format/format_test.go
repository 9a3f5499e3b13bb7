package format

import (
	"errors"
	"testing"

	"github.com/dshills/inkwell/internal/dispatcher/handler"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
)

const sentence = "A line of text in a paragraph."

func seed() document.Document {
	return document.New(document.NewBlock(document.TypeParagraph, document.NewText(sentence)))
}

func TestToggleMarkCommand(t *testing.T) {
	h := NewHandler()
	doc := seed()
	cmd := input.NewCommand(CommandToggleMark, input.Payload{input.PayloadMark: "bold"}).
		WithScope(document.Whole(doc))

	res := h.Handle(cmd, doc)
	if !res.IsOK() {
		t.Fatalf("toggle_mark: %v %v", res.Status, res.Error)
	}
	want := document.New(document.NewBlock(document.TypeParagraph, document.NewText(sentence, document.MarkBold)))
	if !res.Document.Equal(want) {
		t.Errorf("got %s, want %s", res.Document, want)
	}
	if res.GetDataString(input.PayloadMark) != "bold" {
		t.Errorf("result data = %v", res.Data)
	}

	again := h.Handle(cmd, res.Document)
	if !again.IsOK() || !again.Document.Equal(doc) {
		t.Errorf("second toggle = %s, want seed", again.Document)
	}
}

func TestLegacyCommands(t *testing.T) {
	h := NewHandler()
	doc := seed()
	scope := document.Whole(doc)

	bold := h.Handle(input.NewCommand(CommandToggleBoldMark, nil).WithScope(scope), doc)
	if !bold.IsOK() {
		t.Fatalf("toggle_bold_mark: %v", bold.Error)
	}
	if text, _ := bold.Document.Block(0); !text.Children()[0].Marks().Has(document.MarkBold) {
		t.Errorf("bold not applied: %s", bold.Document)
	}

	code := h.Handle(input.NewCommand(CommandToggleCodeBlock, nil).WithScope(scope), doc)
	if !code.IsOK() {
		t.Fatalf("toggle_code_block: %v", code.Error)
	}
	if b, _ := code.Document.Block(0); b.Type() != document.TypeCode {
		t.Errorf("type = %q, want code", b.Type())
	}
}

func TestBlockCommands(t *testing.T) {
	h := NewHandler()
	doc := seed()
	scope := document.BlockRange(doc, document.Path{0})

	tests := []struct {
		name    string
		cmd     string
		typ     string
		start   document.Document
		wantTyp string
	}{
		{"toggle on", CommandToggleBlock, "code", doc, "code"},
		{"set quote", CommandSetBlock, "quote", doc, "quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := input.NewCommand(tt.cmd, input.Payload{input.PayloadType: tt.typ}).WithScope(scope)
			res := h.Handle(cmd, tt.start)
			if !res.IsOK() {
				t.Fatalf("%s: %v", tt.cmd, res.Error)
			}
			b, _ := res.Document.Block(0)
			if b.Type() != tt.wantTyp {
				t.Errorf("type = %q, want %q", b.Type(), tt.wantTyp)
			}
		})
	}
}

func TestAddRemoveMarkCommands(t *testing.T) {
	h := NewHandler()
	doc := seed()
	scope := document.Whole(doc)
	payload := input.Payload{input.PayloadMark: "italic"}

	added := h.Handle(input.NewCommand(CommandAddMark, payload).WithScope(scope), doc)
	addedTwice := h.Handle(input.NewCommand(CommandAddMark, payload).WithScope(scope), added.Document)
	if !added.Document.Equal(addedTwice.Document) {
		t.Errorf("add_mark should be idempotent: %s vs %s", added.Document, addedTwice.Document)
	}
	removed := h.Handle(input.NewCommand(CommandRemoveMark, payload).WithScope(scope), addedTwice.Document)
	if !removed.Document.Equal(doc) {
		t.Errorf("remove_mark = %s, want seed", removed.Document)
	}
}

func TestHandleFailures(t *testing.T) {
	h := NewHandler()
	doc := seed()

	res := h.Handle(input.NewCommand(CommandToggleMark, nil).WithScope(document.Whole(doc)), doc)
	if !errors.Is(res.Error, ErrMissingArgument) {
		t.Errorf("missing mark err = %v", res.Error)
	}

	res = h.Handle(input.NewCommand(CommandSetBlock, nil).WithScope(document.Whole(doc)), doc)
	if !errors.Is(res.Error, ErrMissingArgument) {
		t.Errorf("missing type err = %v", res.Error)
	}

	bad := document.TextRange(document.Path{7}, 0, 1)
	res = h.Handle(input.NewCommand(CommandToggleBoldMark, nil).WithScope(bad), doc)
	if !errors.Is(res.Error, document.ErrInvalidScope) {
		t.Errorf("invalid scope err = %v", res.Error)
	}

	res = h.Handle(input.NewCommand(CommandToggleBoldMark, nil), doc)
	if res.Status != handler.StatusNoOp {
		t.Errorf("missing scope status = %v, want no-op", res.Status)
	}

	res = h.Handle(input.NewCommand("delete_everything", nil), doc)
	if !res.IsError() {
		t.Error("unknown command should fail")
	}
}

func TestCanHandle(t *testing.T) {
	h := NewHandlerWithPriority(3)
	for _, name := range h.Commands() {
		if !h.CanHandle(name) {
			t.Errorf("CanHandle(%q) = false", name)
		}
	}
	if h.CanHandle("toggle_italic") {
		t.Error("CanHandle accepted an unknown name")
	}
	if h.Priority() != 3 {
		t.Errorf("Priority() = %d", h.Priority())
	}
}
