package handler

import (
	"errors"
	"testing"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
)

func TestHandlerFunc(t *testing.T) {
	doc := document.New(document.NewBlock("paragraph", document.NewText("x")))
	h := NewHandlerFuncWithPriority(func(cmd input.Command, d document.Document) Result {
		return Success(d).WithMessage(cmd.Name)
	}, 5)

	if h.Priority() != 5 {
		t.Errorf("Priority() = %d, want 5", h.Priority())
	}
	if !h.CanHandle("anything") {
		t.Error("HandlerFunc should accept any name")
	}
	res := h.Handle(input.NewCommand("ping", nil), doc)
	if !res.IsOK() || res.Message != "ping" || !res.Document.Equal(doc) {
		t.Errorf("Handle = %+v", res)
	}

	var nilFn HandlerFunc
	if res := nilFn.Handle(input.Command{}, doc); !res.IsError() {
		t.Errorf("nil function should error, got %v", res.Status)
	}
}

func TestSimpleHandler(t *testing.T) {
	h := &SimpleHandler{Name: "noop", Fn: func(input.Command, document.Document) Result { return NoOp() }}
	if !h.CanHandle("noop") || h.CanHandle("other") {
		t.Error("CanHandle should match only its name")
	}
	if got := h.Commands(); len(got) != 1 || got[0] != "noop" {
		t.Errorf("Commands() = %v", got)
	}
	if res := h.Handle(input.Command{}, document.Document{}); res.Status != StatusNoOp {
		t.Errorf("Status = %v, want no-op", res.Status)
	}
	if res := (&SimpleHandler{}).Handle(input.Command{}, document.Document{}); !res.IsError() {
		t.Error("missing Fn should error")
	}
}

func TestResult(t *testing.T) {
	base := NoOpWithMessage("nothing")
	withData := base.WithData("count", 2).WithData("flag", true).WithData("name", "bold")

	if base.Data != nil {
		t.Error("WithData modified the receiver")
	}
	if !withData.GetDataBool("flag") || withData.GetDataString("name") != "bold" {
		t.Errorf("data = %v", withData.Data)
	}
	if withData.GetDataString("count") != "" || withData.GetDataBool("missing") {
		t.Error("typed getters should ignore other types")
	}

	err := errors.New("boom")
	if res := Error(err); !res.IsError() || !errors.Is(res.Error, err) {
		t.Errorf("Error() = %+v", res)
	}
	if res := Errorf("bad %d", 1); res.Error.Error() != "bad 1" {
		t.Errorf("Errorf() = %v", res.Error)
	}
	if res := CancelledWithMessage("stop"); res.Status != StatusCancelled || res.Message != "stop" {
		t.Errorf("CancelledWithMessage() = %+v", res)
	}

	statuses := map[ResultStatus]string{
		StatusOK: "ok", StatusNoOp: "no-op", StatusError: "error", StatusCancelled: "cancelled", 99: "unknown",
	}
	for s, want := range statuses {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
