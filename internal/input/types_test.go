package input

import (
	"testing"

	"github.com/dshills/inkwell/internal/document"
)

func TestCommandWithCopiesPayload(t *testing.T) {
	base := NewCommand("toggle_mark", Payload{PayloadMark: "bold"})
	scoped := base.WithScope(document.TextRange(document.Path{0}, 0, 3))

	if _, ok := base.Payload.Scope(); ok {
		t.Error("WithScope must not modify the original payload")
	}
	scope, ok := scoped.Payload.Scope()
	if !ok || scope.Focus.Offset != 3 {
		t.Errorf("Scope() = %v, %v", scope, ok)
	}
	if scoped.Payload.GetString(PayloadMark) != "bold" {
		t.Errorf("mark = %q, want bold", scoped.Payload.GetString(PayloadMark))
	}
}

func TestNewCommandCopiesPayload(t *testing.T) {
	payload := Payload{PayloadType: "code"}
	cmd := NewCommand("toggle_block", payload)
	payload[PayloadType] = "changed"

	if got := cmd.Payload.GetString(PayloadType); got != "code" {
		t.Errorf("type = %q, want code", got)
	}
}

func TestPayloadAccessors(t *testing.T) {
	r := document.Whole(document.New(document.NewBlock(document.TypeParagraph)))
	p := Payload{
		"s":          "str",
		"m":          document.MarkItalic,
		"b":          true,
		PayloadScope: &r,
	}
	if p.GetString("s") != "str" || p.GetString("m") != "italic" || p.GetString("b") != "" {
		t.Error("GetString returned unexpected values")
	}
	if !p.GetBool("b") || p.GetBool("s") {
		t.Error("GetBool returned unexpected values")
	}
	if _, ok := p.Scope(); !ok {
		t.Error("pointer scope should be accepted")
	}

	var empty Payload
	if _, ok := empty.Get("x"); ok {
		t.Error("nil payload should have no values")
	}
	if empty.Clone() == nil {
		t.Error("Clone of nil should return an empty payload")
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{SourceAPI, "api"},
		{SourceKeyboard, "keyboard"},
		{SourceScript, "script"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}
