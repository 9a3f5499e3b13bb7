package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"b", NewRuneEvent('b', ModNone)},
		{"@", NewRuneEvent('@', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Ctrl+B", NewRuneEvent('b', ModCtrl)},
		{"Ctrl+b", NewRuneEvent('b', ModCtrl)},
		{"Meta+m", NewRuneEvent('m', ModMeta)},
		{"Ctrl+Shift+P", NewRuneEvent('p', ModCtrl|ModShift)},
		{"Shift+P", NewRuneEvent('P', ModShift)},
		{"Ctrl+Enter", NewSpecialEvent(KeyEnter, ModCtrl)},
		{"<C-i>", NewRuneEvent('i', ModCtrl)},
		{"<D-m>", NewRuneEvent('m', ModMeta)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("   "); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(blank) err = %v, want ErrEmptySpec", err)
	}

	for _, spec := range []string{"Hyper+b", "Ctrl+", "Ctrl+nope", "<X-b>", "bogus"} {
		_, err := Parse(spec)
		if !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidSpec", spec, err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, spec := range []string{"Ctrl+b", "Meta+m", "Enter", "a", "Ctrl+Alt+x"} {
		ev := MustParse(spec)
		again, err := Parse(ev.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", ev.String(), err)
		}
		if !again.Equals(ev) {
			t.Errorf("round trip %q: got %#v", spec, again)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("Hyper+b")
}

func TestKeyFromName(t *testing.T) {
	if KeyFromName("RETURN") != KeyEnter {
		t.Error("RETURN should map to Enter")
	}
	if KeyFromName("nope") != KeyNone {
		t.Error("unknown names should map to KeyNone")
	}
	if !KeyTab.IsSpecial() || KeyRune.IsSpecial() {
		t.Error("IsSpecial mismatch")
	}
}
