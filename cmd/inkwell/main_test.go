package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/inkwell/internal/app"
	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/logging"
)

func TestParseExec(t *testing.T) {
	cmds := parseExec(" toggle_mark:italic, ,toggle_code_block ")
	if len(cmds) != 2 {
		t.Fatalf("parseExec() = %v", cmds)
	}
	if cmds[0].Name != "toggle_mark" || cmds[0].Payload.GetString(input.PayloadMark) != "italic" {
		t.Errorf("cmds[0] = %+v", cmds[0])
	}
	if cmds[1].Name != "toggle_code_block" || len(cmds[1].Payload) != 0 {
		t.Errorf("cmds[1] = %+v", cmds[1])
	}
	if cmds[0].Source != input.SourceAPI {
		t.Errorf("source = %v", cmds[0].Source)
	}
	if got := parseExec(""); len(got) != 0 {
		t.Errorf("parseExec(\"\") = %v", got)
	}
}

func TestExecAndWriteOutput(t *testing.T) {
	editor, err := app.New(config.Default(), app.WithLogger(logging.NewNop()))
	if err != nil {
		t.Fatal(err)
	}
	defer editor.Close()

	for _, cmd := range parseExec("toggle_mark:bold,toggle_block:code") {
		if err := editor.Execute(cmd); err != nil {
			t.Fatalf("Execute(%s) error = %v", cmd.Name, err)
		}
	}

	var buf bytes.Buffer
	if err := writeOutput(&buf, editor, "view"); err != nil {
		t.Fatal(err)
	}
	want := "<pre><code><strong>" + app.SeedText + "</strong></code></pre>\n"
	if buf.String() != want {
		t.Errorf("view = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := writeOutput(&buf, editor, app.FormatLegacy); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"object":"block"`) {
		t.Errorf("legacy output = %s", buf.String())
	}

	if got := documentSummary(editor.Document()); got != "1 blocks, 30 chars" {
		t.Errorf("documentSummary() = %q", got)
	}
}
