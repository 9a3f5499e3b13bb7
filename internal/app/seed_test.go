package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/inkwell/internal/document"
)

func sampleDocument() document.Document {
	return document.New(
		document.NewBlock(document.TypeParagraph,
			document.NewText("plain "),
			document.NewText("bold", document.MarkBold),
		),
		document.NewBlock(document.TypeCode, document.NewText("x := 1")),
	)
}

func TestWriteLoadDocument(t *testing.T) {
	dir := t.TempDir()
	doc := sampleDocument()

	tests := []struct {
		format string
		file   string
	}{
		{FormatJSON, "seed.json"},
		{FormatYAML, "seed.yaml"},
		{FormatLegacy, "seed-legacy.json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteDocument(&buf, doc, tt.format); err != nil {
				t.Fatalf("WriteDocument() error = %v", err)
			}
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := LoadDocument(path)
			if err != nil {
				t.Fatalf("LoadDocument() error = %v", err)
			}
			if !got.Equal(doc) {
				t.Errorf("LoadDocument() = %v, want %v", got, doc)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[{"type":"paragraph","children":[{"text":"a"}]}]`, FormatJSON},
		{`{"document":{"nodes":[]}}`, FormatLegacy},
		{`not json`, FormatJSON},
	}
	for _, tt := range tests {
		if got := DetectFormat([]byte(tt.in)); got != tt.want {
			t.Errorf("DetectFormat(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := ReadDocument(nil, "xml"); err == nil {
		t.Error("ReadDocument(xml) succeeded")
	}
	if err := WriteDocument(&bytes.Buffer{}, sampleDocument(), "xml"); err == nil {
		t.Error("WriteDocument(xml) succeeded")
	}
}
