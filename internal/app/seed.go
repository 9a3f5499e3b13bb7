package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/inkwell/internal/document"
)

// Document encodings understood by LoadDocument and WriteDocument.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatLegacy = "legacy"
)

// LoadDocument reads a seed document. YAML files are chosen by extension;
// JSON files may hold either the record form or a legacy value object.
func LoadDocument(path string) (document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadDocument(data, FormatYAML)
	default:
		return ReadDocument(data, DetectFormat(data))
	}
}

// DetectFormat tells a legacy value object from a record-form JSON array.
func DetectFormat(data []byte) string {
	if gjson.ValidBytes(data) && gjson.GetBytes(data, "document").Exists() {
		return FormatLegacy
	}
	return FormatJSON
}

// ReadDocument decodes data in the given format.
func ReadDocument(data []byte, format string) (document.Document, error) {
	switch format {
	case FormatJSON:
		return document.DecodeJSON(bytes.NewReader(data))
	case FormatYAML:
		return document.DecodeYAML(bytes.NewReader(data))
	case FormatLegacy:
		return document.DecodeLegacy(data)
	default:
		return document.Document{}, fmt.Errorf("unknown document format %q", format)
	}
}

// WriteDocument encodes doc to w in the given format.
func WriteDocument(w io.Writer, doc document.Document, format string) error {
	switch format {
	case FormatJSON:
		return document.EncodeJSON(w, doc)
	case FormatYAML:
		return document.EncodeYAML(w, doc)
	case FormatLegacy:
		data, err := document.EncodeLegacy(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unknown document format %q", format)
	}
}
