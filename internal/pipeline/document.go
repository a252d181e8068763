package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrEmptyDocument = errors.New("empty document")

// Output formats understood by EncodeDocument.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DecodeDocument reads one JSON or YAML document. JSON is read by the YAML
// decoder, which accepts it as a subset.
func DecodeDocument(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func EncodeDocument(w io.Writer, doc any, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
