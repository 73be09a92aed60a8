package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/errors"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats accepted by [WriteView] and [ReadView].
var Formats = []string{FormatJSON, FormatYAML}

// FormatFromPath picks a format from the file extension of path. Unknown
// extensions yield JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// WriteView encodes view in format and writes it to w.
func WriteView(w io.Writer, view *dex.View, format string) error {
	if view == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no view to write")
	}
	if err := errors.ValidateFormat(format, Formats...); err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	}
}

// ExportView writes view to path in the format implied by its extension.
func ExportView(view *dex.View, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteView(f, view, FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
