package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/errors"
)

// ReadView decodes a view written by [WriteView]. A view without a Pokémon
// name is rejected.
func ReadView(r io.Reader, format string) (*dex.View, error) {
	if err := errors.ValidateFormat(format, Formats...); err != nil {
		return nil, err
	}

	var v dex.View
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	}
	if v.Pokemon.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "view has no pokemon name")
	}
	return &v, nil
}

// ImportView reads a view from the file at path, picking the format from its
// extension.
func ImportView(path string) (*dex.View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadView(f, FormatFromPath(path))
}
