// Package importer reads and writes student and professor profiles as YAML,
// JSON or TOML documents and normalizes them before they reach the record store.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khrees2412/labyrinth/internal/app"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Bundle is the on-disk document: any mix of students and professors
type Bundle struct {
	Students   []*models.Student   `json:"students,omitempty" yaml:"students,omitempty" toml:"students,omitempty"`
	Professors []*models.Professor `json:"professors,omitempty" yaml:"professors,omitempty" toml:"professors,omitempty"`
}

// Format is a profile document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension, defaulting to YAML
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode reads a bundle. JSON input is accepted as YAML. Unknown fields are
// rejected so typos in hand-written files surface.
func Decode(r io.Reader) (*Bundle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	b := &Bundle{}
	if err := dec.Decode(b); err != nil {
		if errors.Is(err, io.EOF) {
			return b, nil
		}
		return nil, fmt.Errorf("failed to parse profiles: %v: %w", err, app.ErrInvalidArgument)
	}
	dropNil(b)
	return b, nil
}

// DecodeAs reads a bundle in the given format. YAML and JSON share the YAML
// decoder.
func DecodeAs(r io.Reader, format Format) (*Bundle, error) {
	if format != FormatTOML {
		return Decode(r)
	}
	b := &Bundle{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(b); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %v: %w", err, app.ErrInvalidArgument)
	}
	dropNil(b)
	return b, nil
}

// Load reads a bundle from a file
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	b, err := DecodeAs(bytes.NewReader(data), FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Encode writes a bundle in the given format
func Encode(w io.Writer, b *Bundle, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).SetIndentTables(true).Encode(b)
	default:
		return fmt.Errorf("unsupported format %q: %w", format, app.ErrInvalidArgument)
	}
}

// WriteFile writes a bundle to path, choosing the format from its extension
func WriteFile(path string, b *Bundle) error {
	var buf bytes.Buffer
	if err := Encode(&buf, b, FormatFor(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func dropNil(b *Bundle) {
	students := b.Students[:0]
	for _, s := range b.Students {
		if s != nil {
			students = append(students, s)
		}
	}
	b.Students = students

	professors := b.Professors[:0]
	for _, p := range b.Professors {
		if p != nil {
			professors = append(professors, p)
		}
	}
	b.Professors = professors
}
