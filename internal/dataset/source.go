// Package dataset loads and validates the catalog reference data.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// Source supplies the three reference collections.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load returns the raw collections. Implementations do not validate.
	Load(ctx context.Context) (model.Dataset, error)
}

// Format is the encoding of a dataset file.
type Format string

// Supported dataset formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads a dataset in the given format.
func Decode(r io.Reader, format Format) (model.Dataset, error) {
	var ds model.Dataset

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return model.Dataset{}, fmt.Errorf("failed to decode json dataset: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil && err != io.EOF {
			return model.Dataset{}, fmt.Errorf("failed to decode yaml dataset: %w", err)
		}
	default:
		return model.Dataset{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}

	return ds, nil
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// Name implements Source.
func (EmbeddedSource) Name() string { return "embedded" }

// Load implements Source.
func (EmbeddedSource) Load(ctx context.Context) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, err
	}
	return Decode(bytes.NewReader(defaultCatalog), FormatJSON)
}

// FileSource reads a JSON or YAML dataset from disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for path. The format is taken from the extension.
func NewFileSource(path string) (*FileSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: dataset path", common.ErrMissingConfig)
	}
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}
	return &FileSource{Path: path}, nil
}

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + s.Path }

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, err
	}

	format, err := FormatFromPath(s.Path)
	if err != nil {
		return model.Dataset{}, err
	}

	f, err := os.Open(s.Path) // #nosec G304 - path comes from user configuration
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f, format)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", s.Path, err)
	}

	slog.Debug("loaded dataset file", "path", s.Path, "format", format)
	return ds, nil
}
