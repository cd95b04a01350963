package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PackageFile is the top-level structure of a package file.
type PackageFile struct {
	Packages []PackageImport `json:"packages" yaml:"packages"`
}

// PackageImport is one sensor reading. Values are positional in the order
// the activity defines; Fields names them instead. Exactly one of the two
// must be given.
type PackageImport struct {
	Code   string             `json:"code" yaml:"code"`
	Values []float64          `json:"values,omitempty" yaml:"values,omitempty"`
	Fields map[string]float64 `json:"fields,omitempty" yaml:"fields,omitempty"`
	Label  string             `json:"label,omitempty" yaml:"label,omitempty"`
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported package file extension %q (use .json, .yaml or .yml)", ext)
	}
}

// LoadPackageFile reads and decodes the package file at path.
func LoadPackageFile(path string) (*PackageFile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePackageFile(data, format)
}

func ParsePackageFile(data []byte, format Format) (*PackageFile, error) {
	var file PackageFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing package file: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing package file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown package file format %q", format)
	}
	return &file, nil
}
