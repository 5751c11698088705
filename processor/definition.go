/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Definition is the content of one definition file: a Go package and the
// enumerated types to generate into it.
type Definition struct {
	Package string     `yaml:"package" toml:"package"`
	Enums   []EnumSpec `yaml:"enums" toml:"enums"`
}

// EnumSpec declares one enumerated type.
type EnumSpec struct {
	// Type is the exported Go type name.
	Type string `yaml:"type" toml:"type"`
	// Kind is the underlying Go type. Inferred from the values when empty.
	Kind Kind `yaml:"kind,omitempty" toml:"kind,omitempty"`
	// Flags adds a Has(flag) method. Integer kinds only.
	Flags bool `yaml:"flags,omitempty" toml:"flags,omitempty"`
	// Format names a strfmt format every value must satisfy. String kinds only.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
	// Doc is the doc comment of the generated type.
	Doc    string      `yaml:"doc,omitempty" toml:"doc,omitempty"`
	Values []ValueSpec `yaml:"values" toml:"values"`
}

// ValueSpec declares one enumerator.
type ValueSpec struct {
	Name  string `yaml:"name" toml:"name"`
	Value any    `yaml:"value" toml:"value"`
	Doc   string `yaml:"doc,omitempty" toml:"doc,omitempty"`

	// normalized is set by Validate to a string, bool, int64 or uint64.
	normalized any
}

// Load reads a definition file. The syntax is chosen by extension: .toml is
// TOML, everything else is YAML (which includes JSON). YAML and JSON files
// with a top-level "openapi" key are read as OpenAPI documents.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = FormatTOML
	}

	def, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode definition %s: %w", path, err)
	}
	return def, nil
}

// Decode parses a definition from data.
func Decode(data []byte, format Format) (*Definition, error) {
	switch format {
	case FormatTOML:
		var def Definition
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
		return &def, nil

	case FormatYAML:
		if isOpenAPI(data) {
			return decodeOpenAPI(data)
		}
		var def Definition
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, err
		}
		return &def, nil

	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
}

func isOpenAPI(data []byte) bool {
	var probe struct {
		OpenAPI string `yaml:"openapi"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.OpenAPI != ""
}
