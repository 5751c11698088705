/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/suparena/enumb/errors"
	"gopkg.in/yaml.v3"
)

type openAPIDocument struct {
	OpenAPI    string `yaml:"openapi"`
	Components struct {
		Schemas map[string]openAPISchema `yaml:"schemas"`
	} `yaml:"components"`
}

type openAPISchema struct {
	Type         string   `yaml:"type"`
	Format       string   `yaml:"format"`
	Description  string   `yaml:"description"`
	Enum         []any    `yaml:"enum"`
	VarNames     []string `yaml:"x-enum-varnames"`
	Descriptions []string `yaml:"x-enum-descriptions"`
	Flags        bool     `yaml:"x-enum-flags"`
}

// decodeOpenAPI turns every component schema carrying an enum list into an
// EnumSpec. Schemas are emitted in name order. The package is left empty and
// must be supplied with WithPackage.
func decodeOpenAPI(data []byte) (*Definition, error) {
	var doc openAPIDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name, schema := range doc.Components.Schemas {
		if len(schema.Enum) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	def := &Definition{}
	for _, name := range names {
		spec, err := enumFromSchema(name, doc.Components.Schemas[name])
		if err != nil {
			return nil, err
		}
		def.Enums = append(def.Enums, spec)
	}
	return def, nil
}

func enumFromSchema(name string, schema openAPISchema) (EnumSpec, error) {
	spec := EnumSpec{
		Type:   name,
		Flags:  schema.Flags,
		Format: schema.Format,
		Doc:    strings.TrimSpace(schema.Description),
	}

	switch schema.Type {
	case "integer":
		spec.Kind = KindInt
		if schema.Format == "int64" {
			spec.Kind = KindInt64
		}
		// int32/int64 describe the width, not a strfmt format
		spec.Format = ""
	case "string":
		spec.Kind = KindString
	case "boolean":
		spec.Kind = KindBool
	case "":
		spec.Kind = ""
	default:
		return spec, errors.NewValidationError(name+".type",
			fmt.Sprintf("schema type %q cannot be an enumeration", schema.Type))
	}

	if len(schema.VarNames) > 0 && len(schema.VarNames) != len(schema.Enum) {
		return spec, errors.NewValidationError(name+".x-enum-varnames",
			fmt.Sprintf("%d names for %d enum values", len(schema.VarNames), len(schema.Enum)))
	}

	for i, value := range schema.Enum {
		v := ValueSpec{Value: value}
		if i < len(schema.VarNames) {
			v.Name = schema.VarNames[i]
		} else {
			derived, ok := identifierFrom(value)
			if !ok {
				return spec, errors.NewValidationError(name+".x-enum-varnames",
					fmt.Sprintf("cannot derive a name for enum value %v", value))
			}
			v.Name = derived
		}
		if i < len(schema.Descriptions) {
			v.Doc = schema.Descriptions[i]
		}
		spec.Values = append(spec.Values, v)
	}
	return spec, nil
}

// identifierFrom derives an exported Go identifier from a string enum value:
// "in-progress" becomes InProgress, "2fa" becomes V2fa.
func identifierFrom(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	id := b.String()
	if id == "" {
		return "", false
	}
	if unicode.IsDigit([]rune(id)[0]) {
		id = "V" + id
	}
	return id, true
}
