/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"go/token"
	"math"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cast"
	"github.com/suparena/enumb/errors"
)

// Kind is the underlying Go type of a generated enum.
type Kind string

const (
	KindInt    Kind = "int"
	KindInt64  Kind = "int64"
	KindUint   Kind = "uint"
	KindUint64 Kind = "uint64"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	// KindAny declares no Go type; values of mixed types share a registry.New[any].
	KindAny Kind = "any"
)

func (k Kind) signed() bool   { return k == KindInt || k == KindInt64 }
func (k Kind) unsigned() bool { return k == KindUint || k == KindUint64 }
func (k Kind) integer() bool  { return k.signed() || k.unsigned() }

func (k Kind) known() bool {
	switch k {
	case KindInt, KindInt64, KindUint, KindUint64, KindString, KindBool, KindAny:
		return true
	}
	return false
}

// Validate checks the definition and normalizes every value to its kind.
// Empty kinds are inferred from the values. formats is consulted for enums
// that declare a format; nil means strfmt.Default.
func (d *Definition) Validate(formats strfmt.Registry) error {
	if formats == nil {
		formats = strfmt.Default
	}
	if !token.IsIdentifier(d.Package) {
		return errors.NewValidationError("package", fmt.Sprintf("%q is not a valid package name", d.Package))
	}

	seen := make(map[string]bool, len(d.Enums))
	for i := range d.Enums {
		e := &d.Enums[i]
		if seen[e.Type] {
			return errors.NewAlreadyExistsError(d.Package, e.Type)
		}
		seen[e.Type] = true

		if err := e.validate(formats); err != nil {
			return err
		}
	}

	declared := make(map[string]bool)
	for i := range d.Enums {
		for _, id := range d.Enums[i].identifiers() {
			if declared[id] {
				return errors.NewAlreadyExistsError(d.Package, id)
			}
			declared[id] = true
		}
	}
	return nil
}

// identifiers lists the package-level names Generate declares for e.
func (e *EnumSpec) identifiers() []string {
	ids := []string{registryVar(e.Type), "Parse" + e.Type, e.Type + "Values"}
	if e.Kind != KindAny {
		ids = append(ids, e.Type)
	}
	for _, v := range e.Values {
		ids = append(ids, e.Type+v.Name)
	}
	return ids
}

func (e *EnumSpec) validate(formats strfmt.Registry) error {
	if !token.IsIdentifier(e.Type) || !token.IsExported(e.Type) {
		return errors.NewValidationError("type", fmt.Sprintf("%q is not an exported Go identifier", e.Type))
	}

	if e.Kind == "" {
		e.Kind = inferKind(e.Values)
	}
	if !e.Kind.known() {
		return errors.NewValidationError(e.Type+".kind", fmt.Sprintf("unknown kind %q", e.Kind))
	}
	if e.Flags && !e.Kind.integer() {
		return errors.NewValidationError(e.Type+".flags", fmt.Sprintf("flags require an integer kind, not %s", e.Kind))
	}
	if e.Format != "" {
		if e.Kind != KindString {
			return errors.NewValidationError(e.Type+".format", fmt.Sprintf("format requires kind string, not %s", e.Kind))
		}
		if !formats.ContainsName(e.Format) {
			return errors.NewValidationError(e.Type+".format", fmt.Sprintf("unknown format %q", e.Format))
		}
	}

	names := make(map[string]bool, len(e.Values))
	for i := range e.Values {
		v := &e.Values[i]
		field := fmt.Sprintf("%s.values[%d]", e.Type, i)

		if !token.IsIdentifier(v.Name) || !token.IsExported(v.Name) {
			return errors.NewValidationError(field+".name", fmt.Sprintf("%q is not an exported Go identifier", v.Name))
		}
		if v.Name == "Values" {
			return errors.NewValidationError(field+".name", fmt.Sprintf("Values collides with the generated %sValues", e.Type))
		}
		if names[v.Name] {
			return errors.NewAlreadyExistsError(e.Type, v.Name)
		}
		names[v.Name] = true

		normalized, err := normalize(e.Kind, v.Value)
		if err != nil {
			return errors.NewValidationError(field+".value", err.Error())
		}
		if e.Format != "" && !formats.Validates(e.Format, normalized.(string)) {
			return errors.NewValidationError(field+".value", fmt.Sprintf("%q is not a valid %s", normalized, e.Format))
		}
		v.normalized = normalized
	}
	return nil
}

// inferKind picks the kind shared by all values, or KindAny when they differ.
func inferKind(values []ValueSpec) Kind {
	var kind Kind
	for _, v := range values {
		var k Kind
		switch n := v.Value.(type) {
		case string:
			k = KindString
		case bool:
			k = KindBool
		case uint64:
			if n > math.MaxInt64 {
				k = KindUint64
			} else {
				k = KindInt
			}
		case int, int64, float64:
			k = KindInt
		default:
			return KindAny
		}
		if kind != "" && kind != k {
			return KindAny
		}
		kind = k
	}
	if kind == "" {
		return KindInt
	}
	return kind
}

// normalize converts a decoded value to string, bool, int64 or uint64.
func normalize(kind Kind, value any) (any, error) {
	if value == nil {
		return nil, fmt.Errorf("value is required")
	}
	if f, ok := value.(float64); ok && f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}

	switch {
	case kind.signed():
		if _, ok := value.(bool); ok {
			return nil, fmt.Errorf("%v is not an integer", value)
		}
		if err := checkRange(value, KindInt64); err != nil {
			return nil, err
		}
		return cast.ToInt64E(value)
	case kind.unsigned():
		if _, ok := value.(bool); ok {
			return nil, fmt.Errorf("%v is not an integer", value)
		}
		if err := checkRange(value, KindUint64); err != nil {
			return nil, err
		}
		return cast.ToUint64E(value)
	case kind == KindString:
		return cast.ToStringE(value)
	case kind == KindBool:
		return cast.ToBoolE(value)
	default:
		switch value.(type) {
		case string, bool:
			return value, nil
		case float64:
			if err := checkRange(value, KindInt64); err != nil {
				return nil, err
			}
			return cast.ToInt64E(value)
		case uint64:
			if value.(uint64) > math.MaxInt64 {
				return value, nil
			}
			return cast.ToInt64E(value)
		}
		v, err := cast.ToInt64E(value)
		if err != nil {
			return nil, fmt.Errorf("%T values are not supported", value)
		}
		return v, nil
	}
}

// checkRange rejects decoded numbers that would wrap when converted to kind,
// which is KindInt64 or KindUint64. Strings are range checked by the parser.
func checkRange(value any, kind Kind) error {
	switch n := value.(type) {
	case uint64:
		if kind == KindInt64 && n > math.MaxInt64 {
			return fmt.Errorf("%d overflows %s", n, kind)
		}
	case float64:
		// float64(math.MaxInt64) and float64(math.MaxUint64) round up to 2^63 and 2^64
		lo, hi := float64(math.MinInt64), float64(math.MaxInt64)
		if kind == KindUint64 {
			lo, hi = 0, float64(math.MaxUint64)
		}
		if n < lo || n >= hi {
			return fmt.Errorf("%v overflows %s", n, kind)
		}
	}
	return nil
}
