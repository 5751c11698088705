/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

const header = "// Code generated by enumgen. DO NOT EDIT.\n\n"

var fileTemplate = template.Must(template.New("file").Parse(`package {{.Package}}

import (
{{- if .NeedsEnumb}}
	"github.com/suparena/enumb"
{{- end}}
{{- if .NeedsRegistry}}
	"github.com/suparena/enumb/registry"
{{- end}}
{{- if .NeedsStrconv}}
	"strconv"
{{- end}}
)
{{range $e := .Enums}}
{{- if .Typed}}
{{.Doc}}
type {{.Type}} {{.Kind}}

var {{.Var}} = enumb.For[{{.Type}}]()
{{- else}}
{{.Doc}}
var {{.Var}} = registry.New[any]({{printf "%q" .Type}})
{{- end}}

func init() {
{{- range .Values}}
	{{$e.Var}}.MustRegister({{printf "%q" .Name}}, {{.Literal}})
{{- end}}
}
{{range .Values}}
{{.Doc}}
func {{$e.Type}}{{.Name}}() {{$e.Result}} {
	return {{$e.Var}}.MustGet({{printf "%q" .Name}})
}
{{end}}
// Parse{{.Type}} looks up a {{.Type}} enumerator by name, ignoring case.
func Parse{{.Type}}(name string) ({{.Result}}, bool) {
	v, ok, _ := {{.Var}}.Parse(name)
	return v, ok
}

// {{.Type}}Values returns every {{.Type}} enumerator in declaration order.
func {{.Type}}Values() []{{.Result}} {
	return {{.Var}}.Values()
}
{{- if .Typed}}

// String returns the name {{.Recv}} is registered under.
func ({{.Recv}} {{.Type}}) String() string {
	if name, ok := {{.Var}}.Descriptor({{.Recv}}); ok {
		return name
	}
	return "{{.Type}}(" + {{.Fallback}} + ")"
}

// IsValid reports whether {{.Recv}} is a registered {{.Type}}.
func ({{.Recv}} {{.Type}}) IsValid() bool {
	return {{.Var}}.Contains({{.Recv}})
}
{{- end}}
{{- if .Flags}}

// Has reports whether every bit of flag is set in {{.Recv}}.
func ({{.Recv}} {{.Type}}) Has(flag {{.Type}}) bool {
	return {{.Recv}}&flag == flag
}
{{- end}}
{{end}}`))

type fileData struct {
	Package       string
	NeedsEnumb    bool
	NeedsRegistry bool
	NeedsStrconv  bool
	Enums         []enumData
}

type enumData struct {
	Type     string
	Kind     Kind
	Typed    bool
	Flags    bool
	Doc      string
	Var      string
	Recv     string
	Result   string
	Fallback string
	Values   []valueData
}

type valueData struct {
	Name    string
	Doc     string
	Literal string
}

// Generate renders the Go source for a validated definition.
func Generate(d *Definition) ([]byte, error) {
	data := fileData{Package: d.Package}

	for _, e := range d.Enums {
		ed := enumData{
			Type:   e.Type,
			Kind:   e.Kind,
			Typed:  e.Kind != KindAny,
			Flags:  e.Flags,
			Var:    registryVar(e.Type),
			Recv:   receiver(e.Type),
			Result: e.Type,
		}
		if ed.Typed {
			data.NeedsEnumb = true
			ed.Doc = comment(e.Doc, fmt.Sprintf("%s is an enumerated %s type.", e.Type, e.Kind))
			ed.Fallback = fallback(e.Kind, ed.Recv)
			if e.Kind != KindString {
				data.NeedsStrconv = true
			}
		} else {
			data.NeedsRegistry = true
			ed.Result = "any"
			ed.Doc = comment(e.Doc, fmt.Sprintf("%s holds the %s enumerators.", ed.Var, e.Type))
		}

		for _, v := range e.Values {
			if v.normalized == nil {
				return nil, fmt.Errorf("%s.%s: definition has not been validated", e.Type, v.Name)
			}
			lit := literal(v.normalized, e.Flags)
			switch {
			case ed.Typed:
				lit = e.Type + "(" + lit + ")"
			case isUint64(v.normalized):
				lit = "uint64(" + lit + ")"
			}
			ed.Values = append(ed.Values, valueData{
				Name:    v.Name,
				Doc:     comment(v.Doc, fmt.Sprintf("%s%s returns the %s enumerator of %s.", e.Type, v.Name, v.Name, e.Type)),
				Literal: lit,
			})
		}
		data.Enums = append(data.Enums, ed)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", d.Package, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func literal(v any, hex bool) string {
	switch n := v.(type) {
	case string:
		return strconv.Quote(n)
	case bool:
		return strconv.FormatBool(n)
	case int64:
		if hex {
			return fmt.Sprintf("%#x", n)
		}
		return strconv.FormatInt(n, 10)
	case uint64:
		if hex {
			return fmt.Sprintf("%#x", n)
		}
		return strconv.FormatUint(n, 10)
	}
	return fmt.Sprint(v)
}

func isUint64(v any) bool {
	_, ok := v.(uint64)
	return ok
}

// fallback is the expression String() prints for an unregistered value.
func fallback(kind Kind, recv string) string {
	switch {
	case kind.signed():
		return "strconv.FormatInt(int64(" + recv + "), 10)"
	case kind.unsigned():
		return "strconv.FormatUint(uint64(" + recv + "), 10)"
	case kind == KindBool:
		return "strconv.FormatBool(bool(" + recv + "))"
	}
	return "string(" + recv + ")"
}

// comment turns doc, or def when doc is empty, into a // comment block.
func comment(doc, def string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = def
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}

func receiver(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}

// registryVar names the package variable holding typ's registry.
func registryVar(typ string) string {
	return lowerFirst(typ) + "Enum"
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
