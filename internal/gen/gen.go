// Package gen emits Go source for a kind table: the namespace declaration,
// one exported variable per kind and, when the table has an io section, the
// I/O bridge. Generated files reference kinds by identifier, so a typo at a
// call site fails to compile.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/xgx-io/xgx-chain/kindtable"
)

const (
	// ModulePath is the import path of the core package.
	ModulePath = "github.com/xgx-io/xgx-chain"

	nsVar     = "Namespace"
	extVar    = "External"
	bridgeVar = "IOBridge"
)

// Options tunes the generated file.
type Options struct {
	// Package overrides the table's package name.
	Package string
	// Source names the input file in the generated header. Optional.
	Source string
}

type ioRow struct {
	Foreign string
	Kind    string
}

type templateData struct {
	Package   string
	Source    string
	Namespace string
	Kinds     []kindtable.Entry
	IO        []ioRow
	NsVar     string
	ExtVar    string
	BridgeVar string
}

var fileTemplate = template.Must(template.New("kinds").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"oneline": oneline,
}).Parse(`// Code generated by xgxchain gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	xgxchain "` + ModulePath + `"
{{- if .IO}}
	"` + ModulePath + `/iobridge"
{{- end}}
)

// {{.NsVar}} is the {{quote .Namespace}} kind table.
var {{.NsVar}} = xgxchain.MustDeclare({{quote .Namespace}},
{{- range .Kinds}}
	xgxchain.Pair{Name: {{quote .Name}}, Message: {{quote .Message}}},
{{- end}}
)

var (
{{- range .Kinds}}
	// {{.Name}}: {{oneline .Message}}
	{{.Name}} = {{$.NsVar}}.MustKind({{quote .Name}})
{{- end}}

	// {{.ExtVar}} classifies errors of unknown origin.
	{{.ExtVar}} = {{.NsVar}}.External()
)
{{- if .IO}}

// {{.BridgeVar}} converts between this table and I/O errors.
var {{.BridgeVar}} = iobridge.MustBridge({{.NsVar}},
{{- range .IO}}
	xgxchain.Mapping[iobridge.Kind]{Foreign: iobridge.{{.Foreign}}, Kind: {{.Kind}}},
{{- end}}
)
{{- end}}
`))

// Generate renders t as a gofmt'ed Go file.
func Generate(t *kindtable.Table, opts Options) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("gen: nil table")
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	for _, e := range t.Kinds {
		switch e.Name {
		case nsVar, extVar, bridgeVar:
			return nil, fmt.Errorf("gen: kind name %q collides with a generated identifier", e.Name)
		}
	}

	data := templateData{
		Package:   t.PackageName(),
		Source:    opts.Source,
		Namespace: t.Namespace,
		Kinds:     t.Kinds,
		NsVar:     nsVar,
		ExtVar:    extVar,
		BridgeVar: bridgeVar,
	}
	if opts.Package != "" {
		data.Package = opts.Package
	}
	for _, e := range t.IO {
		data.IO = append(data.IO, ioRow{Foreign: e.Foreign, Kind: e.Kind})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting output: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

// oneline keeps a message from breaking out of a line comment.
func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
