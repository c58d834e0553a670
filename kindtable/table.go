// Package kindtable loads declarative kind tables from YAML or TOML files.
//
// A table is the data-driven form of a namespace declaration:
//
//	format_version: "1.0"
//	namespace: err
//	package: apperr
//	kinds:
//	  - name: BrokenHeader
//	    message: broken header.
//	  - name: UnexpectedEof
//	    message: unexpected eof.
//	io:
//	  - foreign: UnexpectedEOF
//	    kind: UnexpectedEof
//
// Kinds are a list, not a map, so declaration order survives decoding.
// Both formats decode into a generic map first and then into Table through
// mapstructure, so one set of tags serves both.
package kindtable

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	xgxchain "github.com/xgx-io/xgx-chain"
	"github.com/xgx-io/xgx-chain/iobridge"
)

// Format selects the file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml
// and .toml.
var ErrUnknownFormat = errors.New("unknown kind table format")

// Entry is one declared kind.
type Entry struct {
	Name    string `mapstructure:"name" validate:"required,kindname"`
	Message string `mapstructure:"message" validate:"required"`
}

// IOEntry maps an I/O kind (iobridge.Kind name) to a declared kind name.
type IOEntry struct {
	Foreign string `mapstructure:"foreign" validate:"required,iokind"`
	Kind    string `mapstructure:"kind" validate:"required"`
}

// Table is a decoded kind table.
type Table struct {
	FormatVersion string    `mapstructure:"format_version" validate:"required,formatversion"`
	Namespace     string    `mapstructure:"namespace" validate:"required,nsname"`
	Package       string    `mapstructure:"package" validate:"omitempty,nsname"`
	Kinds         []Entry   `mapstructure:"kinds" validate:"required,min=1,unique=Name,dive"`
	IO            []IOEntry `mapstructure:"io" validate:"omitempty,unique=Foreign,dive"`
}

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// Load reads, decodes and validates the table at path.
func Load(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading kind table")
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return t, nil
}

// Parse decodes and validates a table.
func Parse(data []byte, format Format) (*Table, error) {
	raw := map[string]any{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	t := &Table{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           t,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decoding kind table")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// PackageName returns Package, or Namespace when Package is empty.
func (t *Table) PackageName() string {
	if t.Package != "" {
		return t.Package
	}
	return t.Namespace
}

// Pairs returns the kinds as declaration pairs, in order.
func (t *Table) Pairs() []xgxchain.Pair {
	out := make([]xgxchain.Pair, 0, len(t.Kinds))
	for _, e := range t.Kinds {
		out = append(out, xgxchain.Pair{Name: e.Name, Message: e.Message})
	}
	return out
}

// Declare builds the namespace the table describes.
func (t *Table) Declare() (*xgxchain.Namespace, error) {
	ns, err := xgxchain.Declare(t.Namespace, t.Pairs()...)
	if err != nil {
		return nil, errors.Wrap(err, "declaring namespace")
	}
	return ns, nil
}

// Bridge builds the I/O bridge described by the io section. ns must come
// from Declare on the same table.
func (t *Table) Bridge(ns *xgxchain.Namespace) (*xgxchain.Bridge[iobridge.Kind], error) {
	rows, err := t.IOMappings(ns)
	if err != nil {
		return nil, err
	}
	b, err := iobridge.NewBridge(ns, rows...)
	if err != nil {
		return nil, errors.Wrap(err, "declaring io bridge")
	}
	return b, nil
}

// IOMappings resolves the io section against ns.
func (t *Table) IOMappings(ns *xgxchain.Namespace) ([]xgxchain.Mapping[iobridge.Kind], error) {
	rows := make([]xgxchain.Mapping[iobridge.Kind], 0, len(t.IO))
	for _, e := range t.IO {
		f, err := iobridge.ParseKind(e.Foreign)
		if err != nil {
			return nil, errors.Wrap(err, "io table")
		}
		k, ok := ns.Lookup(e.Kind)
		if !ok {
			return nil, errors.Errorf("io table: %s maps to undeclared kind %q", e.Foreign, e.Kind)
		}
		rows = append(rows, xgxchain.Mapping[iobridge.Kind]{Foreign: f, Kind: k})
	}
	return rows, nil
}
