package errlog

import (
	"errors"
	"strings"

	jsonitor "github.com/json-iterator/go"

	xgxchain "github.com/xgx-io/xgx-chain"
)

var json = jsonitor.ConfigCompatibleWithStandardLibrary

// Snapshot is a serializable view of an error. Lines holds the chain split
// into lines, most recent frame first.
type Snapshot struct {
	Kind     string   `json:"kind,omitempty"`
	Marker   string   `json:"marker,omitempty"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	External bool     `json:"external,omitempty"`
	Chain    string   `json:"chain"`
	Lines    []string `json:"lines,omitempty"`
	Wrapper  string   `json:"wrapper,omitempty"`
}

// SnapshotOf captures err. Foreign errors fill only Message and Chain; nil
// yields the zero Snapshot. For a library error behind a foreign wrapper,
// Wrapper holds the wrapper's full text.
func SnapshotOf(err error) Snapshot {
	if err == nil {
		return Snapshot{}
	}
	var le xgxchain.Error
	if !errors.As(err, &le) {
		return Snapshot{Message: err.Error(), Chain: err.Error(), Lines: splitLines(err.Error())}
	}
	k := le.Kind()
	loc := le.Location()
	return Snapshot{
		Kind:     k.Name(),
		Marker:   k.Marker(),
		Message:  k.Message(),
		Detail:   le.Detail(),
		File:     loc.File,
		Line:     loc.Line,
		Column:   loc.Column,
		External: k.IsExternal(),
		Chain:    le.Chain(),
		Lines:    splitLines(le.Chain()),
		Wrapper:  wrapperText(err),
	}
}

// JSON encodes s.
func (s Snapshot) JSON() ([]byte, error) {
	return json.Marshal(s)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
