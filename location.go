// location.go: call-site stamps.
//
// Every frame in a chain starts with a location stamp. Callers normally pass
// one explicitly with At; Here captures the caller's file and line through
// runtime.Caller when an explicit stamp is not worth spelling out.
package xgxchain

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Location identifies the call site that originated or escalated an error.
type Location struct {
	File   string
	Line   int
	Column int // 0 when unknown; the Go runtime does not report columns
}

// At builds a stamp from explicit coordinates.
func At(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// Here returns the caller's location.
func Here() Location { return HereSkip(1) }

// HereSkip returns the location skip frames above the caller of HereSkip.
// HereSkip(0) is the caller itself; helpers that wrap it pass 1.
func HereSkip(skip int) Location {
	// +1 for HereSkip itself.
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: shortFile(file), Line: line}
}

// String renders "<file> <line>:<column>", the text placed between the
// brackets of a frame.
func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "???"
	}
	return file + " " + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// IsZero reports whether l carries no information.
func (l Location) IsZero() bool { return l == Location{} }

// shortFile keeps the last two elements of a runtime path ("pkg/file.go").
func shortFile(file string) string {
	dir, base := path.Split(file)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return base
	}
	return path.Base(dir) + "/" + base
}
