// Package iobridge is the I/O side of a foreign-domain bridge: a small enum
// of I/O failure kinds, a classifier over the standard library's fs, io and
// os sentinels, and an error type that satisfies errors.Is against those
// same sentinels so a value survives a round trip through a bridge.
//
//	var IO = iobridge.MustBridge(Errs,
//		xgxchain.Mapping[iobridge.Kind]{Foreign: iobridge.UnexpectedEOF, Kind: UnexpectedEof},
//		xgxchain.Mapping[iobridge.Kind]{Foreign: iobridge.NotFound, Kind: FileNotFound},
//	)
//
//	n, err := f.Read(buf)
//	n, err = iobridge.In(IO, n, err, xgxchain.Here()) // io error → library error
package iobridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	xgxchain "github.com/xgx-io/xgx-chain"
)

// Kind classifies an I/O failure. Other is the catch-all.
type Kind int

const (
	Other Kind = iota
	NotFound
	PermissionDenied
	AlreadyExists
	InvalidInput
	UnexpectedEOF
	TimedOut
	Closed
	BrokenPipe
	NoProgress
)

var kindNames = [...]string{
	Other:            "Other",
	NotFound:         "NotFound",
	PermissionDenied: "PermissionDenied",
	AlreadyExists:    "AlreadyExists",
	InvalidInput:     "InvalidInput",
	UnexpectedEOF:    "UnexpectedEOF",
	TimedOut:         "TimedOut",
	Closed:           "Closed",
	BrokenPipe:       "BrokenPipe",
	NoProgress:       "NoProgress",
}

// sentinels pairs each kind with the stdlib error it stands for. Classify
// probes them in Kind order.
var sentinels = [...]error{
	NotFound:         fs.ErrNotExist,
	PermissionDenied: fs.ErrPermission,
	AlreadyExists:    fs.ErrExist,
	InvalidInput:     fs.ErrInvalid,
	UnexpectedEOF:    io.ErrUnexpectedEOF,
	TimedOut:         os.ErrDeadlineExceeded,
	Closed:           fs.ErrClosed,
	BrokenPipe:       io.ErrClosedPipe,
	NoProgress:       io.ErrNoProgress,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("unknown io kind")

// ParseKind maps a kind name ("UnexpectedEOF") back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return Other, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Error is an I/O failure of a known kind. It matches its kind's stdlib
// sentinel under errors.Is, so New(NotFound, "x") is an fs.ErrNotExist.
type Error struct {
	Kind Kind
	Msg  string
}

// New returns an *Error of kind k.
func New(k Kind, msg string) *Error { return &Error{Kind: k, Msg: msg} }

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	if e.Kind <= Other || int(e.Kind) >= len(sentinels) {
		return false
	}
	return sentinels[e.Kind] == target
}

type timeout interface{ Timeout() bool }

// Classify reports the I/O kind of err. Besides the sentinels above it knows
// EPIPE, context deadlines and errors with a Timeout method. It returns
// (Other, false) when err is nil or matches nothing known.
func Classify(err error) (Kind, bool) {
	if err == nil {
		return Other, false
	}
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind, ie.Kind != Other
	}
	for k := NotFound; int(k) < len(sentinels); k++ {
		if errors.Is(err, sentinels[k]) {
			return k, true
		}
	}
	if errors.Is(err, syscall.EPIPE) {
		return BrokenPipe, true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TimedOut, true
	}
	var t timeout
	if errors.As(err, &t) && t.Timeout() {
		return TimedOut, true
	}
	return Other, false
}

// KindOf is Classify without the ok flag.
func KindOf(err error) Kind {
	k, _ := Classify(err)
	return k
}

func build(k Kind, msg string) error { return New(k, msg) }

// NewBridge declares a bridge between ns and the I/O domain. Library kinds
// missing from table convert to Other.
func NewBridge(ns *xgxchain.Namespace, table ...xgxchain.Mapping[Kind]) (*xgxchain.Bridge[Kind], error) {
	return xgxchain.NewBridge(ns, Other, Classify, build, table...)
}

// MustBridge is like NewBridge but panics on error.
func MustBridge(ns *xgxchain.Namespace, table ...xgxchain.Mapping[Kind]) *xgxchain.Bridge[Kind] {
	return xgxchain.MustBridge(ns, Other, Classify, build, table...)
}

// In converts the error half of an I/O call into the library domain.
func In[T any](b *xgxchain.Bridge[Kind], v T, err error, loc xgxchain.Location) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, b.ToLibrary(err, loc)
}

// Out converts the error half of a library call into the I/O domain.
func Out[T any](b *xgxchain.Bridge[Kind], v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, b.ToForeign(err)
}
