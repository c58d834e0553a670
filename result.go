// result.go: result domains and the recover-one-kind idiom.
//
// Two domains share one representation and differ only in the error bound:
//
//	Result[T]      = Outcome[T, error]     any error
//	SendResult[T]  = Outcome[T, Sendable]  errors that may cross goroutines
//
// Moving a value into the strict domain is checked by the compiler (Detach
// requires E to satisfy Sendable). Errors that cannot prove it go through
// CastResult, which re-classifies them as the namespace's external kind.
//
// Plain Go code keeps using (T, error) pairs; Recover and Reclassify work on
// those directly and Get/FromPair convert between the two shapes.
package xgxchain

import "errors"

// Outcome is either a value or a failure carrying an error of type E.
type Outcome[T any, E error] struct {
	value  T
	err    E
	failed bool
}

// Result is the loose domain: failures may hold any error.
type Result[T any] = Outcome[T, error]

// SendResult is the strict domain: failures hold only Sendable errors.
type SendResult[T any] = Outcome[T, Sendable]

// nilFailure is a Sendable sentinel so both domains can represent a failure
// that was constructed without an error.
type nilFailure string

func (e nilFailure) Error() string { return string(e) }
func (nilFailure) Detached()       {}

// ErrNilFailure is carried by failures built from a nil error.
var ErrNilFailure Sendable = nilFailure("xgxchain: failure without an error")

// Succeed returns a successful outcome in the domain bounded by E.
//
//	o := xgxchain.Succeed[int, xgxchain.Error](3)
func Succeed[T any, E error](v T) Outcome[T, E] { return Outcome[T, E]{value: v} }

// Fail returns a failed outcome whose error type is err's static type, so a
// library error can be carried as Outcome[T, Error] and handed to Detach:
//
//	s := xgxchain.Detach(xgxchain.Fail[int](xgxchain.Originate(BadHeader, xgxchain.Here())))
//
// A nil err still yields a failure; its Get reports ErrNilFailure.
func Fail[T any, E error](err E) Outcome[T, E] { return Outcome[T, E]{err: err, failed: true} }

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] { return Succeed[T, error](v) }

// Err returns a failed Result. A nil err is replaced by ErrNilFailure.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Fail[T](err)
}

// SendOk returns a successful SendResult.
func SendOk[T any](v T) SendResult[T] { return Succeed[T, Sendable](v) }

// SendErr returns a failed SendResult. A nil err is replaced by ErrNilFailure.
func SendErr[T any](err Sendable) SendResult[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Fail[T](err)
}

// FromPair lifts a Go (value, error) pair into a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk reports whether o holds a value.
func (o Outcome[T, E]) IsOk() bool { return !o.failed }

// Value returns the held value, or the zero value on failure.
func (o Outcome[T, E]) Value() T { return o.value }

// Err returns the failure, or the zero E when o is Ok.
func (o Outcome[T, E]) Err() E { return o.err }

// Get returns o as a Go (value, error) pair. The error is nil exactly when o
// is Ok.
func (o Outcome[T, E]) Get() (T, error) {
	if !o.failed {
		return o.value, nil
	}
	var zero T
	if isNilError(o.err) {
		return zero, ErrNilFailure
	}
	return zero, o.err
}

func isNilError[E error](err E) bool { return any(err) == nil }

// Or returns the held value, or def on failure.
func (o Outcome[T, E]) Or(def T) T {
	if o.failed {
		return def
	}
	return o.value
}

// Loosen moves any outcome into the loose domain.
func Loosen[T any, E error](o Outcome[T, E]) Result[T] {
	if !o.failed {
		return Ok(o.value)
	}
	if isNilError(o.err) {
		return Err[T](nil)
	}
	return Fail[T, error](o.err)
}

// Detach moves an outcome into the strict domain. It compiles only when the
// error type is Sendable; a Result[T] cannot be detached and must go
// through CastResult instead.
func Detach[T any, E Sendable](o Outcome[T, E]) SendResult[T] {
	if !o.failed {
		return SendOk(o.value)
	}
	if isNilError(o.err) {
		return SendErr[T](nil)
	}
	return Fail[T, Sendable](o.err)
}

// CastResult moves any outcome into the strict domain. Library errors are
// kept as they are; foreign errors are escalated under ns's external kind at
// loc, with call describing the failed expression.
func CastResult[T any, E error](o Outcome[T, E], ns *Namespace, loc Location, call string) SendResult[T] {
	if !o.failed {
		return SendOk(o.value)
	}
	if isNilError(o.err) {
		return SendErr[T](nil)
	}
	return SendErr[T](From(o.err, ns, loc, call))
}

// Extract applies the recover-one-kind law to an outcome: a value passes
// through, a failure of kind k is replaced by onMatch, and any other failure
// is returned unchanged for the caller to propagate.
//
//	c, err := xgxchain.Extract(parseHeader(buf), Well, 127) // parseHeader returns Result[int]
//	if err != nil {
//		return err
//	}
func Extract[T any, E error](o Outcome[T, E], k *Kind, onMatch T) (T, error) {
	v, err := o.Get()
	return Recover(v, err, k, onMatch)
}

// Recover is Extract over a Go (value, error) pair.
//
//	n, err := read(buf)
//	n, err = xgxchain.Recover(n, err, UnexpectedEof, 0)
func Recover[T any](v T, err error, k *Kind, onMatch T) (T, error) {
	if err == nil {
		return v, nil
	}
	if Is(err, k) {
		return onMatch, nil
	}
	var zero T
	return zero, err
}

// RecoverWith is Recover with a replacement computed from the matched error.
func RecoverWith[T any](v T, err error, k *Kind, fn func(Error) T) (T, error) {
	if err == nil {
		return v, nil
	}
	var e Error
	if k != nil && errors.As(err, &e) && e.Kind() == k {
		return fn(e), nil
	}
	var zero T
	return zero, err
}

// Reclassify passes v through on success and otherwise escalates err to
// kind k:
//
//	f, err := os.Open(path)
//	f, err = xgxchain.Reclassify(f, err, FileOpen, xgxchain.Here(), "os.Open(path)")
func Reclassify[T any](v T, err error, k *Kind, loc Location, call string) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, Escalate(err, k, loc, call)
}

// Reclassifyf is Reclassify with a detail on the new frame.
func Reclassifyf[T any](v T, err error, k *Kind, loc Location, call, format string, args ...any) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, Escalatef(err, k, loc, call, format, args...)
}
