// error.go: the Error contract and the Sendable bound.
//
// Design tenets:
//   - Snapshot causes: an escalated error keeps the TEXT of its cause, never
//     the cause itself. Chains cannot form cycles and do not pin old values.
//   - Identity, not prose: kinds are matched by pointer, never by message.
//   - Explicit stamps: call sites pass their Location; Here() is a helper.
//   - Immutable values: nothing in this package mutates an error after
//     construction, so every value is safe to hand to another goroutine.
package xgxchain

// Sendable marks error values that own all of their data and may cross
// goroutines through a SendResult. The method carries no behavior; it
// exists so the Go type checker enforces the bound at compile time.
type Sendable interface {
	error

	// Detached is a marker. Implementations MUST NOT hold references to
	// mutable state shared with the originating goroutine.
	Detached()
}

// Error is the contract for every value produced by Originate, Escalate and
// the adapters built on them.
//
// Error() returns the full chain: the most recent frame first, then one
// connector line and the previous rendering, down to the oldest frame.
type Error interface {
	Sendable

	// Kind returns the kind this value was classified as.
	Kind() *Kind

	// Chain returns the rendered trail, identical to Error().
	Chain() string

	// Detail returns the instance-specific text supplied at the call site
	// ("bar is 2"), or "" if none was given.
	Detail() string

	// Location returns the stamp of this value's own (top) frame.
	Location() Location

	// Is reports whether target is this value's *Kind, so that
	// errors.Is(err, kind) works through foreign wrappers.
	Is(target error) bool
}
