// construct.go: the concrete error value and its constructors.
//
// Scope:
//   - chainErr is the only implementation of Error in this package.
//   - Originate creates a one-frame chain; Escalate (compose.go) creates a
//     new value whose chain ends with the previous rendering.
//   - Both are total: formatting text cannot fail, and a nil kind is
//     classified as external rather than rejected.
package xgxchain

import "fmt"

// chainErr is immutable after construction. The chain is rendered eagerly so
// Error() is a field read, and the value owns nothing but strings and a
// pointer to a process-wide constant kind.
type chainErr struct {
	kind   *Kind
	loc    Location
	detail string
	chain  string
}

func (e *chainErr) Error() string { return e.Chain() }

func (e *chainErr) Chain() string {
	if e == nil {
		return ""
	}
	return e.chain
}

func (e *chainErr) Kind() *Kind        { return e.kind }
func (e *chainErr) Detail() string     { return e.detail }
func (e *chainErr) Location() Location { return e.loc }
func (e *chainErr) Detached()          {}

func (e *chainErr) Is(target error) bool {
	k, ok := target.(*Kind)
	return ok && k == e.kind
}

// Originate creates an error of kind k with no prior cause.
func Originate(k *Kind, loc Location) Error {
	return originate(k, loc, "")
}

// Originatef is Originate with an instance-specific detail:
//
//	xgxchain.Originatef(NotMatched, xgxchain.Here(), "%s is %d", "bar", 2)
//	//   [pkg/foo.go 12:0] btw not matched. bar is 2 <err::NotMatched>
func Originatef(k *Kind, loc Location, format string, args ...any) Error {
	return originate(k, loc, fmt.Sprintf(format, args...))
}

func originate(k *Kind, loc Location, detail string) *chainErr {
	k = orExternal(k)
	frame, _ := renderFrame(k, loc, detail)
	return &chainErr{kind: k, loc: loc, detail: detail, chain: frame}
}

// orExternal keeps constructors total when handed a nil kind.
func orExternal(k *Kind) *Kind {
	if k == nil {
		return orphans.External()
	}
	return k
}

// Interface conformance guards.
var (
	_ Error    = (*chainErr)(nil)
	_ Sendable = (*chainErr)(nil)
)
