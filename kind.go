// kind.go: kind identity for xgx-chain.
//
// A Kind is a declared error category. It carries a fixed message and a
// marker (`<namespace>::<name>`). Identity is the *Kind pointer, never the
// text: two kinds may share a message and still never match each other.
//
// Kinds are created only by Declare/MustDeclare (registry.go) and are never
// mutated afterwards, so they are safe to share across goroutines.
package xgxchain

// externalName and externalMessage describe the reserved kind every
// namespace carries for errors of unknown origin.
const (
	externalName    = "__"
	externalMessage = "external error"
)

// Kind is one member of a namespace's closed error alphabet.
//
// The zero value is not usable; obtain kinds from a *Namespace.
type Kind struct {
	ns      *Namespace
	name    string
	message string
	ordinal int // declaration order; -1 for the external kind
}

// Name returns the identifier the kind was declared with.
func (k *Kind) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// Message returns the fixed message text.
func (k *Kind) Message() string {
	if k == nil {
		return ""
	}
	return k.message
}

// Marker returns the stable textual identifier rendered inside chains,
// e.g. "err::NotMatched".
func (k *Kind) Marker() string {
	if k == nil {
		return ""
	}
	if k.ns == nil {
		return k.name
	}
	return k.ns.name + "::" + k.name
}

// Namespace returns the namespace that declared k.
func (k *Kind) Namespace() *Namespace {
	if k == nil {
		return nil
	}
	return k.ns
}

// IsExternal reports whether k is its namespace's reserved external kind.
func (k *Kind) IsExternal() bool { return k != nil && k.ordinal < 0 }

// Error makes a kind usable as an errors.Is target:
//
//	if errors.Is(err, apperr.NotMatched) { ... }
func (k *Kind) Error() string { return k.Message() }

// String returns the marker.
func (k *Kind) String() string { return k.Marker() }
