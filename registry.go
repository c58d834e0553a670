// registry.go: declarative kind tables.
//
// A namespace is declared once, from an ordered list of (name, message)
// pairs, and is closed from then on: there is no way to add a kind at
// runtime. Call sites reference kinds through package-level variables,
// either written by hand against MustKind or emitted by the generator in
// internal/gen, so a misspelled kind is a compile error.
//
//	var (
//		Errs         = xgxchain.MustDeclare("err",
//			xgxchain.Pair{Name: "BrokenHeader", Message: "broken header."},
//			xgxchain.Pair{Name: "NotMatched", Message: "btw not matched."},
//		)
//		BrokenHeader = Errs.MustKind("BrokenHeader")
//		NotMatched   = Errs.MustKind("NotMatched")
//	)
package xgxchain

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultNamespace is the conventional namespace name; markers then read
// "err::<Name>".
const DefaultNamespace = "err"

// Declaration errors. Declare wraps one of these with the offending name.
var (
	ErrInvalidName   = errors.New("invalid kind name")
	ErrDuplicateKind = errors.New("duplicate kind")
	ErrReservedName  = errors.New("reserved kind name")
	ErrEmptyMessage  = errors.New("empty kind message")
)

var identRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Pair is one row of a kind table.
type Pair struct {
	Name    string
	Message string
}

// Namespace is a closed, ordered set of kinds plus the reserved external kind.
type Namespace struct {
	name     string
	kinds    []*Kind
	byName   map[string]*Kind
	external *Kind
}

// Declare builds a namespace from pairs, in order. It fails when the
// namespace or a kind name is not an identifier, a message is empty, a name
// repeats, or a pair uses the reserved external name.
func Declare(namespace string, pairs ...Pair) (*Namespace, error) {
	if !identRE.MatchString(namespace) {
		return nil, fmt.Errorf("namespace %q: %w", namespace, ErrInvalidName)
	}
	ns := &Namespace{
		name:   namespace,
		kinds:  make([]*Kind, 0, len(pairs)),
		byName: make(map[string]*Kind, len(pairs)+1),
	}
	ns.external = &Kind{ns: ns, name: externalName, message: externalMessage, ordinal: -1}
	ns.byName[externalName] = ns.external

	for i, p := range pairs {
		switch {
		case p.Name == externalName:
			return nil, fmt.Errorf("%s: %w", p.Name, ErrReservedName)
		case !identRE.MatchString(p.Name):
			return nil, fmt.Errorf("%s::%s: %w", namespace, p.Name, ErrInvalidName)
		case p.Message == "":
			return nil, fmt.Errorf("%s::%s: %w", namespace, p.Name, ErrEmptyMessage)
		}
		if _, dup := ns.byName[p.Name]; dup {
			return nil, fmt.Errorf("%s::%s: %w", namespace, p.Name, ErrDuplicateKind)
		}
		k := &Kind{ns: ns, name: p.Name, message: p.Message, ordinal: i}
		ns.kinds = append(ns.kinds, k)
		ns.byName[p.Name] = k
	}
	return ns, nil
}

// MustDeclare is like Declare but panics on error. Intended for package-level
// var blocks, where a bad table should stop the program before main runs.
func MustDeclare(namespace string, pairs ...Pair) *Namespace {
	ns, err := Declare(namespace, pairs...)
	if err != nil {
		panic(fmt.Sprintf("xgxchain.MustDeclare: %v", err))
	}
	return ns
}

// Name returns the namespace name used in markers.
func (ns *Namespace) Name() string { return ns.name }

// External returns the reserved kind for errors of unknown origin.
func (ns *Namespace) External() *Kind { return ns.external }

// Lookup finds a kind by name. The external kind is found under "__".
func (ns *Namespace) Lookup(name string) (*Kind, bool) {
	k, ok := ns.byName[name]
	return k, ok
}

// MustKind returns the named kind or panics.
func (ns *Namespace) MustKind(name string) *Kind {
	k, ok := ns.byName[name]
	if !ok {
		panic(fmt.Sprintf("xgxchain: kind %s::%s not declared", ns.name, name))
	}
	return k
}

// Kinds returns the declared kinds in declaration order, without the
// external kind. The slice is a copy.
func (ns *Namespace) Kinds() []*Kind {
	out := make([]*Kind, len(ns.kinds))
	copy(out, ns.kinds)
	return out
}

// Len returns the number of declared kinds, not counting the external kind.
func (ns *Namespace) Len() int { return len(ns.kinds) }

// Owns reports whether k was declared by ns (external kind included).
func (ns *Namespace) Owns(k *Kind) bool { return k != nil && k.ns == ns }

// orphans backs operations handed a nil kind so they stay total.
var orphans = MustDeclare(DefaultNamespace)
