// bridge.go: mapping between a kind alphabet and a foreign error domain.
//
// A Bridge is declared once from a table of (foreign kind → library kind)
// rows and is then a pair of pure, total functions:
//
//   - ToLibrary: classified and mapped foreign kinds become that library
//     kind; everything else becomes the namespace's external kind.
//   - ToForeign: library kinds found in the table become their foreign
//     kind; everything else becomes the fallback foreign kind.
//
// The foreign domain is described by two functions: classify (error →
// foreign kind) and build (foreign kind, message → error). Package iobridge
// supplies both for I/O errors.
package xgxchain

import (
	"errors"
	"fmt"
)

// Bridge declaration errors.
var (
	ErrForeignKind  = errors.New("kind belongs to another namespace")
	ErrDuplicateMap = errors.New("foreign kind mapped twice")
	ErrNilBridge    = errors.New("bridge needs a namespace, a classifier and a builder")
)

// Mapping is one row of a bridge table.
type Mapping[F comparable] struct {
	Foreign F
	Kind    *Kind
}

// Bridge converts errors between a namespace and a foreign domain F.
// It is immutable after NewBridge and safe for concurrent use.
type Bridge[F comparable] struct {
	ns       *Namespace
	table    []Mapping[F]
	forward  map[F]*Kind
	reverse  map[*Kind]F
	fallback F
	classify func(error) (F, bool)
	build    func(F, string) error
}

// NewBridge declares a bridge. fallback is the foreign kind used for library
// kinds absent from the table. When several rows map to the same library
// kind, the first row wins in the reverse direction.
func NewBridge[F comparable](
	ns *Namespace,
	fallback F,
	classify func(error) (F, bool),
	build func(F, string) error,
	table ...Mapping[F],
) (*Bridge[F], error) {
	if ns == nil || classify == nil || build == nil {
		return nil, ErrNilBridge
	}
	b := &Bridge[F]{
		ns:       ns,
		table:    make([]Mapping[F], 0, len(table)),
		forward:  make(map[F]*Kind, len(table)),
		reverse:  make(map[*Kind]F, len(table)),
		fallback: fallback,
		classify: classify,
		build:    build,
	}
	for _, m := range table {
		if !ns.Owns(m.Kind) {
			return nil, fmt.Errorf("%v → %s: %w", m.Foreign, m.Kind.Marker(), ErrForeignKind)
		}
		if _, dup := b.forward[m.Foreign]; dup {
			return nil, fmt.Errorf("%v: %w", m.Foreign, ErrDuplicateMap)
		}
		b.forward[m.Foreign] = m.Kind
		if _, seen := b.reverse[m.Kind]; !seen {
			b.reverse[m.Kind] = m.Foreign
		}
		b.table = append(b.table, m)
	}
	return b, nil
}

// MustBridge is like NewBridge but panics on error.
func MustBridge[F comparable](
	ns *Namespace,
	fallback F,
	classify func(error) (F, bool),
	build func(F, string) error,
	table ...Mapping[F],
) *Bridge[F] {
	b, err := NewBridge(ns, fallback, classify, build, table...)
	if err != nil {
		panic(fmt.Sprintf("xgxchain.MustBridge: %v", err))
	}
	return b
}

// Namespace returns the library side of the bridge.
func (b *Bridge[F]) Namespace() *Namespace { return b.ns }

// Table returns the declared rows in order. The slice is a copy.
func (b *Bridge[F]) Table() []Mapping[F] {
	out := make([]Mapping[F], len(b.table))
	copy(out, b.table)
	return out
}

// LibraryKind returns the kind f maps to; unmapped kinds map to External().
func (b *Bridge[F]) LibraryKind(f F) *Kind {
	if k, ok := b.forward[f]; ok {
		return k
	}
	return b.ns.External()
}

// ForeignKind returns the foreign kind k maps back to and whether k was in
// the table. Unmapped kinds report the fallback.
func (b *Bridge[F]) ForeignKind(k *Kind) (F, bool) {
	if f, ok := b.reverse[k]; ok {
		return f, true
	}
	return b.fallback, false
}

// ToLibrary classifies a foreign error. The result is a fresh one-frame
// error stamped at loc whose detail records the foreign kind and message.
// Library errors are returned unchanged and nil maps to nil.
func (b *Bridge[F]) ToLibrary(err error, loc Location) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	f, ok := b.classify(err)
	k := b.ns.External()
	if ok {
		k = b.LibraryKind(f)
	}
	return Originatef(k, loc, "bridged from %v: %s", f, err.Error())
}

// ToForeign converts err into the foreign domain. The message payload is the
// rendered chain. nil maps to nil.
func (b *Bridge[F]) ToForeign(err error) error {
	if err == nil {
		return nil
	}
	f, _ := b.ForeignKind(KindOf(err))
	return b.build(f, ChainOf(err))
}
