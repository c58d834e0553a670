// predicates.go: kind matching and inspection.
//
// Matching is by kind identity only. The rendered chain is prose for humans;
// nothing here parses it. errors.As is used so a library error still matches
// after a foreign wrapper (fmt.Errorf("...: %w", err)) was put around it.
// A library error never unwraps to its cause, so an escalated error matches
// its new kind and nothing it was escalated from.
package xgxchain

import "errors"

// Is reports whether err is (or wraps) a library error of kind k.
func Is(err error, k *Kind) bool {
	if err == nil || k == nil {
		return false
	}
	var e Error
	return errors.As(err, &e) && e.Kind() == k
}

// KindOf returns the kind of the first library error found in err's unwrap
// graph, or nil if there is none.
func KindOf(err error) *Kind {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return nil
}

// IsExternal reports whether err was classified as some namespace's external
// kind (a foreign error adopted without a mapping).
func IsExternal(err error) bool {
	return KindOf(err).IsExternal()
}

// DetailOf returns the detail embedded at the call site when err is of kind
// k. Tests use it to assert which input caused a failure without scraping
// the chain:
//
//	detail, ok := xgxchain.DetailOf(err, NotMatched) // "bar is 2", true
func DetailOf(err error, k *Kind) (string, bool) {
	if err == nil || k == nil {
		return "", false
	}
	var e Error
	if !errors.As(err, &e) || e.Kind() != k {
		return "", false
	}
	return e.Detail(), true
}

// ChainOf returns the rendered chain of a library error, or err.Error() for
// anything else. nil yields "".
func ChainOf(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(Error); ok {
		return e.Chain()
	}
	return err.Error()
}
