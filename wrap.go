// wrap.go: adopting arbitrary errors.
//
// From is the error-level half of the result domain adapter (CastResult is
// the other half): any error becomes a library Error, and foreign errors pick
// up a stamped frame under the namespace's external kind on the way in.
package xgxchain

// From converts any error into an Error.
//   - nil → nil
//   - Error → returned as-is (no extra frame)
//   - other → escalated under ns.External() at loc; call describes the
//     expression that failed
//
// A nil ns uses an internal namespace named DefaultNamespace.
func From(err error, ns *Namespace, loc Location, call string) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	if ns == nil {
		ns = orphans
	}
	return Escalate(err, ns.External(), loc, call)
}

// Adopt is From for call sites that report themselves as the location.
func Adopt(err error, ns *Namespace, call string) Error {
	return From(err, ns, HereSkip(1), call)
}
