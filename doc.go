// doc.go: package documentation for xgx-chain
//
// Package xgxchain classifies failures into closed kind alphabets and
// carries a human-readable provenance chain on every error value.
//
// # Declaring Kinds
//
// A namespace is declared once from an ordered table. Call sites reference
// kinds through variables, so matching against an undeclared kind does not
// compile:
//
//	var (
//		Errs  = xgxchain.MustDeclare("err",
//			xgxchain.Pair{Name: "One", Message: "first."},
//			xgxchain.Pair{Name: "Two", Message: "second."},
//		)
//		One = Errs.MustKind("One")
//		Two = Errs.MustKind("Two")
//	)
//
// Every namespace also carries the reserved external kind (Errs.External(),
// marker "err::__") for errors of unknown origin. `xgxchain gen` writes the
// var block above from a YAML or TOML table (see package kindtable).
//
// # Originating and Escalating
//
//   - Originate(k, loc) / Originatef(k, loc, detail...):
//     a one-frame error. Nothing came before it.
//   - Escalate(prior, k, loc, call) / Escalatef(...):
//     a new error of kind k whose chain ends with prior's rendering. call
//     is a literal description of the expression that failed ("bbb()").
//
// Frames read most recent first:
//
//	  [src/main.go 18:8] this error is third one. 3.three <- two. <err::Three>
//	                     ⎺↴ bbb()
//	  [src/main.go 14:13] this error is second one. 2.two <- one. <err::Two>
//	                      ⎺↴ aaa()
//	  [src/main.go 11:12] this error is first one. 1.error bang! <err::One>
//
// Only the text of prior survives. An escalated error does not Unwrap to
// its cause and matches only its own kind.
//
// # Matching
//
//   - Is(err, k) and errors.Is(err, k) compare kind identity, never text.
//   - Recover(v, err, k, def) absorbs exactly one kind and re-signals every
//     other error unchanged. Extract does the same for an Outcome.
//   - DetailOf(err, k) returns the detail given at the call site.
//
// # Result Domains
//
// Result[T] holds any error. SendResult[T] holds only Sendable errors, which
// own all their data and may be handed to another goroutine. Detach moves
// an outcome into the strict domain and compiles only when its error type is
// Sendable; CastResult converts anything, classifying foreign errors as the
// external kind. Fail and Succeed build outcomes with any error bound, so a
// library error held as Outcome[T, Error] detaches without a runtime check.
//
// # Foreign Domains
//
// A Bridge maps a foreign kind enum onto a namespace with a declared table.
// Both directions are total: unmapped foreign kinds become the external
// kind, unmapped library kinds become the bridge's fallback. Package
// iobridge supplies the I/O side.
//
// # Formatting
//
//   - `%v`, `%s` → the chain
//   - `%+v`      → a kind/msg/detail/at header line, then the chain
//   - `%q`       → quoted chain
//
// Package errlog logs errors as structured zerolog objects.
package xgxchain
