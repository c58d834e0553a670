package xgxchain

import (
	"strings"
	"testing"
)

// Shared test alphabet. Twin deliberately repeats One's message.
var (
	testNS = MustDeclare(DefaultNamespace,
		Pair{Name: "One", Message: "first."},
		Pair{Name: "Two", Message: "second."},
		Pair{Name: "Three", Message: "third."},
		Pair{Name: "Twin", Message: "first."},
	)
	kOne   = testNS.MustKind("One")
	kTwo   = testNS.MustKind("Two")
	kThree = testNS.MustKind("Three")
	kTwin  = testNS.MustKind("Twin")
)

var (
	locA = At("src/a.go", 3, 5)
	locB = At("src/b.go", 10, 2)
	locC = At("src/c.go", 21, 9)
)

// pad returns the connector indent for a frame stamped at loc.
func pad(loc Location) string {
	return strings.Repeat(" ", len(frameIndent)+len("[")+len(loc.String())+len("] "))
}

// containsInOrder reports whether all parts occur in s, in order.
func containsInOrder(s string, parts ...string) bool {
	idx := 0
	for _, p := range parts {
		j := strings.Index(s[idx:], p)
		if j < 0 {
			return false
		}
		idx += j + len(p)
	}
	return true
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
