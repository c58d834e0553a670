package xgxchain

import (
	"strings"
	"testing"
	"testing/quick"
)

// Any two distinct kinds never match each other, whatever their messages.
func TestQuickKindIdentity(t *testing.T) {
	property := func(msgA, msgB string) bool {
		ns, err := Declare("q", Pair{Name: "A", Message: "a" + msgA}, Pair{Name: "B", Message: "b" + msgB})
		if err != nil {
			return false
		}
		a, b := ns.MustKind("A"), ns.MustKind("B")
		ea := Originate(a, locA)
		return Is(ea, a) && !Is(ea, b) && !Is(Originate(b, locA), a)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("kind identity property failed: %v", err)
	}
}

// The detail given at the call site comes back unchanged.
func TestQuickDetailRoundTrip(t *testing.T) {
	property := func(detail string) bool {
		e := Originatef(kOne, locA, "%s", detail)
		got, ok := DetailOf(e, kOne)
		return ok && got == detail
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("detail round-trip property failed: %v", err)
	}
}

// After n escalations the markers read newest first and the origin's frame
// is the last line.
func TestQuickChainOrdering(t *testing.T) {
	kinds := []*Kind{kOne, kTwo, kThree}
	property := func(depth uint8) bool {
		n := int(depth%8) + 1
		e := Originate(kinds[0], locA)
		origin := e.Chain()
		markers := []string{"<" + kinds[0].Marker() + ">"}
		for i := 1; i < n; i++ {
			k := kinds[i%len(kinds)]
			e = Escalate(e, k, locB, "step()")
			markers = append([]string{"<" + k.Marker() + ">"}, markers...)
		}
		if strings.Count(e.Chain(), "⎺↴ step()") != n-1 {
			return false
		}
		return containsInOrder(e.Chain(), markers...) && strings.HasSuffix(e.Chain(), origin)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("chain ordering property failed: %v", err)
	}
}

// Escalation always keeps the prior chain verbatim below the new frame.
func TestQuickEscalateKeepsPrior(t *testing.T) {
	property := func(detailA, detailB, call string) bool {
		a := Originatef(kOne, locA, "%s", detailA)
		b := Escalatef(a, kTwo, locB, call, "%s", detailB)
		return strings.HasSuffix(b.Chain(), "\n"+a.Chain()) && b.Kind() == kTwo && a.Kind() == kOne
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("escalate property failed: %v", err)
	}
}
