package xgxchain

import (
	"errors"
	"strings"
	"testing"
)

func FuzzEscalateForeign(f *testing.F) {
	f.Add("unexpected EOF", "n=3", "read()")
	f.Add("line one\nline two", "", "")
	f.Add("", "100% full", "⎺↴")

	f.Fuzz(func(t *testing.T, foreign, detail, call string) {
		e := Escalatef(errors.New(foreign), kTwo, locB, call, "%s", detail)

		frame, _ := renderFrame(kTwo, locB, detail)
		if !strings.HasPrefix(e.Chain(), frame) {
			t.Fatalf("chain does not start with the new frame:\n%s", e.Chain())
		}
		if foreign != "" && !strings.HasSuffix(e.Chain(), indentForeign(foreign)) {
			t.Fatalf("foreign text missing from chain:\n%s", e.Chain())
		}
		if d, ok := DetailOf(e, kTwo); !ok || d != detail {
			t.Fatalf("DetailOf = %q, %v; want %q", d, ok, detail)
		}
		if !Is(e, kTwo) || Is(e, kOne) {
			t.Fatalf("kind mismatch")
		}
	})
}
