// compose.go: escalation, the chain composer.
//
// Escalating renders a new frame and hangs the previous rendering below it:
//
//	  [src/ccc.go 18:8] this error is third one. 3.three <- two. <err::Three>
//	                    ⎺↴ bbb()
//	  [src/bbb.go 14:13] this error is second one. 2.two <- one. <err::Two>
//	                     ⎺↴ aaa()
//	  [src/aaa.go 11:12] this error is first one. 1.error bang! <err::One>
//
// The most recent failure is always the first line. Only the prior error's
// text is kept, so a chain costs its length in bytes and nothing more.
package xgxchain

import (
	"errors"
	"fmt"
	"strings"
)

// Escalate re-classifies prior as kind k. call describes the expression that
// produced prior ("bbb()") and is printed on the connector line; it may be
// empty. prior may be nil or a foreign error.
func Escalate(prior error, k *Kind, loc Location, call string) Error {
	return escalate(prior, k, loc, call, "")
}

// Escalatef is Escalate with an instance-specific detail on the new frame.
func Escalatef(prior error, k *Kind, loc Location, call, format string, args ...any) Error {
	return escalate(prior, k, loc, call, fmt.Sprintf(format, args...))
}

func escalate(prior error, k *Kind, loc Location, call, detail string) *chainErr {
	k = orExternal(k)
	frame, width := renderFrame(k, loc, detail)
	chain := frame

	if below := priorRendering(prior); below != "" {
		chain = frame + "\n" + connector(width, call) + "\n" + below
	} else if call != "" {
		chain = frame + "\n" + connector(width, call)
	}
	return &chainErr{kind: k, loc: loc, detail: detail, chain: chain}
}

// priorRendering returns the text to place under a new frame. Library
// errors contribute their chain as-is; anything else is indented. When a
// foreign wrapper embeds a library chain in its text, only the wrapper's own
// text is indented and the embedded frames keep their alignment:
//
//	  loading config:
//	  [src/a.go 3:5] first. <err::One>
func priorRendering(prior error) string {
	switch p := prior.(type) {
	case nil:
		return ""
	case Error:
		return p.Chain()
	default:
		return wrappedRendering(p.Error(), p)
	}
}

func wrappedRendering(text string, prior error) string {
	var inner Error
	if !errors.As(prior, &inner) {
		return indentForeign(text)
	}
	chain := inner.Chain()
	i := strings.Index(text, chain)
	if chain == "" || i < 0 {
		return indentForeign(text)
	}
	parts := make([]string, 0, 3)
	if before := strings.TrimRight(text[:i], " \t\n"); before != "" {
		parts = append(parts, indentForeign(before))
	}
	parts = append(parts, chain)
	if after := strings.TrimLeft(text[i+len(chain):], " \t\n"); after != "" {
		parts = append(parts, indentForeign(after))
	}
	return strings.Join(parts, "\n")
}
