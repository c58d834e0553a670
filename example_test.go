package xgxchain_test

import (
	"errors"
	"fmt"

	xgxchain "github.com/xgx-io/xgx-chain"
)

var (
	Errs = xgxchain.MustDeclare(xgxchain.DefaultNamespace,
		xgxchain.Pair{Name: "One", Message: "this error is first one."},
		xgxchain.Pair{Name: "Two", Message: "this error is second one."},
		xgxchain.Pair{Name: "Three", Message: "this error is third one."},
		xgxchain.Pair{Name: "Well", Message: "is this?"},
	)
	One   = Errs.MustKind("One")
	Two   = Errs.MustKind("Two")
	Three = Errs.MustKind("Three")
	Well  = Errs.MustKind("Well")
)

func aaa() (int, error) {
	return 0, xgxchain.Originatef(One, xgxchain.At("src/main.go", 11, 12), "%d.error bang!", 1)
}

func bbb() (int, error) {
	n, err := aaa()
	if err != nil {
		return 0, xgxchain.Escalatef(err, Two, xgxchain.At("src/main.go", 14, 13), "aaa()", "%d.two <- one.", 2)
	}
	return n, nil
}

func ccc() (int, error) {
	n, err := bbb()
	if err != nil {
		return 0, xgxchain.Escalatef(err, Three, xgxchain.At("src/main.go", 18, 8), "bbb()", "%d.three <- two.", 3)
	}
	return n, nil
}

func Example() {
	n, err := ccc()
	_, err = xgxchain.Recover(n, err, Well, 127)
	fmt.Println(err)
	// Output:
	//   [src/main.go 18:8] this error is third one. 3.three <- two. <err::Three>
	//                      ⎺↴ bbb()
	//   [src/main.go 14:13] this error is second one. 2.two <- one. <err::Two>
	//                       ⎺↴ aaa()
	//   [src/main.go 11:12] this error is first one. 1.error bang! <err::One>
}

func ExampleRecover() {
	n, err := ccc()
	c, err := xgxchain.Recover(n, err, Three, 127)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("1/%d is cosmological constant.\n", c)
	// Output:
	// 1/127 is cosmological constant.
}

func ExampleIs() {
	_, err := ccc()
	fmt.Println(xgxchain.Is(err, Three), xgxchain.Is(err, Two), errors.Is(err, Three))
	// Output:
	// true false true
}

func ExampleDetailOf() {
	err := xgxchain.Originatef(Well, xgxchain.At("probe.go", 7, 1), "%s is %d", "bar", 2)
	detail, ok := xgxchain.DetailOf(err, Well)
	fmt.Printf("%q %v\n", detail, ok)
	// Output:
	// "bar is 2" true
}

func ExampleFrom() {
	err := xgxchain.From(errors.New("connection reset"), Errs, xgxchain.At("net.go", 40, 3), "conn.Read(buf)")
	fmt.Println(err)
	fmt.Println(xgxchain.IsExternal(err))
	// Output:
	//   [net.go 40:3] external error <err::__>
	//                 ⎺↴ conn.Read(buf)
	//   connection reset
	// true
}
