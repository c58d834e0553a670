package xgxchain_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xgxchain "github.com/xgx-io/xgx-chain"
)

func TestDetach_TypedLibraryFailure(t *testing.T) {
	t.Parallel()

	e := xgxchain.Originate(badHeader, xgxchain.At("hdr.go", 4, 2))
	o := xgxchain.Fail[int](e)
	if o.IsOk() {
		t.Fatalf("Fail(e) reports Ok")
	}

	s := xgxchain.Detach(o)
	if s.IsOk() || s.Err() != e {
		t.Fatalf("Detach(Fail(e)) = %+v", s)
	}
	if v, err := xgxchain.Extract(s, badHeader, 9); v != 9 || err != nil {
		t.Fatalf("Extract(detached) = %v, %v", v, err)
	}

	ok := xgxchain.Detach(xgxchain.Succeed[int, xgxchain.Error](5))
	if !ok.IsOk() || ok.Value() != 5 {
		t.Fatalf("Detach(Succeed(5)) = %+v", ok)
	}
}

// typeCheck type-checks src as a file in this package's directory, with the
// module's own packages resolved from source.
func typeCheck(t *testing.T, src string) error {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filepath.Join(dir, "check_src.go"), src, 0)
	if err != nil {
		t.Fatal(err)
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("check", fset, []*ast.File{f}, nil)
	return err
}

const detachSrc = `package check

import xgxchain "github.com/xgx-io/xgx-chain"

func detach(e xgxchain.Error) xgxchain.SendResult[int] {
	return xgxchain.Detach(%s)
}
`

func TestDetach_LooseResultDoesNotTypeCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks the package from source")
	}

	if err := typeCheck(t, strings.Replace(detachSrc, "%s", "xgxchain.Fail[int](e)", 1)); err != nil {
		t.Skipf("source importer unavailable: %v", err)
	}

	err := typeCheck(t, strings.Replace(detachSrc, "%s", "xgxchain.Err[int](e)", 1))
	if err == nil {
		t.Fatalf("Detach(Result[int]) type-checked")
	}
	if !strings.Contains(err.Error(), "Sendable") {
		t.Fatalf("unexpected type error: %v", err)
	}
}
