package kindtable

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTable() Table {
	return Table{
		FormatVersion: "1.0",
		Namespace:     "err",
		Kinds: []Entry{
			{Name: "BrokenHeader", Message: "broken header."},
			{Name: "UnexpectedEof", Message: "unexpected eof."},
		},
		IO: []IOEntry{{Foreign: "UnexpectedEOF", Kind: "UnexpectedEof"}},
	}
}

func problemsOf(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
	return strings.Join(verr.Problems, "\n")
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	tbl := validTable()
	assert.NoError(t, tbl.Validate())

	tbl.IO = nil
	tbl.Package = "apperr"
	assert.NoError(t, tbl.Validate())
}

func TestValidate_Problems(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Table)
		want   string
	}{
		{"missing version", func(t *Table) { t.FormatVersion = "" }, "FormatVersion: required"},
		{"unsupported version", func(t *Table) { t.FormatVersion = "2.0" }, `"2.0" does not satisfy ^1`},
		{"garbage version", func(t *Table) { t.FormatVersion = "one" }, `"one" does not satisfy`},
		{"bad namespace", func(t *Table) { t.Namespace = "Err" }, "Namespace:"},
		{"bad package", func(t *Table) { t.Package = "my-pkg" }, "Package:"},
		{"no kinds", func(t *Table) { t.Kinds = nil; t.IO = nil }, "Kinds: required"},
		{"empty kinds", func(t *Table) { t.Kinds = []Entry{}; t.IO = nil }, "Kinds: at least 1"},
		{"lower-case kind", func(t *Table) { t.Kinds[0].Name = "broken" }, `Kinds[0].Name: "broken" is not an exported identifier`},
		{"reserved kind", func(t *Table) { t.Kinds[0].Name = "__" }, `Kinds[0].Name: "__"`},
		{"empty message", func(t *Table) { t.Kinds[1].Message = "" }, "Kinds[1].Message: required"},
		{"duplicate kind", func(t *Table) { t.Kinds[1].Name = "BrokenHeader"; t.IO = nil }, "Kinds: duplicate name"},
		{"unknown io kind", func(t *Table) { t.IO[0].Foreign = "Bogus" }, `IO[0].Foreign: "Bogus" is not an io kind`},
		{"duplicate io", func(t *Table) { t.IO = append(t.IO, t.IO[0]) }, "IO: duplicate foreign"},
		{"undeclared io target", func(t *Table) { t.IO[0].Kind = "Nope" }, `io[0]: kind "Nope" is not declared`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tbl := validTable()
			tc.mutate(&tbl)
			assert.Contains(t, problemsOf(t, tbl.Validate()), tc.want)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	tbl := validTable()
	tbl.Namespace = ""
	tbl.Kinds[0].Name = "x"
	tbl.IO[0].Kind = "Nope"

	err := tbl.Validate()
	problems := problemsOf(t, err)
	assert.Contains(t, problems, "Namespace: required")
	assert.Contains(t, problems, "Kinds[0].Name")
	assert.Contains(t, problems, `kind "Nope"`)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid kind table: "))
}

func TestIsFormatSupported(t *testing.T) {
	t.Parallel()

	for v, want := range map[string]bool{
		"1":     true,
		"1.0":   true,
		"1.9.3": true,
		"v1.2":  true,
		"0.9":   false,
		"2.0":   false,
		"":      false,
		"x":     false,
	} {
		assert.Equal(t, want, IsFormatSupported(v), "version %q", v)
	}
}

func TestV_IsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, V(), V())
}
