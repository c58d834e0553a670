package kindtable

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/xgx-io/xgx-chain/iobridge"
)

// SupportedFormat is the range of format_version values this package reads.
const SupportedFormat = "^1"

const (
	// Kind names become exported Go identifiers in generated code.
	kindNameRegex = `^[A-Z][A-Za-z0-9_]*$`
	// Namespace names double as package names.
	nsNameRegex = `^[a-z][a-z0-9_]*$`
)

var (
	kindNameRE = regexp.MustCompile(kindNameRegex)
	nsNameRE   = regexp.MustCompile(nsNameRegex)
)

var formatConstraint = func() *semver.Constraints {
	c, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		panic(err)
	}
	return c
}()

var (
	tableValidator *validator.Validate
	validatorOnce  sync.Once
)

// V returns the validator used for tables, with the custom tags registered.
func V() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "kindname", kindNameValidator)
		mustRegister(v, "nsname", nsNameValidator)
		mustRegister(v, "iokind", ioKindValidator)
		mustRegister(v, "formatversion", formatVersionValidator)
		tableValidator = v
	})
	return tableValidator
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// kindNameValidator rejects names that are not exported identifiers. The
// reserved external name "__" fails here as well.
func kindNameValidator(fl validator.FieldLevel) bool {
	return kindNameRE.MatchString(fl.Field().String())
}

func nsNameValidator(fl validator.FieldLevel) bool {
	return nsNameRE.MatchString(fl.Field().String())
}

func ioKindValidator(fl validator.FieldLevel) bool {
	_, err := iobridge.ParseKind(fl.Field().String())
	return err == nil
}

// IsFormatSupported reports whether version satisfies SupportedFormat.
func IsFormatSupported(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return formatConstraint.Check(v)
}

func formatVersionValidator(fl validator.FieldLevel) bool {
	return IsFormatSupported(fl.Field().String())
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid kind table: " + strings.Join(e.Problems, "; ")
}

// Validate checks field rules and cross references: every io entry must
// name a declared kind.
func (t *Table) Validate() error {
	var problems []string
	if err := V().Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "validating kind table")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	declared := make(map[string]struct{}, len(t.Kinds))
	for _, e := range t.Kinds {
		declared[e.Name] = struct{}{}
	}
	for i, e := range t.IO {
		if e.Kind == "" {
			continue
		}
		if _, ok := declared[e.Kind]; !ok {
			problems = append(problems, fmt.Sprintf("io[%d]: kind %q is not declared", i, e.Kind))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Table.")
	switch fe.Tag() {
	case "required":
		return field + ": required"
	case "kindname":
		return fmt.Sprintf("%s: %q is not an exported identifier", field, fe.Value())
	case "nsname":
		return fmt.Sprintf("%s: %q must be a lower-case identifier", field, fe.Value())
	case "iokind":
		return fmt.Sprintf("%s: %q is not an io kind", field, fe.Value())
	case "formatversion":
		return fmt.Sprintf("%s: %q does not satisfy %s", field, fe.Value(), SupportedFormat)
	case "unique":
		return field + ": duplicate " + strings.ToLower(fe.Param())
	case "min":
		return field + ": at least " + fe.Param() + " entry required"
	}
	return fmt.Sprintf("%s: failed %s", field, fe.Tag())
}
