package reaction

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes reaction construction and validation failures.
type ErrorCode string

const (
	// ErrCodeParse indicates a malformed equation string.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeConfig indicates an invariant violation in the reaction
	// description, such as orders given for a reversible reaction.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeUndeclaredSpecies indicates a reference to a species absent
	// from the governing species set (strict mode only; lenient mode
	// excludes the reaction instead of erroring).
	ErrCodeUndeclaredSpecies ErrorCode = "UNDECLARED_SPECIES"

	// ErrCodeBalance indicates an elemental or surface-site imbalance
	// beyond tolerance.
	ErrCodeBalance ErrorCode = "BALANCE_ERROR"

	// ErrCodeTypeResolution indicates an unknown reaction type tag or a
	// third-body structural mismatch (missing "M", unmatched "(+M)").
	ErrCodeTypeResolution ErrorCode = "TYPE_RESOLUTION"

	// ErrCodeUnsupported indicates a rejected combination of equation
	// notation and rate kind.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED_COMBINATION"
)

// Error is a structured reaction error. Every failure carries the
// equation text it concerns so diagnostics stay actionable after the
// reaction object itself is discarded.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Equation is the textual equation of the offending reaction.
	Equation string

	// Message is a human-readable description.
	Message string

	// Details contains additional context, such as the offending token
	// for parse errors or the per-element breakdown for balance errors.
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Equation != "" {
		return fmt.Sprintf("%s: %s (equation: %s)", e.Code, e.Message, e.Equation)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, equation, format string, args ...any) *Error {
	return &Error{Code: code, Equation: equation, Message: fmt.Sprintf(format, args...)}
}

func codeIs(err error, code ErrorCode) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// IsParseError reports whether err is a structural parse error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool { return codeIs(err, ErrCodeParse) }

// IsConfigError reports whether err is a configuration-invariant error.
func IsConfigError(err error) bool { return codeIs(err, ErrCodeConfig) }

// IsUndeclaredSpeciesError reports whether err is a strict-mode
// undeclared-species error.
func IsUndeclaredSpeciesError(err error) bool { return codeIs(err, ErrCodeUndeclaredSpecies) }

// IsBalanceError reports whether err is an element or site imbalance.
func IsBalanceError(err error) bool { return codeIs(err, ErrCodeBalance) }

// IsTypeResolutionError reports whether err is a type-resolution or
// third-body structural error.
func IsTypeResolutionError(err error) bool { return codeIs(err, ErrCodeTypeResolution) }

// IsUnsupportedError reports whether err is a rejected notation/rate
// combination.
func IsUnsupportedError(err error) bool { return codeIs(err, ErrCodeUnsupported) }
