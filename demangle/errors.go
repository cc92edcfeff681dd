package demangle

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure taxonomy. Every error returned by this
// package wraps exactly one of these inside a *ParseError.
var (
	// ErrNotMangled indicates the input lacks the _S prologue.
	ErrNotMangled = errors.New("missing _S prefix")

	// ErrUnexpectedEnd indicates the input ended inside a production.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrUnexpectedChar indicates a character other than the required one.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrUnknownTag indicates a tag that selects no known production.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrUnknownPrimitive indicates a code letter outside the closed
	// primitive table. Table drift is surfaced, never masked.
	ErrUnknownPrimitive = errors.New("unknown primitive type code")

	// ErrInvalidLength indicates a length prefix that is zero, malformed,
	// or exceeds the remaining input.
	ErrInvalidLength = errors.New("invalid length prefix")

	// ErrTrailingInput indicates residual characters after a complete symbol.
	ErrTrailingInput = errors.New("trailing input after symbol")

	// ErrRecursionLimit indicates type nesting beyond the depth guard.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)

// endOfInput marks the offending-token field when the input was exhausted.
const endOfInput = "<end of input>"

// ParseError reports a demangling failure with the production being parsed,
// the absolute byte offset into the original input, and the offending token.
type ParseError struct {
	Production string // grammar production being parsed
	Offset     int    // byte offset into the mangled input
	Expected   string // what the production required, if a single token
	Found      string // offending token, or endOfInput
	Err        error  // one of the sentinel errors above
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "demangle: %s at offset %d: %v", e.Production, e.Offset, e.Err)
	if e.Expected != "" {
		fmt.Fprintf(&b, ", expected %q", e.Expected)
	}
	if e.Found != "" {
		fmt.Fprintf(&b, ", found %q", e.Found)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }
