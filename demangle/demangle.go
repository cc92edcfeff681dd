// Package demangle decodes mangled Scala Native identifiers into
// human-readable symbol names.
//
// The mangling scheme is the externally published Scala Native grammar
// (https://scala-native.org/en/latest/contrib/mangling.html): a recursive,
// tag-dispatched, length-prefixed encoding. Demangling parses the input into
// a structured tree and renders it canonically; malformed input yields a
// structured *ParseError, never a partial result or a panic.
package demangle

import "strings"

// Demangle converts a mangled Scala Native identifier to readable form
// using the canonical notation.
func Demangle(mangled string) (string, error) {
	return DemangleWithOptions(mangled, Options{})
}

// DemangleWithOptions is Demangle with explicit rendering options.
func DemangleWithOptions(mangled string, opts Options) (string, error) {
	sym, err := Parse(mangled)
	if err != nil {
		return "", err
	}
	return Render(sym, opts), nil
}

// Parse decodes a mangled identifier into its symbol tree. The tree is
// owned by the caller; the package keeps no state between calls.
func Parse(mangled string) (*Symbol, error) {
	if mangled == "" {
		return nil, &ParseError{
			Production: "mangled-name",
			Offset:     0,
			Found:      endOfInput,
			Err:        ErrUnexpectedEnd,
		}
	}
	if !strings.HasPrefix(mangled, "_S") {
		return nil, &ParseError{
			Production: "mangled-name",
			Offset:     0,
			Found:      string(mangled[0]),
			Err:        ErrNotMangled,
		}
	}

	p := &parser{cur: newCursor(mangled, 2)}
	sym, err := p.parseDefn()
	if err != nil {
		return nil, err
	}

	if ch, ok := p.cur.peek(); ok {
		return nil, &ParseError{
			Production: "mangled-name",
			Offset:     p.cur.offset(),
			Found:      string(ch),
			Err:        ErrTrailingInput,
		}
	}
	return sym, nil
}

// Filter demangles mangled identifiers and passes everything else through
// unchanged, including identifiers that fail to parse. Callers that need
// the error instead use Demangle.
func Filter(name string) string {
	if !IsMangled(name) {
		return name
	}
	out, err := Demangle(name)
	if err != nil {
		return name
	}
	return out
}

// IsMangled reports whether the name carries the Scala Native prologue.
func IsMangled(name string) bool {
	return strings.HasPrefix(name, "_S")
}
