package demangle

import "strings"

// The grammar escapes operator and punctuation characters in identifiers as
// multi-character $-codes (the Scala NameTransformer table). The table is a
// closed, versioned mapping kept here as data so grammar revisions touch
// only this file.
var opCodes = []struct {
	code  string
	glyph byte
}{
	{"tilde", '~'},
	{"eq", '='},
	{"less", '<'},
	{"greater", '>'},
	{"bang", '!'},
	{"hash", '#'},
	{"percent", '%'},
	{"up", '^'},
	{"amp", '&'},
	{"bar", '|'},
	{"times", '*'},
	{"div", '/'},
	{"plus", '+'},
	{"minus", '-'},
	{"colon", ':'},
	{"bslash", '\\'},
	{"qmark", '?'},
}

// decodeName un-escapes $-encoded operator characters. Unrecognized
// $-sequences (module suffixes, lambda-lifted names and the like) pass
// through untouched.
func decodeName(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}

		matched := false
		for _, op := range opCodes {
			if strings.HasPrefix(s[i+1:], op.code) {
				b.WriteByte(op.glyph)
				i += 1 + len(op.code)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte('$')
			i++
		}
	}
	return b.String()
}

// encodeName is the inverse of decodeName over the operator table.
func encodeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
outer:
	for i := 0; i < len(s); i++ {
		for _, op := range opCodes {
			if s[i] == op.glyph {
				b.WriteByte('$')
				b.WriteString(op.code)
				continue outer
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// splitOwner turns a decoded dotted name into path segments. A trailing '$'
// marks an object segment; otherwise interior segments are packages and the
// final one is a class.
func splitOwner(name string) []PathSegment {
	parts := strings.Split(name, ".")
	segs := make([]PathSegment, 0, len(parts))
	for i, part := range parts {
		seg := PathSegment{Kind: SegmentPackage, Name: part}
		switch {
		case strings.HasSuffix(part, "$") && len(part) > 1:
			seg.Kind = SegmentObject
			seg.Name = part[:len(part)-1]
		case i == len(parts)-1:
			seg.Kind = SegmentClass
		}
		segs = append(segs, seg)
	}
	return segs
}

// pathName reverses splitOwner back into the dotted source-level name.
func pathName(segs []PathSegment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Name)
		if seg.Kind == SegmentObject {
			b.WriteByte('$')
		}
	}
	return b.String()
}

// Well-known types shortened by the default rendering. Owner paths are
// never collapsed, only type names.
var commonTypeNames = map[string]string{
	"java.lang.Object":    "Object",
	"java.lang.String":    "String",
	"java.lang.Throwable": "Throwable",
}

const immutablePrefix = "scala.collection.immutable."

func collapseTypeName(full string) string {
	if short, ok := commonTypeNames[full]; ok {
		return short
	}
	return strings.TrimPrefix(full, immutablePrefix)
}
