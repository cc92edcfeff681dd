package demangle

import (
	"strconv"
	"strings"
)

// Options controls rendering. The zero value is the canonical notation.
type Options struct {
	// Qualified keeps fully-qualified type names (scala.Int,
	// java.lang.String) instead of the collapsed defaults.
	Qualified bool
}

// Render turns a parsed symbol into canonical text. It is a pure function
// of the tree and options: identical trees render byte-identically.
func Render(sym *Symbol, opts Options) string {
	r := renderer{opts: opts}
	r.symbol(sym)
	return r.b.String()
}

type renderer struct {
	b    strings.Builder
	opts Options
}

func (r *renderer) symbol(s *Symbol) {
	r.path(s.Owner)
	if s.Member != nil {
		r.b.WriteByte('.')
		r.member(s.Member)
	}
}

func (r *renderer) path(segs []PathSegment) {
	for i, seg := range segs {
		if i > 0 {
			r.b.WriteByte('.')
		}
		r.b.WriteString(seg.Name)
		if seg.Kind == SegmentObject {
			r.b.WriteByte('$')
		}
	}
}

func (r *renderer) member(m Member) {
	switch m := m.(type) {
	case *Field:
		r.scope(m.Scope)
		r.b.WriteString(m.Name)
		if m.Type != nil {
			r.b.WriteString(": ")
			r.typ(m.Type)
		}

	case *Method:
		r.scope(m.Scope)
		r.b.WriteString(m.Name)
		r.params(m.Params)
		r.b.WriteString(": ")
		r.typ(m.Result)

	case *Proxy:
		r.b.WriteString(m.Name)
		r.params(m.Params)
		r.b.WriteString(": ")
		r.typ(m.Result)

	case *Constructor:
		r.b.WriteString("<init>")
		r.params(m.Params)

	case *StaticInit:
		r.b.WriteString("<clinit>")

	case *Extern:
		r.b.WriteString(m.Name)

	case *Generated:
		r.b.WriteString(m.Name)

	case *Duplicate:
		// The disambiguator types carry no source-level meaning.
		r.member(m.Inner)
	}
}

func (r *renderer) scope(sc Scope) {
	if sc.Kind != ScopePrivate {
		return
	}
	r.b.WriteString("<private[")
	r.symbol(sc.Owner)
	r.b.WriteString("]>")
}

func (r *renderer) params(types []Type) {
	r.b.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			r.b.WriteString(", ")
		}
		r.typ(t)
	}
	r.b.WriteByte(')')
}

func (r *renderer) typ(t Type) {
	switch t := t.(type) {
	case *PrimType:
		if r.opts.Qualified {
			r.b.WriteString("scala.")
		}
		r.b.WriteString(primNames[t.Prim])

	case *ClassType:
		full := pathName(t.Segments)
		if !r.opts.Qualified {
			full = collapseTypeName(full)
		}
		r.b.WriteString(full)

	case *ArrayType:
		r.typ(t.Elem)
		for i := 0; i < t.Dims; i++ {
			r.b.WriteString("[]")
		}

	case *CArrayType:
		r.b.WriteString("CArray[")
		r.typ(t.Elem)
		r.b.WriteString(", ")
		r.b.WriteString(strconv.FormatInt(t.Length, 10))
		r.b.WriteByte(']')

	case *FuncType:
		r.params(t.Params)
		r.b.WriteString(" => ")
		r.typ(t.Result)

	case *StructType:
		r.b.WriteString("CStruct[")
		for i, f := range t.Fields {
			if i > 0 {
				r.b.WriteString(", ")
			}
			r.typ(f)
		}
		r.b.WriteByte(']')

	case *PtrType:
		r.b.WriteString("Ptr")

	case *VarargType:
		r.b.WriteString("<c vararg>")
	}
}

// renderMember and renderType back the String methods on nodes with the
// default options.
func renderMember(m Member) string {
	r := renderer{}
	r.member(m)
	return r.b.String()
}

func renderType(t Type) string {
	r := renderer{}
	r.typ(t)
	return r.b.String()
}
