package demangle

import "fmt"

// NodeKind identifies the type of AST node.
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindSymbol
	// Member nodes
	NodeKindField
	NodeKindMethod
	NodeKindProxy
	NodeKindConstructor
	NodeKindStaticInit
	NodeKindExtern
	NodeKindGenerated
	NodeKindDuplicate
	// Type nodes
	NodeKindPrimType
	NodeKindClassType
	NodeKindArrayType
	NodeKindCArrayType
	NodeKindFuncType
	NodeKindStructType
	NodeKindPtrType
	NodeKindVarargType
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Kind() NodeKind
	fmt.Stringer
}

// Member is a node that can appear as the member part of a Symbol.
type Member interface {
	Node
	member()
}

// Type is a node that can appear in a type position.
type Type interface {
	Node
	typeNode()
}

// SegmentKind classifies one component of an owner path.
type SegmentKind int

const (
	SegmentPackage SegmentKind = iota
	SegmentClass
	SegmentObject
)

// PathSegment is one qualified-name component. Object segments carry a
// trailing '$' in the encoding; it is stripped into the kind here and
// restored when rendering.
type PathSegment struct {
	Kind SegmentKind
	Name string
}

// Symbol is the root parsed entity: an owner path plus an optional member.
// A top-level name has a nil Member.
type Symbol struct {
	Owner  []PathSegment
	Member Member
}

func (s *Symbol) Kind() NodeKind { return NodeKindSymbol }
func (s *Symbol) String() string { return Render(s, Options{}) }

// ScopeKind classifies member visibility.
type ScopeKind int

const (
	ScopePublic ScopeKind = iota
	ScopePublicStatic
	ScopePrivate
)

// Scope is the visibility of a field or method. Private scopes name the
// definition they are private to.
type Scope struct {
	Kind  ScopeKind
	Owner *Symbol // non-nil only for ScopePrivate
}

// Field is a member holding a value. Type is nil for legacy encodings that
// carry no field type.
type Field struct {
	Name  string
	Type  Type
	Scope Scope
}

func (f *Field) Kind() NodeKind { return NodeKindField }
func (f *Field) String() string { return renderMember(f) }
func (f *Field) member()        {}

// Method is a declared method. The value-parameter list and result keep
// encoding order; a zero-parameter method has an empty Params slice.
type Method struct {
	Name   string
	Params []Type
	Result Type
	Scope  Scope
}

func (m *Method) Kind() NodeKind { return NodeKindMethod }
func (m *Method) String() string { return renderMember(m) }
func (m *Method) member()        {}

// Proxy is a compiler-inserted forwarding method.
type Proxy struct {
	Name   string
	Params []Type
	Result Type
}

func (p *Proxy) Kind() NodeKind { return NodeKindProxy }
func (p *Proxy) String() string { return renderMember(p) }
func (p *Proxy) member()        {}

// Constructor carries the constructor parameter types.
type Constructor struct {
	Params []Type
}

func (c *Constructor) Kind() NodeKind { return NodeKindConstructor }
func (c *Constructor) String() string { return renderMember(c) }
func (c *Constructor) member()        {}

// StaticInit is the class static initializer.
type StaticInit struct{}

func (s *StaticInit) Kind() NodeKind { return NodeKindStaticInit }
func (s *StaticInit) String() string { return renderMember(s) }
func (s *StaticInit) member()        {}

// Extern is a C extern member name.
type Extern struct {
	Name string
}

func (e *Extern) Kind() NodeKind { return NodeKindExtern }
func (e *Extern) String() string { return renderMember(e) }
func (e *Extern) member()        {}

// Generated is a compiler-generated member name.
type Generated struct {
	Name string
}

func (g *Generated) Kind() NodeKind { return NodeKindGenerated }
func (g *Generated) String() string { return renderMember(g) }
func (g *Generated) member()        {}

// Duplicate disambiguates an overloaded signature. The disambiguator types
// have no source-level meaning and are kept only for fidelity.
type Duplicate struct {
	Inner    Member
	Disambig []Type
}

func (d *Duplicate) Kind() NodeKind { return NodeKindDuplicate }
func (d *Duplicate) String() string { return renderMember(d) }
func (d *Duplicate) member()        {}

// PrimKind identifies primitive types from the closed code table.
type PrimKind int

const (
	PrimBoolean PrimKind = iota
	PrimChar
	PrimFloat
	PrimDouble
	PrimUnit
	PrimNull
	PrimNothing
	PrimByte
	PrimShort
	PrimInt
	PrimLong
)

var primNames = map[PrimKind]string{
	PrimBoolean: "Boolean",
	PrimChar:    "Char",
	PrimFloat:   "Float",
	PrimDouble:  "Double",
	PrimUnit:    "Unit",
	PrimNull:    "Null",
	PrimNothing: "Nothing",
	PrimByte:    "Byte",
	PrimShort:   "Short",
	PrimInt:     "Int",
	PrimLong:    "Long",
}

// PrimType is a primitive type.
type PrimType struct {
	Prim PrimKind
}

func (t *PrimType) Kind() NodeKind { return NodeKindPrimType }
func (t *PrimType) String() string { return renderType(t) }
func (t *PrimType) typeNode()      {}

// ClassType is a reference to a class, trait, or object by qualified name.
type ClassType struct {
	Segments []PathSegment
	Nullable bool
	Exact    bool
}

func (t *ClassType) Kind() NodeKind { return NodeKindClassType }
func (t *ClassType) String() string { return renderType(t) }
func (t *ClassType) typeNode()      {}

// ArrayType is an array of Elem with Dims >= 1 dimensions. Nested array
// encodings collapse into the dimension count at parse time.
type ArrayType struct {
	Elem     Type
	Dims     int
	Nullable bool
}

func (t *ArrayType) Kind() NodeKind { return NodeKindArrayType }
func (t *ArrayType) String() string { return renderType(t) }
func (t *ArrayType) typeNode()      {}

// CArrayType is a fixed-length C array.
type CArrayType struct {
	Elem   Type
	Length int64
}

func (t *CArrayType) Kind() NodeKind { return NodeKindCArrayType }
func (t *CArrayType) String() string { return renderType(t) }
func (t *CArrayType) typeNode()      {}

// FuncType is a C function type. The parameter list keeps encoding order.
type FuncType struct {
	Params []Type
	Result Type
}

func (t *FuncType) Kind() NodeKind { return NodeKindFuncType }
func (t *FuncType) String() string { return renderType(t) }
func (t *FuncType) typeNode()      {}

// StructType is a C anonymous struct type.
type StructType struct {
	Fields []Type
}

func (t *StructType) Kind() NodeKind { return NodeKindStructType }
func (t *StructType) String() string { return renderType(t) }
func (t *StructType) typeNode()      {}

// PtrType is the C pointer type. The encoding carries no pointee.
type PtrType struct{}

func (t *PtrType) Kind() NodeKind { return NodeKindPtrType }
func (t *PtrType) String() string { return renderType(t) }
func (t *PtrType) typeNode()      {}

// VarargType is the C vararg marker type.
type VarargType struct{}

func (t *VarargType) Kind() NodeKind { return NodeKindVarargType }
func (t *VarargType) String() string { return renderType(t) }
func (t *VarargType) typeNode()      {}
