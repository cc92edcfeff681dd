package demangle

// maxDepth bounds recursive productions. Every level consumes at least one
// input character, so legitimate symbols stay far below this.
const maxDepth = 512

// parser is a recursive-descent consumer of the cursor. The grammar is
// LL(1): every production is selected by the next tag alone, with no
// backtracking.
type parser struct {
	cur   *cursor
	depth int
}

func (p *parser) enter(production string) error {
	p.depth++
	if p.depth > maxDepth {
		return &ParseError{
			Production: production,
			Offset:     p.cur.offset(),
			Err:        ErrRecursionLimit,
		}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseDefn consumes a <defn-name>: a top-level name or a member name.
func (p *parser) parseDefn() (*Symbol, error) {
	if err := p.enter("defn-name"); err != nil {
		return nil, err
	}
	defer p.leave()

	tag, ok := p.cur.next()
	if !ok {
		return nil, p.cur.errEnd("defn-name")
	}

	switch tag {
	case 'T':
		name, err := p.cur.readName("top-level-name")
		if err != nil {
			return nil, err
		}
		return &Symbol{Owner: splitOwner(decodeName(name))}, nil

	case 'M':
		name, err := p.cur.readName("member-name")
		if err != nil {
			return nil, err
		}
		member, err := p.parseSig()
		if err != nil {
			return nil, err
		}
		return &Symbol{Owner: splitOwner(decodeName(name)), Member: member}, nil

	default:
		p.cur.pos--
		return nil, &ParseError{
			Production: "defn-name",
			Offset:     p.cur.offset(),
			Found:      string(tag),
			Err:        ErrUnknownTag,
		}
	}
}

// parseSig consumes a <sig-name>.
func (p *parser) parseSig() (Member, error) {
	tag, ok := p.cur.next()
	if !ok {
		return nil, p.cur.errEnd("sig-name")
	}

	switch tag {
	case 'F':
		return p.parseField()

	case 'R':
		params, err := p.parseTypeList("constructor-name", false)
		if err != nil {
			return nil, err
		}
		return &Constructor{Params: params}, nil

	case 'I':
		return &StaticInit{}, nil

	case 'D':
		name, err := p.cur.readName("method-name")
		if err != nil {
			return nil, err
		}
		params, result, err := p.parseSignatureTypes("method-name")
		if err != nil {
			return nil, err
		}
		scope, err := p.parseScope()
		if err != nil {
			return nil, err
		}
		return &Method{Name: decodeName(name), Params: params, Result: result, Scope: scope}, nil

	case 'P':
		name, err := p.cur.readName("proxy-name")
		if err != nil {
			return nil, err
		}
		params, result, err := p.parseSignatureTypes("proxy-name")
		if err != nil {
			return nil, err
		}
		return &Proxy{Name: decodeName(name), Params: params, Result: result}, nil

	case 'C':
		name, err := p.cur.readName("extern-name")
		if err != nil {
			return nil, err
		}
		return &Extern{Name: decodeName(name)}, nil

	case 'G':
		name, err := p.cur.readName("generated-name")
		if err != nil {
			return nil, err
		}
		return &Generated{Name: decodeName(name)}, nil

	case 'K':
		inner, err := p.parseSig()
		if err != nil {
			return nil, err
		}
		disambig, err := p.parseTypeList("duplicate-name", true)
		if err != nil {
			return nil, err
		}
		return &Duplicate{Inner: inner, Disambig: disambig}, nil

	default:
		p.cur.pos--
		return nil, &ParseError{
			Production: "sig-name",
			Offset:     p.cur.offset(),
			Found:      string(tag),
			Err:        ErrUnknownTag,
		}
	}
}

// parseField consumes a field signature past its F tag. The field type is
// optional; scope tags never collide with type tags, so one-tag lookahead
// decides.
func (p *parser) parseField() (Member, error) {
	name, err := p.cur.readName("field-name")
	if err != nil {
		return nil, err
	}

	var typ Type
	if ch, ok := p.cur.peek(); ok && ch != 'O' && ch != 'o' && ch != 'P' {
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	scope, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return &Field{Name: decodeName(name), Type: typ, Scope: scope}, nil
}

// parseSignatureTypes reads the sentinel-terminated method type list and
// splits it into value parameters and the trailing result type.
func (p *parser) parseSignatureTypes(production string) ([]Type, Type, error) {
	types, err := p.parseTypeList(production, true)
	if err != nil {
		return nil, nil, err
	}
	return types[:len(types)-1], types[len(types)-1], nil
}

// parseTypeList reads <type-name>* up to the E sentinel.
func (p *parser) parseTypeList(production string, atLeastOne bool) ([]Type, error) {
	var types []Type
	for {
		ch, ok := p.cur.peek()
		if !ok {
			return nil, p.cur.errEnd(production)
		}
		if ch == 'E' {
			if atLeastOne && len(types) == 0 {
				return nil, &ParseError{
					Production: production,
					Offset:     p.cur.offset(),
					Expected:   "type-name",
					Found:      "E",
					Err:        ErrUnexpectedChar,
				}
			}
			p.cur.pos++
			return types, nil
		}

		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
	}
}

// parseScope consumes a <scope>.
func (p *parser) parseScope() (Scope, error) {
	tag, ok := p.cur.next()
	if !ok {
		return Scope{}, p.cur.errEnd("scope")
	}

	switch tag {
	case 'O':
		return Scope{Kind: ScopePublic}, nil
	case 'o':
		return Scope{Kind: ScopePublicStatic}, nil
	case 'P':
		owner, err := p.parseDefn()
		if err != nil {
			return Scope{}, err
		}
		return Scope{Kind: ScopePrivate, Owner: owner}, nil
	default:
		p.cur.pos--
		return Scope{}, &ParseError{
			Production: "scope",
			Offset:     p.cur.offset(),
			Found:      string(tag),
			Err:        ErrUnknownTag,
		}
	}
}

// parseType dispatches on the next tag to one of the type variants. This is
// the only source of recursive depth besides private scopes.
func (p *parser) parseType() (Type, error) {
	if err := p.enter("type-name"); err != nil {
		return nil, err
	}
	defer p.leave()

	ch, ok := p.cur.peek()
	if !ok {
		return nil, p.cur.errEnd("type-name")
	}

	if ch >= '0' && ch <= '9' {
		name, err := p.cur.readName("class-type-name")
		if err != nil {
			return nil, err
		}
		return &ClassType{Segments: splitOwner(decodeName(name))}, nil
	}

	p.cur.pos++
	switch ch {
	case 'z':
		return &PrimType{Prim: PrimBoolean}, nil
	case 'c':
		return &PrimType{Prim: PrimChar}, nil
	case 'f':
		return &PrimType{Prim: PrimFloat}, nil
	case 'd':
		return &PrimType{Prim: PrimDouble}, nil
	case 'u':
		return &PrimType{Prim: PrimUnit}, nil
	case 'l':
		return &PrimType{Prim: PrimNull}, nil
	case 'n':
		return &PrimType{Prim: PrimNothing}, nil
	case 'b':
		return &PrimType{Prim: PrimByte}, nil
	case 's':
		return &PrimType{Prim: PrimShort}, nil
	case 'i':
		return &PrimType{Prim: PrimInt}, nil
	case 'j':
		return &PrimType{Prim: PrimLong}, nil

	case 'v':
		return &VarargType{}, nil

	case 'X':
		name, err := p.cur.readName("exact-class-type-name")
		if err != nil {
			return nil, err
		}
		return &ClassType{Segments: splitOwner(decodeName(name)), Exact: true}, nil

	case 'L':
		return p.parseNullableType()

	case 'A':
		return p.parseArrayType(false)

	case 'R':
		if next, ok := p.cur.peek(); ok && next == '_' {
			p.cur.pos++
			return &PtrType{}, nil
		}
		params, result, err := p.parseSignatureTypes("function-type-name")
		if err != nil {
			return nil, err
		}
		return &FuncType{Params: params, Result: result}, nil

	case 'S':
		fields, err := p.parseTypeList("struct-type-name", true)
		if err != nil {
			return nil, err
		}
		return &StructType{Fields: fields}, nil

	default:
		p.cur.pos--
		return nil, &ParseError{
			Production: "type-name",
			Offset:     p.cur.offset(),
			Found:      string(ch),
			Err:        ErrUnknownPrimitive,
		}
	}
}

// parseNullableType consumes a <nullable-type-name> past its L tag.
func (p *parser) parseNullableType() (Type, error) {
	ch, ok := p.cur.peek()
	if !ok {
		return nil, p.cur.errEnd("nullable-type-name")
	}

	switch {
	case ch == 'A':
		p.cur.pos++
		return p.parseArrayType(true)

	case ch == 'X':
		p.cur.pos++
		name, err := p.cur.readName("exact-class-type-name")
		if err != nil {
			return nil, err
		}
		return &ClassType{Segments: splitOwner(decodeName(name)), Nullable: true, Exact: true}, nil

	case ch >= '0' && ch <= '9':
		name, err := p.cur.readName("class-type-name")
		if err != nil {
			return nil, err
		}
		return &ClassType{Segments: splitOwner(decodeName(name)), Nullable: true}, nil

	default:
		return nil, &ParseError{
			Production: "nullable-type-name",
			Offset:     p.cur.offset(),
			Found:      string(ch),
			Err:        ErrUnknownTag,
		}
	}
}

// parseArrayType consumes the remainder of an A production: the element
// type, then either a decimal length (C array) or the '_' terminator.
// Directly nested arrays collapse into the dimension count.
func (p *parser) parseArrayType(nullable bool) (Type, error) {
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if ch, ok := p.cur.peek(); ok && ch >= '0' && ch <= '9' {
		length, err := p.cur.readNumber("c-array-type-name")
		if err != nil {
			return nil, err
		}
		if err := p.cur.expect("c-array-type-name", '_'); err != nil {
			return nil, err
		}
		return &CArrayType{Elem: elem, Length: length}, nil
	}

	if err := p.cur.expect("array-type-name", '_'); err != nil {
		return nil, err
	}

	if inner, ok := elem.(*ArrayType); ok {
		return &ArrayType{Elem: inner.Elem, Dims: inner.Dims + 1, Nullable: nullable}, nil
	}
	return &ArrayType{Elem: elem, Dims: 1, Nullable: nullable}, nil
}
