package demangle

import "strconv"

// cursor is a linear scanner over the mangled input. Offsets are absolute
// byte positions into the original string, prologue included, so errors
// point into what the caller passed in.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string, start int) *cursor {
	return &cursor{input: input, pos: start}
}

// offset returns the current read position.
func (c *cursor) offset() int { return c.pos }

// done reports whether the input is exhausted.
func (c *cursor) done() bool { return c.pos >= len(c.input) }

// peek returns the next character without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.done() {
		return 0, false
	}
	return c.input[c.pos], true
}

// next consumes and returns the next character.
func (c *cursor) next() (byte, bool) {
	if c.done() {
		return 0, false
	}
	ch := c.input[c.pos]
	c.pos++
	return ch, true
}

// expect consumes one character and fails unless it matches want.
func (c *cursor) expect(production string, want byte) error {
	ch, ok := c.next()
	if !ok {
		return c.errEnd(production)
	}
	if ch != want {
		c.pos--
		return &ParseError{
			Production: production,
			Offset:     c.pos,
			Expected:   string(want),
			Found:      string(ch),
			Err:        ErrUnexpectedChar,
		}
	}
	return nil
}

// readName decodes a length-prefixed identifier: decimal digits giving the
// byte length, an optional '-' separator (present when the identifier itself
// starts with a digit), then exactly that many bytes. Length errors report
// the offset where the length prefix started.
func (c *cursor) readName(production string) (string, error) {
	start := c.pos
	digits, err := c.readDigits(production)
	if err != nil {
		return "", err
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 {
		return "", &ParseError{
			Production: production,
			Offset:     start,
			Found:      digits,
			Err:        ErrInvalidLength,
		}
	}

	if ch, ok := c.peek(); ok && ch == '-' {
		c.pos++
	}

	if n > len(c.input)-c.pos {
		return "", &ParseError{
			Production: production,
			Offset:     start,
			Found:      digits,
			Err:        ErrInvalidLength,
		}
	}

	name := c.input[c.pos : c.pos+n]
	c.pos += n
	return name, nil
}

// readNumber decodes a decimal integer, such as a C array length.
func (c *cursor) readNumber(production string) (int64, error) {
	start := c.pos
	digits, err := c.readDigits(production)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &ParseError{
			Production: production,
			Offset:     start,
			Found:      digits,
			Err:        ErrInvalidLength,
		}
	}
	return n, nil
}

// readDigits consumes a non-empty run of decimal digits.
func (c *cursor) readDigits(production string) (string, error) {
	start := c.pos
	for {
		ch, ok := c.peek()
		if !ok || ch < '0' || ch > '9' {
			break
		}
		c.pos++
	}

	if c.pos == start {
		if c.done() {
			return "", c.errEnd(production)
		}
		return "", &ParseError{
			Production: production,
			Offset:     c.pos,
			Expected:   "digit",
			Found:      string(c.input[c.pos]),
			Err:        ErrUnexpectedChar,
		}
	}
	return c.input[start:c.pos], nil
}

func (c *cursor) errEnd(production string) error {
	return &ParseError{
		Production: production,
		Offset:     c.pos,
		Found:      endOfInput,
		Err:        ErrUnexpectedEnd,
	}
}
