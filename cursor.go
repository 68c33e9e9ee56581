// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Cursor is a read position into a caller-owned, immutable byte slice. It is
// the decode-side counterpart to an append-only encode buffer: every decode
// operation in this package advances a Cursor by exactly the number of bytes
// it consumed. A fixed-width read that fails leaves the position unchanged,
// so the failure can be attributed to the byte offset where the field began;
// a VarInt whose suffix is truncated leaves the position just past its tag
// byte.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor positions a Cursor at the start of buf. buf is never copied or
// mutated; the caller retains ownership.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset into the underlying buffer.
func (c *Cursor) Pos() int { return c.pos }

// SetPos repositions the cursor. Used by speculative decoders that need to
// rewind after a peek; prefer peekUint16LE over SetPos where possible.
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// Len returns the number of unread bytes remaining in the buffer.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Bytes returns the full underlying buffer, regardless of position.
func (c *Cursor) Bytes() []byte { return c.buf }

// next returns the next n bytes without advancing the position, or false if
// fewer than n bytes remain.
func (c *Cursor) next(n int) ([]byte, bool) {
	if c.Len() < n {
		return nil, false
	}
	return c.buf[c.pos : c.pos+n], true
}

// readExact consumes and returns exactly n bytes, advancing the position.
// On failure the position is left unchanged, i.e. at the start of the field
// the caller was attempting to decode.
func (c *Cursor) readExact(n int) ([]byte, bool) {
	b, ok := c.next(n)
	if !ok {
		return nil, false
	}
	c.pos += n
	return b, true
}

// peekUint16LE returns the next two bytes interpreted as a little-endian
// uint16 without advancing the cursor. The bool is false if fewer than two
// bytes remain. This backs the SegWit marker lookahead in Transaction
// decoding: a genuine non-consuming peek, rather than a read-then-rewind.
func (c *Cursor) peekUint16LE() (uint16, bool) {
	b, ok := c.next(2)
	if !ok {
		return 0, false
	}
	return uint16(b[0]) | uint16(b[1])<<8, true
}

// advance skips n bytes that have already been accounted for by a peek.
func (c *Cursor) advance(n int) { c.pos += n }
