// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// Script is an opaque, VarInt-length-prefixed byte string: a locking or
// unlocking script. This package never parses script opcodes; it only
// carries the bytes.
type Script []byte

// readScript decodes a Script, mapping either a short length prefix or a
// short body to the single Kind k (scripts do not distinguish VecLen from
// VecContent the way a generic byte vector does).
func readScript(c *Cursor, k Kind) (Script, error) {
	pos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(k, pos)
	}
	bodyPos := c.Pos()
	b, ok := c.readExact(int(n))
	if !ok {
		return nil, newErr(k, bodyPos)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Script(out), nil
}

func writeScript(w *bytes.Buffer, s Script, k Kind) error {
	if err := writeVec(w, s); err != nil {
		return newErr(k, 0)
	}
	return nil
}
