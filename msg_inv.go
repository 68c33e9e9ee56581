// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgInv advertises knowledge of one or more objects (transactions,
// blocks). This package treats the body as an opaque, already
// length-delimited blob rather than decoding individual inventory vectors:
// callers that need the vector structure parse Raw themselves.
type MsgInv struct {
	Raw []byte
}

func (m *MsgInv) Command() string { return CmdInv }

func (m *MsgInv) Decode(c *Cursor) error {
	b, ok := c.readExact(c.Len())
	if !ok {
		return newErr(MessageNotReadFully, c.Pos())
	}
	m.Raw = append([]byte(nil), b...)
	return nil
}

func (m *MsgInv) Encode(w *bytes.Buffer) error {
	return writeFixed(w, m.Raw)
}
