// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgPong answers a MsgPing, echoing its Nonce.
type MsgPong struct {
	Nonce uint64
}

func (m *MsgPong) Command() string { return CmdPong }

func (m *MsgPong) Decode(c *Cursor) error {
	pos := c.Pos()
	n, err := readUint64LE(c)
	if err != nil {
		return newErr(PongNonce, pos)
	}
	m.Nonce = n
	return nil
}

func (m *MsgPong) Encode(w *bytes.Buffer) error {
	if err := writeUint64LE(w, m.Nonce); err != nil {
		return newErr(PongNonce, 0)
	}
	return nil
}
