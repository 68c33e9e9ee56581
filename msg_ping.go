// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgPing is sent periodically to confirm a connection is still alive. The
// receiver echoes Nonce back in a MsgPong.
type MsgPing struct {
	Nonce uint64
}

func (m *MsgPing) Command() string { return CmdPing }

func (m *MsgPing) Decode(c *Cursor) error {
	pos := c.Pos()
	n, err := readUint64LE(c)
	if err != nil {
		return newErr(PingNonce, pos)
	}
	m.Nonce = n
	return nil
}

func (m *MsgPing) Encode(w *bytes.Buffer) error {
	if err := writeUint64LE(w, m.Nonce); err != nil {
		return newErr(PingNonce, 0)
	}
	return nil
}
