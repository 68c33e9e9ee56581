// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgGetAddr requests a list of known active peers. It carries no payload.
type MsgGetAddr struct{}

func (m *MsgGetAddr) Command() string { return CmdGetAddr }

func (m *MsgGetAddr) Decode(c *Cursor) error {
	if c.Len() != 0 {
		return newErr(MessageNotReadFully, c.Pos())
	}
	return nil
}

func (m *MsgGetAddr) Encode(w *bytes.Buffer) error { return nil }
