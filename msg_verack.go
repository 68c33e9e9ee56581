// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgVerAck acknowledges a version message. It carries no payload.
type MsgVerAck struct{}

func (m *MsgVerAck) Command() string { return CmdVerAck }

func (m *MsgVerAck) Decode(c *Cursor) error {
	if c.Len() != 0 {
		return newErr(MessageNotReadFully, c.Pos())
	}
	return nil
}

func (m *MsgVerAck) Encode(w *bytes.Buffer) error { return nil }
