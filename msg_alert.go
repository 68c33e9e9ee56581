// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgAlert carries the deprecated network alert system's signed payload.
// Like MsgInv, this package does not parse the inner structure (a
// serialised alert plus a detached signature); it is carried as an opaque
// blob.
type MsgAlert struct {
	Raw []byte
}

func (m *MsgAlert) Command() string { return CmdAlert }

func (m *MsgAlert) Decode(c *Cursor) error {
	pos := c.Pos()
	b, ok := c.readExact(c.Len())
	if !ok {
		return newErr(AlertMessage, pos)
	}
	m.Raw = append([]byte(nil), b...)
	return nil
}

func (m *MsgAlert) Encode(w *bytes.Buffer) error {
	if err := writeFixed(w, m.Raw); err != nil {
		return newErr(AlertMessage, 0)
	}
	return nil
}
