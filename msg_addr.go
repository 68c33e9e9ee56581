// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgAddr relays known peer addresses in response to a MsgGetAddr.
type MsgAddr struct {
	AddrList []TimedNetworkAddr
}

func (m *MsgAddr) Command() string { return CmdAddr }

func (m *MsgAddr) Decode(c *Cursor) error {
	addrs, err := readTimedNetworkAddrs(c)
	if err != nil {
		return err
	}
	m.AddrList = addrs
	return nil
}

func (m *MsgAddr) Encode(w *bytes.Buffer) error {
	return writeTimedNetworkAddrs(w, m.AddrList)
}
