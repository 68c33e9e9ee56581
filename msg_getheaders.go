// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// MsgGetHeaders requests a headers-only chain of blocks starting after the
// first locator hash the receiver recognises, stopping at StopHash (the
// zero hash meaning "as many as allowed").
type MsgGetHeaders struct {
	Version            uint32
	BlockLocatorHashes []Hash32
	HashStop           Hash32
}

func (m *MsgGetHeaders) Command() string { return CmdGetHeaders }

func (m *MsgGetHeaders) Decode(c *Cursor) error {
	pos := c.Pos()
	v, err := readUint32LE(c)
	if err != nil {
		return newErr(GetHeadersVersion, pos)
	}
	m.Version = v

	countPos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return newErr(GetHeadersLocatorsCount, countPos)
	}
	locators := make([]Hash32, 0, n)
	for i := uint64(0); i < n; i++ {
		h, err := readHash32(c, GetHeadersLocator)
		if err != nil {
			return err
		}
		locators = append(locators, h)
	}
	m.BlockLocatorHashes = locators

	stop, err := readHash32(c, GetHeadersStop)
	if err != nil {
		return err
	}
	m.HashStop = stop

	return nil
}

func (m *MsgGetHeaders) Encode(w *bytes.Buffer) error {
	if err := writeUint32LE(w, m.Version); err != nil {
		return newErr(GetHeadersVersion, 0)
	}
	if err := writeVarInt(w, uint64(len(m.BlockLocatorHashes))); err != nil {
		return newErr(GetHeadersLocatorsCount, 0)
	}
	for _, h := range m.BlockLocatorHashes {
		if err := writeHash32(w, h, GetHeadersLocator); err != nil {
			return err
		}
	}
	return writeHash32(w, m.HashStop, GetHeadersStop)
}
