// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"unicode/utf8"
)

// relayVersion is the minimum protocol version at which a version message
// carries the trailing Relay field.
const relayVersion = 70001

// MsgVersion is the first message sent on a connection, negotiating
// protocol version and advertising services.
type MsgVersion struct {
	ProtocolVersion int32
	Services        ServiceFlag
	Timestamp       int64
	AddrReceiver    NetworkAddr
	AddrSender      NetworkAddr
	Nonce           uint64
	UserAgent       string
	StartHeight     int32
	Relay           bool
}

func (m *MsgVersion) Command() string { return CmdVersion }

func (m *MsgVersion) Decode(c *Cursor) error {
	pos := c.Pos()
	ver, err := readInt32LE(c)
	if err != nil {
		return newErr(VersionVersion, pos)
	}
	m.ProtocolVersion = ver

	svc, err := readServiceFlag(c)
	if err != nil {
		return newErr(VersionServices, err.(*Error).Pos)
	}
	m.Services = svc

	pos = c.Pos()
	ts, err := readInt64LE(c)
	if err != nil {
		return newErr(VersionTimestamp, pos)
	}
	m.Timestamp = ts

	recv, err := readNetworkAddr(c)
	if err != nil {
		return newErr(VersionReceiver, err.(*Error).Pos)
	}
	m.AddrReceiver = recv

	sender, err := readNetworkAddr(c)
	if err != nil {
		return newErr(VersionSender, err.(*Error).Pos)
	}
	m.AddrSender = sender

	pos = c.Pos()
	nonce, err := readUint64LE(c)
	if err != nil {
		return newErr(VersionNonce, pos)
	}
	m.Nonce = nonce

	uaPos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return newErr(VersionUserAgentLen, uaPos)
	}
	bodyPos := c.Pos()
	ua, ok := c.readExact(int(n))
	if !ok {
		return newErr(VersionUserAgent, bodyPos)
	}
	if !utf8.Valid(ua) {
		return newErr(VersionUserAgentDecode, bodyPos)
	}
	m.UserAgent = string(ua)

	pos = c.Pos()
	height, err := readInt32LE(c)
	if err != nil {
		return newErr(VersionStartHeight, pos)
	}
	m.StartHeight = height

	if ver >= relayVersion && c.Len() > 0 {
		pos = c.Pos()
		relay, err := readBool(c)
		if err != nil {
			return newErr(VersionRelay, pos)
		}
		m.Relay = relay
	}

	return nil
}

func (m *MsgVersion) Encode(w *bytes.Buffer) error {
	if err := writeInt32LE(w, m.ProtocolVersion); err != nil {
		return newErr(VersionVersion, 0)
	}
	if err := writeServiceFlag(w, m.Services); err != nil {
		return newErr(VersionServices, 0)
	}
	if err := writeInt64LE(w, m.Timestamp); err != nil {
		return newErr(VersionTimestamp, 0)
	}
	if err := writeNetworkAddr(w, m.AddrReceiver); err != nil {
		return newErr(VersionReceiver, 0)
	}
	if err := writeNetworkAddr(w, m.AddrSender); err != nil {
		return newErr(VersionSender, 0)
	}
	if err := writeUint64LE(w, m.Nonce); err != nil {
		return newErr(VersionNonce, 0)
	}
	if err := writeVec(w, []byte(m.UserAgent)); err != nil {
		return newErr(VersionUserAgent, 0)
	}
	if err := writeInt32LE(w, m.StartHeight); err != nil {
		return newErr(VersionStartHeight, 0)
	}
	if m.ProtocolVersion >= relayVersion {
		if err := writeBool(w, m.Relay); err != nil {
			return newErr(VersionRelay, 0)
		}
	}
	return nil
}
