// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// Payload is implemented by every concrete message body (MsgVersion,
// MsgPing, ...). Command reports the wire command string an Envelope
// carrying this payload must use.
type Payload interface {
	Command() string
	Decode(c *Cursor) error
	Encode(w *bytes.Buffer) error
}

// makeEmptyPayload returns a zero-value Payload for the given command, or
// nil if the command is not recognised. inv and alert map to MsgInv and
// MsgAlert, whose Raw field carries the body unparsed.
func makeEmptyPayload(command string) Payload {
	switch command {
	case CmdVersion:
		return &MsgVersion{}
	case CmdVerAck:
		return &MsgVerAck{}
	case CmdGetAddr:
		return &MsgGetAddr{}
	case CmdAddr:
		return &MsgAddr{}
	case CmdInv:
		return &MsgInv{}
	case CmdAlert:
		return &MsgAlert{}
	case CmdPing:
		return &MsgPing{}
	case CmdPong:
		return &MsgPong{}
	case CmdGetHeaders:
		return &MsgGetHeaders{}
	default:
		return nil
	}
}

// DecodePayload decodes the body of an Envelope according to its Command,
// returning PayloadUnknown if the command is not one this package
// understands.
func DecodePayload(env *Envelope) (Payload, error) {
	p := makeEmptyPayload(env.Command)
	if p == nil {
		return nil, newErr(PayloadUnknown, 0)
	}
	c := NewCursor(env.Payload)
	if err := p.Decode(c); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodePayload serialises p into a new Envelope addressed to magic.
func EncodePayload(magic Magic, p Payload) (*Envelope, error) {
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return nil, err
	}
	return &Envelope{Magic: magic, Command: p.Command(), Payload: buf.Bytes()}, nil
}
