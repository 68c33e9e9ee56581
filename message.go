// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"

	"github.com/libsv/go-bt/v2/chainhash"
)

// Magic identifies which Bitcoin network a message belongs to. The value
// is carried on the wire byte-reversed relative to its canonical constant
// form, matching the historical big-endian-looking literal everyone quotes
// (0xD9B4BEF9 for mainnet) actually being sent least-significant-byte
// first.
type Magic uint32

const (
	MainNet Magic = 0xD9B4BEF9
	TestNet Magic = 0x0709110B
	RegTest Magic = 0xDAB5BFFA
)

// emptyPayloadChecksum is the checksum of a zero-length payload: the first
// four bytes of the double-SHA-256 of the empty byte string. Every
// zero-payload message (verack, getaddr, mempool, ...) carries this exact
// value.
var emptyPayloadChecksum = [4]byte{0x5D, 0xF6, 0xE0, 0xE2}

const maxPayloadLength = 32 * 1024 * 1024

// Envelope is a single framed network message: a magic value tying it to a
// network, a command naming the payload variant, and the payload bytes
// themselves. This package does not interpret Payload's contents when
// building or parsing an Envelope; callers dispatch on Command to decode it
// further (see DecodePayload).
type Envelope struct {
	Magic   Magic
	Command string
	Payload []byte
}

func checksum(payload []byte) [4]byte {
	sum := chainhash.DoubleHashB(payload)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}

// EncodeEnvelope serialises env to w: magic (little-endian on the wire),
// 12-byte NUL-padded command, u32 LE payload length, 4-byte checksum, then
// the payload itself.
func EncodeEnvelope(w *bytes.Buffer, env *Envelope) error {
	var magicBytes [4]byte
	magicBytes[0] = byte(env.Magic)
	magicBytes[1] = byte(env.Magic >> 8)
	magicBytes[2] = byte(env.Magic >> 16)
	magicBytes[3] = byte(env.Magic >> 24)
	if err := writeFixed(w, magicBytes[:]); err != nil {
		return newErr(MessageMagic, 0)
	}

	if err := writeCommand(w, env.Command); err != nil {
		return err
	}

	if err := writeUint32LE(w, uint32(len(env.Payload))); err != nil {
		return newErr(PayloadLen, 0)
	}

	sum := checksum(env.Payload)
	if err := writeFixed(w, sum[:]); err != nil {
		return newErr(PayloadChecksumInvalid, 0)
	}

	return writeFixed(w, env.Payload)
}

// DecodeEnvelope parses a single Envelope from c, validating the magic
// value against want, the payload length against maxPayloadLength, and the
// checksum against the payload actually present.
func DecodeEnvelope(c *Cursor, want Magic) (*Envelope, error) {
	env := &Envelope{}

	pos := c.Pos()
	magicB, ok := c.readExact(4)
	if !ok {
		return nil, newErr(MessageMagic, pos)
	}
	magic := Magic(uint32(magicB[0]) | uint32(magicB[1])<<8 | uint32(magicB[2])<<16 | uint32(magicB[3])<<24)
	if magic != want {
		return nil, newErr(MessageMagicReverse, pos)
	}
	env.Magic = magic

	cmd, err := readCommand(c)
	if err != nil {
		return nil, err
	}
	env.Command = cmd

	pos = c.Pos()
	length, err := readUint32LE(c)
	if err != nil {
		return nil, newErr(PayloadLen, pos)
	}
	if length > maxPayloadLength {
		return nil, newErr(PayloadOversized, pos)
	}

	pos = c.Pos()
	sumB, ok := c.readExact(4)
	if !ok {
		return nil, newErr(PayloadChecksumTruncated, pos)
	}
	var wantSum [4]byte
	copy(wantSum[:], sumB)

	payloadPos := c.Pos()
	payload, ok := c.readExact(int(length))
	if !ok {
		return nil, newErr(PayloadTooSmall, payloadPos)
	}

	gotSum := checksum(payload)
	if gotSum != wantSum {
		return nil, newErr(PayloadChecksumInvalid, payloadPos)
	}

	out := make([]byte, len(payload))
	copy(out, payload)
	env.Payload = out

	return env, nil
}

// DecodeStream decodes as many complete Envelopes as are available at the
// front of buf, returning them along with the number of bytes consumed. A
// partial trailing message is left unconsumed rather than treated as an
// error: the caller appends more bytes and calls DecodeStream again. Any
// other decode failure aborts the whole call and returns the error.
func DecodeStream(buf []byte, want Magic) ([]*Envelope, int, error) {
	c := NewCursor(buf)
	var envs []*Envelope

	for {
		start := c.Pos()
		env, err := DecodeEnvelope(c, want)
		if err != nil {
			werr, ok := err.(*Error)
			if ok && isShortRead(werr.Kind) {
				c.SetPos(start)
				return envs, start, nil
			}
			return envs, start, err
		}
		envs = append(envs, env)
	}
}

// isShortRead reports whether k indicates the cursor simply ran out of
// bytes mid-header or mid-payload, as opposed to a genuine framing
// violation (bad magic, bad checksum mismatch, oversized length).
// PayloadChecksumInvalid is deliberately excluded: it means a complete
// payload's checksum did not match, and no amount of additional buffered
// data will ever change that outcome.
func isShortRead(k Kind) bool {
	switch k {
	case MessageMagic, Command, PayloadLen, PayloadChecksumTruncated, PayloadTooSmall:
		return true
	default:
		return false
	}
}
