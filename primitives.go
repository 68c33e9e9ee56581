// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
)

// This file implements the primitive codec: fixed-width integers, booleans,
// fixed-length byte arrays and VarInt (CompactSize), each as a matched
// encode/decode pair operating on a growing *bytes.Buffer and a Cursor
// respectively. Every field-level decoder elsewhere in the package is built
// out of these primitives and maps their Kind to a more specific one at the
// call site (see errors.go).

func readUint8(c *Cursor) (uint8, error) {
	b, ok := c.readExact(1)
	if !ok {
		return 0, newErr(ReadU8, c.Pos())
	}
	return b[0], nil
}

func readUint16LE(c *Cursor) (uint16, error) {
	b, ok := c.readExact(2)
	if !ok {
		return 0, newErr(ReadU16, c.Pos())
	}
	return binary.LittleEndian.Uint16(b), nil
}

func readUint32LE(c *Cursor) (uint32, error) {
	b, ok := c.readExact(4)
	if !ok {
		return 0, newErr(ReadU32, c.Pos())
	}
	return binary.LittleEndian.Uint32(b), nil
}

func readUint64LE(c *Cursor) (uint64, error) {
	b, ok := c.readExact(8)
	if !ok {
		return 0, newErr(ReadU64, c.Pos())
	}
	return binary.LittleEndian.Uint64(b), nil
}

func readInt32LE(c *Cursor) (int32, error) {
	b, ok := c.readExact(4)
	if !ok {
		return 0, newErr(ReadI32, c.Pos())
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func readInt64LE(c *Cursor) (int64, error) {
	b, ok := c.readExact(8)
	if !ok {
		return 0, newErr(ReadI64, c.Pos())
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func readBool(c *Cursor) (bool, error) {
	pos := c.Pos()
	b, ok := c.readExact(1)
	if !ok {
		return false, newErr(ReadBool, pos)
	}
	return b[0] != 0, nil
}

func writeUint8(w *bytes.Buffer, v uint8) error {
	if w.WriteByte(v) != nil {
		return newErr(WriteU8, 0)
	}
	return nil
}

func writeUint16LE(w *bytes.Buffer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return newErr(WriteU16, 0)
	}
	return nil
}

func writeUint32LE(w *bytes.Buffer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return newErr(WriteU32, 0)
	}
	return nil
}

func writeUint64LE(w *bytes.Buffer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	if _, err := w.Write(b[:]); err != nil {
		return newErr(WriteU64, 0)
	}
	return nil
}

func writeInt32LE(w *bytes.Buffer, v int32) error {
	if err := writeUint32LE(w, uint32(v)); err != nil {
		return newErr(WriteI32, 0)
	}
	return nil
}

func writeInt64LE(w *bytes.Buffer, v int64) error {
	if err := writeUint64LE(w, uint64(v)); err != nil {
		return newErr(WriteI64, 0)
	}
	return nil
}

func writeBool(w *bytes.Buffer, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	if err := writeUint8(w, b); err != nil {
		return newErr(WriteBool, 0)
	}
	return nil
}

// readFixed2/4/8/12/16/32 decode fixed-length byte arrays. The wire format
// only ever needs these six widths (service+port pairs, hashes, command
// strings, IPv6-mapped addresses), so each width gets its own function
// rather than a generic one parameterised on array length.

func readFixed2(c *Cursor) ([2]byte, error) {
	var out [2]byte
	b, ok := c.readExact(2)
	if !ok {
		return out, newErr(ReadExact, c.Pos())
	}
	copy(out[:], b)
	return out, nil
}

func readFixed4(c *Cursor) ([4]byte, error) {
	var out [4]byte
	b, ok := c.readExact(4)
	if !ok {
		return out, newErr(ReadExact, c.Pos())
	}
	copy(out[:], b)
	return out, nil
}

func readFixed8(c *Cursor) ([8]byte, error) {
	var out [8]byte
	b, ok := c.readExact(8)
	if !ok {
		return out, newErr(ReadExact, c.Pos())
	}
	copy(out[:], b)
	return out, nil
}

func readFixed12(c *Cursor) ([12]byte, error) {
	var out [12]byte
	b, ok := c.readExact(12)
	if !ok {
		return out, newErr(ReadExact, c.Pos())
	}
	copy(out[:], b)
	return out, nil
}

func readFixed16(c *Cursor) ([16]byte, error) {
	var out [16]byte
	b, ok := c.readExact(16)
	if !ok {
		return out, newErr(ReadExact, c.Pos())
	}
	copy(out[:], b)
	return out, nil
}

func readFixed32(c *Cursor) ([32]byte, error) {
	var out [32]byte
	b, ok := c.readExact(32)
	if !ok {
		return out, newErr(ReadExact, c.Pos())
	}
	copy(out[:], b)
	return out, nil
}

func writeFixed(w *bytes.Buffer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return newErr(WriteAll, 0)
	}
	return nil
}

// readVec decodes a VarInt-length-prefixed byte vector: the VecLen kind
// covers a failed count read, VecContent a short body.
func readVec(c *Cursor) ([]byte, error) {
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(VecLen, c.Pos())
	}
	pos := c.Pos()
	b, ok := c.readExact(int(n))
	if !ok {
		return nil, newErr(VecContent, pos)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func writeVec(w *bytes.Buffer, b []byte) error {
	if err := writeVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	return writeFixed(w, b)
}

// readVarInt decodes a CompactSize-encoded unsigned integer (§3 of the
// wire format: tag byte selects a 0/2/4/8-byte little-endian suffix).
func readVarInt(c *Cursor) (uint64, error) {
	tagPos := c.Pos()
	tag, err := readUint8(c)
	if err != nil {
		return 0, newErr(VarInt, tagPos)
	}

	switch tag {
	case 0xFD:
		v, err := readUint16LE(c)
		if err != nil {
			return 0, newErr(VarIntFD, c.Pos())
		}
		return uint64(v), nil
	case 0xFE:
		v, err := readUint32LE(c)
		if err != nil {
			return 0, newErr(VarIntFE, c.Pos())
		}
		return uint64(v), nil
	case 0xFF:
		v, err := readUint64LE(c)
		if err != nil {
			return 0, newErr(VarIntFF, c.Pos())
		}
		return v, nil
	default:
		return uint64(tag), nil
	}
}

// writeVarInt encodes v using the shortest CompactSize form; it never
// produces a non-minimal encoding.
func writeVarInt(w *bytes.Buffer, v uint64) error {
	switch {
	case v <= 0xFC:
		return writeUint8(w, uint8(v))
	case v <= 0xFFFF:
		if err := writeUint8(w, 0xFD); err != nil {
			return newErr(VarIntFD, 0)
		}
		if err := writeUint16LE(w, uint16(v)); err != nil {
			return newErr(VarIntFD, 0)
		}
		return nil
	case v <= 0xFFFFFFFF:
		if err := writeUint8(w, 0xFE); err != nil {
			return newErr(VarIntFE, 0)
		}
		if err := writeUint32LE(w, uint32(v)); err != nil {
			return newErr(VarIntFE, 0)
		}
		return nil
	default:
		if err := writeUint8(w, 0xFF); err != nil {
			return newErr(VarIntFF, 0)
		}
		if err := writeUint64LE(w, v); err != nil {
			return newErr(VarIntFF, 0)
		}
		return nil
	}
}
