// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// Block is a Bitcoin block header followed by its transactions.
type Block struct {
	Version      int32
	PrevBlock    Hash32
	MerkleRoot   Hash32
	Timestamp    uint32
	Bits         uint32
	Nonce        uint32
	Transactions []*Transaction
}

// ParseBlock decodes buf as a single Block, requiring every byte to be
// consumed: a buffer shorter than 81 bytes (the fixed 80-byte header plus a
// one-byte transaction count) is rejected immediately, and any bytes left over after the last transaction is
// decoded is reported as RemainingContent.
func ParseBlock(buf []byte) (*Block, error) {
	if len(buf) < 81 {
		return nil, newErr(InvalidLength, 0)
	}
	c := NewCursor(buf)
	b, err := readBlock(c)
	if err != nil {
		return nil, err
	}
	if c.Pos() != len(buf) {
		return nil, newErr(RemainingContent, c.Pos())
	}
	return b, nil
}

func readBlock(c *Cursor) (*Block, error) {
	b := &Block{}

	pos := c.Pos()
	ver, err := readInt32LE(c)
	if err != nil {
		return nil, newErr(BlockVersion, pos)
	}
	b.Version = ver

	prev, err := readHash32(c, BlockPrevious)
	if err != nil {
		return nil, err
	}
	b.PrevBlock = prev

	root, err := readHash32(c, BlockMerkleRoot)
	if err != nil {
		return nil, err
	}
	b.MerkleRoot = root

	pos = c.Pos()
	ts, err := readUint32LE(c)
	if err != nil {
		return nil, newErr(BlockTime, pos)
	}
	b.Timestamp = ts

	pos = c.Pos()
	bits, err := readUint32LE(c)
	if err != nil {
		return nil, newErr(BlockBits, pos)
	}
	b.Bits = bits

	pos = c.Pos()
	nonce, err := readUint32LE(c)
	if err != nil {
		return nil, newErr(BlockNonce, pos)
	}
	b.Nonce = nonce

	txs, err := readTransactions(c)
	if err != nil {
		return nil, err
	}
	b.Transactions = txs

	return b, nil
}

// Encode serialises b to w.
func (b *Block) Encode(w *bytes.Buffer) error {
	if err := writeInt32LE(w, b.Version); err != nil {
		return newErr(BlockVersion, 0)
	}
	if err := writeHash32(w, b.PrevBlock, BlockPrevious); err != nil {
		return err
	}
	if err := writeHash32(w, b.MerkleRoot, BlockMerkleRoot); err != nil {
		return err
	}
	if err := writeUint32LE(w, b.Timestamp); err != nil {
		return newErr(BlockTime, 0)
	}
	if err := writeUint32LE(w, b.Bits); err != nil {
		return newErr(BlockBits, 0)
	}
	if err := writeUint32LE(w, b.Nonce); err != nil {
		return newErr(BlockNonce, 0)
	}
	return writeTransactions(w, b.Transactions)
}
