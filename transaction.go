// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// segWitFlag is the BIP-144 marker/flag pair as it appears packed into a
// little-endian uint16: a zero marker byte followed by a flag byte of 1.
const segWitFlag = 0x0100

// Transaction is a Bitcoin transaction, including the optional BIP-144
// segregated witness extension. HasWitness reports whether the marker/flag
// pair was present on the wire; Witnesses is empty when it was not.
type Transaction struct {
	Version    int32
	HasWitness bool
	TxIn       []*TxIn
	TxOut      []*TxOut
	Witnesses  []TxWitness
	LockTime   uint32
}

// readTransaction decodes a Transaction, using a non-consuming peek to
// detect the BIP-144 marker/flag pair ahead of the input count: if the next
// two bytes equal 0x0100 they are consumed as the flag and witnesses are
// present; otherwise the cursor is left untouched and the bytes are read
// again as the input count. A short read on the peek itself (fewer than
// two bytes remaining) is a genuine TransactionFlag failure, not treated
// as an absent flag.
func readTransaction(c *Cursor) (*Transaction, error) {
	tx := &Transaction{}

	pos := c.Pos()
	ver, err := readInt32LE(c)
	if err != nil {
		return nil, newErr(TransactionVersion, pos)
	}
	tx.Version = ver

	peek, ok := c.peekUint16LE()
	if !ok {
		return nil, newErr(TransactionFlag, c.Pos())
	}
	if peek == segWitFlag {
		c.advance(2)
		tx.HasWitness = true
	}

	ins, err := readTxIns(c)
	if err != nil {
		return nil, err
	}
	tx.TxIn = ins

	outs, err := readTxOuts(c)
	if err != nil {
		return nil, err
	}
	tx.TxOut = outs

	if tx.HasWitness {
		wits, err := readWitnesses(c, len(ins))
		if err != nil {
			return nil, err
		}
		tx.Witnesses = wits
	}

	pos = c.Pos()
	lt, err := readUint32LE(c)
	if err != nil {
		return nil, newErr(TransactionLockTime, pos)
	}
	tx.LockTime = lt

	return tx, nil
}

func writeTransaction(w *bytes.Buffer, tx *Transaction) error {
	if err := writeInt32LE(w, tx.Version); err != nil {
		return newErr(TransactionVersion, 0)
	}

	if tx.HasWitness {
		if err := writeUint16LE(w, segWitFlag); err != nil {
			return newErr(TransactionFlag, 0)
		}
	}

	if err := writeTxIns(w, tx.TxIn); err != nil {
		return err
	}
	if err := writeTxOuts(w, tx.TxOut); err != nil {
		return err
	}

	if tx.HasWitness {
		if err := writeWitnesses(w, tx.Witnesses); err != nil {
			return err
		}
	}

	if err := writeUint32LE(w, tx.LockTime); err != nil {
		return newErr(TransactionLockTime, 0)
	}
	return nil
}

// readTransactions decodes a VarInt-counted list of Transaction, as found
// in a Block's body.
func readTransactions(c *Cursor) ([]*Transaction, error) {
	pos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(TransactionsCount, pos)
	}
	txs := make([]*Transaction, 0, n)
	for i := uint64(0); i < n; i++ {
		tx, err := readTransaction(c)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func writeTransactions(w *bytes.Buffer, txs []*Transaction) error {
	if err := writeVarInt(w, uint64(len(txs))); err != nil {
		return newErr(TransactionsCount, 0)
	}
	for _, tx := range txs {
		if err := writeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
