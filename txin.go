// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// TxIn is a single transaction input: the output it spends, the unlocking
// script authorising the spend, and a sequence number.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  Script
	Sequence         uint32
}

func readTxIn(c *Cursor) (*TxIn, error) {
	in := &TxIn{}

	op, err := readOutPoint(c)
	if err != nil {
		return nil, newErr(TxInOutPoint, err.(*Error).Pos)
	}
	in.PreviousOutPoint = op

	sig, err := readScript(c, Signature)
	if err != nil {
		return nil, err
	}
	in.SignatureScript = sig

	pos := c.Pos()
	seq, err := readUint32LE(c)
	if err != nil {
		return nil, newErr(TxInSequence, pos)
	}
	in.Sequence = seq

	return in, nil
}

func writeTxIn(w *bytes.Buffer, in *TxIn) error {
	if err := writeOutPoint(w, in.PreviousOutPoint); err != nil {
		return err
	}
	if err := writeScript(w, in.SignatureScript, Signature); err != nil {
		return err
	}
	if err := writeUint32LE(w, in.Sequence); err != nil {
		return newErr(TxInSequence, 0)
	}
	return nil
}

// readTxIns decodes a VarInt-counted list of TxIn, as found at the front of
// every transaction's input section.
func readTxIns(c *Cursor) ([]*TxIn, error) {
	pos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(InputsCount, pos)
	}
	ins := make([]*TxIn, 0, n)
	for i := uint64(0); i < n; i++ {
		in, err := readTxIn(c)
		if err != nil {
			return nil, err
		}
		ins = append(ins, in)
	}
	return ins, nil
}

func writeTxIns(w *bytes.Buffer, ins []*TxIn) error {
	if err := writeVarInt(w, uint64(len(ins))); err != nil {
		return newErr(InputsCount, 0)
	}
	for _, in := range ins {
		if err := writeTxIn(w, in); err != nil {
			return err
		}
	}
	return nil
}
