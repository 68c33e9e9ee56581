// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// TxOut is a single transaction output: an amount in satoshis and the
// locking script that must be satisfied to spend it.
type TxOut struct {
	Value    uint64
	PkScript Script
}

func readTxOut(c *Cursor) (*TxOut, error) {
	out := &TxOut{}

	pos := c.Pos()
	amt, err := readUint64LE(c)
	if err != nil {
		return nil, newErr(TxOutAmount, pos)
	}
	out.Value = amt

	script, err := readScript(c, ScriptPubKey)
	if err != nil {
		return nil, err
	}
	out.PkScript = script

	return out, nil
}

func writeTxOut(w *bytes.Buffer, out *TxOut) error {
	if err := writeUint64LE(w, out.Value); err != nil {
		return newErr(TxOutAmount, 0)
	}
	return writeScript(w, out.PkScript, ScriptPubKey)
}

// readTxOuts decodes a VarInt-counted list of TxOut.
func readTxOuts(c *Cursor) ([]*TxOut, error) {
	pos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(OutputsCount, pos)
	}
	outs := make([]*TxOut, 0, n)
	for i := uint64(0); i < n; i++ {
		out, err := readTxOut(c)
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func writeTxOuts(w *bytes.Buffer, outs []*TxOut) error {
	if err := writeVarInt(w, uint64(len(outs))); err != nil {
		return newErr(OutputsCount, 0)
	}
	for _, out := range outs {
		if err := writeTxOut(w, out); err != nil {
			return err
		}
	}
	return nil
}
