// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// OutPoint identifies a single previous transaction output being spent: the
// hash of the transaction that created it and the output's index within
// that transaction.
type OutPoint struct {
	Hash  Hash32
	Index uint32
}

func readOutPoint(c *Cursor) (OutPoint, error) {
	var o OutPoint
	h, err := readHash32(c, OutPointTransactionHash)
	if err != nil {
		return o, err
	}
	pos := c.Pos()
	idx, err := readUint32LE(c)
	if err != nil {
		return o, newErr(OutPointIndex, pos)
	}
	o.Hash = h
	o.Index = idx
	return o, nil
}

func writeOutPoint(w *bytes.Buffer, o OutPoint) error {
	if err := writeHash32(w, o.Hash, OutPointTransactionHash); err != nil {
		return err
	}
	if err := writeUint32LE(w, o.Index); err != nil {
		return newErr(OutPointIndex, 0)
	}
	return nil
}
