// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// TxWitness holds the witness stack for a single input of a segregated
// witness transaction (BIP-144): a VarInt item count followed by that many
// VarInt-length-prefixed byte strings, one per stack item.
type TxWitness [][]byte

func readWitness(c *Cursor) (TxWitness, error) {
	pos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(WitnessLen, pos)
	}
	items := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		itemPos := c.Pos()
		itemLen, err := readVarInt(c)
		if err != nil {
			return nil, newErr(WitnessLen, itemPos)
		}
		bodyPos := c.Pos()
		b, ok := c.readExact(int(itemLen))
		if !ok {
			return nil, newErr(WitnessData, bodyPos)
		}
		item := make([]byte, len(b))
		copy(item, b)
		items = append(items, item)
	}
	return TxWitness(items), nil
}

func writeWitness(w *bytes.Buffer, wit TxWitness) error {
	if err := writeVarInt(w, uint64(len(wit))); err != nil {
		return newErr(WitnessLen, 0)
	}
	for _, item := range wit {
		if err := writeVarInt(w, uint64(len(item))); err != nil {
			return newErr(WitnessLen, 0)
		}
		if err := writeFixed(w, item); err != nil {
			return newErr(WitnessData, 0)
		}
	}
	return nil
}

// readWitnesses decodes exactly n witness stacks, one per transaction
// input, as required by BIP-144: there is no separate count prefix, the
// count is always the number of inputs.
func readWitnesses(c *Cursor, n int) ([]TxWitness, error) {
	out := make([]TxWitness, 0, n)
	for i := 0; i < n; i++ {
		wit, err := readWitness(c)
		if err != nil {
			return nil, err
		}
		out = append(out, wit)
	}
	return out, nil
}

func writeWitnesses(w *bytes.Buffer, wits []TxWitness) error {
	for _, wit := range wits {
		if err := writeWitness(w, wit); err != nil {
			return err
		}
	}
	return nil
}
