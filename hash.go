// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"

	"github.com/libsv/go-bt/v2/chainhash"
)

// Hash32 is a 32-byte double-SHA-256 digest: block hashes, merkle roots,
// transaction hashes and getheaders locators all share this shape.
type Hash32 = chainhash.Hash

// readHash32 decodes a Hash32 and remaps any failure to k, preserving the
// position readFixed32 attributed the failure to.
func readHash32(c *Cursor, k Kind) (Hash32, error) {
	var h Hash32
	pos := c.Pos()
	b, err := readFixed32(c)
	if err != nil {
		return h, newErr(k, pos)
	}
	copy(h[:], b[:])
	return h, nil
}

func writeHash32(w *bytes.Buffer, h Hash32, k Kind) error {
	if err := writeFixed(w, h[:]); err != nil {
		return newErr(k, 0)
	}
	return nil
}
