// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "bytes"

// ServiceFlag is a bitfield of services advertised by a node in its version
// message. Unknown bits are preserved verbatim through decode and encode:
// this package never rejects a service bitfield for carrying bits it does
// not recognise, since new service bits are added to the network faster
// than any one implementation tracks them.
type ServiceFlag uint64

const (
	// SFNodeNetwork indicates a node can serve full blocks.
	SFNodeNetwork ServiceFlag = 1 << iota
	// SFNodeGetUTXO indicates a node supports the getutxo protocol extension.
	SFNodeGetUTXO
	// SFNodeBloom indicates a node supports bloom-filtered connections.
	SFNodeBloom
	// SFNodeWitness indicates a node can serve SegWit transaction data.
	SFNodeWitness
)

// SFNodeNetworkLimited indicates a pruned node that serves only recent
// blocks, per BIP-159.
const SFNodeNetworkLimited ServiceFlag = 1 << 10

func readServiceFlag(c *Cursor) (ServiceFlag, error) {
	pos := c.Pos()
	v, err := readUint64LE(c)
	if err != nil {
		return 0, newErr(Service, pos)
	}
	return ServiceFlag(v), nil
}

func writeServiceFlag(w *bytes.Buffer, s ServiceFlag) error {
	if err := writeUint64LE(w, uint64(s)); err != nil {
		return newErr(Service, 0)
	}
	return nil
}
