// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"net"
)

// NetworkAddr describes a peer's advertised services, IP address and port.
// The address is always stored as a 16-byte IPv6-compatible form on the
// wire; an IPv4 address is carried IPv4-in-IPv6-mapped. Port is encoded big
// endian (network byte order), unlike every other integer in this package.
type NetworkAddr struct {
	Services ServiceFlag
	IP       net.IP
	Port     uint16
}

// TimedNetworkAddr is a NetworkAddr prefixed with a Unix timestamp, as used
// in addr messages.
type TimedNetworkAddr struct {
	Timestamp uint32
	Addr      NetworkAddr
}

func readNetworkAddr(c *Cursor) (NetworkAddr, error) {
	var a NetworkAddr

	svc, err := readServiceFlag(c)
	if err != nil {
		return a, newErr(NetworkAddrServices, err.(*Error).Pos)
	}
	a.Services = svc

	pos := c.Pos()
	ipb, err := readFixed16(c)
	if err != nil {
		return a, newErr(NetworkAddrIP, pos)
	}
	a.IP = net.IP(ipb[:])

	pos = c.Pos()
	portb, err := readFixed2(c)
	if err != nil {
		return a, newErr(NetworkAddrPort, pos)
	}
	a.Port = uint16(portb[0])<<8 | uint16(portb[1])

	return a, nil
}

func writeNetworkAddr(w *bytes.Buffer, a NetworkAddr) error {
	if err := writeServiceFlag(w, a.Services); err != nil {
		return newErr(NetworkAddrServices, 0)
	}

	ip := a.IP.To16()
	if ip == nil {
		ip = net.IPv6zero
	}
	if err := writeFixed(w, ip); err != nil {
		return newErr(NetworkAddrIP, 0)
	}

	var portb [2]byte
	portb[0] = byte(a.Port >> 8)
	portb[1] = byte(a.Port)
	if err := writeFixed(w, portb[:]); err != nil {
		return newErr(NetworkAddrPort, 0)
	}
	return nil
}

func readTimedNetworkAddr(c *Cursor) (TimedNetworkAddr, error) {
	var t TimedNetworkAddr

	pos := c.Pos()
	ts, err := readUint32LE(c)
	if err != nil {
		return t, newErr(TimedNetworkAddrTime, pos)
	}
	t.Timestamp = ts

	a, err := readNetworkAddr(c)
	if err != nil {
		return t, err
	}
	t.Addr = a

	return t, nil
}

func writeTimedNetworkAddr(w *bytes.Buffer, t TimedNetworkAddr) error {
	if err := writeUint32LE(w, t.Timestamp); err != nil {
		return newErr(TimedNetworkAddrTime, 0)
	}
	return writeNetworkAddr(w, t.Addr)
}

// readTimedNetworkAddrs decodes a VarInt-counted list of TimedNetworkAddr,
// the payload of an addr message.
func readTimedNetworkAddrs(c *Cursor) ([]TimedNetworkAddr, error) {
	pos := c.Pos()
	n, err := readVarInt(c)
	if err != nil {
		return nil, newErr(AddrCount, pos)
	}
	addrs := make([]TimedNetworkAddr, 0, n)
	for i := uint64(0); i < n; i++ {
		a, err := readTimedNetworkAddr(c)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, nil
}

func writeTimedNetworkAddrs(w *bytes.Buffer, addrs []TimedNetworkAddr) error {
	if err := writeVarInt(w, uint64(len(addrs))); err != nil {
		return newErr(AddrCount, 0)
	}
	for _, a := range addrs {
		if err := writeTimedNetworkAddr(w, a); err != nil {
			return err
		}
	}
	return nil
}
