// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const commandSize = 12

// Known command strings, one per supported payload variant.
const (
	CmdVersion    = "version"
	CmdVerAck     = "verack"
	CmdGetAddr    = "getaddr"
	CmdAddr       = "addr"
	CmdInv        = "inv"
	CmdAlert      = "alert"
	CmdPing       = "ping"
	CmdPong       = "pong"
	CmdGetHeaders = "getheaders"
)

// readCommand decodes the 12-byte command field of a message header. The
// protocol requires pure right-padding: once a NUL byte appears, every
// remaining byte must also be NUL. A command sequence violating that shape
// cannot be mapped to a command string at all (CommandFromStr); one that
// is shaped correctly but whose non-padding bytes are not valid UTF-8 fails
// PayloadCommandString.
func readCommand(c *Cursor) (string, error) {
	pos := c.Pos()
	b, ok := c.readExact(commandSize)
	if !ok {
		return "", newErr(Command, pos)
	}

	nul := bytes.IndexByte(b, 0)
	var name []byte
	if nul == -1 {
		name = b
	} else {
		name = b[:nul]
		for _, pad := range b[nul:] {
			if pad != 0 {
				return "", newErr(CommandFromStr, pos)
			}
		}
	}

	if !utf8.Valid(name) {
		return "", newErr(PayloadCommandString, pos)
	}
	return string(name), nil
}

func writeCommand(w *bytes.Buffer, cmd string) error {
	if len(cmd) > commandSize {
		cmd = cmd[:commandSize]
	}
	var buf [commandSize]byte
	copy(buf[:], strings.ToLower(cmd))
	if err := writeFixed(w, buf[:]); err != nil {
		return newErr(Command, 0)
	}
	return nil
}
