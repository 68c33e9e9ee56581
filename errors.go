// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// Kind identifies the specific field or well-defined failure reason that
// caused a codec operation to fail. Kind is a closed, flat enumeration:
// every entry corresponds to exactly one field in the wire format or one
// framing rule, so a caller can attribute an error to the precise point of
// failure without walking a cause chain.
type Kind int

const (
	// primitive codec

	ReadU8 Kind = iota
	ReadU16
	ReadU32
	ReadU64
	ReadI32
	ReadI64
	WriteU8
	WriteU16
	WriteU32
	WriteU64
	WriteI32
	WriteI64
	ReadBool
	WriteBool
	ReadExact
	WriteAll

	// length-prefixed byte vector

	VecLen
	VecContent

	// VarInt (CompactSize)

	VarInt
	VarIntFD
	VarIntFE
	VarIntFF

	// block / transaction

	InvalidLength
	RemainingContent
	BlockVersion
	BlockPrevious
	BlockMerkleRoot
	BlockTime
	BlockBits
	BlockNonce
	TransactionsCount
	TransactionFlag
	TransactionVersion
	TransactionLockTime
	ScriptKind
	Signature
	ScriptPubKey
	OutputsCount
	TxOutAmount
	InputsCount
	TxInOutPoint
	TxInSequence
	WitnessLen
	WitnessData
	OutPointTransactionHash
	OutPointIndex

	// network envelope

	MessageMagic
	MessageMagicReverse
	MessageNotReadFully
	Command
	CommandFromStr
	PayloadLen
	PayloadOversized
	PayloadTooSmall
	PayloadChecksumTruncated
	PayloadChecksumInvalid
	PayloadUnknown
	PayloadCommandString

	// payload bodies

	PingNonce
	PongNonce
	GetHeadersVersion
	GetHeadersLocatorsCount
	GetHeadersLocator
	GetHeadersStop
	VersionVersion
	VersionServices
	VersionTimestamp
	VersionReceiver
	VersionSender
	VersionNonce
	VersionUserAgent
	VersionUserAgentDecode
	VersionUserAgentLen
	VersionStartHeight
	VersionRelay
	NetworkAddrServices
	NetworkAddrIP
	NetworkAddrPort
	TimedNetworkAddrTime
	Service
	AlertMessage
	AddrCount
)

// kindNames mirrors the Kind enumeration for diagnostics. Keep in sync by
// hand; a missing entry just prints as "Kind(n)" via the default case.
var kindNames = map[Kind]string{
	ReadU8: "ReadU8", ReadU16: "ReadU16", ReadU32: "ReadU32", ReadU64: "ReadU64",
	ReadI32: "ReadI32", ReadI64: "ReadI64",
	WriteU8: "WriteU8", WriteU16: "WriteU16", WriteU32: "WriteU32", WriteU64: "WriteU64",
	WriteI32: "WriteI32", WriteI64: "WriteI64",
	ReadBool: "ReadBool", WriteBool: "WriteBool", ReadExact: "ReadExact", WriteAll: "WriteAll",

	VecLen: "VecLen", VecContent: "VecContent",

	VarInt: "VarInt", VarIntFD: "VarIntFD", VarIntFE: "VarIntFE", VarIntFF: "VarIntFF",

	InvalidLength: "InvalidLength", RemainingContent: "RemainingContent",
	BlockVersion: "BlockVersion", BlockPrevious: "BlockPrevious", BlockMerkleRoot: "BlockMerkleRoot",
	BlockTime: "BlockTime", BlockBits: "BlockBits", BlockNonce: "BlockNonce",
	TransactionsCount: "TransactionsCount", TransactionFlag: "TransactionFlag",
	TransactionVersion: "TransactionVersion", TransactionLockTime: "TransactionLockTime",
	ScriptKind: "Script", Signature: "Signature", ScriptPubKey: "ScriptPubKey",
	OutputsCount: "OutputsCount", TxOutAmount: "TxOutAmount",
	InputsCount: "InputsCount", TxInOutPoint: "TxInOutPoint", TxInSequence: "TxInSequence",
	WitnessLen: "WitnessLen", WitnessData: "WitnessData",
	OutPointTransactionHash: "OutPointTransactionHash", OutPointIndex: "OutPointIndex",

	MessageMagic: "MessageMagic", MessageMagicReverse: "MessageMagicReverse",
	MessageNotReadFully: "MessageNotReadFully",
	Command:             "Command", CommandFromStr: "CommandFromStr",
	PayloadLen: "PayloadLen", PayloadOversized: "PayloadOversized", PayloadTooSmall: "PayloadTooSmall",
	PayloadChecksumTruncated: "PayloadChecksumTruncated",
	PayloadChecksumInvalid:   "PayloadChecksumInvalid", PayloadUnknown: "PayloadUnknown",
	PayloadCommandString: "PayloadCommandString",

	PingNonce: "PingNonce", PongNonce: "PongNonce",
	GetHeadersVersion: "GetHeadersVersion", GetHeadersLocatorsCount: "GetHeadersLocatorsCount",
	GetHeadersLocator: "GetHeadersLocator",
	GetHeadersStop:    "GetHeadersStop",
	VersionVersion: "VersionVersion", VersionServices: "VersionServices",
	VersionTimestamp: "VersionTimestamp", VersionReceiver: "VersionReceiver",
	VersionSender: "VersionSender", VersionNonce: "VersionNonce",
	VersionUserAgent: "VersionUserAgent", VersionUserAgentDecode: "VersionUserAgentDecode",
	VersionUserAgentLen: "VersionUserAgentLen", VersionStartHeight: "VersionStartHeight",
	VersionRelay: "VersionRelay",
	NetworkAddrServices: "NetworkAddrServices",
	NetworkAddrIP: "NetworkAddrIP", NetworkAddrPort: "NetworkAddrPort",
	TimedNetworkAddrTime: "TimedNetworkAddrTime",
	Service:      "Service",
	AlertMessage: "AlertMessage", AddrCount: "AddrCount",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single error type returned by every encode/decode operation
// in this package. Pos is the cursor position (see Cursor) at the start of
// the field that failed to decode; it is meaningless for encode errors and
// left at zero.
type Error struct {
	Kind Kind
	Pos  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("wire: %s at position %d", e.Kind, e.Pos)
}

// Is reports whether target is a *Error with the same Kind, so callers can
// use errors.Is(err, wire.KindError(wire.BlockVersion)) style checks.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// KindError builds a bare *Error carrying only a Kind, useful for
// errors.Is comparisons in tests and caller code.
func KindError(k Kind) *Error {
	return &Error{Kind: k}
}

func newErr(k Kind, pos int) *Error {
	return &Error{Kind: k, Pos: pos}
}
