// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// An opcode is a single byte in a script. This package only names the subset
// of opcodes that participate in the standard payment templates; the full
// interpreter lives with the script engine, which consumes the same values.
const (
	Op0           = 0x00 // 0
	OpData1       = 0x01 // 1
	OpData20      = 0x14 // 20
	OpData33      = 0x21 // 33
	OpData65      = 0x41 // 65
	OpData75      = 0x4b // 75
	OpPushData1   = 0x4c // 76
	OpPushData2   = 0x4d // 77
	OpPushData4   = 0x4e // 78
	OpDup         = 0x76 // 118
	OpEqual       = 0x87 // 135
	OpEqualVerify = 0x88 // 136
	OpHash160     = 0xa9 // 169
	OpCheckSig    = 0xac // 172
)

// ParsedOpcode represents one opcode of an already-parsed script together
// with the data it pushes, if any. Parsing raw serialized scripts into this
// form is the script engine's job; this package only pattern-matches the
// resulting sequence.
type ParsedOpcode struct {
	Code byte
	Data []byte
}

// PushData returns the parsed form of a minimal direct push of the given
// data. Only pushes up to 75 bytes can be expressed as a direct push; larger
// pushes require the OpPushDataN opcodes, which the standard templates never
// use, so this helper panics on them.
func PushData(data []byte) ParsedOpcode {
	if len(data) == 0 || len(data) > OpData75 {
		panic("data pushes of this size cannot use a direct push opcode")
	}
	return ParsedOpcode{Code: byte(len(data)), Data: data}
}

// isDataPush returns whether the opcode pushes the data that accompanies it
// onto the stack.
func isDataPush(pop ParsedOpcode) bool {
	return (pop.Code >= OpData1 && pop.Code <= OpData75) ||
		pop.Code == OpPushData1 || pop.Code == OpPushData2 ||
		pop.Code == OpPushData4
}
