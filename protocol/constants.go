// Package protocol implements the common-header and TLV message codec
// (spec §4.3, §4.4): the preamble bit layout, the ts_rc composite field,
// and the message encoder/decoder state machines built on top of the
// buffer-view layer.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package protocol

// Wire-format sizes, spec §4.3.
const (
	PreambleSize     = 8
	CommonHeaderSize = 24

	// MinDecoderSize is the decoder construction guard from spec §4.3:
	// 24 bytes of common header plus room for at least one TLV header.
	// Spec §9 Q2 preserves this stricter 28-byte contract rather than
	// relaxing it to 24.
	MinDecoderSize = 28

	// TLVHeaderSize is the fixed (type, total length) prefix of every TLV.
	TLVHeaderSize = 4

	// MaxFrameLength is the largest frame this protocol admits in a
	// single length-prefixed message (spec §1 Non-goals: no
	// fragmentation across frames).
	MaxFrameLength = 65535

	// ProtocolVersion is the only version byte value the decoder accepts.
	ProtocolVersion = 2
)

const (
	flagResponseBit = 0x80 // bit 7 of the flags byte
	flagReservedMask = 0x7F

	tsRcEntityMask = 0x3FFF // bits 0-13
	tsRcOpShift    = 14     // bits 14-15
	tsRcOpMask     = 0x3 << tsRcOpShift
)
