// Package tlv implements the concrete TLV value objects listed in
// spec §4.5 / §6. Per spec §9 Q1, the reference repository shipped two
// divergent numbering/shape tables for the same names; this module
// adopts the richer table reproduced below as canonical and documents
// the deviation here rather than silently picking one.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// Canonical TLV type assignments (spec §6). NONE is reserved and never
// appears as a real payload's type.
const (
	None                    api.TLVType = 0
	Error                   api.TLVType = 1
	KeyValueStringPairs     api.TLVType = 2
	ListOfTLV               api.TLVType = 3
	BinaryData              api.TLVType = 4
	Periodicity             api.TLVType = 5
	Cell                    api.TLVType = 6
	UEReport                api.TLVType = 7
	UEMeasurementsConfig    api.TLVType = 8
	UEMeasurementReport     api.TLVType = 9
	MACPRBUtilizationReport api.TLVType = 10
	UEMeasurementID         api.TLVType = 11
)
