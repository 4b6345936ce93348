// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

// State is the progress of a single target. A target only ever moves forward
// through Unprocessed, Normalized, Generated and Written.
type State uint8

const (
	Unprocessed State = iota
	Normalized
	Generated
	Written
)

func (s State) String() string {
	switch s {
	case Unprocessed:
		return "unprocessed"
	case Normalized:
		return "normalized"
	case Generated:
		return "generated"
	case Written:
		return "written"
	default:
		return "unknown"
	}
}
