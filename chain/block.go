// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain defines the read-only view of the block index that activation
// decisions are evaluated against.
package chain

import (
	"math"
	"time"

	"github.com/ava-labs/forkgate/ids"
)

// MaxUnixTimestamp is the latest unix time, in seconds, that a time.Time can
// hold. Block timestamps must be strictly before it.
const MaxUnixTimestamp = math.MaxInt64 - 62_135_596_800

// Tip is the block an activation query is evaluated against. It is not
// necessarily the tip of the preferred chain; during validation of competing
// branches any known block may be used.
//
// The absence of a previous block is expressed by a nil Tip. A nil pointer
// wrapped in a non-nil Tip is not absent and must not be passed; convert from
// a possibly nil concrete block by checking it first.
//
// Implementations must never change the value returned by MedianTimePast once
// the block has been published to readers.
type Tip interface {
	// MedianTimePast returns the median of the timestamps of this block and
	// its most recent ancestors.
	MedianTimePast() time.Time
}

// Block is a block in the best-known block tree.
type Block interface {
	Tip

	// ID returns the unique identifier of this block.
	ID() ids.ID

	// Height returns the number of ancestors of this block.
	Height() uint64

	// Timestamp returns the time claimed by the producer of this block.
	Timestamp() time.Time

	// Parent returns the previous block. The genesis block has no parent, in
	// which case false is returned.
	Parent() (Block, bool)
}
