// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"time"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/ids"
)

const (
	GenesisHeight        = 0
	GenesisUnixTimestamp = 1_500_000_000
)

var (
	_ chain.Block = (*Block)(nil)

	GenesisID        = ids.GenerateTestID()
	GenesisTimestamp = time.Unix(GenesisUnixTimestamp, 0).UTC()
	Genesis          = BuildGenesis(GenesisID, GenesisTimestamp)
)

// Block is an in-memory chain.Block whose fields may be set directly.
type Block struct {
	IDV             ids.ID
	ParentV         *Block
	HeightV         uint64
	TimestampV      time.Time
	MedianTimePastV time.Time
}

func (b *Block) ID() ids.ID {
	return b.IDV
}

func (b *Block) Height() uint64 {
	return b.HeightV
}

func (b *Block) Timestamp() time.Time {
	return b.TimestampV
}

func (b *Block) MedianTimePast() time.Time {
	return b.MedianTimePastV
}

func (b *Block) Parent() (chain.Block, bool) {
	if b.ParentV == nil {
		return nil, false
	}
	return b.ParentV, true
}

// BuildGenesis returns a block without a parent.
func BuildGenesis(blkID ids.ID, timestamp time.Time) *Block {
	return &Block{
		IDV:             blkID,
		HeightV:         GenesisHeight,
		TimestampV:      timestamp,
		MedianTimePastV: chain.CalcMedianTimePast(timestamp, nil),
	}
}

// BuildChild returns a child of [parent] with the provided timestamp. The
// median time past is calculated from the ancestry.
func BuildChild(parent *Block, timestamp time.Time) *Block {
	return &Block{
		IDV:             ids.GenerateTestID(),
		ParentV:         parent,
		HeightV:         parent.HeightV + 1,
		TimestampV:      timestamp,
		MedianTimePastV: chain.CalcMedianTimePast(timestamp, parent),
	}
}

// BuildChildWithMTP returns a child of [parent] whose median time past is
// forced to [medianTimePast], regardless of its ancestry.
func BuildChildWithMTP(parent *Block, medianTimePast time.Time) *Block {
	child := BuildChild(parent, medianTimePast)
	child.MedianTimePastV = medianTimePast
	return child
}

// BuildChain returns a chain of [length] blocks built on top of [root]. Each
// block is [spacing] later than its parent.
func BuildChain(root *Block, length int, spacing time.Duration) []*Block {
	blocks := make([]*Block, length)
	parent := root
	for i := range blocks {
		parent = BuildChild(parent, parent.TimestampV.Add(spacing))
		blocks[i] = parent
	}
	return blocks
}

// BuildChainToMTP extends [root] with chain.MedianTimeSpan blocks all stamped
// with [medianTimePast], so the returned tip has exactly that median time
// past.
func BuildChainToMTP(root *Block, medianTimePast time.Time) *Block {
	tip := root
	for range chain.MedianTimeSpan {
		tip = BuildChild(tip, medianTimePast)
	}
	return tip
}
