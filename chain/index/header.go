// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package index

import (
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/database"
	"github.com/ava-labs/forkgate/ids"
)

const recordLen = ids.IDLen + 4*database.Uint64Size

var (
	_ chain.Block = (*block)(nil)

	errInvalidRecordLen = errors.New("invalid record length")
)

// Header is the consensus relevant subset of a block header.
type Header struct {
	ID        ids.ID
	ParentID  ids.ID
	Height    uint64
	Timestamp time.Time
}

type block struct {
	header         Header
	parent         *block
	medianTimePast time.Time
	// seq is the order in which this block was first added to the index.
	seq uint64
}

func (b *block) ID() ids.ID {
	return b.header.ID
}

func (b *block) Height() uint64 {
	return b.header.Height
}

func (b *block) Timestamp() time.Time {
	return b.header.Timestamp
}

func (b *block) MedianTimePast() time.Time {
	return b.medianTimePast
}

func (b *block) Parent() (chain.Block, bool) {
	if b.parent == nil {
		return nil, false
	}
	return b.parent, true
}

// record is the persisted form of a block.
type record struct {
	parentID       ids.ID
	height         uint64
	timestamp      int64
	medianTimePast int64
	seq            uint64
}

func (b *block) record() record {
	return record{
		parentID:       b.header.ParentID,
		height:         b.header.Height,
		timestamp:      b.header.Timestamp.Unix(),
		medianTimePast: b.medianTimePast.Unix(),
		seq:            b.seq,
	}
}

func (r record) Bytes() []byte {
	b := make([]byte, 0, recordLen)
	b = append(b, r.parentID[:]...)
	b = append(b, database.PackUInt64(r.height)...)
	b = append(b, database.PackUInt64(uint64(r.timestamp))...)
	b = append(b, database.PackUInt64(uint64(r.medianTimePast))...)
	return append(b, database.PackUInt64(r.seq)...)
}

func parseRecord(b []byte) (record, error) {
	if len(b) != recordLen {
		return record{}, fmt.Errorf("%w: %d", errInvalidRecordLen, len(b))
	}

	var fields [4]uint64
	for i := range fields {
		start := ids.IDLen + i*database.Uint64Size
		v, err := database.ParseUInt64(b[start : start+database.Uint64Size])
		if err != nil {
			return record{}, err
		}
		fields[i] = v
	}

	r := record{
		height:         fields[0],
		timestamp:      int64(fields[1]),
		medianTimePast: int64(fields[2]),
		seq:            fields[3],
	}
	copy(r.parentID[:], b[:ids.IDLen])
	return r, nil
}
