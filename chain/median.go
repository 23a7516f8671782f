// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"slices"
	"time"
)

// MedianTimeSpan is the number of timestamps, including the block's own, that
// the median time past is calculated over.
const MedianTimeSpan = 11

// CalcMedianTimePast returns the median time past of a block with [timestamp]
// whose previous block is [parent]. [parent] is nil for the genesis block.
//
// At most MedianTimeSpan-1 ancestors are visited. When fewer timestamps are
// available the median of the available timestamps is returned. For an even
// number of timestamps the later of the two middle values is used.
func CalcMedianTimePast(timestamp time.Time, parent Block) time.Time {
	timestamps := make([]int64, 1, MedianTimeSpan)
	timestamps[0] = timestamp.Unix()
	for blk := parent; blk != nil; {
		timestamps = append(timestamps, blk.Timestamp().Unix())
		if len(timestamps) == MedianTimeSpan {
			break
		}

		next, ok := blk.Parent()
		if !ok {
			break
		}
		blk = next
	}

	slices.Sort(timestamps)
	return time.Unix(timestamps[len(timestamps)/2], 0).UTC()
}
