// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/ids"
)

var ErrConflictingBlock = errors.New("conflicting block")

type jsonHeader struct {
	ID        ids.ID `json:"id"`
	ParentID  ids.ID `json:"parentID"`
	Height    uint64 `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

// MarshalJSON encodes the header with its timestamp in unix seconds.
func (h Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonHeader{
		ID:        h.ID,
		ParentID:  h.ParentID,
		Height:    h.Height,
		Timestamp: h.Timestamp.Unix(),
	})
}

func (h *Header) UnmarshalJSON(b []byte) error {
	var j jsonHeader
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if j.Timestamp >= chain.MaxUnixTimestamp {
		return fmt.Errorf("%w: %d", ErrInvalidTimestamp, j.Timestamp)
	}
	*h = Header{
		ID:        j.ID,
		ParentID:  j.ParentID,
		Height:    j.Height,
		Timestamp: time.Unix(j.Timestamp, 0).UTC(),
	}
	return nil
}

// ReadHeaders decodes a JSON array of headers from [r].
func ReadHeaders(r io.Reader) ([]Header, error) {
	var headers []Header
	if err := json.NewDecoder(r).Decode(&headers); err != nil {
		return nil, fmt.Errorf("failed to decode headers: %w", err)
	}
	return headers, nil
}

// Import adds [headers], in order, to the index. Headers that are already in
// the index are skipped. The number of newly added blocks is returned.
func (i *Index) Import(headers []Header) (int, error) {
	var numAdded int
	for _, header := range headers {
		if known, ok := i.header(header.ID); ok {
			if !known.equal(header) {
				return numAdded, fmt.Errorf("%w: %s", ErrConflictingBlock, header.ID)
			}
			continue
		}

		if _, err := i.Add(header); err != nil {
			return numAdded, fmt.Errorf("failed to import block %s: %w", header.ID, err)
		}
		numAdded++
	}

	i.log.Info("imported headers",
		zap.Int("numHeaders", len(headers)),
		zap.Int("numAdded", numAdded),
	)
	return numAdded, nil
}

func (i *Index) header(blkID ids.ID) (Header, bool) {
	i.lock.RLock()
	defer i.lock.RUnlock()

	blk, ok := i.blocks[blkID]
	if !ok {
		return Header{}, false
	}
	return blk.header, true
}

func (h Header) equal(other Header) bool {
	return h.ID == other.ID &&
		h.ParentID == other.ParentID &&
		h.Height == other.Height &&
		h.Timestamp.Unix() == other.Timestamp.Unix()
}
