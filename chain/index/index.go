// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package index maintains the tree of known block headers and publishes each
// block's median time past exactly once, when the block is first added.
package index

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/database"
	"github.com/ava-labs/forkgate/ids"
	"github.com/ava-labs/forkgate/utils/logging"
)

// formatVersion is bumped whenever the encoding of persisted blocks changes.
const formatVersion uint64 = 1

var (
	ErrEmptyID            = errors.New("block ID is empty")
	ErrUnknownParent      = errors.New("unknown parent")
	ErrDuplicateBlock     = errors.New("duplicate block")
	ErrInvalidHeight      = errors.New("invalid height")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrIncompatibleFormat = errors.New("incompatible database format")

	headerPrefix     = []byte{0x00}
	formatVersionKey = []byte{0x01}
	bestKey          = []byte{0x02}
)

// Index is the persistent set of known blocks. Blocks are never modified or
// removed once added.
//
// Index is safe for concurrent use.
type Index struct {
	log     logging.Logger
	db      database.Database
	metrics *metrics

	lock    sync.RWMutex
	blocks  map[ids.ID]*block
	best    *block
	nextSeq uint64
}

// New returns an index backed by [db], loading all previously added blocks.
func New(
	db database.Database,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*Index, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register index metrics: %w", err)
	}

	i := &Index{
		log:     log,
		db:      db,
		metrics: m,
		blocks:  make(map[ids.ID]*block),
	}
	if err := i.checkFormat(); err != nil {
		return nil, err
	}
	if err := i.load(); err != nil {
		return nil, err
	}
	if err := i.syncBest(); err != nil {
		return nil, err
	}
	i.metrics.added(len(i.blocks), i.best)

	if i.best != nil {
		i.log.Info("loaded chain index",
			zap.Int("numBlocks", len(i.blocks)),
			zap.Stringer("bestID", i.best.ID()),
			zap.Uint64("bestHeight", i.best.Height()),
		)
	}
	return i, nil
}

// checkFormat verifies that [i.db] was written with the current encoding.
// A database without a version is new and gets the current one.
func (i *Index) checkFormat() error {
	version, err := database.WithDefault(database.GetUInt64, i.db, formatVersionKey, formatVersion)
	if err != nil {
		return fmt.Errorf("failed to read format version: %w", err)
	}
	if version != formatVersion {
		return fmt.Errorf("%w: expected %d but got %d",
			ErrIncompatibleFormat,
			formatVersion,
			version,
		)
	}
	return database.PutUInt64(i.db, formatVersionKey, formatVersion)
}

func (i *Index) load() error {
	it := i.db.NewIteratorWithPrefix(headerPrefix)
	defer it.Release()

	type stored struct {
		header Header
		record record
	}
	var blocks []stored
	for it.Next() {
		blkID, err := ids.ToID(it.Key()[len(headerPrefix):])
		if err != nil {
			return fmt.Errorf("failed to parse block ID: %w", err)
		}
		r, err := parseRecord(it.Value())
		if err != nil {
			return fmt.Errorf("failed to parse block %s: %w", blkID, err)
		}
		blocks = append(blocks, stored{
			header: Header{
				ID:        blkID,
				ParentID:  r.parentID,
				Height:    r.height,
				Timestamp: time.Unix(r.timestamp, 0).UTC(),
			},
			record: r,
		})
	}
	if err := it.Error(); err != nil {
		return fmt.Errorf("failed to iterate over blocks: %w", err)
	}

	// Blocks are always added after their parent, so replaying them in
	// insertion order links every block to an already loaded parent.
	slices.SortFunc(blocks, func(a, b stored) int {
		return cmp.Compare(a.record.seq, b.record.seq)
	})

	for _, s := range blocks {
		var parent *block
		if s.header.ParentID != ids.Empty {
			var ok bool
			parent, ok = i.blocks[s.header.ParentID]
			if !ok {
				return fmt.Errorf("%w: %s of loaded block %s", ErrUnknownParent, s.header.ParentID, s.header.ID)
			}
		}

		i.publish(&block{
			header:         s.header,
			parent:         parent,
			medianTimePast: time.Unix(s.record.medianTimePast, 0).UTC(),
			seq:            s.record.seq,
		})
	}
	return nil
}

// syncBest makes the persisted best block ID match the best loaded block. They
// differ only if a previous run stopped between persisting a block and
// persisting it as the best block.
func (i *Index) syncBest() error {
	if i.best == nil {
		return nil
	}

	persistedID, err := database.WithDefault(database.GetID, i.db, bestKey, ids.Empty)
	if err != nil {
		return fmt.Errorf("failed to read best block ID: %w", err)
	}
	if persistedID == i.best.ID() {
		return nil
	}

	i.log.Warn("updating persisted best block",
		zap.Stringer("persistedID", persistedID),
		zap.Stringer("bestID", i.best.ID()),
	)
	if err := database.PutID(i.db, bestKey, i.best.ID()); err != nil {
		return fmt.Errorf("failed to persist best block ID: %w", err)
	}
	return nil
}

// Add inserts a new block into the index and returns it.
//
// The parent of the block must already be in the index, unless the block is a
// genesis block, in which case ParentID must be empty and Height must be 0.
func (i *Index) Add(header Header) (chain.Block, error) {
	if header.ID == ids.Empty {
		return nil, ErrEmptyID
	}
	if unix := header.Timestamp.Unix(); unix >= chain.MaxUnixTimestamp {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTimestamp, unix)
	}

	i.lock.Lock()
	defer i.lock.Unlock()

	if _, ok := i.blocks[header.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateBlock, header.ID)
	}

	var (
		parent         *block
		parentBlk      chain.Block
		expectedHeight uint64
	)
	if header.ParentID != ids.Empty {
		var ok bool
		parent, ok = i.blocks[header.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParent, header.ParentID)
		}
		parentBlk = parent
		expectedHeight = parent.Height() + 1
	}
	if header.Height != expectedHeight {
		return nil, fmt.Errorf("%w: expected %d but got %d",
			ErrInvalidHeight,
			expectedHeight,
			header.Height,
		)
	}

	header.Timestamp = header.Timestamp.Truncate(time.Second).UTC()
	blk := &block{
		header:         header,
		parent:         parent,
		medianTimePast: chain.CalcMedianTimePast(header.Timestamp, parentBlk),
		seq:            i.nextSeq,
	}

	key := slices.Concat(headerPrefix, header.ID[:])
	if err := i.db.Put(key, blk.record().Bytes()); err != nil {
		return nil, fmt.Errorf("failed to persist block %s: %w", header.ID, err)
	}
	if i.isBetter(blk) {
		if err := database.PutID(i.db, bestKey, header.ID); err != nil {
			return nil, fmt.Errorf("failed to persist best block ID: %w", err)
		}
	}

	i.publish(blk)
	i.metrics.added(len(i.blocks), i.best)

	i.log.Debug("added block",
		zap.Stringer("blkID", header.ID),
		zap.Stringer("parentID", header.ParentID),
		zap.Uint64("height", header.Height),
		zap.Time("timestamp", header.Timestamp),
		zap.Time("medianTimePast", blk.medianTimePast),
	)
	return blk, nil
}

// publish must be called with the lock held or before the index is shared.
func (i *Index) publish(blk *block) {
	i.blocks[blk.ID()] = blk
	i.nextSeq = max(i.nextSeq, blk.seq+1)
	if i.isBetter(blk) {
		i.best = blk
	}
}

// isBetter returns true if [blk] should replace the current best block.
func (i *Index) isBetter(blk *block) bool {
	return i.best == nil || blk.Height() > i.best.Height()
}

// Get returns the block with [blkID]. If the block is unknown,
// database.ErrNotFound is returned.
func (i *Index) Get(blkID ids.ID) (chain.Block, error) {
	i.lock.RLock()
	defer i.lock.RUnlock()

	blk, ok := i.blocks[blkID]
	if !ok {
		return nil, fmt.Errorf("%w: block %s", database.ErrNotFound, blkID)
	}
	return blk, nil
}

// Best returns the known block with the greatest height. If multiple blocks
// share the greatest height, the one added first is returned. False is
// returned if the index is empty.
func (i *Index) Best() (chain.Block, bool) {
	i.lock.RLock()
	defer i.lock.RUnlock()

	if i.best == nil {
		return nil, false
	}
	return i.best, true
}

// Len returns the number of blocks in the index.
func (i *Index) Len() int {
	i.lock.RLock()
	defer i.lock.RUnlock()

	return len(i.blocks)
}
