// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/chain/chaintest"
	"github.com/ava-labs/forkgate/database"
	"github.com/ava-labs/forkgate/database/leveldb"
	"github.com/ava-labs/forkgate/database/memdb"
	"github.com/ava-labs/forkgate/ids"
	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/constants"
	"github.com/ava-labs/forkgate/utils/logging"
)

var genesisTimestamp = time.Unix(1_500_000_000, 0).UTC()

func newIndex(t *testing.T, db database.Database) *Index {
	t.Helper()

	i, err := New(db, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(t, err)
	return i
}

func genesisHeader() Header {
	return Header{
		ID:        ids.GenerateTestID(),
		Height:    0,
		Timestamp: genesisTimestamp,
	}
}

func childHeader(parent Header, timestamp time.Time) Header {
	return Header{
		ID:        ids.GenerateTestID(),
		ParentID:  parent.ID,
		Height:    parent.Height + 1,
		Timestamp: timestamp,
	}
}

// addChain adds [length] blocks on top of [parent], each with [timestamp],
// and returns the last header.
func addChain(t *testing.T, i *Index, parent Header, length int, timestamp time.Time) Header {
	t.Helper()

	for range length {
		parent = childHeader(parent, timestamp)
		_, err := i.Add(parent)
		require.NoError(t, err)
	}
	return parent
}

func TestAddComputesMedianTimePast(t *testing.T) {
	require := require.New(t)

	i := newIndex(t, memdb.New())

	genesis := genesisHeader()
	blk, err := i.Add(genesis)
	require.NoError(err)
	require.Equal(genesisTimestamp, blk.MedianTimePast())

	// Mirror the chain with the test fixtures to compare against.
	var (
		parent   = genesis
		expected = chaintest.BuildGenesis(genesis.ID, genesisTimestamp)
	)
	for n := range 3 * chain.MedianTimeSpan {
		// Timestamps are allowed to decrease.
		timestamp := genesisTimestamp.Add(time.Duration(n%7) * time.Minute)

		header := childHeader(parent, timestamp)
		blk, err := i.Add(header)
		require.NoError(err)

		expected = chaintest.BuildChild(expected, timestamp)
		require.Equal(expected.MedianTimePast(), blk.MedianTimePast())
		require.Equal(header.Height, blk.Height())
		require.Equal(header.ID, blk.ID())

		gotParent, ok := blk.Parent()
		require.True(ok)
		require.Equal(parent.ID, gotParent.ID())

		parent = header
	}
	require.Equal(3*chain.MedianTimeSpan+1, i.Len())
}

func TestAddErrors(t *testing.T) {
	genesis := genesisHeader()

	tests := []struct {
		name        string
		header      Header
		expectedErr error
	}{
		{
			name: "empty ID",
			header: Header{
				ParentID: genesis.ID,
				Height:   1,
			},
			expectedErr: ErrEmptyID,
		},
		{
			name:        "duplicate",
			header:      genesis,
			expectedErr: ErrDuplicateBlock,
		},
		{
			name: "unknown parent",
			header: Header{
				ID:       ids.GenerateTestID(),
				ParentID: ids.GenerateTestID(),
				Height:   1,
			},
			expectedErr: ErrUnknownParent,
		},
		{
			name: "genesis with height",
			header: Header{
				ID:     ids.GenerateTestID(),
				Height: 1,
			},
			expectedErr: ErrInvalidHeight,
		},
		{
			name: "timestamp not before the latest representable time",
			header: Header{
				ID:        ids.GenerateTestID(),
				ParentID:  genesis.ID,
				Height:    1,
				Timestamp: time.Unix(chain.MaxUnixTimestamp, 0),
			},
			expectedErr: ErrInvalidTimestamp,
		},
		{
			name: "child with wrong height",
			header: Header{
				ID:       ids.GenerateTestID(),
				ParentID: genesis.ID,
				Height:   2,
			},
			expectedErr: ErrInvalidHeight,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			i := newIndex(t, memdb.New())
			_, err := i.Add(genesis)
			require.NoError(err)

			_, err = i.Add(test.header)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(1, i.Len())
		})
	}
}

func TestGet(t *testing.T) {
	require := require.New(t)

	i := newIndex(t, memdb.New())

	_, err := i.Get(ids.GenerateTestID())
	require.ErrorIs(err, database.ErrNotFound)

	genesis := genesisHeader()
	_, err = i.Add(genesis)
	require.NoError(err)

	blk, err := i.Get(genesis.ID)
	require.NoError(err)
	require.Equal(genesis.ID, blk.ID())

	_, ok := blk.Parent()
	require.False(ok)
}

func TestBest(t *testing.T) {
	require := require.New(t)

	i := newIndex(t, memdb.New())

	_, ok := i.Best()
	require.False(ok)

	genesis := genesisHeader()
	_, err := i.Add(genesis)
	require.NoError(err)

	first := addChain(t, i, genesis, 3, genesisTimestamp)
	second := addChain(t, i, genesis, 3, genesisTimestamp.Add(time.Hour))

	// The first block seen at the greatest height wins ties.
	best, ok := i.Best()
	require.True(ok)
	require.Equal(first.ID, best.ID())

	third := addChain(t, i, second, 1, genesisTimestamp.Add(time.Hour))
	best, ok = i.Best()
	require.True(ok)
	require.Equal(third.ID, best.ID())
}

func TestReload(t *testing.T) {
	dbs := map[string]func(t *testing.T) (database.Database, func() database.Database){
		"memdb": func(*testing.T) (database.Database, func() database.Database) {
			db := memdb.New()
			return db, func() database.Database {
				return db
			}
		},
		"leveldb": func(t *testing.T) (database.Database, func() database.Database) {
			path := filepath.Join(t.TempDir(), "db")
			db, err := leveldb.New(path, logging.NoLog{})
			require.NoError(t, err)
			return db, func() database.Database {
				require.NoError(t, db.Close())
				reopened, err := leveldb.New(path, logging.NoLog{})
				require.NoError(t, err)
				t.Cleanup(func() {
					_ = reopened.Close()
				})
				return reopened
			}
		},
	}
	for name, newDB := range dbs {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			db, reopen := newDB(t)
			original := newIndex(t, db)

			genesis := genesisHeader()
			_, err := original.Add(genesis)
			require.NoError(err)

			// Both branches end at the same height, so the branch added
			// first must remain the best after reloading.
			tip := addChain(t, original, genesis, 2*chain.MedianTimeSpan, genesisTimestamp.Add(time.Minute))
			fork := addChain(t, original, genesis, 2*chain.MedianTimeSpan, genesisTimestamp.Add(time.Hour))

			reloaded := newIndex(t, reopen())
			require.Equal(original.Len(), reloaded.Len())

			best, ok := reloaded.Best()
			require.True(ok)
			require.Equal(tip.ID, best.ID())

			for _, blkID := range []ids.ID{genesis.ID, tip.ID, fork.ID} {
				expected, err := original.Get(blkID)
				require.NoError(err)
				actual, err := reloaded.Get(blkID)
				require.NoError(err)

				require.Equal(expected.Height(), actual.Height())
				require.Equal(expected.Timestamp(), actual.Timestamp())
				require.Equal(expected.MedianTimePast(), actual.MedianTimePast())

				expectedParent, expectedOK := expected.Parent()
				actualParent, actualOK := actual.Parent()
				require.Equal(expectedOK, actualOK)
				if expectedOK {
					require.Equal(expectedParent.ID(), actualParent.ID())
				}
			}

			// New blocks are still ordered after the reloaded ones.
			_, err = reloaded.Add(childHeader(fork, genesisTimestamp))
			require.NoError(err)
			best, ok = reloaded.Best()
			require.True(ok)
			require.Equal(fork.Height+1, best.Height())
		})
	}
}

func TestBestIDPersisted(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	i := newIndex(t, db)

	genesis := genesisHeader()
	_, err := i.Add(genesis)
	require.NoError(err)
	tip := addChain(t, i, genesis, 3, genesisTimestamp.Add(time.Minute))
	_ = addChain(t, i, genesis, 3, genesisTimestamp.Add(time.Hour))

	bestID, err := database.GetID(db, bestKey)
	require.NoError(err)
	require.Equal(tip.ID, bestID)

	// A best block ID that is behind the stored blocks is corrected on load.
	require.NoError(database.PutID(db, bestKey, genesis.ID))
	reloaded := newIndex(t, db)

	best, ok := reloaded.Best()
	require.True(ok)
	require.Equal(tip.ID, best.ID())

	bestID, err = database.GetID(db, bestKey)
	require.NoError(err)
	require.Equal(tip.ID, bestID)
}

func TestFormatVersion(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	_ = newIndex(t, db)

	version, err := database.GetUInt64(db, formatVersionKey)
	require.NoError(err)
	require.Equal(formatVersion, version)

	require.NoError(database.PutUInt64(db, formatVersionKey, formatVersion+1))
	_, err = New(db, logging.NoLog{}, prometheus.NewRegistry())
	require.ErrorIs(err, ErrIncompatibleFormat)
}

func TestParseRecordInvalid(t *testing.T) {
	_, err := parseRecord(make([]byte, recordLen-1))
	require.ErrorIs(t, err, errInvalidRecordLen)
}

func TestMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	i, err := New(memdb.New(), logging.NoLog{}, registry)
	require.NoError(err)
	require.Zero(testutil.ToFloat64(i.metrics.numBlocks))

	genesis := genesisHeader()
	_, err = i.Add(genesis)
	require.NoError(err)
	tip := addChain(t, i, genesis, 4, genesisTimestamp.Add(time.Minute))

	require.Equal(5.0, testutil.ToFloat64(i.metrics.numBlocks))
	require.Equal(float64(tip.Height), testutil.ToFloat64(i.metrics.bestHeight))
	require.Equal(float64(genesisTimestamp.Add(time.Minute).Unix()), testutil.ToFloat64(i.metrics.bestMedianTimePast))

	_, err = New(memdb.New(), logging.NoLog{}, registry)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(err, &alreadyRegistered)
}

func TestImport(t *testing.T) {
	require := require.New(t)

	var (
		genesis = genesisHeader()
		child   = childHeader(genesis, genesisTimestamp.Add(time.Minute))
		headers = []Header{
			genesis,
			child,
			childHeader(child, genesisTimestamp.Add(2*time.Minute)),
		}
	)

	b, err := json.Marshal(headers)
	require.NoError(err)
	decoded, err := ReadHeaders(bytes.NewReader(b))
	require.NoError(err)
	require.Len(decoded, len(headers))
	for j := range headers {
		require.True(headers[j].equal(decoded[j]))
	}

	i := newIndex(t, memdb.New())
	numAdded, err := i.Import(decoded)
	require.NoError(err)
	require.Equal(3, numAdded)

	numAdded, err = i.Import(decoded)
	require.NoError(err)
	require.Zero(numAdded)

	conflicting := child
	conflicting.Timestamp = conflicting.Timestamp.Add(time.Second)
	_, err = i.Import([]Header{conflicting})
	require.ErrorIs(err, ErrConflictingBlock)

	_, err = ReadHeaders(bytes.NewReader([]byte(`[{"id": 5}]`)))
	require.Error(err)
}

func TestReadHeadersTimestampRange(t *testing.T) {
	tests := []struct {
		name        string
		timestamp   int64
		expectedErr error
	}{
		{
			name:      "minimum",
			timestamp: math.MinInt64,
		},
		{
			name:      "latest representable second before the bound",
			timestamp: chain.MaxUnixTimestamp - 1,
		},
		{
			name:        "bound",
			timestamp:   chain.MaxUnixTimestamp,
			expectedErr: ErrInvalidTimestamp,
		},
		{
			name:        "maximum",
			timestamp:   math.MaxInt64,
			expectedErr: ErrInvalidTimestamp,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			input := fmt.Sprintf(`[{"id": %q, "height": 0, "timestamp": %d}]`,
				ids.GenerateTestID(),
				test.timestamp,
			)
			headers, err := ReadHeaders(strings.NewReader(input))
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}

			require.Len(headers, 1)
			require.Equal(test.timestamp, headers[0].Timestamp.Unix())

			i := newIndex(t, memdb.New())
			blk, err := i.Add(headers[0])
			require.NoError(err)
			require.Equal(test.timestamp, blk.MedianTimePast().Unix())
		})
	}
}

func TestConcurrentReaders(t *testing.T) {
	require := require.New(t)

	i := newIndex(t, memdb.New())
	genesis := genesisHeader()
	_, err := i.Add(genesis)
	require.NoError(err)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				best, ok := i.Best()
				if !ok {
					continue
				}
				_ = best.MedianTimePast()
				_, _ = i.Get(best.ID())
			}
		}()
	}
	addChain(t, i, genesis, 100, genesisTimestamp)
	wg.Wait()
}

// Sibling branches at the same height disagree on activation when only one
// of them has a median time past at or after the activation time.
func TestSiblingBranchesActivateIndependently(t *testing.T) {
	require := require.New(t)

	var (
		i         = newIndex(t, memdb.New())
		evaluator = upgrade.NewEvaluator(upgrade.GetCatalog(constants.MainnetID), upgrade.Overrides{})
		threshold = time.Unix(1577836800, 0).UTC()
		genesis   = genesisHeader()
	)
	_, err := i.Add(genesis)
	require.NoError(err)

	base := addChain(t, i, genesis, chain.MedianTimeSpan, threshold.Add(-100*time.Second))

	// After 6 blocks the median falls on the newest timestamps.
	const forkLength = chain.MedianTimeSpan/2 + 1
	late := addChain(t, i, base, forkLength, threshold.Add(-time.Second))
	onTime := addChain(t, i, base, forkLength, threshold)
	require.Equal(late.Height, onTime.Height)

	lateBlk, err := i.Get(late.ID)
	require.NoError(err)
	require.Equal(threshold.Add(-time.Second), lateBlk.MedianTimePast())

	onTimeBlk, err := i.Get(onTime.ID)
	require.NoError(err)
	require.Equal(threshold, onTimeBlk.MedianTimePast())

	active, err := evaluator.IsActive(upgrade.Exodus, lateBlk)
	require.NoError(err)
	require.False(active)

	active, err = evaluator.IsActive(upgrade.Exodus, onTimeBlk)
	require.NoError(err)
	require.True(active)

	// The best tip is the first branch to reach the greatest height.
	best, ok := i.Best()
	require.True(ok)
	require.Equal(late.ID, best.ID())

	active, err = evaluator.IsActive(upgrade.Exodus, best)
	require.NoError(err)
	require.False(active)
}
