// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/forkgate/utils/constants"
)

func TestRegistryRegister(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	require.NoError(r.Register(Rule{ID: Exodus}))
	require.NoError(r.Register(Rule{ID: Leviticus}))

	err := r.Register(Rule{
		ID:                    Exodus,
		DefaultActivationTime: time.Unix(1, 0),
	})
	require.ErrorIs(err, ErrDuplicateRule)

	catalog := r.Seal()
	require.Equal(2, catalog.Len())

	rule, err := catalog.Lookup(Exodus)
	require.NoError(err)
	require.Equal(Rule{ID: Exodus}, rule)
}

func TestRegistrySealed(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	require.NoError(r.Register(Rule{ID: Exodus}))

	catalog := r.Seal()
	require.Same(catalog, r.Seal())

	err := r.Register(Rule{ID: Leviticus})
	require.ErrorIs(err, ErrSealed)

	_, err = catalog.Lookup(Leviticus)
	require.ErrorIs(err, ErrUnknownRule)
}

func TestNewCatalogDuplicate(t *testing.T) {
	_, err := NewCatalog(
		Rule{ID: Leviticus},
		Rule{ID: Exodus},
		Rule{ID: Leviticus},
	)
	require.ErrorIs(t, err, ErrDuplicateRule)
}

func TestCatalogLookup(t *testing.T) {
	require := require.New(t)

	catalog, err := NewCatalog(Mainnet...)
	require.NoError(err)

	rule, err := catalog.LookupName("leviticus")
	require.NoError(err)
	require.Equal(Mainnet[1], rule)

	_, err = catalog.LookupName("numbers")
	require.ErrorIs(err, ErrUnknownRule)

	_, err = catalog.Lookup(RuleID(100))
	require.ErrorIs(err, ErrUnknownRule)
}

func TestCatalogRulesIsCopy(t *testing.T) {
	require := require.New(t)

	catalog, err := NewCatalog(Rule{ID: Leviticus}, Rule{ID: Exodus})
	require.NoError(err)

	rules := catalog.Rules()
	require.Equal([]Rule{{ID: Leviticus}, {ID: Exodus}}, rules)

	rules[0].DefaultActivationTime = time.Unix(1, 0)
	rule, err := catalog.Lookup(Leviticus)
	require.NoError(err)
	require.Zero(rule.DefaultActivationTime)
}

func TestValidDefaultCatalogs(t *testing.T) {
	for _, test := range []struct {
		name      string
		networkID uint32
		expected  map[RuleID]int64
	}{
		{
			name:      constants.MainnetName,
			networkID: constants.MainnetID,
			expected: map[RuleID]int64{
				Exodus:    1577836800,
				Leviticus: 4102444800,
			},
		},
		{
			name:      constants.TestnetName,
			networkID: constants.TestnetID,
			expected: map[RuleID]int64{
				Exodus:    1575158400,
				Leviticus: 4102444800,
			},
		},
		{
			name:      constants.LocalName,
			networkID: constants.LocalID,
			expected: map[RuleID]int64{
				Exodus:    0,
				Leviticus: UnscheduledActivationTime.Unix(),
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			catalog := GetCatalog(test.networkID)
			require.Equal(len(test.expected), catalog.Len())

			var last time.Time
			for _, rule := range catalog.Rules() {
				require.Equal(test.expected[rule.ID], rule.DefaultActivationTime.Unix())
				require.False(rule.DefaultActivationTime.Before(last))
				last = rule.DefaultActivationTime
			}
		})
	}
}
