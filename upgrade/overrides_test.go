// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/forkgate/chain"
)

func TestTimeFromUnix(t *testing.T) {
	tests := []struct {
		name     string
		unix     int64
		expected int64
	}{
		{
			name:     "minimum",
			unix:     math.MinInt64,
			expected: math.MinInt64,
		},
		{
			name:     "epoch",
			unix:     0,
			expected: 0,
		},
		{
			name:     "latest representable",
			unix:     chain.MaxUnixTimestamp,
			expected: chain.MaxUnixTimestamp,
		},
		{
			name:     "after latest representable",
			unix:     chain.MaxUnixTimestamp + 1,
			expected: chain.MaxUnixTimestamp,
		},
		{
			name:     "maximum",
			unix:     math.MaxInt64,
			expected: chain.MaxUnixTimestamp,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			activationTime := TimeFromUnix(test.unix)
			require.Equal(test.expected, activationTime.Unix())
			require.Equal(time.UTC, activationTime.Location())
		})
	}
}

func TestFarFutureOverrideIsNeverActive(t *testing.T) {
	require := require.New(t)

	rule := Rule{
		ID:                    Exodus,
		DefaultActivationTime: InitiallyActiveTime,
	}
	overrides := Overrides{}.With(Exodus, TimeFromUnix(math.MaxInt64))
	for _, mtp := range []int64{0, 1577836800, chain.MaxUnixTimestamp - 1} {
		require.False(IsActive(rule, tipWithMTP(mtp), overrides))
	}
}

func TestEffectiveThreshold(t *testing.T) {
	require := require.New(t)

	var (
		defaultTime  = time.Unix(1577836800, 0)
		overrideTime = time.Unix(1000, 0)
		rule         = Rule{
			ID:                    Exodus,
			DefaultActivationTime: defaultTime,
		}
	)

	var empty Overrides
	require.Equal(defaultTime, EffectiveThreshold(rule, empty))

	overridden := empty.With(Exodus, overrideTime)
	require.Equal(overrideTime, EffectiveThreshold(rule, overridden))

	// Overriding another rule doesn't impact this one.
	other := empty.With(Leviticus, overrideTime)
	require.Equal(defaultTime, EffectiveThreshold(rule, other))

	reverted := overridden.Without(Exodus)
	require.Equal(defaultTime, EffectiveThreshold(rule, reverted))
}

func TestOverridesAreImmutable(t *testing.T) {
	require := require.New(t)

	times := map[RuleID]time.Time{
		Exodus: time.Unix(1, 0),
	}
	original := NewOverrides(times)

	// Modifying the input after construction has no effect.
	times[Leviticus] = time.Unix(2, 0)
	require.Equal(1, original.Len())

	added := original.With(Leviticus, time.Unix(3, 0))
	require.Equal(1, original.Len())
	require.Equal(2, added.Len())

	removed := added.Without(Exodus)
	require.Equal(2, added.Len())
	require.Equal(1, removed.Len())

	_, ok := removed.Get(Exodus)
	require.False(ok)
	exodus, ok := original.Get(Exodus)
	require.True(ok)
	require.Equal(time.Unix(1, 0), exodus)
}

func TestOverridesEqual(t *testing.T) {
	require := require.New(t)

	var empty Overrides
	require.True(empty.Equal(NewOverrides(nil)))
	require.True(empty.Equal(NewOverrides(map[RuleID]time.Time{})))

	a := empty.With(Exodus, time.Unix(10, 0))
	b := NewOverrides(map[RuleID]time.Time{
		Exodus: time.Unix(10, 0).UTC(),
	})
	require.True(a.Equal(b))
	require.False(a.Equal(empty))
	require.False(a.Equal(a.With(Exodus, time.Unix(11, 0))))
	require.False(a.Equal(a.With(Leviticus, time.Unix(10, 0))))
}
