// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"maps"
	"time"

	"github.com/ava-labs/forkgate/chain"
)

// Overrides is an immutable snapshot of operator supplied activation times.
// The zero value contains no overrides.
type Overrides struct {
	times map[RuleID]time.Time
}

// TimeFromUnix returns the activation time [unix] seconds after the unix
// epoch. Times beyond what a time.Time can hold are clamped to
// chain.MaxUnixTimestamp, which is after every block timestamp, so they stay
// after every median time past.
func TimeFromUnix(unix int64) time.Time {
	return time.Unix(min(unix, chain.MaxUnixTimestamp), 0).UTC()
}

func NewOverrides(times map[RuleID]time.Time) Overrides {
	return Overrides{
		times: maps.Clone(times),
	}
}

// Get returns the overridden activation time of [id], if one was provided.
func (o Overrides) Get(id RuleID) (time.Time, bool) {
	t, ok := o.times[id]
	return t, ok
}

// With returns a copy of the overrides with the activation time of [id] set
// to [t].
func (o Overrides) With(id RuleID, t time.Time) Overrides {
	times := make(map[RuleID]time.Time, len(o.times)+1)
	maps.Copy(times, o.times)
	times[id] = t
	return Overrides{
		times: times,
	}
}

// Without returns a copy of the overrides without an activation time for
// [id].
func (o Overrides) Without(id RuleID) Overrides {
	times := maps.Clone(o.times)
	delete(times, id)
	return Overrides{
		times: times,
	}
}

func (o Overrides) Len() int {
	return len(o.times)
}

// Equal returns true if both snapshots override the same rules to the same
// times.
func (o Overrides) Equal(other Overrides) bool {
	return maps.EqualFunc(o.times, other.times, time.Time.Equal)
}

// EffectiveThreshold returns the time at which [rule] activates, taking the
// overrides into account.
func EffectiveThreshold(rule Rule, overrides Overrides) time.Time {
	if t, ok := overrides.Get(rule.ID); ok {
		return t
	}
	return rule.DefaultActivationTime
}
