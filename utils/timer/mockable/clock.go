// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import "time"

// Clock acts as a thin wrapper around global time that allows for easy testing
type Clock struct {
	faked bool
	time  time.Time
}

// Set the time on the clock
func (c *Clock) Set(time time.Time) { c.faked = true; c.time = time }

// Time returns the time on this clock
func (c *Clock) Time() time.Time {
	if c.faked {
		return c.time
	}
	return time.Now()
}

// UnixTime returns the time on this clock truncated to the second.
func (c *Clock) UnixTime() time.Time {
	return c.Time().Truncate(time.Second)
}

// Until returns the duration from the clock's current second until [t]. The
// result is zero if [t] is not in the future.
func (c *Clock) Until(t time.Time) time.Duration {
	return max(t.Sub(c.UnixTime()), 0)
}
