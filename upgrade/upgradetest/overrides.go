// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgradetest

import (
	"time"

	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/constants"
)

// GetOverrides returns overrides with the provided rule, and all prior rules,
// initially active and all later rules unscheduled.
func GetOverrides(rule upgrade.RuleID) upgrade.Overrides {
	return GetOverridesWithActivationTime(rule, upgrade.InitiallyActiveTime)
}

// GetOverridesWithActivationTime returns overrides with the provided rule, and
// all prior rules, scheduled to activate at [activationTime] and all later
// rules unscheduled.
func GetOverridesWithActivationTime(rule upgrade.RuleID, activationTime time.Time) upgrade.Overrides {
	times := make(map[upgrade.RuleID]time.Time)
	// Initialize all rules to be unscheduled
	SetTimesTo(times, upgrade.Latest, upgrade.UnscheduledActivationTime)
	// Schedule the requested rules at the provided time
	SetTimesTo(times, rule, activationTime)
	return upgrade.NewOverrides(times)
}

// SetTimesTo sets the activation time of the provided rule, and all prior
// rules, to [activationTime].
func SetTimesTo(times map[upgrade.RuleID]time.Time, rule upgrade.RuleID, activationTime time.Time) {
	switch rule {
	case upgrade.Leviticus:
		times[upgrade.Leviticus] = activationTime
		fallthrough
	case upgrade.Exodus:
		times[upgrade.Exodus] = activationTime
	}
}

// Catalog returns a catalog containing every known rule with its local
// network default.
func Catalog() *upgrade.Catalog {
	return upgrade.GetCatalog(constants.LocalID)
}
