// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/ava-labs/forkgate/upgrade"
)

var errNotANumber = errors.New("not a number")

// GetOverrides returns the activation time overrides configured in [v].
//
// Overrides may be provided per rule with the "<rule>-activation-time" key,
// the "<rule>activationtime" key, or in the "activation-times" map keyed by
// rule name, in decreasing order of precedence. Every name must refer to a
// rule in [catalog].
//
// Activation times are unix seconds over the whole int64 range. Times after
// the latest representable time are clamped to it, which keeps them after
// every block.
func GetOverrides(v *viper.Viper, catalog *upgrade.Catalog) (upgrade.Overrides, error) {
	times := make(map[upgrade.RuleID]time.Time)

	var activationTimes map[string]interface{}
	if v.IsSet(ActivationTimesKey) {
		var err error
		activationTimes, err = cast.ToStringMapE(v.Get(ActivationTimesKey))
		if err != nil {
			return upgrade.Overrides{}, fmt.Errorf("invalid %s: %w", ActivationTimesKey, err)
		}
	}
	for name, value := range activationTimes {
		rule, err := catalog.LookupName(name)
		if err != nil {
			return upgrade.Overrides{}, fmt.Errorf("invalid %s entry: %w", ActivationTimesKey, err)
		}
		unix, err := toUnix(value)
		if err != nil {
			return upgrade.Overrides{}, fmt.Errorf("invalid %s activation time %v: %w", name, value, err)
		}
		times[rule.ID] = upgrade.TimeFromUnix(unix)
	}

	for _, rule := range catalog.Rules() {
		for _, key := range []string{LegacyActivationTimeKey(rule.ID), ActivationTimeKey(rule.ID)} {
			if !v.IsSet(key) {
				continue
			}
			unix, err := toUnix(v.Get(key))
			if err != nil {
				return upgrade.Overrides{}, fmt.Errorf("invalid %s: %w", key, err)
			}
			times[rule.ID] = upgrade.TimeFromUnix(unix)
		}
	}
	return upgrade.NewOverrides(times), nil
}

// toUnix converts a configured activation time to unix seconds. Numbers that
// do not fit in an int64, which JSON decodes as float64 and YAML may decode as
// uint64, saturate at the int64 bounds.
func toUnix(value interface{}) (int64, error) {
	switch value := value.(type) {
	case float64:
		switch {
		case math.IsNaN(value):
			return 0, errNotANumber
		case value >= math.MaxInt64:
			return math.MaxInt64, nil
		case value <= math.MinInt64:
			return math.MinInt64, nil
		}
	case uint64:
		if value > math.MaxInt64 {
			return math.MaxInt64, nil
		}
	case uint:
		if uint64(value) > math.MaxInt64 {
			return math.MaxInt64, nil
		}
	}
	return cast.ToInt64E(value)
}
