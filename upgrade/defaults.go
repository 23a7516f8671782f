// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"time"

	"github.com/ava-labs/forkgate/utils/constants"
)

var (
	InitiallyActiveTime       = time.Unix(0, 0).UTC()
	UnscheduledActivationTime = time.Date(9999, time.December, 1, 0, 0, 0, 0, time.UTC)

	Mainnet = []Rule{
		{
			ID:                    Exodus,
			DefaultActivationTime: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                    Leviticus,
			DefaultActivationTime: time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	Testnet = []Rule{
		{
			ID:                    Exodus,
			DefaultActivationTime: time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                    Leviticus,
			DefaultActivationTime: time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	Local = []Rule{
		{
			ID:                    Exodus,
			DefaultActivationTime: InitiallyActiveTime,
		},
		{
			ID:                    Leviticus,
			DefaultActivationTime: UnscheduledActivationTime,
		},
	}
)

// GetRules returns the default rules of the network.
func GetRules(networkID uint32) []Rule {
	switch networkID {
	case constants.MainnetID:
		return Mainnet
	case constants.TestnetID:
		return Testnet
	default:
		return Local
	}
}

// GetCatalog returns the default catalog of the network.
func GetCatalog(networkID uint32) *Catalog {
	catalog, err := NewCatalog(GetRules(networkID)...)
	if err != nil {
		panic(err)
	}
	return catalog
}
