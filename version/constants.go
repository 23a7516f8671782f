// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const (
	Client = "forkgate"

	// CurrentDatabase is the version of the chain index's on-disk format.
	CurrentDatabase = "v1.0.0"
)

var Current = &Application{
	Name:  Client,
	Major: 1,
	Minor: 0,
	Patch: 0,
}
