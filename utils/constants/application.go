// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// PlatformName exists to make the name of the application easily accessible.
const PlatformName = "forkgate"
