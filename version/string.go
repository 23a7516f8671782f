// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// GitCommit is set by the build script
var GitCommit string

func String(networkName string, commit string) string {
	format := "%s [network=%s, database=%s"
	args := []interface{}{
		Current,
		networkName,
		CurrentDatabase,
	}

	if commit != "" {
		format += ", commit=%s"
		args = append(args, commit)
	}
	format += "]\n"
	return fmt.Sprintf(format, args...)
}
