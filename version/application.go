// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"cmp"
	"fmt"
)

type Application struct {
	Name  string `json:"name"  yaml:"name"`
	Major int    `json:"major" yaml:"major"`
	Minor int    `json:"minor" yaml:"minor"`
	Patch int    `json:"patch" yaml:"patch"`
}

// String returns the client name followed by the semantic version, e.g.
// "forkgate/1.0.0".
func (a *Application) String() string {
	return fmt.Sprintf(
		"%s/%d.%d.%d",
		a.Name,
		a.Major,
		a.Minor,
		a.Patch,
	)
}

// Compare returns a positive number if a > o, 0 if a == o, or a negative
// number if a < o. The client name is ignored.
func (a *Application) Compare(o *Application) int {
	if c := cmp.Compare(a.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(a.Patch, o.Patch)
}
