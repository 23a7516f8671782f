// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ChmodR sets the permissions of [dir], and everything below it, to [perm]. If
// [dirOnly] is true, files are left untouched. A missing [dir] is ignored.
func ChmodR(dir string, dirOnly bool, perm os.FileMode) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil || (dirOnly && !d.IsDir()) {
			return err
		}
		return os.Chmod(name, perm)
	})
}

// EnsureDir creates [dir], including any missing parents, and restricts the
// permissions of every directory below it to [perm].
func EnsureDir(dir string, perm os.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return err
	}
	return ChmodR(dir, true, perm)
}
