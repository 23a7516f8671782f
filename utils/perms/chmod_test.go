// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	dir := filepath.Join(root, "a", "b")
	require.NoError(os.MkdirAll(filepath.Join(dir, "c"), 0o777))
	file := filepath.Join(dir, "file")
	require.NoError(os.WriteFile(file, nil, ReadWrite))

	require.NoError(EnsureDir(dir, ReadWriteExecute))

	for _, path := range []string{dir, filepath.Join(dir, "c")} {
		info, err := os.Stat(path)
		require.NoError(err)
		require.Equal(os.FileMode(ReadWriteExecute), info.Mode().Perm())
	}

	info, err := os.Stat(file)
	require.NoError(err)
	require.Equal(os.FileMode(ReadWrite), info.Mode().Perm())
}

func TestChmodRMissingDir(t *testing.T) {
	require.NoError(t, ChmodR(filepath.Join(t.TempDir(), "missing"), true, ReadWriteExecute))
}
