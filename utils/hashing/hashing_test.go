// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumIsHashSuffix(t *testing.T) {
	require := require.New(t)

	input := []byte("exodus")
	hash := ComputeHash256Array(input)
	require.Equal(hash[HashLen-4:], Checksum(input, 4))
	require.Len(Checksum(input, HashLen), HashLen)
}

func TestToHash256(t *testing.T) {
	require := require.New(t)

	_, err := ToHash256(make([]byte, HashLen-1))
	require.ErrorIs(err, ErrInvalidHashLen)

	expected := ComputeHash256Array([]byte("leviticus"))
	hash, err := ToHash256(expected[:])
	require.NoError(err)
	require.Equal(expected, hash)
}
