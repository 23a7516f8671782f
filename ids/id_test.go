// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/forkgate/utils/cb58"
	"github.com/ava-labs/forkgate/utils/hashing"
)

func TestIDPrefix(t *testing.T) {
	id := GenerateTestID()
	tests := []struct {
		name             string
		id               ID
		prefix           []uint64
		expectedPreimage []byte
	}{
		{
			name:             "empty prefix",
			id:               id,
			prefix:           []uint64{},
			expectedPreimage: id[:],
		},
		{
			name:   "1 prefix",
			id:     id,
			prefix: []uint64{1},
			expectedPreimage: slices.Concat(
				[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
				id[:],
			),
		},
		{
			name:   "multiple prefixes",
			id:     id,
			prefix: []uint64{1, 256},
			expectedPreimage: slices.Concat(
				[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
				[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00},
				id[:],
			),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expected := ID(hashing.ComputeHash256Array(test.expectedPreimage))
			require.Equal(t, expected, test.id.Prefix(test.prefix...))
		})
	}
}

func TestGenerateTestIDIsUnique(t *testing.T) {
	require := require.New(t)

	seen := make(map[ID]struct{})
	for i := 0; i < 64; i++ {
		id := GenerateTestID()
		require.NotEqual(Empty, id)
		require.NotContains(seen, id)
		seen[id] = struct{}{}
	}
}

func TestFromString(t *testing.T) {
	require := require.New(t)

	id := ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'}
	idStr := id.String()
	id2, err := FromString(idStr)
	require.NoError(err)
	require.Equal(id, id2)
}

func TestIDFromStringError(t *testing.T) {
	tests := []struct {
		in          string
		expectedErr error
	}{
		{
			in:          "",
			expectedErr: cb58.ErrBase58Decoding,
		},
		{
			in:          "foo",
			expectedErr: cb58.ErrMissingChecksum,
		},
		{
			in:          "foobar",
			expectedErr: cb58.ErrBadChecksum,
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := FromString(tt.in)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestIDMarshalJSON(t *testing.T) {
	tests := []struct {
		label string
		in    ID
		out   []byte
	}{
		{
			"ID{}",
			ID{},
			[]byte(`"11111111111111111111111111111111LpoYY"`),
		},
		{
			`ID("ava labs")`,
			ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'},
			[]byte(`"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7"`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			require := require.New(t)

			out, err := tt.in.MarshalJSON()
			require.NoError(err)
			require.Equal(tt.out, out)
		})
	}
}

func TestIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		label       string
		in          []byte
		out         ID
		expectedErr error
	}{
		{
			label: "null",
			in:    []byte("null"),
			out:   ID{},
		},
		{
			label: `ID("ava labs")`,
			in:    []byte(`"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7"`),
			out:   ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'},
		},
		{
			label:       "missing quotes",
			in:          []byte(`jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7`),
			out:         ID{},
			expectedErr: errMissingQuotes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			require := require.New(t)

			foo := ID{}
			err := foo.UnmarshalJSON(tt.in)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.out, foo)
		})
	}
}

func TestIDString(t *testing.T) {
	tests := []struct {
		label    string
		id       ID
		expected string
	}{
		{"ID{}", ID{}, "11111111111111111111111111111111LpoYY"},
		{"ID{24}", ID{24}, "Ba3mm8Ra8JYYebeZ9p7zw1ayorDbeD1euwxhgzSLsncKqGoNt"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.id.String())
		})
	}
}

func TestIDMapMarshalling(t *testing.T) {
	require := require.New(t)

	originalMap := map[ID]int{
		{'e', 'v', 'a', ' ', 'l', 'a', 'b', 's'}: 1,
		{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'}: 2,
	}
	mapJSON, err := json.Marshal(originalMap)
	require.NoError(err)

	var unmarshalledMap map[ID]int
	require.NoError(json.Unmarshal(mapJSON, &unmarshalledMap))

	require.Equal(originalMap, unmarshalledMap)
}

func TestIDCompare(t *testing.T) {
	tests := []struct {
		a        ID
		b        ID
		expected int
	}{
		{
			a:        ID{1},
			b:        ID{0},
			expected: 1,
		},
		{
			a:        ID{1},
			b:        ID{1},
			expected: 0,
		},
		{
			a:        ID{1, 0},
			b:        ID{1, 2},
			expected: -1,
		},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s_%s_%d", test.a, test.b, test.expected), func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.expected, test.a.Compare(test.b))
			require.Equal(-test.expected, test.b.Compare(test.a))
		})
	}
}
