// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -package=${GOPACKAGE}mock -source=block.go -destination=${GOPACKAGE}mock/block.go -mock_names=Tip=Tip,Block=Block
