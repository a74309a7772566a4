// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package asset

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type Kind uint8

const (
	Native Kind = iota
	Fungible
	NonFungible
)

func (k Kind) String() string {
	switch k {
	case Native:
		return "native"
	case Fungible:
		return "fungible"
	case NonFungible:
		return "nonFungible"
	default:
		return "unknown"
	}
}

// NativeAddress is the sentinel asset address for the chain-native currency.
var NativeAddress = common.Address{}

// Asset is a tagged variant over the three custody asset kinds. Value
// holds an amount for Native and Fungible assets and a token id for
// NonFungible assets.
type Asset struct {
	Kind    Kind
	Address common.Address
	Value   *big.Int
}

func NewNative(amount *big.Int) Asset {
	return Asset{Kind: Native, Address: NativeAddress, Value: amount}
}

func NewFungible(token common.Address, amount *big.Int) Asset {
	return Asset{Kind: Fungible, Address: token, Value: amount}
}

func NewNonFungible(token common.Address, tokenID *big.Int) Asset {
	return Asset{Kind: NonFungible, Address: token, Value: tokenID}
}
