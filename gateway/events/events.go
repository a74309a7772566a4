// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	NativeDepositedSig             EventSig = "NativeDeposited(uint256,address,uint256)"
	FungibleDepositedSig           EventSig = "FungibleDeposited(uint256,address,address,uint256)"
	NonFungibleDepositedSig        EventSig = "NonFungibleDeposited(uint256,address,address,uint256)"
	NativeDepositCancelledSig      EventSig = "NativeDepositCancelled(uint256,address,uint256)"
	FungibleDepositCancelledSig    EventSig = "FungibleDepositCancelled(uint256,address,address,uint256)"
	NonFungibleDepositCancelledSig EventSig = "NonFungibleDepositCancelled(uint256,address,address,uint256)"
	NativeWithdrawnSig             EventSig = "NativeWithdrawn(address,uint256)"
	FungibleWithdrawnSig           EventSig = "FungibleWithdrawn(address,address,uint256)"
	NonFungibleWithdrawnSig        EventSig = "NonFungibleWithdrawn(address,address,uint256)"
	OracleChangedSig               EventSig = "OracleChanged(address,address)"
)

// Event is a boundary event consumed by the off-system counterpart.
type Event interface {
	Sig() EventSig
}

type NativeDeposited struct {
	DepositID uint64
	Owner     common.Address
	Amount    *big.Int
}

func (e NativeDeposited) Sig() EventSig { return NativeDepositedSig }

type FungibleDeposited struct {
	DepositID uint64
	Owner     common.Address
	Token     common.Address
	Amount    *big.Int
}

func (e FungibleDeposited) Sig() EventSig { return FungibleDepositedSig }

type NonFungibleDeposited struct {
	DepositID uint64
	Owner     common.Address
	Token     common.Address
	TokenID   *big.Int
}

func (e NonFungibleDeposited) Sig() EventSig { return NonFungibleDepositedSig }

type NativeDepositCancelled struct {
	DepositID uint64
	Owner     common.Address
	Amount    *big.Int
}

func (e NativeDepositCancelled) Sig() EventSig { return NativeDepositCancelledSig }

type FungibleDepositCancelled struct {
	DepositID uint64
	Owner     common.Address
	Token     common.Address
	Amount    *big.Int
}

func (e FungibleDepositCancelled) Sig() EventSig { return FungibleDepositCancelledSig }

type NonFungibleDepositCancelled struct {
	DepositID uint64
	Owner     common.Address
	Token     common.Address
	TokenID   *big.Int
}

func (e NonFungibleDepositCancelled) Sig() EventSig { return NonFungibleDepositCancelledSig }

type NativeWithdrawn struct {
	Owner  common.Address
	Amount *big.Int
}

func (e NativeWithdrawn) Sig() EventSig { return NativeWithdrawnSig }

type FungibleWithdrawn struct {
	Owner  common.Address
	Token  common.Address
	Amount *big.Int
}

func (e FungibleWithdrawn) Sig() EventSig { return FungibleWithdrawnSig }

type NonFungibleWithdrawn struct {
	Owner   common.Address
	Token   common.Address
	TokenID *big.Int
}

func (e NonFungibleWithdrawn) Sig() EventSig { return NonFungibleWithdrawnSig }

type OracleChanged struct {
	Previous common.Address
	Current  common.Address
}

func (e OracleChanged) Sig() EventSig { return OracleChangedSig }
