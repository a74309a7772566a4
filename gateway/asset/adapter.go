// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package asset

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrTransferFailed = errors.New("transfer failed")

// NativeLedger moves the chain-native currency between accounts.
type NativeLedger interface {
	Transfer(ctx context.Context, from common.Address, to common.Address, amount *big.Int) error
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
}

// FungibleToken is the boundary to an external fungible token service.
// TransferFrom follows the approve-then-transfer convention: when the
// spender differs from the holder the token enforces a pre-authorized
// allowance.
type FungibleToken interface {
	TransferFrom(ctx context.Context, spender common.Address, from common.Address, to common.Address, amount *big.Int) error
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
}

// NonFungibleToken is the boundary to an external non-fungible token service.
type NonFungibleToken interface {
	TransferFrom(ctx context.Context, operator common.Address, from common.Address, to common.Address, tokenID *big.Int) error
	OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error)
}

// TokenRegistry resolves asset addresses to their token services.
type TokenRegistry interface {
	Fungible(token common.Address) (FungibleToken, error)
	NonFungible(token common.Address) (NonFungibleToken, error)
}

// TransferAdapter moves assets of every kind into and out of custody.
// All failures surface as ErrTransferFailed so enclosing operations can
// abort atomically without inspecting token specific errors.
type TransferAdapter struct {
	custody common.Address
	native  NativeLedger
	tokens  TokenRegistry
}

func NewTransferAdapter(custody common.Address, native NativeLedger, tokens TokenRegistry) *TransferAdapter {
	return &TransferAdapter{
		custody: custody,
		native:  native,
		tokens:  tokens,
	}
}

func (a *TransferAdapter) Custody() common.Address {
	return a.custody
}

// Pull moves the asset from the depositor into custody.
func (a *TransferAdapter) Pull(ctx context.Context, from common.Address, as Asset) error {
	log.Debug().
		Str("kind", as.Kind.String()).
		Str("from", from.String()).
		Str("value", as.Value.String()).
		Msg("Pulling asset into custody")

	switch as.Kind {
	case Native:
		if err := a.native.Transfer(ctx, from, a.custody, as.Value); err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
	case Fungible:
		token, err := a.tokens.Fungible(as.Address)
		if err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
		if err := token.TransferFrom(ctx, a.custody, from, a.custody, as.Value); err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
	case NonFungible:
		token, err := a.tokens.NonFungible(as.Address)
		if err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
		if err := token.TransferFrom(ctx, a.custody, from, a.custody, as.Value); err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
	}
	return nil
}

// Push moves the asset out of custody to the recipient.
func (a *TransferAdapter) Push(ctx context.Context, to common.Address, as Asset) error {
	log.Debug().
		Str("kind", as.Kind.String()).
		Str("to", to.String()).
		Str("value", as.Value.String()).
		Msg("Pushing asset out of custody")

	switch as.Kind {
	case Native:
		if err := a.native.Transfer(ctx, a.custody, to, as.Value); err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
	case Fungible:
		token, err := a.tokens.Fungible(as.Address)
		if err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
		if err := token.TransferFrom(ctx, a.custody, a.custody, to, as.Value); err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
	case NonFungible:
		token, err := a.tokens.NonFungible(as.Address)
		if err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
		if err := token.TransferFrom(ctx, a.custody, a.custody, to, as.Value); err != nil {
			return errors.Wrap(ErrTransferFailed, err.Error())
		}
	}
	return nil
}

// Held reports whether custody currently holds the asset in full.
func (a *TransferAdapter) Held(ctx context.Context, as Asset) (bool, error) {
	switch as.Kind {
	case Native:
		balance, err := a.native.BalanceOf(ctx, a.custody)
		if err != nil {
			return false, err
		}
		return balance.Cmp(as.Value) >= 0, nil
	case Fungible:
		token, err := a.tokens.Fungible(as.Address)
		if err != nil {
			return false, err
		}
		balance, err := token.BalanceOf(ctx, a.custody)
		if err != nil {
			return false, err
		}
		return balance.Cmp(as.Value) >= 0, nil
	case NonFungible:
		owner, err := a.OwnerOf(ctx, as.Address, as.Value)
		if err != nil {
			return false, err
		}
		return owner == a.custody, nil
	}
	return false, nil
}

// OwnerOf resolves the current owner of a non-fungible token.
func (a *TransferAdapter) OwnerOf(ctx context.Context, token common.Address, tokenID *big.Int) (common.Address, error) {
	t, err := a.tokens.NonFungible(token)
	if err != nil {
		return common.Address{}, err
	}
	return t.OwnerOf(ctx, tokenID)
}
