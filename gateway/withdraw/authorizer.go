// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package withdraw

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/custody-gateway/gateway/access"
	"github.com/ChainSafe/custody-gateway/gateway/asset"
	"github.com/ChainSafe/custody-gateway/gateway/events"
)

var (
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrNonceReused         = errors.New("nonce already consumed")
	ErrInsufficientCustody = errors.New("insufficient custody")
)

// Authorizer verifies oracle-issued withdrawal authorizations and
// releases custody. The recovered signer is treated as untrusted input
// and compared against the oracle role on every call, so rotating the
// oracle immediately invalidates authorizations signed by the old one.
type Authorizer struct {
	access  *access.Control
	adapter *asset.TransferAdapter
	nonces  *NonceStore
	events  events.Sink
}

func NewAuthorizer(ac *access.Control, adapter *asset.TransferAdapter, nonces *NonceStore, sink events.Sink) *Authorizer {
	return &Authorizer{
		access:  ac,
		adapter: adapter,
		nonces:  nonces,
		events:  sink,
	}
}

// WithdrawNative releases native currency to the recipient.
func (a *Authorizer) WithdrawNative(ctx context.Context, nonce *big.Int, recipient common.Address, amount *big.Int, sig []byte) error {
	if err := a.withdraw(ctx, nonce, asset.NewNative(amount), recipient, sig); err != nil {
		return err
	}

	a.events.Publish(events.NativeWithdrawn{Owner: recipient, Amount: amount})
	return nil
}

// WithdrawFungible releases fungible tokens to the recipient.
func (a *Authorizer) WithdrawFungible(ctx context.Context, nonce *big.Int, token common.Address, recipient common.Address, amount *big.Int, sig []byte) error {
	if err := a.withdraw(ctx, nonce, asset.NewFungible(token, amount), recipient, sig); err != nil {
		return err
	}

	a.events.Publish(events.FungibleWithdrawn{Owner: recipient, Token: token, Amount: amount})
	return nil
}

// WithdrawNonFungible releases a non-fungible token to the recipient.
func (a *Authorizer) WithdrawNonFungible(ctx context.Context, nonce *big.Int, token common.Address, recipient common.Address, tokenID *big.Int, sig []byte) error {
	if err := a.withdraw(ctx, nonce, asset.NewNonFungible(token, tokenID), recipient, sig); err != nil {
		return err
	}

	a.events.Publish(events.NonFungibleWithdrawn{Owner: recipient, Token: token, TokenID: tokenID})
	return nil
}

// withdraw runs the shared authorization protocol. The nonce is written
// before the asset leaves custody and removed again if the release
// fails, so a nonce is never burned without the corresponding transfer.
func (a *Authorizer) withdraw(ctx context.Context, nonce *big.Int, as asset.Asset, recipient common.Address, sig []byte) error {
	if nonce == nil || nonce.Sign() < 0 || as.Value == nil || as.Value.Sign() < 0 {
		return ErrInvalidSignature
	}

	signer, err := Recover(Hash(nonce, as.Address, recipient, as.Value), sig)
	if err != nil {
		return err
	}
	if err := a.access.RequireOracle(signer); err != nil {
		return ErrInvalidSignature
	}

	consumed, err := a.nonces.Consumed(nonce)
	if err != nil {
		return err
	}
	if consumed {
		return ErrNonceReused
	}

	held, err := a.adapter.Held(ctx, as)
	if err != nil {
		return err
	}
	if !held {
		return ErrInsufficientCustody
	}

	if err := a.nonces.Consume(nonce); err != nil {
		return err
	}
	if err := a.adapter.Push(ctx, recipient, as); err != nil {
		if releaseErr := a.nonces.Release(nonce); releaseErr != nil {
			log.Error().Err(releaseErr).Str("nonce", nonce.String()).Msg("Failed releasing nonce after transfer failure")
		}
		return err
	}

	log.Info().
		Str("nonce", nonce.String()).
		Str("kind", as.Kind.String()).
		Str("recipient", recipient.String()).
		Str("value", as.Value.String()).
		Msg("Withdrawal released")
	return nil
}
