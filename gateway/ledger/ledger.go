// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

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
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotFound         = errors.New("deposit not found")
	ErrAlreadyCancelled = errors.New("deposit already cancelled")
)

// Ledger records accepted deposits and authorizes their cancellation.
// Deposits receive dense sequential ids and move through a single
// lifecycle transition, pending to cancelled.
type Ledger struct {
	access   *access.Control
	adapter  *asset.TransferAdapter
	deposits *DepositStore
	events   events.Sink
}

func NewLedger(ac *access.Control, adapter *asset.TransferAdapter, deposits *DepositStore, sink events.Sink) *Ledger {
	return &Ledger{
		access:   ac,
		adapter:  adapter,
		deposits: deposits,
		events:   sink,
	}
}

// DepositNative accepts a native currency deposit from owner.
func (l *Ledger) DepositNative(ctx context.Context, owner common.Address, amount *big.Int) (uint64, error) {
	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	id, err := l.record(ctx, owner, asset.NewNative(amount), true)
	if err != nil {
		return 0, err
	}

	l.events.Publish(events.NativeDeposited{DepositID: id, Owner: owner, Amount: amount})
	return id, nil
}

// DepositFungible accepts a fungible token deposit from owner. The owner
// must have pre-authorized custody to move the amount.
func (l *Ledger) DepositFungible(ctx context.Context, owner common.Address, token common.Address, amount *big.Int) (uint64, error) {
	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	id, err := l.record(ctx, owner, asset.NewFungible(token, amount), true)
	if err != nil {
		return 0, err
	}

	l.events.Publish(events.FungibleDeposited{DepositID: id, Owner: owner, Token: token, Amount: amount})
	return id, nil
}

// DepositNonFungible accepts a non-fungible token deposit from owner via
// the approve-then-transfer convention.
func (l *Ledger) DepositNonFungible(ctx context.Context, owner common.Address, token common.Address, tokenID *big.Int) (uint64, error) {
	if tokenID == nil || tokenID.Sign() < 0 {
		return 0, ErrInvalidToken
	}
	holder, err := l.adapter.OwnerOf(ctx, token, tokenID)
	if err != nil || holder != owner {
		return 0, ErrInvalidToken
	}

	id, err := l.record(ctx, owner, asset.NewNonFungible(token, tokenID), true)
	if err != nil {
		return 0, err
	}

	l.events.Publish(events.NonFungibleDeposited{DepositID: id, Owner: owner, Token: token, TokenID: tokenID})
	return id, nil
}

// NoteNonFungibleReceived records a non-fungible deposit that the token
// already moved into custody through its transfer notification. It
// produces an identical record and event to DepositNonFungible.
func (l *Ledger) NoteNonFungibleReceived(ctx context.Context, owner common.Address, token common.Address, tokenID *big.Int) (uint64, error) {
	if tokenID == nil || tokenID.Sign() < 0 {
		return 0, ErrInvalidToken
	}
	holder, err := l.adapter.OwnerOf(ctx, token, tokenID)
	if err != nil || holder != l.adapter.Custody() {
		return 0, ErrInvalidToken
	}

	id, err := l.record(ctx, owner, asset.NewNonFungible(token, tokenID), false)
	if err != nil {
		return 0, err
	}

	l.events.Publish(events.NonFungibleDeposited{DepositID: id, Owner: owner, Token: token, TokenID: tokenID})
	return id, nil
}

// record pulls the asset into custody when required and appends the
// pending record. A failed append pushes an already pulled asset back so
// the operation has no effect.
func (l *Ledger) record(ctx context.Context, owner common.Address, as asset.Asset, pull bool) (uint64, error) {
	if pull {
		if err := l.adapter.Pull(ctx, owner, as); err != nil {
			return 0, err
		}
	}

	id, err := l.deposits.Append(&Deposit{
		Kind:   as.Kind,
		Token:  as.Address,
		Value:  as.Value,
		Owner:  owner,
		Status: StatusPending,
	})
	if err != nil {
		if pull {
			if pushErr := l.adapter.Push(ctx, owner, as); pushErr != nil {
				log.Error().Err(pushErr).Str("owner", owner.String()).Msg("Failed returning asset after store failure")
			}
		}
		return 0, err
	}

	log.Info().
		Uint64("depositId", id).
		Str("kind", as.Kind.String()).
		Str("owner", owner.String()).
		Str("value", as.Value.String()).
		Msg("Deposit recorded")
	return id, nil
}

// CancelFailedDeposit refunds a deposit whose off-system crediting
// failed. Only the oracle may call it and each deposit can be cancelled
// exactly once.
func (l *Ledger) CancelFailedDeposit(ctx context.Context, caller common.Address, id uint64) error {
	if err := l.access.RequireOracle(caller); err != nil {
		return err
	}

	d, err := l.deposits.Deposit(id)
	if err != nil {
		return err
	}
	if d.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	d.Status = StatusCancelled
	if err := l.deposits.Store(d); err != nil {
		return err
	}

	if err := l.adapter.Push(ctx, d.Owner, d.Asset()); err != nil {
		d.Status = StatusPending
		if storeErr := l.deposits.Store(d); storeErr != nil {
			log.Error().Err(storeErr).Uint64("depositId", id).Msg("Failed reverting deposit status after refund failure")
		}
		return err
	}

	log.Info().
		Uint64("depositId", id).
		Str("owner", d.Owner.String()).
		Msg("Deposit cancelled and refunded")

	switch d.Kind {
	case asset.Native:
		l.events.Publish(events.NativeDepositCancelled{DepositID: id, Owner: d.Owner, Amount: d.Value})
	case asset.Fungible:
		l.events.Publish(events.FungibleDepositCancelled{DepositID: id, Owner: d.Owner, Token: d.Token, Amount: d.Value})
	case asset.NonFungible:
		l.events.Publish(events.NonFungibleDepositCancelled{DepositID: id, Owner: d.Owner, Token: d.Token, TokenID: d.Value})
	}
	return nil
}

// Deposit returns the full record for id.
func (l *Ledger) Deposit(id uint64) (*Deposit, error) {
	return l.deposits.Deposit(id)
}
