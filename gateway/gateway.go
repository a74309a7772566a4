// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ChainSafe/custody-gateway/gateway/access"
	"github.com/ChainSafe/custody-gateway/gateway/asset"
	"github.com/ChainSafe/custody-gateway/gateway/events"
	"github.com/ChainSafe/custody-gateway/gateway/ledger"
	"github.com/ChainSafe/custody-gateway/gateway/withdraw"
	"github.com/ChainSafe/custody-gateway/metrics"
	"github.com/ChainSafe/custody-gateway/store"
)

// Gateway is the composed custody entry point. It owns one access
// control instance, one deposit ledger and one consumed-nonce set and
// serializes every state changing operation, so callers always observe
// fully applied operations and never partial writes.
type Gateway struct {
	mu sync.Mutex

	access     *access.Control
	adapter    *asset.TransferAdapter
	ledger     *ledger.Ledger
	authorizer *withdraw.Authorizer
	events     events.Sink
	metrics    *metrics.GatewayMetrics
}

// NewGateway wires a gateway over its collaborators. The metrics
// argument may be nil.
func NewGateway(
	custody common.Address,
	native asset.NativeLedger,
	tokens asset.TokenRegistry,
	db store.KeyValueReaderWriter,
	sink events.Sink,
	m *metrics.GatewayMetrics,
) *Gateway {
	ac := access.NewControl()
	adapter := asset.NewTransferAdapter(custody, native, tokens)
	return &Gateway{
		access:     ac,
		adapter:    adapter,
		ledger:     ledger.NewLedger(ac, adapter, ledger.NewDepositStore(db), sink),
		authorizer: withdraw.NewAuthorizer(ac, adapter, withdraw.NewNonceStore(db), sink),
		events:     sink,
		metrics:    m,
	}
}

// Initialize sets the owner and oracle roles once.
func (g *Gateway) Initialize(owner common.Address, oracle common.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.access.Initialize(owner, oracle)
}

// ChangeOracle rotates the oracle role. Owner only.
func (g *Gateway) ChangeOracle(caller common.Address, newOracle common.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	previous, err := g.access.ChangeOracle(caller, newOracle)
	if err != nil {
		return err
	}

	g.events.Publish(events.OracleChanged{Previous: previous, Current: newOracle})
	return nil
}

func (g *Gateway) DepositNative(ctx context.Context, caller common.Address, amount *big.Int) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.ledger.DepositNative(ctx, caller, amount)
	if err != nil {
		return 0, err
	}
	g.trackDeposit(ctx, asset.Native)
	return id, nil
}

func (g *Gateway) DepositFungible(ctx context.Context, caller common.Address, token common.Address, amount *big.Int) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.ledger.DepositFungible(ctx, caller, token, amount)
	if err != nil {
		return 0, err
	}
	g.trackDeposit(ctx, asset.Fungible)
	return id, nil
}

func (g *Gateway) DepositNonFungible(ctx context.Context, caller common.Address, token common.Address, tokenID *big.Int) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.ledger.DepositNonFungible(ctx, caller, token, tokenID)
	if err != nil {
		return 0, err
	}
	g.trackDeposit(ctx, asset.NonFungible)
	return id, nil
}

// OnNonFungibleReceived is the transfer notification entry point tokens
// invoke after moving a token directly into custody. The token
// identifies itself, operator is the account that triggered the
// transfer and from is the previous owner credited with the deposit.
func (g *Gateway) OnNonFungibleReceived(ctx context.Context, token common.Address, operator common.Address, from common.Address, tokenID *big.Int, data []byte) (uint64, error) {
	return g.noteReceived(ctx, token, from, tokenID)
}

// OnNonFungibleReceivedLegacy accepts the legacy notification convention
// that omits the operator. Both entry points produce identical records.
func (g *Gateway) OnNonFungibleReceivedLegacy(ctx context.Context, token common.Address, from common.Address, tokenID *big.Int, data []byte) (uint64, error) {
	return g.noteReceived(ctx, token, from, tokenID)
}

func (g *Gateway) noteReceived(ctx context.Context, token common.Address, from common.Address, tokenID *big.Int) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.ledger.NoteNonFungibleReceived(ctx, from, token, tokenID)
	if err != nil {
		return 0, err
	}
	g.trackDeposit(ctx, asset.NonFungible)
	return id, nil
}

func (g *Gateway) CancelFailedDeposit(ctx context.Context, caller common.Address, id uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ledger.CancelFailedDeposit(ctx, caller, id); err != nil {
		return err
	}
	if g.metrics != nil {
		g.metrics.TrackCancellation(ctx)
	}
	return nil
}

func (g *Gateway) GetDeposit(id uint64) (*ledger.Deposit, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ledger.Deposit(id)
}

func (g *Gateway) WithdrawNative(ctx context.Context, nonce *big.Int, recipient common.Address, amount *big.Int, sig []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorizer.WithdrawNative(ctx, nonce, recipient, amount, sig); err != nil {
		return err
	}
	g.trackWithdrawal(ctx, asset.Native)
	return nil
}

func (g *Gateway) WithdrawFungible(ctx context.Context, nonce *big.Int, token common.Address, recipient common.Address, amount *big.Int, sig []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorizer.WithdrawFungible(ctx, nonce, token, recipient, amount, sig); err != nil {
		return err
	}
	g.trackWithdrawal(ctx, asset.Fungible)
	return nil
}

func (g *Gateway) WithdrawNonFungible(ctx context.Context, nonce *big.Int, token common.Address, recipient common.Address, tokenID *big.Int, sig []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorizer.WithdrawNonFungible(ctx, nonce, token, recipient, tokenID, sig); err != nil {
		return err
	}
	g.trackWithdrawal(ctx, asset.NonFungible)
	return nil
}

func (g *Gateway) Owner() common.Address {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.access.Owner()
}

func (g *Gateway) Oracle() common.Address {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.access.Oracle()
}

func (g *Gateway) Custody() common.Address {
	return g.adapter.Custody()
}

func (g *Gateway) trackDeposit(ctx context.Context, kind asset.Kind) {
	if g.metrics != nil {
		g.metrics.TrackDeposit(ctx, kind.String())
	}
}

func (g *Gateway) trackWithdrawal(ctx context.Context, kind asset.Kind) {
	if g.metrics != nil {
		g.metrics.TrackWithdrawal(ctx, kind.String())
	}
}
