// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package dummy

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ChainSafe/custody-gateway/gateway/asset"
)

// FungibleToken is an in-memory fungible token with the
// approve-then-transfer convention.
type FungibleToken struct {
	mu         sync.Mutex
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

func NewFungibleToken() *FungibleToken {
	return &FungibleToken{
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (t *FungibleToken) Mint(account common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.balances[account] = new(big.Int).Add(t.balance(account), amount)
}

func (t *FungibleToken) Approve(owner common.Address, spender common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.allowances[owner]; !ok {
		t.allowances[owner] = make(map[common.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (t *FungibleToken) TransferFrom(ctx context.Context, spender common.Address, from common.Address, to common.Address, amount *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if spender != from {
		allowance := t.allowance(from, spender)
		if allowance.Cmp(amount) < 0 {
			return errors.Errorf("allowance of %s for %s too low", from.String(), spender.String())
		}
		t.allowances[from][spender] = new(big.Int).Sub(allowance, amount)
	}

	balance := t.balance(from)
	if balance.Cmp(amount) < 0 {
		return errors.Errorf("insufficient balance for %s", from.String())
	}

	t.balances[from] = new(big.Int).Sub(balance, amount)
	t.balances[to] = new(big.Int).Add(t.balance(to), amount)
	return nil
}

func (t *FungibleToken) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return new(big.Int).Set(t.balance(account)), nil
}

func (t *FungibleToken) balance(account common.Address) *big.Int {
	if b, ok := t.balances[account]; ok {
		return b
	}
	return big.NewInt(0)
}

func (t *FungibleToken) allowance(owner common.Address, spender common.Address) *big.Int {
	if m, ok := t.allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return a
		}
	}
	return big.NewInt(0)
}

// Receiver is implemented by custody accounts that accept direct
// non-fungible transfer notifications.
type Receiver interface {
	OnNonFungibleReceived(ctx context.Context, token common.Address, operator common.Address, from common.Address, tokenID *big.Int, data []byte) (uint64, error)
	OnNonFungibleReceivedLegacy(ctx context.Context, token common.Address, from common.Address, tokenID *big.Int, data []byte) (uint64, error)
}

// NonFungibleToken is an in-memory non-fungible token. Tokens moved with
// SafeTransferFrom notify the receiver registered for the destination,
// either through the current or the legacy notification convention.
type NonFungibleToken struct {
	mu        sync.Mutex
	address   common.Address
	legacy    bool
	owners    map[string]common.Address
	approved  map[string]common.Address
	receivers map[common.Address]Receiver
}

func NewNonFungibleToken(address common.Address) *NonFungibleToken {
	return &NonFungibleToken{
		address:   address,
		owners:    make(map[string]common.Address),
		approved:  make(map[string]common.Address),
		receivers: make(map[common.Address]Receiver),
	}
}

// NewLegacyNonFungibleToken returns a token that notifies receivers
// through the legacy convention.
func NewLegacyNonFungibleToken(address common.Address) *NonFungibleToken {
	t := NewNonFungibleToken(address)
	t.legacy = true
	return t
}

func (t *NonFungibleToken) RegisterReceiver(account common.Address, r Receiver) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.receivers[account] = r
}

func (t *NonFungibleToken) Mint(owner common.Address, tokenID *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.owners[tokenID.String()] = owner
}

func (t *NonFungibleToken) Approve(owner common.Address, operator common.Address, tokenID *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.owners[tokenID.String()] != owner {
		return errors.Errorf("token %s not owned by %s", tokenID.String(), owner.String())
	}
	t.approved[tokenID.String()] = operator
	return nil
}

func (t *NonFungibleToken) TransferFrom(ctx context.Context, operator common.Address, from common.Address, to common.Address, tokenID *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.transfer(operator, from, to, tokenID)
}

// SafeTransferFrom moves the token and notifies the destination if a
// receiver is registered for it.
func (t *NonFungibleToken) SafeTransferFrom(ctx context.Context, operator common.Address, from common.Address, to common.Address, tokenID *big.Int, data []byte) error {
	t.mu.Lock()
	if err := t.transfer(operator, from, to, tokenID); err != nil {
		t.mu.Unlock()
		return err
	}
	receiver := t.receivers[to]
	t.mu.Unlock()

	if receiver == nil {
		return nil
	}

	var err error
	if t.legacy {
		_, err = receiver.OnNonFungibleReceivedLegacy(ctx, t.address, from, tokenID, data)
	} else {
		_, err = receiver.OnNonFungibleReceived(ctx, t.address, operator, from, tokenID, data)
	}
	if err != nil {
		// receiver rejected the token, undo the transfer
		t.mu.Lock()
		_ = t.transfer(to, to, from, tokenID)
		t.mu.Unlock()
		return err
	}
	return nil
}

func (t *NonFungibleToken) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	owner, ok := t.owners[tokenID.String()]
	if !ok {
		return common.Address{}, errors.Errorf("token %s does not exist", tokenID.String())
	}
	return owner, nil
}

func (t *NonFungibleToken) transfer(operator common.Address, from common.Address, to common.Address, tokenID *big.Int) error {
	key := tokenID.String()
	owner, ok := t.owners[key]
	if !ok {
		return errors.Errorf("token %s does not exist", key)
	}
	if owner != from {
		return errors.Errorf("token %s not owned by %s", key, from.String())
	}
	if operator != owner && t.approved[key] != operator {
		return errors.Errorf("%s not approved for token %s", operator.String(), key)
	}

	t.owners[key] = to
	delete(t.approved, key)
	return nil
}

// TokenRegistry resolves token addresses for the transfer adapter.
type TokenRegistry struct {
	mu          sync.Mutex
	fungible    map[common.Address]asset.FungibleToken
	nonFungible map[common.Address]asset.NonFungibleToken
}

func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{
		fungible:    make(map[common.Address]asset.FungibleToken),
		nonFungible: make(map[common.Address]asset.NonFungibleToken),
	}
}

func (r *TokenRegistry) RegisterFungible(address common.Address, token asset.FungibleToken) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fungible[address] = token
}

func (r *TokenRegistry) RegisterNonFungible(address common.Address, token asset.NonFungibleToken) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nonFungible[address] = token
}

func (r *TokenRegistry) Fungible(address common.Address) (asset.FungibleToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.fungible[address]
	if !ok {
		return nil, errors.Errorf("unknown fungible token %s", address.String())
	}
	return token, nil
}

func (r *TokenRegistry) NonFungible(address common.Address) (asset.NonFungibleToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.nonFungible[address]
	if !ok {
		return nil, errors.Errorf("unknown non-fungible token %s", address.String())
	}
	return token, nil
}
