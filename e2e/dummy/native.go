// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package dummy

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// NativeLedger is an in-memory native currency ledger used by local
// setups and end to end tests.
type NativeLedger struct {
	mu       sync.Mutex
	balances map[common.Address]*big.Int
}

func NewNativeLedger() *NativeLedger {
	return &NativeLedger{
		balances: make(map[common.Address]*big.Int),
	}
}

func (l *NativeLedger) Mint(account common.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[account] = new(big.Int).Add(l.balance(account), amount)
}

func (l *NativeLedger) Transfer(ctx context.Context, from common.Address, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance(from)
	if balance.Cmp(amount) < 0 {
		return errors.Errorf("insufficient balance for %s", from.String())
	}

	l.balances[from] = new(big.Int).Sub(balance, amount)
	l.balances[to] = new(big.Int).Add(l.balance(to), amount)
	return nil
}

func (l *NativeLedger) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return new(big.Int).Set(l.balance(account)), nil
}

func (l *NativeLedger) balance(account common.Address) *big.Int {
	if b, ok := l.balances[account]; ok {
		return b
	}
	return big.NewInt(0)
}
