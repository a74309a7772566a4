// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package e2e_test

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/custody-gateway/e2e/dummy"
	"github.com/ChainSafe/custody-gateway/gateway"
	"github.com/ChainSafe/custody-gateway/gateway/asset"
	"github.com/ChainSafe/custody-gateway/gateway/events"
	"github.com/ChainSafe/custody-gateway/gateway/ledger"
	"github.com/ChainSafe/custody-gateway/gateway/withdraw"
	"github.com/ChainSafe/custody-gateway/lvldb"
)

var (
	custody      = common.HexToAddress("0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66")
	admin        = common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca")
	alice        = common.HexToAddress("0x75dF75bcdCa8eA2360c562b4aaDBAF3dfAf5b19b")
	bob          = common.HexToAddress("0x0a4c3620AF8f3F182e203609f90f7133D018fD7C")
	fungibleAddr = common.HexToAddress("0x3cA3808176Ad060Ad80c4e08F30d85973Ef1d99e")
	nftAddr      = common.HexToAddress("0x05C5fA8Ee18DDa5A6a31E4a4A6dD5cdbbA3c1c5c")
)

type GatewayE2ETestSuite struct {
	suite.Suite
	gateway     *gateway.Gateway
	oracleKey   *ecdsa.PrivateKey
	oracle      common.Address
	native      *dummy.NativeLedger
	fungible    *dummy.FungibleToken
	nonFungible *dummy.NonFungibleToken
	observer    *events.ChannelSink
}

func TestRunGatewayE2ETestSuite(t *testing.T) {
	suite.Run(t, new(GatewayE2ETestSuite))
}

func (s *GatewayE2ETestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(filepath.Join(s.T().TempDir(), "e2e"))
	s.Nil(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.oracleKey, err = crypto.GenerateKey()
	s.Nil(err)
	s.oracle = crypto.PubkeyToAddress(s.oracleKey.PublicKey)

	s.native = dummy.NewNativeLedger()
	s.fungible = dummy.NewFungibleToken()
	s.nonFungible = dummy.NewNonFungibleToken(nftAddr)
	registry := dummy.NewTokenRegistry()
	registry.RegisterFungible(fungibleAddr, s.fungible)
	registry.RegisterNonFungible(nftAddr, s.nonFungible)

	s.observer = events.NewChannelSink(64)
	s.gateway = gateway.NewGateway(custody, s.native, registry, db, s.observer, nil)
	s.Nil(s.gateway.Initialize(admin, s.oracle))
	s.nonFungible.RegisterReceiver(custody, s.gateway)
}

func (s *GatewayE2ETestSuite) authorize(nonce int64, token common.Address, recipient common.Address, value *big.Int) []byte {
	sig, err := withdraw.SignAuthorization(big.NewInt(nonce), token, recipient, value, s.oracleKey)
	s.Nil(err)
	return sig
}

// Deposit native currency, have the off-system crediting succeed, then
// release an equivalent amount to another account.
func (s *GatewayE2ETestSuite) Test_NativeLifecycle() {
	s.native.Mint(alice, big.NewInt(1000))

	id, err := s.gateway.DepositNative(context.Background(), alice, big.NewInt(300))
	s.Nil(err)
	s.Equal(uint64(0), id)

	err = s.gateway.WithdrawNative(context.Background(), big.NewInt(1), bob, big.NewInt(300), s.authorize(1, common.Address{}, bob, big.NewInt(300)))
	s.Nil(err)

	balance, _ := s.native.BalanceOf(context.Background(), bob)
	s.Equal(big.NewInt(300), balance)
	balance, _ = s.native.BalanceOf(context.Background(), custody)
	s.Equal(big.NewInt(0), balance)
}

// Deposit fungible tokens, have the off-system crediting fail, cancel
// and verify the exact refund.
func (s *GatewayE2ETestSuite) Test_FungibleDepositCancellation() {
	s.fungible.Mint(alice, big.NewInt(1000))
	s.fungible.Approve(alice, custody, big.NewInt(1000))

	id, err := s.gateway.DepositFungible(context.Background(), alice, fungibleAddr, big.NewInt(400))
	s.Nil(err)

	balance, _ := s.fungible.BalanceOf(context.Background(), alice)
	s.Equal(big.NewInt(600), balance)

	s.Nil(s.gateway.CancelFailedDeposit(context.Background(), s.oracle, id))

	balance, _ = s.fungible.BalanceOf(context.Background(), alice)
	s.Equal(big.NewInt(1000), balance)
	balance, _ = s.fungible.BalanceOf(context.Background(), custody)
	s.Equal(big.NewInt(0), balance)

	d, err := s.gateway.GetDeposit(id)
	s.Nil(err)
	s.Equal(ledger.StatusCancelled, d.Status)

	s.ErrorIs(s.gateway.CancelFailedDeposit(context.Background(), s.oracle, id), ledger.ErrAlreadyCancelled)
}

// The approve-then-deposit path and the direct safe-transfer path must
// produce indistinguishable deposit records and events.
func (s *GatewayE2ETestSuite) Test_NonFungibleDepositPathEquivalence() {
	s.nonFungible.Mint(alice, big.NewInt(1))
	s.nonFungible.Mint(alice, big.NewInt(2))

	s.Nil(s.nonFungible.Approve(alice, custody, big.NewInt(1)))
	explicitID, err := s.gateway.DepositNonFungible(context.Background(), alice, nftAddr, big.NewInt(1))
	s.Nil(err)

	s.Nil(s.nonFungible.SafeTransferFrom(context.Background(), alice, alice, custody, big.NewInt(2), nil))
	notifiedID := explicitID + 1

	explicit, err := s.gateway.GetDeposit(explicitID)
	s.Nil(err)
	notified, err := s.gateway.GetDeposit(notifiedID)
	s.Nil(err)

	s.Equal(explicit.Kind, notified.Kind)
	s.Equal(explicit.Owner, notified.Owner)
	s.Equal(explicit.Token, notified.Token)
	s.Equal(explicit.Status, notified.Status)

	first := <-s.observer.Events()
	second := <-s.observer.Events()
	s.Equal(events.NonFungibleDepositedSig, first.Sig())
	s.Equal(events.NonFungibleDepositedSig, second.Sig())

	holder, _ := s.nonFungible.OwnerOf(context.Background(), big.NewInt(1))
	s.Equal(custody, holder)
	holder, _ = s.nonFungible.OwnerOf(context.Background(), big.NewInt(2))
	s.Equal(custody, holder)
}

// Withdraw a non-fungible token out of custody and verify a replayed
// authorization cannot pull it back after a fresh deposit.
func (s *GatewayE2ETestSuite) Test_NonFungibleWithdrawAndReplay() {
	s.nonFungible.Mint(custody, big.NewInt(5))

	sig := s.authorize(1, nftAddr, alice, big.NewInt(5))
	s.Nil(s.gateway.WithdrawNonFungible(context.Background(), big.NewInt(1), nftAddr, alice, big.NewInt(5), sig))

	holder, _ := s.nonFungible.OwnerOf(context.Background(), big.NewInt(5))
	s.Equal(alice, holder)

	// token returns to custody, old authorization stays dead
	s.Nil(s.nonFungible.SafeTransferFrom(context.Background(), alice, alice, custody, big.NewInt(5), nil))
	err := s.gateway.WithdrawNonFungible(context.Background(), big.NewInt(1), nftAddr, alice, big.NewInt(5), sig)
	s.ErrorIs(err, withdraw.ErrNonceReused)
}

// Custody must never release more than it holds, deposits from other
// users included.
func (s *GatewayE2ETestSuite) Test_WithdrawalLimitedToCustodyHoldings() {
	s.native.Mint(alice, big.NewInt(100))
	_, err := s.gateway.DepositNative(context.Background(), alice, big.NewInt(100))
	s.Nil(err)

	err = s.gateway.WithdrawNative(context.Background(), big.NewInt(1), bob, big.NewInt(150), s.authorize(1, common.Address{}, bob, big.NewInt(150)))
	s.ErrorIs(err, withdraw.ErrInsufficientCustody)

	s.Nil(s.gateway.WithdrawNative(context.Background(), big.NewInt(2), bob, big.NewInt(100), s.authorize(2, common.Address{}, bob, big.NewInt(100))))
}

// Deposit ids stay dense across mixed asset kinds and survive restarts
// of the gateway over the same database.
func (s *GatewayE2ETestSuite) Test_LedgerSurvivesRestart() {
	dbPath := filepath.Join(s.T().TempDir(), "restart")
	db, err := lvldb.NewLvlDB(dbPath)
	s.Nil(err)

	registry := dummy.NewTokenRegistry()
	registry.RegisterFungible(fungibleAddr, s.fungible)
	g := gateway.NewGateway(custody, s.native, registry, db, events.NewLogSink(), nil)
	s.Nil(g.Initialize(admin, s.oracle))

	s.native.Mint(alice, big.NewInt(1000))
	s.fungible.Mint(alice, big.NewInt(1000))
	s.fungible.Approve(alice, custody, big.NewInt(1000))

	first, err := g.DepositNative(context.Background(), alice, big.NewInt(10))
	s.Nil(err)
	second, err := g.DepositFungible(context.Background(), alice, fungibleAddr, big.NewInt(20))
	s.Nil(err)
	s.Equal(uint64(0), first)
	s.Equal(uint64(1), second)
	s.Nil(db.Close())

	db, err = lvldb.NewLvlDB(dbPath)
	s.Nil(err)
	s.T().Cleanup(func() { _ = db.Close() })

	restarted := gateway.NewGateway(custody, s.native, registry, db, events.NewLogSink(), nil)
	s.Nil(restarted.Initialize(admin, s.oracle))

	d, err := restarted.GetDeposit(first)
	s.Nil(err)
	s.Equal(asset.Native, d.Kind)

	third, err := restarted.DepositNative(context.Background(), alice, big.NewInt(5))
	s.Nil(err)
	s.Equal(uint64(2), third)
}
