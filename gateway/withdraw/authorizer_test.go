// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package withdraw_test

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ChainSafe/custody-gateway/e2e/dummy"
	"github.com/ChainSafe/custody-gateway/gateway/access"
	"github.com/ChainSafe/custody-gateway/gateway/asset"
	mock_asset "github.com/ChainSafe/custody-gateway/gateway/asset/mock"
	"github.com/ChainSafe/custody-gateway/gateway/events"
	"github.com/ChainSafe/custody-gateway/gateway/withdraw"
	"github.com/ChainSafe/custody-gateway/lvldb"
)

var (
	custodyAccount = common.HexToAddress("0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66")
	ownerAccount   = common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca")
	recipient      = common.HexToAddress("0x75dF75bcdCa8eA2360c562b4aaDBAF3dfAf5b19b")
	fungibleAddr   = common.HexToAddress("0x3cA3808176Ad060Ad80c4e08F30d85973Ef1d99e")
	nftAddr        = common.HexToAddress("0x05C5fA8Ee18DDa5A6a31E4a4A6dD5cdbbA3c1c5c")
)

type AuthorizerTestSuite struct {
	suite.Suite
	authorizer  *withdraw.Authorizer
	nonces      *withdraw.NonceStore
	oracleKey   *ecdsa.PrivateKey
	native      *dummy.NativeLedger
	fungible    *dummy.FungibleToken
	nonFungible *dummy.NonFungibleToken
	observer    *events.ChannelSink
}

func TestRunAuthorizerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizerTestSuite))
}

func (s *AuthorizerTestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(filepath.Join(s.T().TempDir(), "withdraw"))
	s.Nil(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.oracleKey, err = crypto.GenerateKey()
	s.Nil(err)

	ac := access.NewControl()
	s.Nil(ac.Initialize(ownerAccount, crypto.PubkeyToAddress(s.oracleKey.PublicKey)))

	s.native = dummy.NewNativeLedger()
	s.fungible = dummy.NewFungibleToken()
	s.nonFungible = dummy.NewNonFungibleToken(nftAddr)
	registry := dummy.NewTokenRegistry()
	registry.RegisterFungible(fungibleAddr, s.fungible)
	registry.RegisterNonFungible(nftAddr, s.nonFungible)

	s.nonces = withdraw.NewNonceStore(db)
	s.observer = events.NewChannelSink(16)
	s.authorizer = withdraw.NewAuthorizer(
		ac,
		asset.NewTransferAdapter(custodyAccount, s.native, registry),
		s.nonces,
		s.observer,
	)
}

func (s *AuthorizerTestSuite) sign(nonce int64, token common.Address, value int64) []byte {
	sig, err := withdraw.SignAuthorization(big.NewInt(nonce), token, recipient, big.NewInt(value), s.oracleKey)
	s.Nil(err)
	return sig
}

func (s *AuthorizerTestSuite) Test_WithdrawNative_ReleasesFunds() {
	s.native.Mint(custodyAccount, big.NewInt(500))

	err := s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), s.sign(1, common.Address{}, 100))

	s.Nil(err)
	balance, _ := s.native.BalanceOf(context.Background(), recipient)
	s.Equal(big.NewInt(100), balance)
	balance, _ = s.native.BalanceOf(context.Background(), custodyAccount)
	s.Equal(big.NewInt(400), balance)

	e := <-s.observer.Events()
	s.Equal(events.NativeWithdrawnSig, e.Sig())
}

func (s *AuthorizerTestSuite) Test_WithdrawFungible_ReleasesTokens() {
	s.fungible.Mint(custodyAccount, big.NewInt(500))

	err := s.authorizer.WithdrawFungible(context.Background(), big.NewInt(1), fungibleAddr, recipient, big.NewInt(100), s.sign(1, fungibleAddr, 100))

	s.Nil(err)
	balance, _ := s.fungible.BalanceOf(context.Background(), recipient)
	s.Equal(big.NewInt(100), balance)

	e := <-s.observer.Events()
	s.Equal(events.FungibleWithdrawnSig, e.Sig())
}

func (s *AuthorizerTestSuite) Test_WithdrawNonFungible_ReleasesToken() {
	s.nonFungible.Mint(custodyAccount, big.NewInt(7))

	err := s.authorizer.WithdrawNonFungible(context.Background(), big.NewInt(1), nftAddr, recipient, big.NewInt(7), s.sign(1, nftAddr, 7))

	s.Nil(err)
	holder, _ := s.nonFungible.OwnerOf(context.Background(), big.NewInt(7))
	s.Equal(recipient, holder)

	e := <-s.observer.Events()
	s.Equal(events.NonFungibleWithdrawnSig, e.Sig())
}

func (s *AuthorizerTestSuite) Test_Withdraw_NonOracleSigner() {
	s.native.Mint(custodyAccount, big.NewInt(500))
	strangerKey, err := crypto.GenerateKey()
	s.Nil(err)
	sig, err := withdraw.SignAuthorization(big.NewInt(1), common.Address{}, recipient, big.NewInt(100), strangerKey)
	s.Nil(err)

	err = s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), sig)

	s.ErrorIs(err, withdraw.ErrInvalidSignature)
	balance, _ := s.native.BalanceOf(context.Background(), custodyAccount)
	s.Equal(big.NewInt(500), balance)
}

func (s *AuthorizerTestSuite) Test_Withdraw_TamperedAmount() {
	s.native.Mint(custodyAccount, big.NewInt(500))

	err := s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(200), s.sign(1, common.Address{}, 100))

	s.ErrorIs(err, withdraw.ErrInvalidSignature)
}

func (s *AuthorizerTestSuite) Test_Withdraw_AuthorizationBoundToAsset() {
	// an authorization for a fungible withdrawal cannot release native funds
	s.native.Mint(custodyAccount, big.NewInt(500))

	err := s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), s.sign(1, fungibleAddr, 100))

	s.ErrorIs(err, withdraw.ErrInvalidSignature)
}

func (s *AuthorizerTestSuite) Test_Withdraw_ReplayRejected() {
	s.native.Mint(custodyAccount, big.NewInt(500))
	sig := s.sign(1, common.Address{}, 100)
	s.Nil(s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), sig))

	err := s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), sig)

	s.ErrorIs(err, withdraw.ErrNonceReused)
	balance, _ := s.native.BalanceOf(context.Background(), recipient)
	s.Equal(big.NewInt(100), balance)
}

func (s *AuthorizerTestSuite) Test_Withdraw_NonceSharedAcrossAssetKinds() {
	s.native.Mint(custodyAccount, big.NewInt(500))
	s.fungible.Mint(custodyAccount, big.NewInt(500))
	s.Nil(s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), s.sign(1, common.Address{}, 100)))

	err := s.authorizer.WithdrawFungible(context.Background(), big.NewInt(1), fungibleAddr, recipient, big.NewInt(100), s.sign(1, fungibleAddr, 100))

	s.ErrorIs(err, withdraw.ErrNonceReused)
}

func (s *AuthorizerTestSuite) Test_Withdraw_InsufficientCustody() {
	s.native.Mint(custodyAccount, big.NewInt(50))

	err := s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), s.sign(1, common.Address{}, 100))

	s.ErrorIs(err, withdraw.ErrInsufficientCustody)

	// nonce stays unspent after a rejected withdrawal
	consumed, err := s.nonces.Consumed(big.NewInt(1))
	s.Nil(err)
	s.False(consumed)
}

func (s *AuthorizerTestSuite) Test_Withdraw_InvalidNonceAndValue() {
	err := s.authorizer.WithdrawNative(context.Background(), nil, recipient, big.NewInt(100), []byte{})
	s.ErrorIs(err, withdraw.ErrInvalidSignature)

	err = s.authorizer.WithdrawNative(context.Background(), big.NewInt(-1), recipient, big.NewInt(100), []byte{})
	s.ErrorIs(err, withdraw.ErrInvalidSignature)

	err = s.authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, nil, []byte{})
	s.ErrorIs(err, withdraw.ErrInvalidSignature)
}

func (s *AuthorizerTestSuite) Test_Withdraw_NonceReleasedOnFailedRelease() {
	gomockController := gomock.NewController(s.T())
	native := mock_asset.NewMockNativeLedger(gomockController)
	native.EXPECT().BalanceOf(gomock.Any(), custodyAccount).Return(big.NewInt(500), nil)
	native.EXPECT().Transfer(gomock.Any(), custodyAccount, recipient, big.NewInt(100)).Return(errors.New("error"))

	ac := access.NewControl()
	s.Nil(ac.Initialize(ownerAccount, crypto.PubkeyToAddress(s.oracleKey.PublicKey)))
	authorizer := withdraw.NewAuthorizer(
		ac,
		asset.NewTransferAdapter(custodyAccount, native, dummy.NewTokenRegistry()),
		s.nonces,
		s.observer,
	)

	err := authorizer.WithdrawNative(context.Background(), big.NewInt(1), recipient, big.NewInt(100), s.sign(1, common.Address{}, 100))

	s.ErrorIs(err, asset.ErrTransferFailed)
	consumed, err := s.nonces.Consumed(big.NewInt(1))
	s.Nil(err)
	s.False(consumed)
}
