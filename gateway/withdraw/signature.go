// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package withdraw

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// Hash computes the canonical withdrawal message hash: the keccak256 of
// the tight packing of nonce, asset address (zero for native), recipient
// and amount or token id. Every field is encoded exactly like the
// authorizing oracle encodes it, uint256 values as 32 byte big endian
// words and addresses as 20 raw bytes.
func Hash(nonce *big.Int, token common.Address, recipient common.Address, value *big.Int) common.Hash {
	msg := make([]byte, 0, 104)
	msg = append(msg, math.PaddedBigBytes(nonce, 32)...)
	msg = append(msg, token.Bytes()...)
	msg = append(msg, recipient.Bytes()...)
	msg = append(msg, math.PaddedBigBytes(value, 32)...)
	return crypto.Keccak256Hash(msg)
}

// Recover returns the address that produced sig over the canonical hash.
// The hash is wrapped in the signed-message prefix before recovery, so
// authorizations produced with eth_sign style tooling verify directly.
// Both 27/28 and 0/1 recovery ids are accepted.
func Recover(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}

	s := make([]byte, crypto.SignatureLength)
	copy(s, sig)
	if s[crypto.RecoveryIDOffset] >= 27 {
		s[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), s)
	if err != nil {
		return common.Address{}, ErrInvalidSignature
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// SignAuthorization produces a withdrawal authorization with the given
// key. It exists for the external oracle process and for tooling, the
// gateway core never signs on its own behalf.
func SignAuthorization(nonce *big.Int, token common.Address, recipient common.Address, value *big.Int, key *ecdsa.PrivateKey) ([]byte, error) {
	hash := Hash(nonce, token, recipient, value)
	sig, err := crypto.Sign(accounts.TextHash(hash.Bytes()), key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
