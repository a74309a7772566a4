// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/custody-gateway/gateway/withdraw"
)

var (
	signKey       string
	signNonce     string
	signToken     string
	signRecipient string
	signValue     string

	signWithdrawalCMD = &cobra.Command{
		Use:   "sign-withdrawal",
		Short: "Sign a withdrawal authorization",
		Long: "Computes the canonical withdrawal hash for the given nonce, asset, " +
			"recipient and amount and signs it with the provided oracle key. " +
			"Leave --token unset to authorize a native withdrawal.",
		RunE: signWithdrawal,
	}
)

func init() {
	signWithdrawalCMD.Flags().StringVar(&signKey, "key", "", "hex encoded oracle private key")
	signWithdrawalCMD.Flags().StringVar(&signNonce, "nonce", "", "withdrawal nonce")
	signWithdrawalCMD.Flags().StringVar(&signToken, "token", "", "token address, empty for native")
	signWithdrawalCMD.Flags().StringVar(&signRecipient, "recipient", "", "recipient address")
	signWithdrawalCMD.Flags().StringVar(&signValue, "value", "", "amount or token id")
	_ = signWithdrawalCMD.MarkFlagRequired("key")
	_ = signWithdrawalCMD.MarkFlagRequired("nonce")
	_ = signWithdrawalCMD.MarkFlagRequired("recipient")
	_ = signWithdrawalCMD.MarkFlagRequired("value")
}

func signWithdrawal(cmd *cobra.Command, args []string) error {
	key, err := crypto.HexToECDSA(signKey)
	if err != nil {
		return errors.Wrap(err, "invalid oracle key")
	}

	nonce, ok := new(big.Int).SetString(signNonce, 10)
	if !ok {
		return errors.New("invalid nonce")
	}
	value, ok := new(big.Int).SetString(signValue, 10)
	if !ok {
		return errors.New("invalid value")
	}

	token := common.Address{}
	if signToken != "" {
		if !common.IsHexAddress(signToken) {
			return errors.New("invalid token address")
		}
		token = common.HexToAddress(signToken)
	}
	if !common.IsHexAddress(signRecipient) {
		return errors.New("invalid recipient address")
	}
	recipient := common.HexToAddress(signRecipient)

	sig, err := withdraw.SignAuthorization(nonce, token, recipient, value, key)
	if err != nil {
		return errors.Wrap(err, "signing failed")
	}

	fmt.Printf("signer:    %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())
	fmt.Printf("hash:      %s\n", withdraw.Hash(nonce, token, recipient, value).Hex())
	fmt.Printf("signature: %s\n", hexutil.Encode(sig))
	return nil
}
