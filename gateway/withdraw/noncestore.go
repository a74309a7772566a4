// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package withdraw

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/custody-gateway/store"
)

var nonceKey = "withdrawal:nonce:%064x"

// NonceStore is the global consumed-nonce set. The nonce space is not
// partitioned per asset or per user, a nonce authorizes exactly one
// withdrawal system wide.
type NonceStore struct {
	db store.KeyValueReaderWriter
}

func NewNonceStore(db store.KeyValueReaderWriter) *NonceStore {
	return &NonceStore{
		db: db,
	}
}

// Consumed reports whether the nonce was already spent.
func (ns *NonceStore) Consumed(nonce *big.Int) (bool, error) {
	_, err := ns.db.GetByKey([]byte(fmt.Sprintf(nonceKey, nonce)))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Consume marks the nonce as spent.
func (ns *NonceStore) Consume(nonce *big.Int) error {
	return ns.db.SetByKey([]byte(fmt.Sprintf(nonceKey, nonce)), []byte{1})
}

// Release removes a consumed nonce again. Used only to roll back a
// withdrawal whose asset release failed after the nonce was written.
func (ns *NonceStore) Release(nonce *big.Int) error {
	return ns.db.DeleteByKey([]byte(fmt.Sprintf(nonceKey, nonce)))
}
