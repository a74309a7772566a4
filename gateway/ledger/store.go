// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/custody-gateway/gateway/asset"
	"github.com/ChainSafe/custody-gateway/store"
)

type DepositStatus uint8

// Status wire values match the ones external observers already consume.
const (
	StatusPending   DepositStatus = 1
	StatusCancelled DepositStatus = 2
)

var (
	depositKey = "deposit:%d"
	countKey   = "deposit:count"
)

// Deposit is one accepted custody deposit.
type Deposit struct {
	ID     uint64         `json:"id"`
	Kind   asset.Kind     `json:"kind"`
	Token  common.Address `json:"token"`
	Value  *big.Int       `json:"value"`
	Owner  common.Address `json:"owner"`
	Status DepositStatus  `json:"status"`
}

// Asset returns the deposited asset as a transfer adapter variant.
func (d *Deposit) Asset() asset.Asset {
	return asset.Asset{Kind: d.Kind, Address: d.Token, Value: d.Value}
}

type DepositStore struct {
	db store.KeyValueReaderWriter
}

func NewDepositStore(db store.KeyValueReaderWriter) *DepositStore {
	return &DepositStore{
		db: db,
	}
}

// Count returns the number of deposits recorded so far.
func (ds *DepositStore) Count() (uint64, error) {
	v, err := ds.db.GetByKey([]byte(countKey))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return strconv.ParseUint(string(v), 10, 64)
}

// Append assigns the next sequential id to the deposit and stores it.
// A failed count update removes the record again so ids stay dense.
func (ds *DepositStore) Append(d *Deposit) (uint64, error) {
	count, err := ds.Count()
	if err != nil {
		return 0, err
	}

	d.ID = count
	key := []byte(fmt.Sprintf(depositKey, d.ID))
	value, err := json.Marshal(d)
	if err != nil {
		return 0, err
	}

	if err := ds.db.SetByKey(key, value); err != nil {
		return 0, err
	}
	if err := ds.db.SetByKey([]byte(countKey), []byte(strconv.FormatUint(count+1, 10))); err != nil {
		_ = ds.db.DeleteByKey(key)
		return 0, err
	}

	return d.ID, nil
}

// Deposit fetches a deposit by id.
func (ds *DepositStore) Deposit(id uint64) (*Deposit, error) {
	v, err := ds.db.GetByKey([]byte(fmt.Sprintf(depositKey, id)))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	d := &Deposit{}
	if err := json.Unmarshal(v, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Store overwrites an existing deposit record.
func (ds *DepositStore) Store(d *Deposit) error {
	value, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return ds.db.SetByKey([]byte(fmt.Sprintf(depositKey, d.ID)), value)
}
