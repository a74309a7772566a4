// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

type KeyValueReader interface {
	GetByKey(key []byte) ([]byte, error)
}

type KeyValueWriter interface {
	SetByKey(key []byte, value []byte) error
	DeleteByKey(key []byte) error
}

// KeyValueReaderWriter is the storage boundary for the gateway ledgers.
// DeleteByKey exists so a failed operation can roll back a key it wrote
// earlier in the same operation.
type KeyValueReaderWriter interface {
	KeyValueReader
	KeyValueWriter
}
