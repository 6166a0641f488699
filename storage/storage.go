// Package storage defines durable, keyed storage of escrow records and
// ledger balances. It carries no domain logic - just get/put/exists
// semantics with record existence as the uniqueness gate.
package storage

import (
	"context"
	"errors"

	"github.com/choreledger/choreledger-go/types"
)

// ErrRecordNotFound indicates a requested record is missing.
var ErrRecordNotFound = errors.New("record not found")

type (
	// Txn is the handle to one atomic transaction. Every read observes the
	// same consistent state and every write commits together with the rest
	// of the transaction, or not at all.
	Txn interface {
		// GetRecord returns the stored payload of the record or
		// ErrRecordNotFound.
		GetRecord(id types.RecordID) ([]byte, error)
		// PutRecord stores the payload at the record address, overwriting
		// any previous payload.
		PutRecord(id types.RecordID, payload []byte) error
		// RecordExists reports whether a record is stored at the address.
		RecordExists(id types.RecordID) (bool, error)
		// Balance returns the ledger balance of an external account, zero
		// for accounts never credited.
		Balance(account []byte) (uint64, error)
		// SetBalance stores the ledger balance of an external account.
		SetBalance(account []byte, balance uint64) error
	}

	// RecordStore persists records and balances. Update transactions
	// targeting the same store serialize; a failed fn leaves the store
	// untouched.
	RecordStore interface {
		Update(ctx context.Context, fn func(txn Txn) error) error
		View(ctx context.Context, fn func(txn Txn) error) error
		Close() error
	}
)
