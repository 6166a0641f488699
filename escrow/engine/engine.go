// Package engine executes operation orders against the record store. Every
// order is one atomic transaction: authorization, lifecycle transition,
// accounting and value transfer commit together or not at all. The engine
// performs no logging and no retries - a rejected order has no effect and
// resubmission policy belongs to the caller.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/choreledger/choreledger-go/cbor"
	"github.com/choreledger/choreledger-go/escrow"
	"github.com/choreledger/choreledger-go/ledger"
	"github.com/choreledger/choreledger-go/storage"
	"github.com/choreledger/choreledger-go/types"
)

type Engine struct {
	networkID types.NetworkID
	store     storage.RecordStore
	now       func() int64
}

// New creates an engine bound to a network and a record store.
func New(networkID types.NetworkID, store storage.RecordStore) *Engine {
	return &Engine{
		networkID: networkID,
		store:     store,
		now:       func() int64 { return time.Now().Unix() },
	}
}

// Execute applies a single operation order. On any precondition failure the
// store is left untouched.
func (e *Engine) Execute(ctx context.Context, order *types.OperationOrder) error {
	if order == nil {
		return types.ErrOperationOrderIsNil
	}
	if order.NetworkID != e.networkID {
		return fmt.Errorf("invalid network %d (expected %d)", order.NetworkID, e.networkID)
	}
	sigBytes, err := order.AuthProofSigBytes()
	if err != nil {
		return err
	}
	return e.store.Update(ctx, func(txn storage.Txn) error {
		switch order.Type {
		case escrow.OperationTypeInitWallet:
			return e.executeInitWallet(txn, order, sigBytes)
		case escrow.OperationTypeCreateChore:
			return e.executeCreateChore(txn, order, sigBytes)
		case escrow.OperationTypeSubmitCompletion:
			return e.executeSubmitCompletion(txn, order, sigBytes)
		case escrow.OperationTypeRateAndPay:
			return e.executeRateAndPay(txn, order, sigBytes)
		case escrow.OperationTypeWithdraw:
			return e.executeWithdraw(txn, order, sigBytes)
		case escrow.OperationTypeCancelChore:
			return e.executeCancelChore(txn, order, sigBytes)
		default:
			return fmt.Errorf("unknown operation type %d", order.Type)
		}
	})
}

// Deposit credits an external account's ledger balance. This is the funding
// source boundary: how value enters is the collaborator's concern.
func (e *Engine) Deposit(ctx context.Context, account []byte, amount uint64) error {
	return e.store.Update(ctx, func(txn storage.Txn) error {
		return ledger.Credit(txn, account, amount)
	})
}

// GetWallet fetches a dependent wallet record by address.
func (e *Engine) GetWallet(ctx context.Context, id types.RecordID) (*escrow.DependentWallet, error) {
	var wallet *escrow.DependentWallet
	err := e.store.View(ctx, func(txn storage.Txn) error {
		var err error
		wallet, err = getWallet(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// GetChore fetches a chore record by address.
func (e *Engine) GetChore(ctx context.Context, id types.RecordID) (*escrow.Chore, error) {
	var chore *escrow.Chore
	err := e.store.View(ctx, func(txn storage.Txn) error {
		var err error
		chore, err = getChore(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return chore, nil
}

// Balance returns the ledger balance of an external account.
func (e *Engine) Balance(ctx context.Context, account []byte) (uint64, error) {
	var balance uint64
	err := e.store.View(ctx, func(txn storage.Txn) error {
		var err error
		balance, err = txn.Balance(account)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func getWallet(txn storage.Txn, id types.RecordID) (*escrow.DependentWallet, error) {
	if err := id.TypeMustBe(escrow.WalletRecordType); err != nil {
		return nil, err
	}
	payload, err := txn.GetRecord(id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return nil, fmt.Errorf("wallet %s: %w", id, escrow.ErrNotFound)
		}
		return nil, err
	}
	wallet := &escrow.DependentWallet{}
	if err := cbor.UnmarshalTaggedValue(escrow.WalletRecordTag, payload, wallet); err != nil {
		return nil, fmt.Errorf("decoding wallet record: %w", err)
	}
	return wallet, nil
}

func getChore(txn storage.Txn, id types.RecordID) (*escrow.Chore, error) {
	if err := id.TypeMustBe(escrow.ChoreRecordType); err != nil {
		return nil, err
	}
	payload, err := txn.GetRecord(id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return nil, fmt.Errorf("chore %s: %w", id, escrow.ErrNotFound)
		}
		return nil, err
	}
	chore := &escrow.Chore{}
	if err := cbor.UnmarshalTaggedValue(escrow.ChoreRecordTag, payload, chore); err != nil {
		return nil, fmt.Errorf("decoding chore record: %w", err)
	}
	return chore, nil
}

func putRecord(txn storage.Txn, id types.RecordID, record types.RecordData) error {
	tag, err := escrow.RecordTag(id)
	if err != nil {
		return err
	}
	payload, err := cbor.MarshalTaggedValue(tag, record)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return txn.PutRecord(id, payload)
}
