// Package ledger implements the value transfer primitive. Balances live in
// the same store transaction as the record mutations that account for them,
// so a transfer and the record update it backs commit together.
package ledger

import (
	"errors"
	"fmt"

	"github.com/choreledger/choreledger-go/storage"
	"github.com/choreledger/choreledger-go/util"
)

var (
	// ErrInsufficientFunds indicates the source account does not hold the
	// transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrAmountZero = errors.New("transfer amount must be greater than zero")
)

// Credit adds amount to the account balance.
func Credit(txn storage.Txn, account []byte, amount uint64) error {
	if amount == 0 {
		return ErrAmountZero
	}
	balance, err := txn.Balance(account)
	if err != nil {
		return fmt.Errorf("reading balance: %w", err)
	}
	newBalance, ok := util.SafeAdd(balance, amount)
	if !ok {
		return fmt.Errorf("balance overflow: %d + %d", balance, amount)
	}
	return txn.SetBalance(account, newBalance)
}

// Debit removes amount from the account balance, failing with
// ErrInsufficientFunds when the account does not hold it.
func Debit(txn storage.Txn, account []byte, amount uint64) error {
	if amount == 0 {
		return ErrAmountZero
	}
	balance, err := txn.Balance(account)
	if err != nil {
		return fmt.Errorf("reading balance: %w", err)
	}
	newBalance, ok := util.SafeSub(balance, amount)
	if !ok {
		return fmt.Errorf("account holds %d, transfer of %d: %w", balance, amount, ErrInsufficientFunds)
	}
	return txn.SetBalance(account, newBalance)
}

// Transfer moves amount from one account to another within the transaction.
func Transfer(txn storage.Txn, from, to []byte, amount uint64) error {
	if err := Debit(txn, from, amount); err != nil {
		return err
	}
	return Credit(txn, to, amount)
}
