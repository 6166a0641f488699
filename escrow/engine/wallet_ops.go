package engine

import (
	"fmt"

	"github.com/choreledger/choreledger-go/crypto"
	"github.com/choreledger/choreledger-go/escrow"
	"github.com/choreledger/choreledger-go/ledger"
	"github.com/choreledger/choreledger-go/storage"
	"github.com/choreledger/choreledger-go/types"
)

// executeInitWallet creates the dependent's wallet record exactly once. The
// authenticated submitter becomes the wallet's guardian. No fund movement.
func (e *Engine) executeInitWallet(txn storage.Txn, order *types.OperationOrder, sigBytes []byte) error {
	attr := &escrow.InitWalletAttributes{}
	if err := order.UnmarshalAttributes(attr); err != nil {
		return fmt.Errorf("decoding attributes: %w", err)
	}
	authProof := &escrow.InitWalletAuthProof{}
	if err := order.UnmarshalAuthProof(authProof); err != nil {
		return fmt.Errorf("decoding auth proof: %w", err)
	}
	guardianID, err := verifyOwnerProof(authProof.OwnerProof, sigBytes)
	if err != nil {
		return err
	}
	if len(attr.Dependent) != crypto.CompressedPubKeyLength {
		return fmt.Errorf("dependent identity must be %d bytes, got %d bytes", crypto.CompressedPubKeyLength, len(attr.Dependent))
	}

	expectedID, err := escrow.NewWalletID(attr.Dependent)
	if err != nil {
		return fmt.Errorf("deriving wallet address: %w", err)
	}
	if !order.RecordID.Eq(expectedID) {
		return fmt.Errorf("record ID %s is not the wallet address of the dependent", order.RecordID)
	}

	exists, err := txn.RecordExists(order.RecordID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("wallet %s: %w", order.RecordID, escrow.ErrAlreadyInitialized)
	}

	wallet := escrow.NewDependentWallet(attr.Dependent, guardianID)
	return putRecord(txn, order.RecordID, wallet)
}

// executeWithdraw moves earned balance from the wallet's accounted balance
// to an external payout destination. Lifetime earnings stay untouched.
func (e *Engine) executeWithdraw(txn storage.Txn, order *types.OperationOrder, sigBytes []byte) error {
	attr := &escrow.WithdrawAttributes{}
	if err := order.UnmarshalAttributes(attr); err != nil {
		return fmt.Errorf("decoding attributes: %w", err)
	}
	authProof := &escrow.WithdrawAuthProof{}
	if err := order.UnmarshalAuthProof(authProof); err != nil {
		return fmt.Errorf("decoding auth proof: %w", err)
	}
	callerID, err := verifyOwnerProof(authProof.OwnerProof, sigBytes)
	if err != nil {
		return err
	}

	wallet, err := getWallet(txn, order.RecordID)
	if err != nil {
		return err
	}
	if err := verifyOwner(wallet.Owner(), callerID); err != nil {
		return err
	}
	if attr.Amount == 0 {
		return escrow.ErrAmountZero
	}
	if err := wallet.ApplyWithdrawal(attr.Amount); err != nil {
		return err
	}
	// the wallet address doubles as the escrow account holding the accounted
	// balance, so the payout leg settles in the same commit
	if err := ledger.Transfer(txn, order.RecordID, attr.PayoutDestination, attr.Amount); err != nil {
		return err
	}
	return putRecord(txn, order.RecordID, wallet)
}
