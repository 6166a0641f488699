package engine

import (
	"fmt"

	"github.com/choreledger/choreledger-go/crypto"
	"github.com/choreledger/choreledger-go/escrow"
	"github.com/choreledger/choreledger-go/ledger"
	"github.com/choreledger/choreledger-go/storage"
	"github.com/choreledger/choreledger-go/types"
)

// executeCreateChore allocates a new Pending chore at the address derived
// from the assigner and the fresh nonce key. The assignee's wallet is not
// required to exist yet - a guardian can draft chores before onboarding the
// dependent.
func (e *Engine) executeCreateChore(txn storage.Txn, order *types.OperationOrder, sigBytes []byte) error {
	attr := &escrow.CreateChoreAttributes{}
	if err := order.UnmarshalAttributes(attr); err != nil {
		return fmt.Errorf("decoding attributes: %w", err)
	}
	authProof := &escrow.CreateChoreAuthProof{}
	if err := order.UnmarshalAuthProof(authProof); err != nil {
		return fmt.Errorf("decoding auth proof: %w", err)
	}
	assignerID, err := verifyOwnerProof(authProof.OwnerProof, sigBytes)
	if err != nil {
		return err
	}
	if len(attr.Assignee) != crypto.CompressedPubKeyLength {
		return fmt.Errorf("assignee identity must be %d bytes, got %d bytes", crypto.CompressedPubKeyLength, len(attr.Assignee))
	}

	expectedID, err := escrow.NewChoreID(assignerID, attr.Nonce)
	if err != nil {
		return fmt.Errorf("deriving chore address: %w", err)
	}
	if !order.RecordID.Eq(expectedID) {
		return fmt.Errorf("record ID %s is not derived from the assigner and nonce", order.RecordID)
	}

	exists, err := txn.RecordExists(order.RecordID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("chore %s: %w", order.RecordID, escrow.ErrAlreadyInitialized)
	}

	chore, err := escrow.NewChore(assignerID, attr.Assignee, attr.Title, attr.Description, attr.MaxPayment, e.now())
	if err != nil {
		return err
	}
	return putRecord(txn, order.RecordID, chore)
}

// executeSubmitCompletion transitions a Pending chore to Completed. Only the
// assignee may submit.
func (e *Engine) executeSubmitCompletion(txn storage.Txn, order *types.OperationOrder, sigBytes []byte) error {
	authProof := &escrow.SubmitCompletionAuthProof{}
	if err := order.UnmarshalAuthProof(authProof); err != nil {
		return fmt.Errorf("decoding auth proof: %w", err)
	}
	callerID, err := verifyOwnerProof(authProof.OwnerProof, sigBytes)
	if err != nil {
		return err
	}

	chore, err := getChore(txn, order.RecordID)
	if err != nil {
		return err
	}
	if !callerIs(callerID, chore.AssigneeID) {
		return fmt.Errorf("caller is not the assignee of chore %s: %w", order.RecordID, escrow.ErrUnauthorized)
	}
	if err := chore.Complete(e.now()); err != nil {
		return err
	}
	return putRecord(txn, order.RecordID, chore)
}

// executeRateAndPay converts a rating into a payment: transitions the chore
// Completed -> Paid, moves the amount from the assigner's funding account to
// the wallet's accounted balance and updates the earnings counters. The
// rating is validated before anything is mutated or transferred.
func (e *Engine) executeRateAndPay(txn storage.Txn, order *types.OperationOrder, sigBytes []byte) error {
	attr := &escrow.RateAndPayAttributes{}
	if err := order.UnmarshalAttributes(attr); err != nil {
		return fmt.Errorf("decoding attributes: %w", err)
	}
	authProof := &escrow.RateAndPayAuthProof{}
	if err := order.UnmarshalAuthProof(authProof); err != nil {
		return fmt.Errorf("decoding auth proof: %w", err)
	}
	callerID, err := verifyOwnerProof(authProof.OwnerProof, sigBytes)
	if err != nil {
		return err
	}

	chore, err := getChore(txn, order.RecordID)
	if err != nil {
		return err
	}
	if chore.Status != escrow.ChoreStatusCompleted {
		return fmt.Errorf("chore %s is %s: %w", order.RecordID, chore.Status, escrow.ErrInvalidState)
	}
	if !callerIs(callerID, chore.AssignerID) {
		return fmt.Errorf("caller is not the assigner of chore %s: %w", order.RecordID, escrow.ErrUnauthorized)
	}

	amount, err := escrow.PaymentForRating(attr.Rating, chore.MaxPayment)
	if err != nil {
		return err
	}

	wallet, err := getWallet(txn, attr.WalletID)
	if err != nil {
		return err
	}
	if !callerIs(chore.AssignerID, wallet.GuardianID) {
		return fmt.Errorf("chore assigner is not the wallet guardian: %w", escrow.ErrUnauthorized)
	}
	if !callerIs(chore.AssigneeID, wallet.DependentID) {
		return fmt.Errorf("chore assignee is not the wallet dependent: %w", escrow.ErrUnauthorized)
	}

	// fund the accounted balance from the guardian's ledger account; the
	// wallet address doubles as the escrow account backing CurrentBalance
	if err := ledger.Transfer(txn, callerID, attr.WalletID, amount); err != nil {
		return err
	}
	if err := wallet.ApplyPayment(amount); err != nil {
		return err
	}
	if err := chore.Pay(attr.Rating, amount); err != nil {
		return err
	}
	if err := putRecord(txn, attr.WalletID, wallet); err != nil {
		return err
	}
	return putRecord(txn, order.RecordID, chore)
}

// executeCancelChore transitions a Pending chore to Cancelled. Only the
// assigner may cancel; Cancelled is terminal.
func (e *Engine) executeCancelChore(txn storage.Txn, order *types.OperationOrder, sigBytes []byte) error {
	authProof := &escrow.CancelChoreAuthProof{}
	if err := order.UnmarshalAuthProof(authProof); err != nil {
		return fmt.Errorf("decoding auth proof: %w", err)
	}
	callerID, err := verifyOwnerProof(authProof.OwnerProof, sigBytes)
	if err != nil {
		return err
	}

	chore, err := getChore(txn, order.RecordID)
	if err != nil {
		return err
	}
	if !callerIs(callerID, chore.AssignerID) {
		return fmt.Errorf("caller is not the assigner of chore %s: %w", order.RecordID, escrow.ErrUnauthorized)
	}
	if err := chore.Cancel(); err != nil {
		return err
	}
	return putRecord(txn, order.RecordID, chore)
}
