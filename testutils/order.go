package testutils

import (
	"testing"

	"github.com/choreledger/choreledger-go/crypto"
	"github.com/choreledger/choreledger-go/escrow"
	"github.com/choreledger/choreledger-go/predicates/templates"
	"github.com/choreledger/choreledger-go/types"
)

// SignOrder signs the order's payload with the given signer and sets the
// operation type specific auth proof.
func SignOrder(t *testing.T, order *types.OperationOrder, signer crypto.Signer) {
	t.Helper()
	sigBytes, err := order.AuthProofSigBytes()
	if err != nil {
		t.Fatal("failed to marshal sig bytes:", err)
	}
	sig, err := signer.SignBytes(sigBytes)
	if err != nil {
		t.Fatal("failed to sign order:", err)
	}
	pubKey, err := signer.MarshalPublicKey()
	if err != nil {
		t.Fatal("failed to marshal public key:", err)
	}
	ownerProof := templates.NewP2pkh256SignatureBytes(sig, pubKey)

	switch order.Type {
	case escrow.OperationTypeInitWallet:
		err = order.SetAuthProof(escrow.InitWalletAuthProof{OwnerProof: ownerProof})
	case escrow.OperationTypeCreateChore:
		err = order.SetAuthProof(escrow.CreateChoreAuthProof{OwnerProof: ownerProof})
	case escrow.OperationTypeSubmitCompletion:
		err = order.SetAuthProof(escrow.SubmitCompletionAuthProof{OwnerProof: ownerProof})
	case escrow.OperationTypeRateAndPay:
		err = order.SetAuthProof(escrow.RateAndPayAuthProof{OwnerProof: ownerProof})
	case escrow.OperationTypeWithdraw:
		err = order.SetAuthProof(escrow.WithdrawAuthProof{OwnerProof: ownerProof})
	case escrow.OperationTypeCancelChore:
		err = order.SetAuthProof(escrow.CancelChoreAuthProof{OwnerProof: ownerProof})
	default:
		t.Fatalf("unknown operation type %d", order.Type)
	}
	if err != nil {
		t.Fatal("failed to set auth proof:", err)
	}
}
