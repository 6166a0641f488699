package escrow

import (
	"github.com/choreledger/choreledger-go/types"
	"github.com/choreledger/choreledger-go/types/hex"
)

const (
	OperationTypeInitWallet       uint16 = 1
	OperationTypeCreateChore      uint16 = 2
	OperationTypeSubmitCompletion uint16 = 3
	OperationTypeRateAndPay       uint16 = 4
	OperationTypeWithdraw         uint16 = 5
	OperationTypeCancelChore      uint16 = 6
)

type (
	// InitWalletAttributes creates the dependent's wallet record. The
	// guardian identity is the authenticated submitter of the order.
	InitWalletAttributes struct {
		_         struct{}  `cbor:",toarray"`
		Dependent hex.Bytes // identity the wallet accounts earnings for
	}

	// CreateChoreAttributes allocates a new Pending chore. The assigner
	// identity is the authenticated submitter; Nonce is the fresh per-chore
	// key the target record address must be derived from.
	CreateChoreAttributes struct {
		_           struct{}  `cbor:",toarray"`
		Assignee    hex.Bytes // dependent expected to complete the chore
		Nonce       hex.Bytes
		Title       string
		Description string
		MaxPayment  uint64
	}

	// SubmitCompletionAttributes carries no data - the target chore is the
	// order's record ID and the assignee is the authenticated submitter.
	SubmitCompletionAttributes struct {
		_ struct{} `cbor:",toarray"`
	}

	// RateAndPayAttributes rates a completed chore and pays the dependent's
	// wallet. WalletID names the wallet record the payment is accounted
	// against; the funding source is the assigner's ledger account.
	RateAndPayAttributes struct {
		_        struct{} `cbor:",toarray"`
		Rating   uint8
		WalletID types.RecordID
	}

	// WithdrawAttributes moves earned balance out of the wallet's accounted
	// balance to an external payout destination.
	WithdrawAttributes struct {
		_                 struct{} `cbor:",toarray"`
		Amount            uint64
		PayoutDestination hex.Bytes
	}

	// CancelChoreAttributes carries no data - the target chore is the
	// order's record ID and the assigner is the authenticated submitter.
	CancelChoreAttributes struct {
		_ struct{} `cbor:",toarray"`
	}
)
