package escrow

import (
	"bytes"

	"github.com/choreledger/choreledger-go/cbor"
	abhash "github.com/choreledger/choreledger-go/hash"
	"github.com/choreledger/choreledger-go/predicates/templates"
	"github.com/choreledger/choreledger-go/types"
	"github.com/choreledger/choreledger-go/types/hex"
	"github.com/choreledger/choreledger-go/util"
)

var _ types.RecordData = (*DependentWallet)(nil)

// DependentWallet is the record accounting a dependent's earnings. Created
// once per dependent identity, mutated only by payment and withdrawal,
// never deleted.
type DependentWallet struct {
	_               struct{}        `cbor:",toarray"`
	Version         types.ABVersion `json:"version"`
	DependentID     hex.Bytes       `json:"dependentId"`            // identity that completes chores and withdraws
	GuardianID      hex.Bytes       `json:"guardianId"`             // identity authorized to create chores and approve payment
	TotalEarned     uint64          `json:"totalEarned,string"`     // lifetime gross earnings, never decreases
	CurrentBalance  uint64          `json:"currentBalance,string"`  // withdrawable balance, CurrentBalance <= TotalEarned
	ChoresCompleted uint64          `json:"choresCompleted,string"` // chores paid out against this wallet
}

func NewDependentWallet(dependentID, guardianID []byte) *DependentWallet {
	return &DependentWallet{
		Version:     1,
		DependentID: bytes.Clone(dependentID),
		GuardianID:  bytes.Clone(guardianID),
	}
}

// ApplyPayment accounts a rated payout: lifetime earnings and withdrawable
// balance grow by amount, the completed counter by one.
func (w *DependentWallet) ApplyPayment(amount uint64) error {
	if amount == 0 {
		return ErrAmountZero
	}
	totalEarned, ok := util.SafeAdd(w.TotalEarned, amount)
	if !ok {
		return ErrAmountOverflow
	}
	currentBalance, ok := util.SafeAdd(w.CurrentBalance, amount)
	if !ok {
		return ErrAmountOverflow
	}
	w.TotalEarned = totalEarned
	w.CurrentBalance = currentBalance
	w.ChoresCompleted++
	return nil
}

// ApplyWithdrawal reduces the withdrawable balance. Lifetime earnings track
// gross earnings and stay untouched.
func (w *DependentWallet) ApplyWithdrawal(amount uint64) error {
	if amount == 0 {
		return ErrAmountZero
	}
	currentBalance, ok := util.SafeSub(w.CurrentBalance, amount)
	if !ok {
		return ErrInsufficientBalance
	}
	w.CurrentBalance = currentBalance
	return nil
}

func (w *DependentWallet) Write(hasher abhash.Hasher) {
	hasher.Write(w)
}

func (w *DependentWallet) Copy() types.RecordData {
	return &DependentWallet{
		Version:         w.Version,
		DependentID:     bytes.Clone(w.DependentID),
		GuardianID:      bytes.Clone(w.GuardianID),
		TotalEarned:     w.TotalEarned,
		CurrentBalance:  w.CurrentBalance,
		ChoresCompleted: w.ChoresCompleted,
	}
}

// Owner returns the withdraw authority of the wallet as a P2PKH-256
// predicate over the dependent's key.
func (w *DependentWallet) Owner() []byte {
	return templates.NewP2pkh256BytesFromKey(w.DependentID)
}

func (w *DependentWallet) GetVersion() types.ABVersion {
	if w != nil && w.Version != 0 {
		return w.Version
	}
	return 1
}

func (w *DependentWallet) MarshalCBOR() ([]byte, error) {
	type alias DependentWallet
	if w.Version == 0 {
		w.Version = w.GetVersion()
	}
	return cbor.Marshal((*alias)(w))
}

func (w *DependentWallet) UnmarshalCBOR(data []byte) error {
	type alias DependentWallet
	if err := cbor.Unmarshal(data, (*alias)(w)); err != nil {
		return err
	}
	return types.EnsureVersion(w, w.Version, 1)
}
