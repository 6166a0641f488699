package escrow

import (
	"fmt"

	"github.com/choreledger/choreledger-go/cbor"
	"github.com/choreledger/choreledger-go/types"
)

const (
	WalletRecordType byte = 0x01
	ChoreRecordType  byte = 0x02
)

// Record kind tags wrap the stored CBOR so a record can never be decoded as
// the wrong kind even if the address type byte were forged.
const (
	_ = iota + cbor.Tag(1000)
	WalletRecordTag
	ChoreRecordTag
)

// NewRecordData returns an empty record data struct of the kind the record
// ID addresses.
func NewRecordData(recordID types.RecordID) (types.RecordData, error) {
	if recordID.HasType(WalletRecordType) {
		return &DependentWallet{}, nil
	}
	if recordID.HasType(ChoreRecordType) {
		return &Chore{}, nil
	}
	return nil, fmt.Errorf("unknown record type in record ID %s", recordID)
}

// RecordTag returns the record kind tag for the record ID.
func RecordTag(recordID types.RecordID) (cbor.Tag, error) {
	if recordID.HasType(WalletRecordType) {
		return WalletRecordTag, nil
	}
	if recordID.HasType(ChoreRecordType) {
		return ChoreRecordTag, nil
	}
	return 0, fmt.Errorf("unknown record type in record ID %s", recordID)
}

// NewWalletID derives the address of a dependent's wallet record. The
// derivation is deterministic over the dependent identity alone, which makes
// record existence the double-init gate.
func NewWalletID(dependentID []byte) (types.RecordID, error) {
	return types.ComposeRecordID(WalletRecordType, WalletPrndSh(dependentID))
}

// NewChoreID derives the address of a chore record from the assigner
// identity and a fresh per-chore nonce key. Fresh nonces make chore
// addresses unique and unpredictable without a sequential counter.
func NewChoreID(assignerID, nonce []byte) (types.RecordID, error) {
	return types.ComposeRecordID(ChoreRecordType, ChorePrndSh(assignerID, nonce))
}
