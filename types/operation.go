package types

import (
	"errors"
	"fmt"

	"github.com/choreledger/choreledger-go/cbor"
)

const (
	NetworkMainNet NetworkID = 1
	NetworkTestNet NetworkID = 2
	NetworkLocal   NetworkID = 3
)

var ErrOperationOrderIsNil = errors.New("operation order is nil")

type (
	NetworkID uint16

	// OperationOrder is a single atomic, authenticated state transition
	// request, submitted by an external collaborator. The order either
	// commits fully against the record store or has no effect.
	OperationOrder struct {
		_         struct{} `cbor:",toarray"`
		Version   ABVersion
		Payload                // the embedded Payload field is "flattened" in CBOR array
		AuthProof cbor.RawCBOR // operation type specific signatures/authorisation proofs
	}

	// Payload helper struct for operation signing.
	// Includes all OperationOrder fields except for the auth proof itself.
	// Payload is an embedded field of OperationOrder so that the fields get
	// "flattened" in CBOR encoding.
	Payload struct {
		_          struct{} `cbor:",toarray"`
		NetworkID  NetworkID
		RecordID   RecordID
		Type       uint16
		Attributes cbor.RawCBOR // operation type specific attributes
	}

	AuthProofSigData struct {
		_ struct{} `cbor:",toarray"`
		Payload
	}
)

// AuthProofSigBytes returns the canonical CBOR encoding of the payload,
// the bytes the submitter's signature must cover.
func (o *OperationOrder) AuthProofSigBytes() ([]byte, error) {
	if o == nil {
		return nil, ErrOperationOrderIsNil
	}
	sigData := AuthProofSigData{Payload: o.Payload}
	sigDataCBOR, err := cbor.Marshal(sigData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auth proof sig bytes: %w", err)
	}
	return sigDataCBOR, nil
}

func (o *OperationOrder) UnmarshalAttributes(v any) error {
	if o == nil {
		return ErrOperationOrderIsNil
	}
	return cbor.Unmarshal(o.Attributes, v)
}

func (o *OperationOrder) UnmarshalAuthProof(v any) error {
	if o == nil {
		return ErrOperationOrderIsNil
	}
	return cbor.Unmarshal(o.AuthProof, v)
}

// SetAttributes converts the provided attributes struct to CBOR and sets the
// Attributes field.
func (o *OperationOrder) SetAttributes(attrs any) error {
	if o == nil {
		return ErrOperationOrderIsNil
	}
	attrBytes, err := cbor.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("marshaling attributes: %w", err)
	}
	o.Attributes = attrBytes
	return nil
}

// SetAuthProof converts the provided auth proof struct to CBOR and sets the
// AuthProof field.
func (o *OperationOrder) SetAuthProof(authProof any) error {
	if o == nil {
		return ErrOperationOrderIsNil
	}
	authProofCBOR, err := cbor.Marshal(authProof)
	if err != nil {
		return fmt.Errorf("marshaling auth proof: %w", err)
	}
	o.AuthProof = authProofCBOR
	return nil
}
