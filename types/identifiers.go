package types

import (
	"bytes"
	"fmt"

	"github.com/choreledger/choreledger-go/types/hex"
)

const (
	// RecordIDLength is the extended identifier length: hash-derived unit
	// part followed by the record type tag byte.
	RecordIDLength = UnitPartLength + TypePartLength
	UnitPartLength = 32
	TypePartLength = 1
)

type (
	// RecordID is the extended record identifier, combining the unit and the
	// record type identifiers. Records of different kinds can never share an
	// address even if derived from the same identity seeds.
	RecordID []byte
)

// NewRecordID returns a new record ID from the given unit part and record
// type. The unit part is padded from the left or truncated to UnitPartLength.
func NewRecordID(unitPart []byte, typePart byte) RecordID {
	id := make(RecordID, RecordIDLength)
	if len(unitPart) > UnitPartLength {
		unitPart = unitPart[:UnitPartLength]
	}
	copy(id[UnitPartLength-len(unitPart):], unitPart)
	id[RecordIDLength-1] = typePart
	return id
}

/*
ComposeRecordID builds a record ID of the given type using prndSh to fill
the unit part. The generator is typically a deterministic hash over a
namespace tag and identity seeds (see the escrow package).
*/
func ComposeRecordID(typePart byte, prndSh func(buf []byte) error) (RecordID, error) {
	id := make(RecordID, RecordIDLength)
	if err := prndSh(id[:UnitPartLength]); err != nil {
		return nil, fmt.Errorf("generating unit part: %w", err)
	}
	id[RecordIDLength-1] = typePart
	return id, nil
}

// TypePart returns the record type tag of the ID.
func (rid RecordID) TypePart() byte {
	if len(rid) != RecordIDLength {
		return 0
	}
	return rid[RecordIDLength-1]
}

func (rid RecordID) HasType(typePart byte) bool {
	return len(rid) == RecordIDLength && rid[RecordIDLength-1] == typePart
}

func (rid RecordID) TypeMustBe(typePart byte) error {
	if len(rid) != RecordIDLength {
		return fmt.Errorf("record ID length must be %d bytes, got %d bytes", RecordIDLength, len(rid))
	}
	if rid[RecordIDLength-1] != typePart {
		return fmt.Errorf("expected record type %#X, got %#X", typePart, rid[RecordIDLength-1])
	}
	return nil
}

func (rid RecordID) Compare(key RecordID) int {
	return bytes.Compare(rid, key)
}

func (rid RecordID) Eq(id RecordID) bool {
	return bytes.Equal(rid, id)
}

func (rid RecordID) String() string {
	return fmt.Sprintf("%X", []byte(rid))
}

func (rid RecordID) MarshalText() ([]byte, error) {
	return hex.Encode(rid), nil
}

func (rid *RecordID) UnmarshalText(src []byte) error {
	res, err := hex.Decode(src)
	if err == nil {
		*rid = res
	}
	return err
}
