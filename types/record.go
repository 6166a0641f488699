package types

import (
	abhash "github.com/choreledger/choreledger-go/hash"
)

type (
	// RecordData is a generic data type for the state stored at a record
	// address.
	RecordData interface {
		Write(hasher abhash.Hasher)
		Copy() RecordData
		Owner() []byte
	}
)
