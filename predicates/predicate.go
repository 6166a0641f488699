package predicates

import "github.com/choreledger/choreledger-go/cbor"

type Predicate struct {
	_      struct{} `cbor:",toarray"`
	Tag    uint64
	Code   []byte
	Params []byte
}

func (p Predicate) AsBytes() ([]byte, error) {
	buf, err := cbor.Marshal(p)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
