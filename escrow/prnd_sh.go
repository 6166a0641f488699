package escrow

import (
	"crypto"
	"fmt"

	"github.com/choreledger/choreledger-go/hash"
)

// Namespace tags of the record address derivations. Distinct tags keep
// addresses of different record kinds apart even for identical seeds.
const (
	walletNamespace = "dependent-wallet"
	choreNamespace  = "chore"
)

/*
WalletPrndSh returns a generator producing the unit part of a dependent's
wallet record ID. The sequence is deterministic over the dependent identity,
every call yields the same bytes.
*/
func WalletPrndSh(dependentID []byte) func(buf []byte) error {
	return func(buf []byte) error {
		h, err := hash.HashValues(crypto.SHA256, walletNamespace, dependentID)
		if err != nil {
			return fmt.Errorf("hashing wallet seed data: %w", err)
		}
		if n := copy(buf, h); n != len(buf) {
			return fmt.Errorf("requested %d bytes but got %d", len(buf), n)
		}
		return nil
	}
}

/*
ChorePrndSh returns a generator producing the unit part of a chore record
ID from the assigner identity and the per-chore nonce key supplied at
creation. Subsequent calls return the same value.
*/
func ChorePrndSh(assignerID, nonce []byte) func(buf []byte) error {
	return func(buf []byte) error {
		h, err := hash.HashValues(crypto.SHA256, choreNamespace, assignerID, nonce)
		if err != nil {
			return fmt.Errorf("hashing chore seed data: %w", err)
		}
		if n := copy(buf, h); n != len(buf) {
			return fmt.Errorf("requested %d bytes but got %d", len(buf), n)
		}
		return nil
	}
}
