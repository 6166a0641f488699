package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/choreledger/choreledger-go/cbor"
	"github.com/choreledger/choreledger-go/crypto"
	"github.com/choreledger/choreledger-go/escrow"
	"github.com/choreledger/choreledger-go/predicates/templates"
)

/*
verifyOwnerProof authenticates an operation order: the owner proof must be a
P2PKH-256 signature over the order's sig bytes. Returns the public key the
signature was verified against - the caller identity every authorization
decision is made on.
*/
func verifyOwnerProof(ownerProof, sigBytes []byte) ([]byte, error) {
	sig := templates.P2pkh256Signature{}
	if err := cbor.Unmarshal(ownerProof, &sig); err != nil {
		return nil, fmt.Errorf("decoding owner proof: %w", err)
	}
	verifier, err := crypto.NewVerifierSecp256k1(sig.PubKey)
	if err != nil {
		return nil, fmt.Errorf("creating verifier: %w", err)
	}
	if err := verifier.VerifyBytes(sig.Sig, sigBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrUnauthorized, err)
	}
	return sig.PubKey, nil
}

// verifyOwner checks that the authenticated public key satisfies a record's
// P2PKH-256 owner predicate.
func verifyOwner(ownerPredicate, pubKey []byte) error {
	pubKeyHash, err := templates.ExtractPubKeyHashFromP2pkhPredicate(ownerPredicate)
	if err != nil {
		return fmt.Errorf("reading owner predicate: %w", err)
	}
	pkh := sha256.Sum256(pubKey)
	if !bytes.Equal(pubKeyHash, pkh[:]) {
		return escrow.ErrUnauthorized
	}
	return nil
}

// callerIs reports whether the authenticated public key is the given stored
// identity.
func callerIs(pubKey, identity []byte) bool {
	return bytes.Equal(pubKey, identity)
}
