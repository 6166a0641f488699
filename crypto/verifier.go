package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var ErrVerificationFailed = errors.New("verification failed")

type (
	// Verifier verifies that a signature over given data was produced by the
	// holder of a specific public key.
	Verifier interface {
		VerifyBytes(sig []byte, data []byte) error
		MarshalPublicKey() ([]byte, error)
	}

	verifierSecp256k1 struct {
		pubKey []byte // compressed
	}
)

// NewVerifierSecp256k1 creates a verifier for the given compressed public key.
func NewVerifierSecp256k1(compressedPubKey []byte) (Verifier, error) {
	if len(compressedPubKey) != CompressedPubKeyLength {
		return nil, fmt.Errorf("pubkey must be %d bytes long, but is %d bytes", CompressedPubKeyLength, len(compressedPubKey))
	}
	// fail early on garbage that is not a curve point
	if _, err := ethcrypto.DecompressPubkey(compressedPubKey); err != nil {
		return nil, fmt.Errorf("invalid secp256k1 public key: %w", err)
	}
	return &verifierSecp256k1{pubKey: compressedPubKey}, nil
}

// VerifyBytes hashes the data with SHA256 and verifies the signature over
// the digest. Accepts both 65 byte recoverable and 64 byte compact
// signatures.
func (v *verifierSecp256k1) VerifyBytes(sig []byte, data []byte) error {
	if v == nil || v.pubKey == nil {
		return errors.New("verifier is not initialized")
	}
	if len(sig) == SignatureLength {
		sig = sig[:SignatureLength-1]
	}
	if len(sig) != SignatureLength-1 {
		return fmt.Errorf("signature length is %d b (expected %d b)", len(sig), SignatureLength)
	}
	digest := sha256.Sum256(data)
	if !ethcrypto.VerifySignature(v.pubKey, digest[:], sig) {
		return ErrVerificationFailed
	}
	return nil
}

func (v *verifierSecp256k1) MarshalPublicKey() ([]byte, error) {
	if v == nil || v.pubKey == nil {
		return nil, errors.New("verifier is not initialized")
	}
	return v.pubKey, nil
}
