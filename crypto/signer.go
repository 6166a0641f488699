// Package crypto implements the signing primitive operation orders are
// authenticated with: secp256k1 keys, SHA256 digests, 65 byte recoverable
// signatures.
package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// CompressedPubKeyLength is the length of a compressed secp256k1 public
	// key, the stable identity of every party in the system.
	CompressedPubKeyLength = 33
	// SignatureLength is the length of a recoverable secp256k1 signature
	// (R || S || V).
	SignatureLength = 65
)

type (
	// Signer proves control of an identity by signing operation payloads.
	Signer interface {
		SignBytes(data []byte) ([]byte, error)
		MarshalPublicKey() ([]byte, error)
		Verifier() (Verifier, error)
	}

	// InMemorySecp256K1Signer is a Signer that holds the private key in
	// memory. Key management UX is the caller's concern.
	InMemorySecp256K1Signer struct {
		privKey *ecdsa.PrivateKey
	}
)

// NewInMemorySecp256K1Signer generates a new key pair and returns a signer
// holding it.
func NewInMemorySecp256K1Signer() (*InMemorySecp256K1Signer, error) {
	privKey, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating secp256k1 key: %w", err)
	}
	return &InMemorySecp256K1Signer{privKey: privKey}, nil
}

// NewInMemorySecp256K1SignerFromKey restores a signer from a marshaled
// private key.
func NewInMemorySecp256K1SignerFromKey(privKey []byte) (*InMemorySecp256K1Signer, error) {
	key, err := ethcrypto.ToECDSA(privKey)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling secp256k1 private key: %w", err)
	}
	return &InMemorySecp256K1Signer{privKey: key}, nil
}

// SignBytes hashes the data with SHA256 and signs the digest.
func (s *InMemorySecp256K1Signer) SignBytes(data []byte) ([]byte, error) {
	if s == nil || s.privKey == nil {
		return nil, errors.New("signer is not initialized")
	}
	digest := sha256.Sum256(data)
	sig, err := ethcrypto.Sign(digest[:], s.privKey)
	if err != nil {
		return nil, fmt.Errorf("signing digest: %w", err)
	}
	return sig, nil
}

// MarshalPublicKey returns the compressed public key of the signer.
func (s *InMemorySecp256K1Signer) MarshalPublicKey() ([]byte, error) {
	if s == nil || s.privKey == nil {
		return nil, errors.New("signer is not initialized")
	}
	return ethcrypto.CompressPubkey(&s.privKey.PublicKey), nil
}

// MarshalPrivateKey returns the private key bytes so the caller can persist
// them.
func (s *InMemorySecp256K1Signer) MarshalPrivateKey() ([]byte, error) {
	if s == nil || s.privKey == nil {
		return nil, errors.New("signer is not initialized")
	}
	return ethcrypto.FromECDSA(s.privKey), nil
}

func (s *InMemorySecp256K1Signer) Verifier() (Verifier, error) {
	pubKey, err := s.MarshalPublicKey()
	if err != nil {
		return nil, err
	}
	return NewVerifierSecp256k1(pubKey)
}
