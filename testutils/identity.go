package testutils

import (
	"crypto/rand"
	"testing"

	"github.com/choreledger/choreledger-go/crypto"
	"github.com/choreledger/choreledger-go/types/hex"
)

// NewSigner generates a fresh identity for a test: the signer proving
// control of it and the compressed public key records store.
func NewSigner(t *testing.T) (*crypto.InMemorySecp256K1Signer, hex.Bytes) {
	t.Helper()
	signer, err := crypto.NewInMemorySecp256K1Signer()
	if err != nil {
		t.Fatal("failed to generate signer:", err)
	}
	pubKey, err := signer.MarshalPublicKey()
	if err != nil {
		t.Fatal("failed to marshal public key:", err)
	}
	return signer, pubKey
}

// RandomNonce returns a fresh per-chore nonce key.
func RandomNonce(t *testing.T) []byte {
	t.Helper()
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal("failed to generate nonce:", err)
	}
	return nonce
}
