package hash

import (
	"crypto"
	"crypto/sha256"
)

var Zero256 = make([]byte, 32)

// Sum256 returns the SHA256 checksum of the data, zero hash for empty input.
func Sum256(data []byte) []byte {
	if len(data) == 0 {
		return Zero256
	}
	hsh := sha256.Sum256(data)
	return hsh[:]
}

/*
HashValues encodes each value as CBOR and returns the hash of the
concatenated encodings. Used to derive record addresses from namespace
tags and identity seeds - CBOR framing keeps distinct seed tuples from
colliding on concatenation boundaries.
*/
func HashValues(hashAlgorithm crypto.Hash, values ...any) ([]byte, error) {
	hasher := New(hashAlgorithm.New())
	for _, value := range values {
		hasher.Write(value)
	}
	return hasher.Sum()
}
