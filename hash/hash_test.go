package hash

import (
	"crypto"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Sum256(t *testing.T) {
	t.Parallel()

	require.Equal(t, Zero256, Sum256(nil))
	require.Equal(t, Zero256, Sum256([]byte{}))

	hsh := sha256.Sum256([]byte{1, 2, 3})
	require.Equal(t, hsh[:], Sum256([]byte{1, 2, 3}))
}

func Test_HashValues(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		h1, err := HashValues(crypto.SHA256, "chore", []byte{1, 2}, uint64(7))
		require.NoError(t, err)
		h2, err := HashValues(crypto.SHA256, "chore", []byte{1, 2}, uint64(7))
		require.NoError(t, err)
		require.Equal(t, h1, h2)
		require.Len(t, h1, sha256.Size)
	})

	t.Run("value boundaries matter", func(t *testing.T) {
		// CBOR framing must keep {0x01, 0x02} + {0x03} distinct from {0x01} + {0x02, 0x03}
		h1, err := HashValues(crypto.SHA256, []byte{1, 2}, []byte{3})
		require.NoError(t, err)
		h2, err := HashValues(crypto.SHA256, []byte{1}, []byte{2, 3})
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})

	t.Run("namespace matters", func(t *testing.T) {
		h1, err := HashValues(crypto.SHA256, "dependent-wallet", []byte{1})
		require.NoError(t, err)
		h2, err := HashValues(crypto.SHA256, "chore", []byte{1})
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})
}

func Test_Hasher(t *testing.T) {
	t.Parallel()

	t.Run("WriteRaw bypasses encoding", func(t *testing.T) {
		hasher := New(sha256.New())
		hasher.WriteRaw([]byte{1, 2, 3})
		sum, err := hasher.Sum()
		require.NoError(t, err)
		require.Equal(t, Sum256([]byte{1, 2, 3}), sum)
	})

	t.Run("Write encodes as CBOR", func(t *testing.T) {
		hasher := New(sha256.New())
		hasher.Write(uint64(5))
		sum, err := hasher.Sum()
		require.NoError(t, err)
		// CBOR encoding of 5 is a single byte 0x05
		require.Equal(t, Sum256([]byte{5}), sum)
	})

	t.Run("error is sticky", func(t *testing.T) {
		hasher := New(sha256.New())
		hasher.Write(func() {}) // functions are not CBOR encodable
		_, err := hasher.Sum()
		require.Error(t, err)
	})
}
