package templates

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/choreledger/choreledger-go/cbor"
	"github.com/choreledger/choreledger-go/predicates"
)

func Test_templateBytes(t *testing.T) {
	t.Parallel()

	/*
		Make sure that CBOR encoder hasn't changed how it encodes our "hardcoded templates"
		or that the constants haven't been changed.
		If these tests fail it's a breaking change!
	*/

	t.Run("always false", func(t *testing.T) {
		buf, err := cbor.Marshal(predicates.Predicate{Tag: TemplateStartByte, Code: []byte{AlwaysFalseID}})
		require.NoError(t, err)
		require.True(t, bytes.Equal(buf, alwaysFalseBytes), `CBOR representation of "always false" predicate template has changed (expected %X, got %X)`, alwaysFalseBytes, buf)
		require.True(t, bytes.Equal(alwaysFalseBytes, AlwaysFalseBytes()))
		pred := &predicates.Predicate{}
		require.NoError(t, cbor.Unmarshal(buf, pred))
		require.Equal(t, pred.Code[0], AlwaysFalseID, "always false predicate ID")
	})

	t.Run("always true", func(t *testing.T) {
		buf, err := cbor.Marshal(predicates.Predicate{Tag: TemplateStartByte, Code: []byte{AlwaysTrueID}})
		require.NoError(t, err)
		require.True(t, bytes.Equal(buf, alwaysTrueBytes), `CBOR representation of "always true" predicate template has changed (expected %X, got %X)`, alwaysTrueBytes, buf)
		require.True(t, bytes.Equal(alwaysTrueBytes, AlwaysTrueBytes()))
		pred := &predicates.Predicate{}
		require.NoError(t, cbor.Unmarshal(buf, pred))
		require.Equal(t, pred.Code[0], AlwaysTrueID, "always true predicate ID")
	})

	t.Run("p2pkh", func(t *testing.T) {
		pubKeyHash, err := hex.DecodeString("F52022BB450407D92F13BF1C53128A676BCF304818E9F41A5EF4EBEAE9C0D6B0")
		require.NoError(t, err)
		buf, err := cbor.Marshal(predicates.Predicate{Tag: TemplateStartByte, Code: []byte{P2pkh256ID}, Params: pubKeyHash})
		require.NoError(t, err)

		fromHex, err := hex.DecodeString("830041025820F52022BB450407D92F13BF1C53128A676BCF304818E9F41A5EF4EBEAE9C0D6B0")
		require.NoError(t, err)

		require.Equal(t, buf, fromHex)
		require.Equal(t, buf, NewP2pkh256BytesFromKeyHash(pubKeyHash))
	})

	t.Run("empty argument", func(t *testing.T) {
		// CBOR null
		require.Equal(t, []byte{0xF6}, EmptyArgument())
	})
}

func Test_ExtractPubKeyHashFromP2pkhPredicate(t *testing.T) {
	t.Parallel()

	pubKey := []byte{0x02, 0xAA, 0xBB}
	pkh := sha256.Sum256(pubKey)

	extracted, err := ExtractPubKeyHashFromP2pkhPredicate(NewP2pkh256BytesFromKey(pubKey))
	require.NoError(t, err)
	require.EqualValues(t, pkh[:], extracted)

	t.Run("not a p2pkh predicate", func(t *testing.T) {
		_, err := ExtractPubKeyHashFromP2pkhPredicate(AlwaysTrueBytes())
		require.ErrorContains(t, err, "not a p2pkh predicate")
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ExtractPubKeyHashFromP2pkhPredicate([]byte{0xFF, 0x00})
		require.ErrorContains(t, err, "extracting predicate")
	})
}

func Test_VerifyP2pkhPredicate(t *testing.T) {
	t.Parallel()

	pred := NewP2pkh256FromKeyHash(make([]byte, 32))
	require.NoError(t, VerifyP2pkhPredicate(&pred))
	require.ErrorContains(t, VerifyP2pkhPredicate(nil), "predicate is nil")

	bad := NewP2pkh256FromKeyHash(make([]byte, 32))
	bad.Tag = 7
	require.ErrorContains(t, VerifyP2pkhPredicate(&bad), "not a predicate template")
}
