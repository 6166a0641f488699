package escrow

import (
	"crypto/sha256"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/choreledger/choreledger-go/cbor"
	"github.com/choreledger/choreledger-go/predicates/templates"
)

func Test_DependentWallet_accounting(t *testing.T) {
	t.Parallel()

	dependentID := []byte{0x02, 0x01}
	guardianID := []byte{0x02, 0x02}

	t.Run("new wallet starts at zero", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.EqualValues(t, dependentID, wallet.DependentID)
		require.EqualValues(t, guardianID, wallet.GuardianID)
		require.Zero(t, wallet.TotalEarned)
		require.Zero(t, wallet.CurrentBalance)
		require.Zero(t, wallet.ChoresCompleted)
	})

	t.Run("payment grows earnings, balance and counter", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.NoError(t, wallet.ApplyPayment(5_000_000))
		require.NoError(t, wallet.ApplyPayment(2_500_000))
		require.EqualValues(t, 7_500_000, wallet.TotalEarned)
		require.EqualValues(t, 7_500_000, wallet.CurrentBalance)
		require.EqualValues(t, 2, wallet.ChoresCompleted)
	})

	t.Run("zero payment is rejected", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.ErrorIs(t, wallet.ApplyPayment(0), ErrAmountZero)
		require.Zero(t, wallet.ChoresCompleted)
	})

	t.Run("payment overflow is rejected without mutation", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.NoError(t, wallet.ApplyPayment(math.MaxUint64))
		require.ErrorIs(t, wallet.ApplyPayment(1), ErrAmountOverflow)
		require.EqualValues(t, uint64(math.MaxUint64), wallet.TotalEarned)
		require.EqualValues(t, 1, wallet.ChoresCompleted)
	})

	t.Run("withdrawal leaves lifetime earnings untouched", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.NoError(t, wallet.ApplyPayment(5_000_000))
		require.NoError(t, wallet.ApplyWithdrawal(500_000))
		require.EqualValues(t, 5_000_000, wallet.TotalEarned)
		require.EqualValues(t, 4_500_000, wallet.CurrentBalance)
		require.Less(t, wallet.CurrentBalance, wallet.TotalEarned)
	})

	t.Run("withdrawal above balance is rejected without mutation", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.NoError(t, wallet.ApplyPayment(100))
		require.ErrorIs(t, wallet.ApplyWithdrawal(101), ErrInsufficientBalance)
		require.EqualValues(t, 100, wallet.CurrentBalance)
	})

	t.Run("zero withdrawal is rejected", func(t *testing.T) {
		wallet := NewDependentWallet(dependentID, guardianID)
		require.ErrorIs(t, wallet.ApplyWithdrawal(0), ErrAmountZero)
	})
}

func Test_DependentWallet_owner(t *testing.T) {
	t.Parallel()

	dependentID := []byte{0x02, 0x01}
	wallet := NewDependentWallet(dependentID, []byte{0x02, 0x02})

	pubKeyHash, err := templates.ExtractPubKeyHashFromP2pkhPredicate(wallet.Owner())
	require.NoError(t, err)
	pkh := sha256.Sum256(dependentID)
	require.EqualValues(t, pkh[:], pubKeyHash)
}

func Test_DependentWallet_CBOR(t *testing.T) {
	t.Parallel()

	wallet := NewDependentWallet([]byte{0x02, 0x01}, []byte{0x02, 0x02})
	require.NoError(t, wallet.ApplyPayment(42))

	walletBytes, err := cbor.Marshal(wallet)
	require.NoError(t, err)
	newWallet := &DependentWallet{}
	require.NoError(t, cbor.Unmarshal(walletBytes, newWallet))
	require.Equal(t, wallet, newWallet)

	t.Run("unsupported version fails to decode", func(t *testing.T) {
		wallet := NewDependentWallet([]byte{0x02, 0x01}, []byte{0x02, 0x02})
		wallet.Version = 2
		walletBytes, err := cbor.Marshal(wallet)
		require.NoError(t, err)
		require.ErrorContains(t, cbor.Unmarshal(walletBytes, &DependentWallet{}), "invalid version")
	})
}

func Test_DependentWallet_Copy(t *testing.T) {
	t.Parallel()

	wallet := NewDependentWallet([]byte{0x02, 0x01}, []byte{0x02, 0x02})
	require.NoError(t, wallet.ApplyPayment(42))

	clone := wallet.Copy().(*DependentWallet)
	require.Equal(t, wallet, clone)
	clone.DependentID[0] = 0xFF
	require.NotEqual(t, wallet.DependentID, clone.DependentID)
}
