package escrow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PaymentForRating(t *testing.T) {
	t.Parallel()

	t.Run("rating zero is rejected", func(t *testing.T) {
		amount, err := PaymentForRating(0, 10_000_000)
		require.ErrorIs(t, err, ErrInvalidRating)
		require.Zero(t, amount)
	})

	t.Run("rating above the scale is rejected", func(t *testing.T) {
		amount, err := PaymentForRating(RatingMax+1, 10_000_000)
		require.ErrorIs(t, err, ErrInvalidRating)
		require.Zero(t, amount)
	})

	t.Run("zero ceiling is rejected", func(t *testing.T) {
		amount, err := PaymentForRating(5, 0)
		require.ErrorIs(t, err, ErrMaxPaymentZero)
		require.Zero(t, amount)
	})

	t.Run("linear scaling", func(t *testing.T) {
		amount, err := PaymentForRating(5, 10_000_000)
		require.NoError(t, err)
		require.EqualValues(t, 5_000_000, amount)
	})

	t.Run("full rating pays the ceiling", func(t *testing.T) {
		amount, err := PaymentForRating(RatingMax, 12_345)
		require.NoError(t, err)
		require.EqualValues(t, 12_345, amount)
	})

	t.Run("floor is raised to one", func(t *testing.T) {
		// 5 * 1 / 10 would floor to zero but every valid rating pays
		amount, err := PaymentForRating(1, 5)
		require.NoError(t, err)
		require.EqualValues(t, 1, amount)
	})

	t.Run("monotonic, positive and capped", func(t *testing.T) {
		for _, maxPayment := range []uint64{1, 3, 10, 999, 10_000_000, math.MaxUint64} {
			prev := uint64(0)
			for rating := RatingMin; rating <= RatingMax; rating++ {
				amount, err := PaymentForRating(rating, maxPayment)
				require.NoError(t, err)
				require.Positive(t, amount)
				require.LessOrEqual(t, amount, maxPayment)
				require.GreaterOrEqual(t, amount, prev)
				prev = amount
			}
			require.Equal(t, maxPayment, prev, "rating %d must pay the ceiling", RatingMax)
		}
	})
}
