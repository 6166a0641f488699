package escrow

import "math/bits"

const (
	// RatingMin is the lowest accepted rating. Zero is rejected as an input
	// entirely, a rating of one still pays.
	RatingMin uint8 = 1
	// RatingMax is the rating that pays the full ceiling.
	RatingMax uint8 = 10
)

/*
PaymentForRating maps a rating and the chore's payment ceiling to the amount
actually transferred: floor(maxPayment * rating / RatingMax), raised to one
when the floor yields zero so that every valid rating pays a nonzero amount.

The mapping is monotonic non-decreasing in rating, never exceeds maxPayment
and pays exactly maxPayment for RatingMax. The multiplication runs on a
128-bit intermediate, the result fits uint64 for any input.
*/
func PaymentForRating(rating uint8, maxPayment uint64) (uint64, error) {
	if rating < RatingMin || rating > RatingMax {
		return 0, ErrInvalidRating
	}
	if maxPayment == 0 {
		return 0, ErrMaxPaymentZero
	}
	// hi < RatingMax holds for any maxPayment, so Div64 cannot panic and the
	// quotient fits
	hi, lo := bits.Mul64(maxPayment, uint64(rating))
	amount, _ := bits.Div64(hi, lo, uint64(RatingMax))
	if amount == 0 {
		amount = 1
	}
	return amount, nil
}
