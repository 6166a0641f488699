package escrow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/choreledger/choreledger-go/cbor"
)

func Test_NewChore(t *testing.T) {
	t.Parallel()

	assignerID := []byte{0x02, 0x0A}
	assigneeID := []byte{0x02, 0x0B}

	t.Run("valid input yields a pending chore", func(t *testing.T) {
		chore, err := NewChore(assignerID, assigneeID, "Clean Room", "vacuum and dust", 10_000_000, 1700000000)
		require.NoError(t, err)
		require.Equal(t, ChoreStatusPending, chore.Status)
		require.EqualValues(t, assignerID, chore.AssignerID)
		require.EqualValues(t, assigneeID, chore.AssigneeID)
		require.EqualValues(t, 10_000_000, chore.MaxPayment)
		require.EqualValues(t, 1700000000, chore.CreatedAt)
		require.Zero(t, chore.Rating)
		require.Zero(t, chore.ActualPayment)
		require.Zero(t, chore.CompletedAt)
	})

	t.Run("zero ceiling is rejected", func(t *testing.T) {
		_, err := NewChore(assignerID, assigneeID, "Clean Room", "", 0, 1700000000)
		require.ErrorIs(t, err, ErrMaxPaymentZero)
	})

	t.Run("oversized title is rejected", func(t *testing.T) {
		_, err := NewChore(assignerID, assigneeID, strings.Repeat("x", TitleMaxLength+1), "", 1, 1700000000)
		require.ErrorIs(t, err, ErrTitleTooLong)
	})

	t.Run("oversized description is rejected", func(t *testing.T) {
		_, err := NewChore(assignerID, assigneeID, "t", strings.Repeat("x", DescriptionMaxLength+1), 1, 1700000000)
		require.ErrorIs(t, err, ErrDescriptionTooLong)
	})
}

func Test_Chore_transitions(t *testing.T) {
	t.Parallel()

	newPending := func(t *testing.T) *Chore {
		chore, err := NewChore([]byte{0x02, 0x0A}, []byte{0x02, 0x0B}, "Clean Room", "", 10_000_000, 1700000000)
		require.NoError(t, err)
		return chore
	}

	t.Run("pending completes", func(t *testing.T) {
		chore := newPending(t)
		require.NoError(t, chore.Complete(1700000100))
		require.Equal(t, ChoreStatusCompleted, chore.Status)
		require.EqualValues(t, 1700000100, chore.CompletedAt)
	})

	t.Run("completed pays and stamps the receipt", func(t *testing.T) {
		chore := newPending(t)
		require.NoError(t, chore.Complete(1700000100))
		require.NoError(t, chore.Pay(5, 5_000_000))
		require.Equal(t, ChoreStatusPaid, chore.Status)
		require.EqualValues(t, 5, chore.Rating)
		require.EqualValues(t, 5_000_000, chore.ActualPayment)
	})

	t.Run("pending cancels", func(t *testing.T) {
		chore := newPending(t)
		require.NoError(t, chore.Cancel())
		require.Equal(t, ChoreStatusCancelled, chore.Status)
	})

	t.Run("transitions are one-way", func(t *testing.T) {
		chore := newPending(t)
		// not completed yet
		require.ErrorIs(t, chore.Pay(5, 1), ErrInvalidState)

		require.NoError(t, chore.Complete(1700000100))
		// re-submission
		require.ErrorIs(t, chore.Complete(1700000200), ErrInvalidState)
		// completed chores can no longer be cancelled
		require.ErrorIs(t, chore.Cancel(), ErrInvalidState)

		require.NoError(t, chore.Pay(5, 5_000_000))
		// paid is terminal
		require.ErrorIs(t, chore.Complete(1700000300), ErrInvalidState)
		require.ErrorIs(t, chore.Pay(6, 1), ErrInvalidState)
		require.ErrorIs(t, chore.Cancel(), ErrInvalidState)
		require.True(t, chore.Status.IsTerminal())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		chore := newPending(t)
		require.NoError(t, chore.Cancel())
		require.ErrorIs(t, chore.Complete(1700000100), ErrInvalidState)
		require.ErrorIs(t, chore.Pay(5, 1), ErrInvalidState)
		require.True(t, chore.Status.IsTerminal())
	})
}

func Test_Chore_CBOR(t *testing.T) {
	t.Parallel()

	chore, err := NewChore([]byte{0x02, 0x0A}, []byte{0x02, 0x0B}, "Clean Room", "vacuum and dust", 10_000_000, 1700000000)
	require.NoError(t, err)
	require.NoError(t, chore.Complete(1700000100))
	require.NoError(t, chore.Pay(7, 7_000_000))

	choreBytes, err := cbor.Marshal(chore)
	require.NoError(t, err)
	newChore := &Chore{}
	require.NoError(t, cbor.Unmarshal(choreBytes, newChore))
	require.Equal(t, chore, newChore)
}

func Test_ChoreStatus_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pending", ChoreStatusPending.String())
	require.Equal(t, "completed", ChoreStatusCompleted.String())
	require.Equal(t, "paid", ChoreStatusPaid.String())
	require.Equal(t, "cancelled", ChoreStatusCancelled.String())
	require.Equal(t, "invalid(0)", ChoreStatus(0).String())
}
