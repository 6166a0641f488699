package escrow

import "fmt"

// ChoreStatus is the lifecycle stage of a chore. Transitions are one-way:
// Pending -> Completed -> Paid, with Cancelled as the alternate terminal
// stage reachable from Pending only.
type ChoreStatus uint8

const (
	ChoreStatusPending ChoreStatus = iota + 1
	ChoreStatusCompleted
	ChoreStatusPaid
	ChoreStatusCancelled
)

func (s ChoreStatus) String() string {
	switch s {
	case ChoreStatusPending:
		return "pending"
	case ChoreStatusCompleted:
		return "completed"
	case ChoreStatusPaid:
		return "paid"
	case ChoreStatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(s))
	}
}

// IsTerminal reports whether the record can never transition again.
func (s ChoreStatus) IsTerminal() bool {
	return s == ChoreStatusPaid || s == ChoreStatusCancelled
}
