package escrow

import (
	"bytes"

	"github.com/choreledger/choreledger-go/cbor"
	abhash "github.com/choreledger/choreledger-go/hash"
	"github.com/choreledger/choreledger-go/predicates/templates"
	"github.com/choreledger/choreledger-go/types"
	"github.com/choreledger/choreledger-go/types/hex"
)

const (
	// TitleMaxLength and DescriptionMaxLength bound the opaque text fields,
	// sized after the original account space layout.
	TitleMaxLength       = 100
	DescriptionMaxLength = 200
)

var _ types.RecordData = (*Chore)(nil)

// Chore is the record of a single task: who assigned it, who is expected to
// complete it, the payment ceiling the assigner committed to, and the
// lifecycle stage. The record persists after payment for audit history.
type Chore struct {
	_             struct{}        `cbor:",toarray"`
	Version       types.ABVersion `json:"version"`
	AssignerID    hex.Bytes       `json:"assignerId"`           // guardian that created the chore
	AssigneeID    hex.Bytes       `json:"assigneeId"`           // dependent expected to complete it
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	MaxPayment    uint64          `json:"maxPayment,string"`    // payment ceiling committed at creation
	Status        ChoreStatus     `json:"status"`
	Rating        uint8           `json:"rating"`               // zero until paid
	ActualPayment uint64          `json:"actualPayment,string"` // zero until paid
	CreatedAt     int64           `json:"createdAt,string"`     // unix seconds
	CompletedAt   int64           `json:"completedAt,string"`   // unix seconds, zero until completed
}

// NewChore validates the creation inputs and returns a Pending chore.
func NewChore(assignerID, assigneeID []byte, title, description string, maxPayment uint64, createdAt int64) (*Chore, error) {
	if maxPayment == 0 {
		return nil, ErrMaxPaymentZero
	}
	if len(title) > TitleMaxLength {
		return nil, ErrTitleTooLong
	}
	if len(description) > DescriptionMaxLength {
		return nil, ErrDescriptionTooLong
	}
	return &Chore{
		Version:     1,
		AssignerID:  bytes.Clone(assignerID),
		AssigneeID:  bytes.Clone(assigneeID),
		Title:       title,
		Description: description,
		MaxPayment:  maxPayment,
		Status:      ChoreStatusPending,
		CreatedAt:   createdAt,
	}, nil
}

// Complete transitions Pending -> Completed and stamps the completion time.
func (c *Chore) Complete(completedAt int64) error {
	if c.Status != ChoreStatusPending {
		return ErrInvalidState
	}
	c.Status = ChoreStatusCompleted
	c.CompletedAt = completedAt
	return nil
}

// Pay transitions Completed -> Paid and stamps the rating and the amount
// actually paid. Paid is terminal.
func (c *Chore) Pay(rating uint8, payment uint64) error {
	if c.Status != ChoreStatusCompleted {
		return ErrInvalidState
	}
	c.Status = ChoreStatusPaid
	c.Rating = rating
	c.ActualPayment = payment
	return nil
}

// Cancel transitions Pending -> Cancelled. Cancelled is terminal, a
// cancelled chore can not be completed or paid.
func (c *Chore) Cancel() error {
	if c.Status != ChoreStatusPending {
		return ErrInvalidState
	}
	c.Status = ChoreStatusCancelled
	return nil
}

func (c *Chore) Write(hasher abhash.Hasher) {
	hasher.Write(c)
}

func (c *Chore) Copy() types.RecordData {
	return &Chore{
		Version:       c.Version,
		AssignerID:    bytes.Clone(c.AssignerID),
		AssigneeID:    bytes.Clone(c.AssigneeID),
		Title:         c.Title,
		Description:   c.Description,
		MaxPayment:    c.MaxPayment,
		Status:        c.Status,
		Rating:        c.Rating,
		ActualPayment: c.ActualPayment,
		CreatedAt:     c.CreatedAt,
		CompletedAt:   c.CompletedAt,
	}
}

// Owner returns the rate-and-pay authority of the chore as a P2PKH-256
// predicate over the assigner's key.
func (c *Chore) Owner() []byte {
	return templates.NewP2pkh256BytesFromKey(c.AssignerID)
}

func (c *Chore) GetVersion() types.ABVersion {
	if c != nil && c.Version != 0 {
		return c.Version
	}
	return 1
}

func (c *Chore) MarshalCBOR() ([]byte, error) {
	type alias Chore
	if c.Version == 0 {
		c.Version = c.GetVersion()
	}
	return cbor.Marshal((*alias)(c))
}

func (c *Chore) UnmarshalCBOR(data []byte) error {
	type alias Chore
	if err := cbor.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}
	return types.EnsureVersion(c, c.Version, 1)
}
