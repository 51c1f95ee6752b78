package bid

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("bid amount must be positive")
	ErrMissingReason   = errors.New("rejected bid requires a reason")
	ErrNotWithdrawable = errors.New("only accepted bids can be withdrawn")
	ErrInvalidOutcome  = errors.New("invalid bid outcome")
	ErrForeignWithdraw = errors.New("bid belongs to another dealer")
)

// Bid is a single ledger entry: one dealer's offer against one auction at
// one instant, with the admission outcome already decided. Entries are
// immutable once recorded; the only permitted change is the terminal
// accepted -> withdrawn flip, which keeps the row in the ledger for audit.
type Bid struct {
	id           uuid.UUID
	auctionID    uuid.UUID
	dealerID     uuid.UUID
	amountCents  int64
	outcome      Outcome
	rejectReason RejectReason
	placedAt     time.Time
	createdAt    time.Time
}

func NewAccepted(auctionID, dealerID uuid.UUID, amountCents int64, placedAt time.Time) (*Bid, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Bid{
		id:          uuid.New(),
		auctionID:   auctionID,
		dealerID:    dealerID,
		amountCents: amountCents,
		outcome:     OutcomeAccepted,
		placedAt:    placedAt,
	}, nil
}

func NewRejected(auctionID, dealerID uuid.UUID, amountCents int64, reason RejectReason, placedAt time.Time) (*Bid, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if reason == RejectReasonNone {
		return nil, ErrMissingReason
	}
	return &Bid{
		id:           uuid.New(),
		auctionID:    auctionID,
		dealerID:     dealerID,
		amountCents:  amountCents,
		outcome:      OutcomeRejected,
		rejectReason: reason,
		placedAt:     placedAt,
	}, nil
}

func ReconstructBid(
	id, auctionID, dealerID uuid.UUID,
	amountCents int64,
	outcome Outcome,
	rejectReason RejectReason,
	placedAt, createdAt time.Time,
) (*Bid, error) {
	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}
	return &Bid{
		id:           id,
		auctionID:    auctionID,
		dealerID:     dealerID,
		amountCents:  amountCents,
		outcome:      outcome,
		rejectReason: rejectReason,
		placedAt:     placedAt,
		createdAt:    createdAt,
	}, nil
}

func (b *Bid) ID() uuid.UUID              { return b.id }
func (b *Bid) AuctionID() uuid.UUID       { return b.auctionID }
func (b *Bid) DealerID() uuid.UUID        { return b.dealerID }
func (b *Bid) AmountCents() int64         { return b.amountCents }
func (b *Bid) Outcome() Outcome           { return b.outcome }
func (b *Bid) RejectReason() RejectReason { return b.rejectReason }
func (b *Bid) PlacedAt() time.Time        { return b.placedAt }
func (b *Bid) CreatedAt() time.Time       { return b.createdAt }

func (b *Bid) IsAccepted() bool {
	return b.outcome == OutcomeAccepted
}

// Withdraw flips an accepted bid to the withdrawn terminal state. The
// caller must be the bidding dealer.
func (b *Bid) Withdraw(dealerID uuid.UUID) error {
	if b.dealerID != dealerID {
		return ErrForeignWithdraw
	}
	if b.outcome != OutcomeAccepted {
		return ErrNotWithdrawable
	}
	b.outcome = OutcomeWithdrawn
	return nil
}
