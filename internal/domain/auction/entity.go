package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid auction status")
	ErrInvalidTimeBounds    = errors.New("auction end time must not precede start time")
	ErrInvalidStartingPrice = errors.New("starting price must be positive")
	ErrInvalidMinIncrement  = errors.New("minimum increment must be positive")
	ErrStatusTransition     = errors.New("illegal auction status transition")
)

// Auction is the bidding core's read view of a sale. Lifecycle and time
// bounds are owned by the external auction management side; the core only
// reads them, except for the active -> closed transition on expiry.
//
// The current high bid is deliberately absent: it is derived from the bid
// ledger, never stored here (a cached copy would be a second source of
// truth that can desync under concurrent writes).
type Auction struct {
	id                 uuid.UUID
	carID              uuid.UUID
	listingDealerID    uuid.UUID
	status             Status
	startTime          time.Time
	endTime            time.Time
	startingPriceCents int64
	minIncrementCents  int64
	createdAt          time.Time
	updatedAt          time.Time
}

func ReconstructAuction(
	id, carID, listingDealerID uuid.UUID,
	status Status,
	startTime, endTime time.Time,
	startingPriceCents, minIncrementCents int64,
	createdAt, updatedAt time.Time,
) (*Auction, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if endTime.Before(startTime) {
		return nil, ErrInvalidTimeBounds
	}
	if startingPriceCents <= 0 {
		return nil, ErrInvalidStartingPrice
	}
	if minIncrementCents <= 0 {
		return nil, ErrInvalidMinIncrement
	}

	return &Auction{
		id:                 id,
		carID:              carID,
		listingDealerID:    listingDealerID,
		status:             status,
		startTime:          startTime,
		endTime:            endTime,
		startingPriceCents: startingPriceCents,
		minIncrementCents:  minIncrementCents,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (a *Auction) ID() uuid.UUID              { return a.id }
func (a *Auction) CarID() uuid.UUID           { return a.carID }
func (a *Auction) ListingDealerID() uuid.UUID { return a.listingDealerID }
func (a *Auction) Status() Status             { return a.status }
func (a *Auction) StartTime() time.Time       { return a.startTime }
func (a *Auction) EndTime() time.Time         { return a.endTime }
func (a *Auction) StartingPriceCents() int64  { return a.startingPriceCents }
func (a *Auction) MinIncrementCents() int64   { return a.minIncrementCents }
func (a *Auction) CreatedAt() time.Time       { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time       { return a.updatedAt }

func (a *Auction) IsActive() bool {
	return a.status == StatusActive
}

// HasEnded reports whether bidding time is over regardless of the stored
// status. The stored status may lag until ExpireIfDue commits the close.
func (a *Auction) HasEnded(now time.Time) bool {
	return !now.Before(a.endTime)
}

// Close transitions the auction to closed. Closing an already closed
// auction is a no-op so that racing expiry checks stay idempotent.
func (a *Auction) Close() error {
	if a.status == StatusClosed {
		return nil
	}
	if !a.status.CanTransitionTo(StatusClosed) {
		return ErrStatusTransition
	}
	a.status = StatusClosed
	return nil
}
