package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BidRM struct {
	ID           uuid.UUID `json:"id"`
	AuctionID    uuid.UUID `json:"auction_id"`
	DealerID     uuid.UUID `json:"dealer_id"`
	AmountCents  int64     `json:"amount_cents"`
	Outcome      string    `json:"outcome"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	PlacedAt     time.Time `json:"placed_at"`
	CreatedAt    time.Time `json:"created_at"`
}
