package request

import "github.com/google/uuid"

type PlaceBidRequest struct {
	AuctionID   uuid.UUID `json:"auction_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
}

// ResubmitBidRequest replaces an accepted bid with a new amount. The old
// entry is withdrawn and a fresh bid goes through admission.
type ResubmitBidRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}
