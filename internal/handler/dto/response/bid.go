package response

import (
	"time"

	"car-auction/internal/usecase"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BidResponse struct {
	ID           uuid.UUID `json:"id"`
	AuctionID    uuid.UUID `json:"auction_id"`
	DealerID     uuid.UUID `json:"dealer_id"`
	AmountCents  int64     `json:"amount_cents"`
	Outcome      string    `json:"outcome"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	PlacedAt     time.Time `json:"placed_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type PlaceBidResponse struct {
	Bid         *BidResponse `json:"bid"`
	CurrentHigh *BidResponse `json:"current_high"`
}

// HighestBidResponse reports the standing high bid; Bid is null while the
// auction has no accepted bids.
type HighestBidResponse struct {
	AuctionID uuid.UUID    `json:"auction_id"`
	Bid       *BidResponse `json:"bid"`
}

func FromBidRM(rm *readmodel.BidRM) *BidResponse {
	if rm == nil {
		return nil
	}

	var resp BidResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil
	}
	return &resp
}

func FromBidRMs(rms []*readmodel.BidRM) []*BidResponse {
	responses := make([]*BidResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromBidRM(rm))
	}
	return responses
}

func FromPlaceBidResult(result *usecase.PlaceBidResult) *PlaceBidResponse {
	return &PlaceBidResponse{
		Bid:         FromBidRM(result.Bid),
		CurrentHigh: FromBidRM(result.CurrentHigh),
	}
}
