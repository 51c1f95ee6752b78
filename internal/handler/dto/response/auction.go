package response

import (
	"time"

	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuctionResponse struct {
	ID                 uuid.UUID `json:"id"`
	CarID              uuid.UUID `json:"car_id"`
	ListingDealerID    uuid.UUID `json:"listing_dealer_id"`
	Status             string    `json:"status"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	StartingPriceCents int64     `json:"starting_price_cents"`
	MinIncrementCents  int64     `json:"min_increment_cents"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type AuctionListResponse struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"car_id"`
	CarMake   string    `json:"car_make"`
	CarModel  string    `json:"car_model"`
	CarYear   int       `json:"car_year"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	JoinedAt  time.Time `json:"joined_at"`
}

func FromAuctionRM(rm *readmodel.AuctionRM) *AuctionResponse {
	if rm == nil {
		return nil
	}

	var resp AuctionResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil
	}
	return &resp
}

func FromAuctionListRMs(rms []*readmodel.AuctionListRM) []*AuctionListResponse {
	responses := make([]*AuctionListResponse, 0, len(rms))
	for _, rm := range rms {
		var resp AuctionListResponse
		if err := copier.Copy(&resp, rm); err != nil {
			continue
		}
		responses = append(responses, &resp)
	}
	return responses
}
