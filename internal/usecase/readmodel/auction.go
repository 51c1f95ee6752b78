package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuctionRM struct {
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

// AuctionListRM is a row of a dealer's joined-auction listing, denormalized
// with the car summary the original listing page showed.
type AuctionListRM struct {
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
