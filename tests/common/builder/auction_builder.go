//go:build unit || e2e

package builder

import (
	"time"

	domauction "car-auction/internal/domain/auction"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AuctionBuilder struct {
	ID                 uuid.UUID
	CarID              uuid.UUID
	ListingDealerID    uuid.UUID
	Status             domauction.Status
	StartTime          time.Time
	EndTime            time.Time
	StartingPriceCents int64
	MinIncrementCents  int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &AuctionBuilder{
		ID:                 uuid.New(),
		CarID:              uuid.New(),
		ListingDealerID:    uuid.New(),
		Status:             domauction.StatusActive,
		StartTime:          now.Add(-time.Hour),
		EndTime:            now.Add(time.Hour),
		StartingPriceCents: 100_00,
		MinIncrementCents:  5_00,
		CreatedAt:          now.Add(-2 * time.Hour),
		UpdatedAt:          now.Add(-2 * time.Hour),
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

func (b *AuctionBuilder) BuildDomain() (*domauction.Auction, error) {
	return domauction.ReconstructAuction(
		b.ID, b.CarID, b.ListingDealerID,
		b.Status,
		b.StartTime, b.EndTime,
		b.StartingPriceCents, b.MinIncrementCents,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *AuctionBuilder) BuildRM() *readmodel.AuctionRM {
	return &readmodel.AuctionRM{
		ID:                 b.ID,
		CarID:              b.CarID,
		ListingDealerID:    b.ListingDealerID,
		Status:             b.Status.String(),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		StartingPriceCents: b.StartingPriceCents,
		MinIncrementCents:  b.MinIncrementCents,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *AuctionBuilder) WithID(id uuid.UUID) *AuctionBuilder {
	b.ID = id
	return b
}

func (b *AuctionBuilder) WithCarID(carID uuid.UUID) *AuctionBuilder {
	b.CarID = carID
	return b
}

func (b *AuctionBuilder) WithListingDealerID(dealerID uuid.UUID) *AuctionBuilder {
	b.ListingDealerID = dealerID
	return b
}

func (b *AuctionBuilder) WithStatus(status domauction.Status) *AuctionBuilder {
	b.Status = status
	return b
}

func (b *AuctionBuilder) WithStartTime(t time.Time) *AuctionBuilder {
	b.StartTime = t
	return b
}

func (b *AuctionBuilder) WithEndTime(t time.Time) *AuctionBuilder {
	b.EndTime = t
	return b
}

func (b *AuctionBuilder) WithStartingPriceCents(cents int64) *AuctionBuilder {
	b.StartingPriceCents = cents
	return b
}

func (b *AuctionBuilder) WithMinIncrementCents(cents int64) *AuctionBuilder {
	b.MinIncrementCents = cents
	return b
}

func (b *AuctionBuilder) AsPending() *AuctionBuilder {
	b.Status = domauction.StatusPending
	b.StartTime = time.Now().UTC().Add(time.Hour)
	b.EndTime = time.Now().UTC().Add(2 * time.Hour)
	return b
}

func (b *AuctionBuilder) AsClosed() *AuctionBuilder {
	b.Status = domauction.StatusClosed
	return b
}

func (b *AuctionBuilder) AsCancelled() *AuctionBuilder {
	b.Status = domauction.StatusCancelled
	return b
}

func (b *AuctionBuilder) AsEnded() *AuctionBuilder {
	b.StartTime = time.Now().UTC().Add(-2 * time.Hour)
	b.EndTime = time.Now().UTC().Add(-time.Hour)
	return b
}
