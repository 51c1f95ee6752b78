//go:build unit || e2e

package builder

import (
	"time"

	dombid "car-auction/internal/domain/bid"
	reqdto "car-auction/internal/handler/dto/request"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BidBuilder struct {
	ID           uuid.UUID
	AuctionID    uuid.UUID
	DealerID     uuid.UUID
	AmountCents  int64
	Outcome      dombid.Outcome
	RejectReason dombid.RejectReason
	PlacedAt     time.Time
	CreatedAt    time.Time
}

func NewBidBuilder() *BidBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BidBuilder{
		ID:          uuid.New(),
		AuctionID:   uuid.New(),
		DealerID:    uuid.New(),
		AmountCents: 105_00,
		Outcome:     dombid.OutcomeAccepted,
		PlacedAt:    now,
		CreatedAt:   now,
	}
}

func (b *BidBuilder) With(mutate func(*BidBuilder)) *BidBuilder {
	mutate(b)
	return b
}

func (b *BidBuilder) BuildDomain() (*dombid.Bid, error) {
	if b.Outcome == dombid.OutcomeRejected {
		return dombid.NewRejected(b.AuctionID, b.DealerID, b.AmountCents, b.RejectReason, b.PlacedAt)
	}
	return dombid.NewAccepted(b.AuctionID, b.DealerID, b.AmountCents, b.PlacedAt)
}

func (b *BidBuilder) BuildReconstructed() (*dombid.Bid, error) {
	return dombid.ReconstructBid(
		b.ID, b.AuctionID, b.DealerID,
		b.AmountCents, b.Outcome, b.RejectReason,
		b.PlacedAt, b.CreatedAt,
	)
}

func (b *BidBuilder) BuildRM() *readmodel.BidRM {
	rm := &readmodel.BidRM{
		ID:          b.ID,
		AuctionID:   b.AuctionID,
		DealerID:    b.DealerID,
		AmountCents: b.AmountCents,
		Outcome:     b.Outcome.String(),
		PlacedAt:    b.PlacedAt,
		CreatedAt:   b.CreatedAt,
	}
	if b.RejectReason != dombid.RejectReasonNone {
		s := b.RejectReason.String()
		rm.RejectReason = &s
	}
	return rm
}

func (b *BidBuilder) BuildPlaceRequestDTO() reqdto.PlaceBidRequest {
	return reqdto.PlaceBidRequest{
		AuctionID:   b.AuctionID,
		AmountCents: b.AmountCents,
	}
}

// Fluent builder methods
func (b *BidBuilder) WithID(id uuid.UUID) *BidBuilder {
	b.ID = id
	return b
}

func (b *BidBuilder) WithAuctionID(auctionID uuid.UUID) *BidBuilder {
	b.AuctionID = auctionID
	return b
}

func (b *BidBuilder) WithDealerID(dealerID uuid.UUID) *BidBuilder {
	b.DealerID = dealerID
	return b
}

func (b *BidBuilder) WithAmountCents(cents int64) *BidBuilder {
	b.AmountCents = cents
	return b
}

func (b *BidBuilder) WithPlacedAt(t time.Time) *BidBuilder {
	b.PlacedAt = t
	return b
}

func (b *BidBuilder) AsRejected(reason dombid.RejectReason) *BidBuilder {
	b.Outcome = dombid.OutcomeRejected
	b.RejectReason = reason
	return b
}

func (b *BidBuilder) AsWithdrawn() *BidBuilder {
	b.Outcome = dombid.OutcomeWithdrawn
	return b
}
