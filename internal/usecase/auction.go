package usecase

import (
	"context"

	"car-auction/internal/infra"
	"car-auction/internal/pkg/errs"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AuctionQueryRepository interface {
	FindRMByID(ctx context.Context, id uuid.UUID) (*readmodel.AuctionRM, error)
}

type AuctionUseCase interface {
	GetAuction(ctx context.Context, id uuid.UUID) (*readmodel.AuctionRM, error)
}

type auctionUseCaseImpl struct {
	queryRepo AuctionQueryRepository
}

func NewAuctionUseCase(queryRepo AuctionQueryRepository) AuctionUseCase {
	return &auctionUseCaseImpl{queryRepo: queryRepo}
}

func (u *auctionUseCaseImpl) GetAuction(ctx context.Context, id uuid.UUID) (*readmodel.AuctionRM, error) {
	rm, err := u.queryRepo.FindRMByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Wrap(err, "failed to find auction")
	}
	return rm, nil
}
