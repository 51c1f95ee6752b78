package usecase

import (
	"context"
	"errors"

	"car-auction/internal/domain/auction"
	"car-auction/internal/domain/dealer"
	"car-auction/internal/infra"
	"car-auction/internal/pkg/errs"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAlreadyJoined      = errors.New("dealer already joined this auction")
	ErrAuctionNotJoinable = errors.New("can only join active auctions")
)

type DealerUseCase interface {
	UpdateProfile(ctx context.Context, dealerID uuid.UUID, name string) (*readmodel.DealerRM, error)
	GetAuctions(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.AuctionListRM, error)
	JoinAuction(ctx context.Context, dealerID, auctionID uuid.UUID) error
}

type dealerUseCaseImpl struct {
	dealerRepo  DealerRepository
	auctionRepo AuctionRepository
}

func NewDealerUseCase(dealerRepo DealerRepository, auctionRepo AuctionRepository) DealerUseCase {
	return &dealerUseCaseImpl{
		dealerRepo:  dealerRepo,
		auctionRepo: auctionRepo,
	}
}

func (d *dealerUseCaseImpl) UpdateProfile(ctx context.Context, dealerID uuid.UUID, name string) (*readmodel.DealerRM, error) {
	dealerName, err := dealer.NewName(name)
	if err != nil {
		return nil, err
	}

	rm, err := d.dealerRepo.UpdateName(ctx, dealerID, dealerName.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealerNotFound
		}
		return nil, errs.Wrap(err, "failed to update dealer profile")
	}
	return rm, nil
}

func (d *dealerUseCaseImpl) GetAuctions(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.AuctionListRM, error) {
	auctions, err := d.auctionRepo.FindByDealer(ctx, dealerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list dealer auctions")
	}
	return auctions, nil
}

func (d *dealerUseCaseImpl) JoinAuction(ctx context.Context, dealerID, auctionID uuid.UUID) error {
	a, err := d.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAuctionNotFound
		}
		return errs.Wrap(err, "failed to load auction")
	}

	if a.Status() != auction.StatusActive {
		return ErrAuctionNotJoinable
	}

	if err := d.auctionRepo.Join(ctx, auctionID, dealerID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrAlreadyJoined
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrDealerNotFound
		default:
			return errs.Wrap(err, "failed to join auction")
		}
	}
	return nil
}
