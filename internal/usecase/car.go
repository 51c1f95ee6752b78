package usecase

import (
	"context"
	"errors"

	"car-auction/internal/domain/car"
	"car-auction/internal/infra"
	"car-auction/internal/pkg/errs"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrCarNotOwned = errors.New("car belongs to another dealer")
	ErrCarInUse    = errors.New("car is referenced by an auction")
)

type CarRepository interface {
	Create(ctx context.Context, c *car.Car) (*readmodel.CarRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error)
	Update(ctx context.Context, c *car.Car) (*readmodel.CarRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCarParams struct {
	Make        string
	Model       string
	Year        int
	Description string
}

type CarUseCase interface {
	CreateCar(ctx context.Context, dealerID uuid.UUID, params CreateCarParams) (*readmodel.CarRM, error)
	GetCar(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error)
	UpdateCar(ctx context.Context, id, dealerID uuid.UUID, params CreateCarParams) (*readmodel.CarRM, error)
	DeleteCar(ctx context.Context, id, dealerID uuid.UUID) error
}

type carUseCaseImpl struct {
	carRepo CarRepository
}

func NewCarUseCase(carRepo CarRepository) CarUseCase {
	return &carUseCaseImpl{carRepo: carRepo}
}

func (u *carUseCaseImpl) CreateCar(ctx context.Context, dealerID uuid.UUID, params CreateCarParams) (*readmodel.CarRM, error) {
	entity, err := car.NewCar(dealerID, params.Make, params.Model, params.Year, params.Description)
	if err != nil {
		return nil, err
	}

	rm, err := u.carRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrDealerNotFound
		}
		return nil, errs.Wrap(err, "failed to create car")
	}
	return rm, nil
}

func (u *carUseCaseImpl) GetCar(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error) {
	rm, err := u.carRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to find car")
	}
	return rm, nil
}

func (u *carUseCaseImpl) UpdateCar(ctx context.Context, id, dealerID uuid.UUID, params CreateCarParams) (*readmodel.CarRM, error) {
	entity, err := u.loadOwned(ctx, id, dealerID)
	if err != nil {
		return nil, err
	}

	if err := entity.Update(params.Make, params.Model, params.Year, params.Description); err != nil {
		return nil, err
	}

	rm, err := u.carRepo.Update(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to update car")
	}
	return rm, nil
}

func (u *carUseCaseImpl) DeleteCar(ctx context.Context, id, dealerID uuid.UUID) error {
	if _, err := u.loadOwned(ctx, id, dealerID); err != nil {
		return err
	}

	if err := u.carRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCarNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCarInUse
		default:
			return errs.Wrap(err, "failed to delete car")
		}
	}
	return nil
}

func (u *carUseCaseImpl) loadOwned(ctx context.Context, id, dealerID uuid.UUID) (*car.Car, error) {
	rm, err := u.carRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to find car")
	}
	if rm.DealerID != dealerID {
		return nil, ErrCarNotOwned
	}

	return car.ReconstructCar(
		rm.ID, rm.DealerID,
		rm.Make, rm.Model, rm.Year, rm.Description,
		rm.CreatedAt, rm.UpdatedAt,
	), nil
}
