package usecase

import (
	"context"
	"errors"

	"car-auction/internal/domain/dealer"
	"car-auction/internal/infra"
	"car-auction/internal/pkg/errs"
	"car-auction/internal/pkg/jwt"
	"car-auction/internal/pkg/password"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type DealerRepository interface {
	Create(ctx context.Context, d *dealer.Dealer) (*readmodel.DealerRM, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.DealerRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DealerRM, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*readmodel.DealerRM, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, name, email, rawPassword string) (*jwt.TokenPair, *readmodel.DealerRM, error)
	Login(ctx context.Context, email, rawPassword string) (*jwt.TokenPair, *readmodel.DealerRM, error)
	Refresh(refreshToken string) (*jwt.TokenPair, error)
	GetCurrentDealer(ctx context.Context, dealerID uuid.UUID) (*readmodel.DealerRM, error)
}

type authUseCaseImpl struct {
	dealerRepo DealerRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(dealerRepo DealerRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		dealerRepo: dealerRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, name, email, rawPassword string) (*jwt.TokenPair, *readmodel.DealerRM, error) {
	dealerName, err := dealer.NewName(name)
	if err != nil {
		return nil, nil, err
	}
	creds, err := dealer.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, nil, err
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to hash password")
	}

	entity := dealer.NewDealer(dealerName, creds.Email(), hash)
	rm, err := a.dealerRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, errs.Wrap(err, "failed to create dealer")
	}

	tokens, err := a.jwtService.GenerateTokenPair(rm.ID)
	if err != nil {
		return nil, nil, ErrTokenGeneration
	}
	return tokens, rm, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*jwt.TokenPair, *readmodel.DealerRM, error) {
	creds, err := dealer.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	rm, hash, err := a.dealerRepo.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrDealerNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to find dealer")
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := a.jwtService.GenerateTokenPair(rm.ID)
	if err != nil {
		return nil, nil, ErrTokenGeneration
	}

	if err := a.dealerRepo.UpdateLastLogin(ctx, rm.ID); err != nil {
		return nil, nil, errs.Wrap(err, "failed to update last login")
	}

	return tokens, rm, nil
}

func (a *authUseCaseImpl) Refresh(refreshToken string) (*jwt.TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, ErrTokenValidation
	}

	tokens, err := a.jwtService.GenerateTokenPair(claims.DealerID)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return tokens, nil
}

func (a *authUseCaseImpl) GetCurrentDealer(ctx context.Context, dealerID uuid.UUID) (*readmodel.DealerRM, error) {
	rm, err := a.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealerNotFound
		}
		return nil, errs.Wrap(err, "failed to find dealer")
	}
	return rm, nil
}
