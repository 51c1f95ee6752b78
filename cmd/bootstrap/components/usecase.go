package components

import (
	"car-auction/internal/pkg/clock"
	"car-auction/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewDealerUseCase,
		usecase.NewCarUseCase,
		usecase.NewAuctionUseCase,
		usecase.NewBidUseCase,
		usecase.NewTokenValidator,
	),
)
