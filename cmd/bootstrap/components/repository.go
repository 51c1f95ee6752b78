package components

import (
	"car-auction/internal/infra/repository"
	"car-auction/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewDealerRepository,
			fx.As(new(usecase.DealerRepository)),
		),
		fx.Annotate(
			repository.NewCarRepository,
			fx.As(new(usecase.CarRepository)),
		),
		fx.Annotate(
			repository.NewAuctionRepository,
			fx.As(new(usecase.AuctionRepository)),
			fx.As(new(usecase.AuctionQueryRepository)),
		),
		fx.Annotate(
			repository.NewBidRepository,
			fx.As(new(usecase.BidLedger)),
		),
	),
)
