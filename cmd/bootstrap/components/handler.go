package components

import (
	"car-auction/internal/handler"
	"car-auction/internal/handler/api"
	"car-auction/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDealerHandler,
		api.NewCarHandler,
		api.NewAuctionHandler,
		api.NewBidHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	dealer *api.DealerHandler,
	car *api.CarHandler,
	auction *api.AuctionHandler,
	bid *api.BidHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Dealer:  dealer,
		Car:     car,
		Auction: auction,
		Bid:     bid,
	}
}
