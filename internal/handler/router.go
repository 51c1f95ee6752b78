package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-auction/internal/handler/api"
	"car-auction/internal/handler/middleware"
	"car-auction/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Dealer  *api.DealerHandler
	Car     *api.CarHandler
	Auction *api.AuctionHandler
	Bid     *api.BidHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		dealers := apiGroup.Group("/dealers")
		dealers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dealers, []route{
				{Method: http.MethodPut, Path: "/me", Handler: h.Dealer.UpdateProfile},
				{Method: http.MethodGet, Path: "/me/auctions", Handler: h.Dealer.GetMyAuctions},
				{Method: http.MethodPost, Path: "/me/auctions", Handler: h.Dealer.JoinAuction},
				{Method: http.MethodGet, Path: "/me/bids", Handler: h.Bid.GetMyBids},
			})
		}

		cars := apiGroup.Group("/cars")
		cars.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cars, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Car.CreateCar},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Car.GetCar},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Car.UpdateCar},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Car.DeleteCar},
			})
		}

		auctions := apiGroup.Group("/auctions")
		auctions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(auctions, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Auction.GetAuction},
				{Method: http.MethodGet, Path: "/:id/bids", Handler: h.Bid.GetAuctionBids},
				{Method: http.MethodGet, Path: "/:id/bids/highest", Handler: h.Bid.GetHighestBid},
			})
		}

		bids := apiGroup.Group("/bids")
		bids.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bids, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bid.PlaceBid},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bid.GetBid},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Bid.ResubmitBid},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Bid.WithdrawBid},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
