package api

import (
	"errors"
	"net/http"

	resdto "car-auction/internal/handler/dto/response"
	"car-auction/internal/handler/httperr"
	"car-auction/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	auctionUseCase usecase.AuctionUseCase
}

func NewAuctionHandler(auctionUseCase usecase.AuctionUseCase) *AuctionHandler {
	return &AuctionHandler{
		auctionUseCase: auctionUseCase,
	}
}

// @Summary Get auction
// @Description Get an auction snapshot; the high bid is served separately
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 404 {object} httperr.Response
// @Router /auctions/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.auctionUseCase.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuctionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuctionRM(rm))
}
