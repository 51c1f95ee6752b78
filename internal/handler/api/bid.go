package api

import (
	"errors"
	"net/http"

	"car-auction/internal/domain/auction"
	"car-auction/internal/domain/bid"
	reqdto "car-auction/internal/handler/dto/request"
	resdto "car-auction/internal/handler/dto/response"
	"car-auction/internal/handler/httperr"
	"car-auction/internal/handler/middleware"
	"car-auction/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidUseCase usecase.BidUseCase
}

func NewBidHandler(bidUseCase usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

// @Summary Place bid
// @Description Submit a bid on an active auction
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceBidRequest true "Bid request"
// @Success 201 {object} resdto.PlaceBidResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bids [post]
func (h *BidHandler) PlaceBid(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.bidUseCase.PlaceBid(c.Request.Context(), req.AuctionID, dealerID, req.AmountCents)
	if err != nil {
		h.writeAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPlaceBidResult(result))
}

// @Summary Get bid
// @Description Get a single bid by ID
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bid ID"
// @Success 200 {object} resdto.BidResponse
// @Failure 404 {object} httperr.Response
// @Router /bids/{id} [get]
func (h *BidHandler) GetBid(c *gin.Context) {
	bidID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.bidUseCase.GetBid(c.Request.Context(), bidID)
	if err != nil {
		if errors.Is(err, usecase.ErrBidNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBidRM(rm))
}

// @Summary Withdraw bid
// @Description Withdraw an accepted bid; the ledger entry is retained
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bid ID"
// @Success 200 {object} resdto.BidResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bids/{id} [delete]
func (h *BidHandler) WithdrawBid(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	bidID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.bidUseCase.WithdrawBid(c.Request.Context(), bidID, dealerID)
	if err != nil {
		h.writeWithdrawError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBidRM(rm))
}

// @Summary Resubmit bid
// @Description Withdraw an accepted bid and submit a replacement amount
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bid ID"
// @Param request body reqdto.ResubmitBidRequest true "Replacement amount"
// @Success 200 {object} resdto.PlaceBidResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bids/{id} [put]
func (h *BidHandler) ResubmitBid(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	bidID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ResubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.bidUseCase.ResubmitBid(c.Request.Context(), bidID, dealerID, req.AmountCents)
	if err != nil {
		h.writeWithdrawError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlaceBidResult(result))
}

// @Summary List auction bids
// @Description List the full bid history of an auction in placement order
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} map[string][]resdto.BidResponse
// @Router /auctions/{id}/bids [get]
func (h *BidHandler) GetAuctionBids(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	bids, err := h.bidUseCase.GetAuctionBids(c.Request.Context(), auctionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": resdto.FromBidRMs(bids)})
}

// @Summary Get highest bid
// @Description Get the standing high bid of an auction
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.HighestBidResponse
// @Router /auctions/{id}/bids/highest [get]
func (h *BidHandler) GetHighestBid(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.bidUseCase.GetHighestBid(c.Request.Context(), auctionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.HighestBidResponse{
		AuctionID: auctionID,
		Bid:       resdto.FromBidRM(rm),
	})
}

// @Summary List own bids
// @Description List the authenticated dealer's bids, newest first
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.BidResponse
// @Router /dealers/me/bids [get]
func (h *BidHandler) GetMyBids(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	bids, err := h.bidUseCase.GetDealerBids(c.Request.Context(), dealerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": resdto.FromBidRMs(bids)})
}

// writeAdmissionError maps guard rejections and admission failures onto
// HTTP statuses. Guard rejections are 422: the request was well-formed but
// the auction state refused it.
func (h *BidHandler) writeAdmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAuctionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Auction not found", nil)
	case errors.Is(err, usecase.ErrDealerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Dealer not found", nil)
	case errors.Is(err, bid.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
	case errors.Is(err, auction.ErrAuctionNotActive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Auction not active", nil)
	case errors.Is(err, auction.ErrAuctionExpired):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Auction expired", nil)
	case errors.Is(err, auction.ErrBidTooLow):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Bid too low", nil)
	case errors.Is(err, auction.ErrSelfBiddingForbidden):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cannot bid on own listing", nil)
	case errors.Is(err, usecase.ErrAdmissionContention):
		httperr.AbortWithError(c, http.StatusConflict, err, "Bidding contention, retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func (h *BidHandler) writeWithdrawError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBidNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, usecase.ErrBidNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, usecase.ErrBidNotWithdrawable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Bid not withdrawable", nil)
	default:
		h.writeAdmissionError(c, err)
	}
}
