package api

import (
	"errors"
	"net/http"

	"car-auction/internal/domain/dealer"
	reqdto "car-auction/internal/handler/dto/request"
	resdto "car-auction/internal/handler/dto/response"
	"car-auction/internal/handler/httperr"
	"car-auction/internal/handler/middleware"
	"car-auction/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DealerHandler struct {
	dealerUseCase usecase.DealerUseCase
}

func NewDealerHandler(dealerUseCase usecase.DealerUseCase) *DealerHandler {
	return &DealerHandler{
		dealerUseCase: dealerUseCase,
	}
}

// @Summary Update profile
// @Description Update the authenticated dealer's display name
// @Tags dealers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile request"
// @Success 200 {object} readmodel.DealerRM
// @Failure 400 {object} httperr.Response
// @Router /dealers/me [put]
func (h *DealerHandler) UpdateProfile(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.dealerUseCase.UpdateProfile(c.Request.Context(), dealerID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, dealer.ErrInvalidName):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errors.Is(err, usecase.ErrDealerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List joined auctions
// @Description List auctions the authenticated dealer has joined
// @Tags dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.AuctionListResponse
// @Router /dealers/me/auctions [get]
func (h *DealerHandler) GetMyAuctions(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	auctions, err := h.dealerUseCase.GetAuctions(c.Request.Context(), dealerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"auctions": resdto.FromAuctionListRMs(auctions)})
}

// @Summary Join auction
// @Description Register the authenticated dealer as a participant
// @Tags dealers
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.JoinAuctionRequest true "Join request"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dealers/me/auctions [post]
func (h *DealerHandler) JoinAuction(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.JoinAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.dealerUseCase.JoinAuction(c.Request.Context(), dealerID, req.AuctionID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuctionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Auction not found", nil)
		case errors.Is(err, usecase.ErrDealerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dealer not found", nil)
		case errors.Is(err, usecase.ErrAlreadyJoined):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already joined", nil)
		case errors.Is(err, usecase.ErrAuctionNotJoinable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Auction not joinable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
