//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"car-auction/internal/domain/auction"
	"car-auction/internal/domain/bid"
	"car-auction/internal/handler/api"
	resdto "car-auction/internal/handler/dto/response"
	"car-auction/internal/usecase"
	"car-auction/internal/usecase/readmodel"
	"car-auction/tests/common/builder"
	"car-auction/tests/common/httptest"
	"car-auction/tests/common/testutil"
	usecasemock "car-auction/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BidHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockBids *usecasemock.MockBidUseCase
	handler  *api.BidHandler
	dealerID uuid.UUID
}

func (s *BidHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBids = usecasemock.NewMockBidUseCase(s.mockCtrl)
	s.handler = api.NewBidHandler(s.mockBids)
	s.dealerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("dealer_id", s.dealerID)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bids", authMiddleware, s.handler.PlaceBid)
	s.router.GET("/bids/:id", authMiddleware, s.handler.GetBid)
	s.router.PUT("/bids/:id", authMiddleware, s.handler.ResubmitBid)
	s.router.DELETE("/bids/:id", authMiddleware, s.handler.WithdrawBid)
	s.router.GET("/auctions/:id/bids", authMiddleware, s.handler.GetAuctionBids)
	s.router.GET("/auctions/:id/bids/highest", authMiddleware, s.handler.GetHighestBid)
	s.router.GET("/dealers/me/bids", authMiddleware, s.handler.GetMyBids)
}

func (s *BidHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBidHandlerSuite(t *testing.T) {
	suite.Run(t, new(BidHandlerTestSuite))
}

// ================================================================================
// TestPlaceBid
// ================================================================================

func (s *BidHandlerTestSuite) TestPlaceBid() {
	url := "/bids"

	auctionID := uuid.New()
	reqBody := builder.NewBidBuilder().WithAuctionID(auctionID).BuildPlaceRequestDTO()
	acceptedRM := builder.NewBidBuilder().
		WithAuctionID(auctionID).
		WithDealerID(s.dealerID).
		WithAmountCents(reqBody.AmountCents).
		BuildRM()
	result := &usecase.PlaceBidResult{Bid: acceptedRM, CurrentHigh: acceptedRM}

	s.Run("success: returns 201 Created with bid and current high", func() {
		s.mockBids.EXPECT().PlaceBid(gomock.Any(), auctionID, s.dealerID, reqBody.AmountCents).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PlaceBidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(acceptedRM.ID, response.Bid.ID)
		s.Equal(acceptedRM.AmountCents, response.Bid.AmountCents)
		s.Equal("accepted", response.Bid.Outcome)
		s.Equal(acceptedRM.ID, response.CurrentHigh.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: auction_id", mutate: testutil.Field("auction_id", nil)},
			{name: "missing field: amount_cents", mutate: testutil.Field("amount_cents", nil)},
			{name: "zero amount", mutate: testutil.Field("amount_cents", 0)},
			{name: "negative amount", mutate: testutil.Field("amount_cents", -100)},
			{name: "malformed auction id", mutate: testutil.Field("auction_id", "not-a-uuid")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps admission errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "auction not found",
				usecaseError:   usecase.ErrAuctionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Auction not found",
			},
			{
				name:           "auction not active",
				usecaseError:   auction.ErrAuctionNotActive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Auction not active",
			},
			{
				name:           "auction expired",
				usecaseError:   auction.ErrAuctionExpired,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Auction expired",
			},
			{
				name:           "bid too low",
				usecaseError:   auction.ErrBidTooLow,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Bid too low",
			},
			{
				name:           "self bidding",
				usecaseError:   auction.ErrSelfBiddingForbidden,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Cannot bid on own listing",
			},
			{
				name:           "invalid amount",
				usecaseError:   bid.ErrInvalidAmount,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid amount",
			},
			{
				name:           "admission contention",
				usecaseError:   usecase.ErrAdmissionContention,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "contention",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBids.EXPECT().PlaceBid(gomock.Any(), auctionID, s.dealerID, reqBody.AmountCents).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBid
// ================================================================================

func (s *BidHandlerTestSuite) TestGetBid() {
	bidID := uuid.New()
	url := "/bids/" + bidID.String()

	returnRM := builder.NewBidBuilder().WithID(bidID).BuildRM()

	s.Run("success: returns 200 OK with BidResponse", func() {
		s.mockBids.EXPECT().GetBid(gomock.Any(), bidID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bidID, response.ID)
		s.Equal(returnRM.AmountCents, response.AmountCents)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bids/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing bid", func() {
		s.mockBids.EXPECT().GetBid(gomock.Any(), bidID).
			Return(nil, usecase.ErrBidNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestWithdrawBid
// ================================================================================

func (s *BidHandlerTestSuite) TestWithdrawBid() {
	bidID := uuid.New()
	url := "/bids/" + bidID.String()

	withdrawnRM := builder.NewBidBuilder().WithID(bidID).AsWithdrawn().BuildRM()

	s.Run("success: returns 200 OK with withdrawn entry", func() {
		s.mockBids.EXPECT().WithdrawBid(gomock.Any(), bidID, s.dealerID).
			Return(withdrawnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.BidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bidID, response.ID)
		s.Equal("withdrawn", response.Outcome)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps withdraw errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "bid not found",
				usecaseError:   usecase.ErrBidNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "bid owned by another dealer",
				usecaseError:   usecase.ErrBidNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "bid not withdrawable",
				usecaseError:   usecase.ErrBidNotWithdrawable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Bid not withdrawable",
			},
			{
				name:           "auction expired during withdraw",
				usecaseError:   auction.ErrAuctionExpired,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Auction expired",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBids.EXPECT().WithdrawBid(gomock.Any(), bidID, s.dealerID).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestResubmitBid
// ================================================================================

func (s *BidHandlerTestSuite) TestResubmitBid() {
	bidID := uuid.New()
	url := "/bids/" + bidID.String()

	replacementRM := builder.NewBidBuilder().WithAmountCents(150_00).BuildRM()
	result := &usecase.PlaceBidResult{Bid: replacementRM, CurrentHigh: replacementRM}
	reqBody := map[string]any{"amount_cents": 150_00}

	s.Run("success: returns 200 OK with replacement bid", func() {
		s.mockBids.EXPECT().ResubmitBid(gomock.Any(), bidID, s.dealerID, int64(150_00)).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.PlaceBidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(replacementRM.ID, response.Bid.ID)
		s.Equal(int64(150_00), response.Bid.AmountCents)
	})

	s.Run("error: 400 Bad Request for missing amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 when replacement does not beat remaining high", func() {
		s.mockBids.EXPECT().ResubmitBid(gomock.Any(), bidID, s.dealerID, int64(150_00)).
			Return(nil, auction.ErrBidTooLow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Bid too low")
	})
}

// ================================================================================
// TestGetHighestBid
// ================================================================================

func (s *BidHandlerTestSuite) TestGetHighestBid() {
	auctionID := uuid.New()
	url := "/auctions/" + auctionID.String() + "/bids/highest"

	s.Run("success: returns 200 OK with high bid", func() {
		highRM := builder.NewBidBuilder().WithAuctionID(auctionID).WithAmountCents(230_00).BuildRM()
		s.mockBids.EXPECT().GetHighestBid(gomock.Any(), auctionID).
			Return(highRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.HighestBidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(auctionID, response.AuctionID)
		s.Require().NotNil(response.Bid)
		s.Equal(int64(230_00), response.Bid.AmountCents)
	})

	s.Run("success: bid is null when no accepted bids exist", func() {
		s.mockBids.EXPECT().GetHighestBid(gomock.Any(), auctionID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.HighestBidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Bid)
	})
}

// ================================================================================
// TestGetAuctionBids
// ================================================================================

func (s *BidHandlerTestSuite) TestGetAuctionBids() {
	auctionID := uuid.New()
	url := "/auctions/" + auctionID.String() + "/bids"

	s.Run("success: returns full history including rejected entries", func() {
		accepted := builder.NewBidBuilder().WithAuctionID(auctionID).BuildRM()
		rejected := builder.NewBidBuilder().WithAuctionID(auctionID).AsRejected(bid.RejectReasonTooLow).BuildRM()

		s.mockBids.EXPECT().GetAuctionBids(gomock.Any(), auctionID).
			Return([]*readmodel.BidRM{accepted, rejected}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Bids []*resdto.BidResponse `json:"bids"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bids, 2)
		s.Equal("accepted", response.Bids[0].Outcome)
		s.Equal("rejected", response.Bids[1].Outcome)
		s.Require().NotNil(response.Bids[1].RejectReason)
		s.Equal(string(bid.RejectReasonTooLow), *response.Bids[1].RejectReason)
	})

	s.Run("success: empty history serializes as empty list", func() {
		s.mockBids.EXPECT().GetAuctionBids(gomock.Any(), auctionID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Bids []*resdto.BidResponse `json:"bids"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Bids)
	})
}
