package request

import "github.com/google/uuid"

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type JoinAuctionRequest struct {
	AuctionID uuid.UUID `json:"auction_id" binding:"required"`
}
