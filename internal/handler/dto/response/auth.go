package response

import "car-auction/internal/usecase/readmodel"

type AuthResponse struct {
	AccessToken string              `json:"access_token"`
	Dealer      *readmodel.DealerRM `json:"dealer"`
}
