package response

import (
	"time"

	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID          uuid.UUID `json:"id"`
	DealerID    uuid.UUID `json:"dealer_id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCarRM(rm *readmodel.CarRM) *CarResponse {
	if rm == nil {
		return nil
	}

	var resp CarResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil
	}
	return &resp
}
