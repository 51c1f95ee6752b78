//go:build unit || e2e

package builder

import (
	"time"

	domcar "car-auction/internal/domain/car"
	reqdto "car-auction/internal/handler/dto/request"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID          uuid.UUID
	DealerID    uuid.UUID
	Make        string
	Model       string
	Year        int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCarBuilder() *CarBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &CarBuilder{
		ID:          uuid.New(),
		DealerID:    uuid.New(),
		Make:        "Toyota",
		Model:       "Supra",
		Year:        2020,
		Description: "Single owner, full service history",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) BuildDomain() (*domcar.Car, error) {
	return domcar.NewCar(b.DealerID, b.Make, b.Model, b.Year, b.Description)
}

func (b *CarBuilder) BuildRM() *readmodel.CarRM {
	return &readmodel.CarRM{
		ID:          b.ID,
		DealerID:    b.DealerID,
		Make:        b.Make,
		Model:       b.Model,
		Year:        b.Year,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Make:        b.Make,
		Model:       b.Model,
		Year:        b.Year,
		Description: b.Description,
	}
}

// Fluent builder methods
func (b *CarBuilder) WithDealerID(dealerID uuid.UUID) *CarBuilder {
	b.DealerID = dealerID
	return b
}

func (b *CarBuilder) WithMake(make string) *CarBuilder {
	b.Make = make
	return b
}

func (b *CarBuilder) WithModel(model string) *CarBuilder {
	b.Model = model
	return b
}

func (b *CarBuilder) WithYear(year int) *CarBuilder {
	b.Year = year
	return b
}
