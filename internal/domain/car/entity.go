package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMake  = errors.New("car make is required")
	ErrInvalidModel = errors.New("car model is required")
	ErrInvalidYear  = errors.New("car year is out of range")
)

const (
	MinYear = 1900
	MaxYear = 2100
)

// Car is a dealer's listing record. Auctions reference a car; the bidding
// core itself never inspects car attributes.
type Car struct {
	id          uuid.UUID
	dealerID    uuid.UUID
	make        string
	model       string
	year        int
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCar(dealerID uuid.UUID, make, model string, year int, description string) (*Car, error) {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)

	if make == "" {
		return nil, ErrInvalidMake
	}
	if model == "" {
		return nil, ErrInvalidModel
	}
	if year < MinYear || year > MaxYear {
		return nil, ErrInvalidYear
	}

	return &Car{
		id:          uuid.New(),
		dealerID:    dealerID,
		make:        make,
		model:       model,
		year:        year,
		description: strings.TrimSpace(description),
	}, nil
}

func ReconstructCar(
	id, dealerID uuid.UUID,
	make, model string,
	year int,
	description string,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:          id,
		dealerID:    dealerID,
		make:        make,
		model:       model,
		year:        year,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Car) ID() uuid.UUID        { return c.id }
func (c *Car) DealerID() uuid.UUID  { return c.dealerID }
func (c *Car) Make() string         { return c.make }
func (c *Car) Model() string        { return c.model }
func (c *Car) Year() int            { return c.year }
func (c *Car) Description() string  { return c.description }
func (c *Car) CreatedAt() time.Time { return c.createdAt }
func (c *Car) UpdatedAt() time.Time { return c.updatedAt }

func (c *Car) IsOwnedBy(dealerID uuid.UUID) bool {
	return c.dealerID == dealerID
}

func (c *Car) Update(make, model string, year int, description string) error {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)

	if make == "" {
		return ErrInvalidMake
	}
	if model == "" {
		return ErrInvalidModel
	}
	if year < MinYear || year > MaxYear {
		return ErrInvalidYear
	}

	c.make = make
	c.model = model
	c.year = year
	c.description = strings.TrimSpace(description)
	return nil
}
