//go:build unit || e2e

package builder

import (
	"time"

	domdealer "car-auction/internal/domain/dealer"
	reqdto "car-auction/internal/handler/dto/request"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DealerBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewDealerBuilder() *DealerBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &DealerBuilder{
		ID:           uuid.New(),
		Name:         "Prestige Motors",
		Email:        "dealer@example.com",
		Password:     "password123",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *DealerBuilder) With(mutate func(*DealerBuilder)) *DealerBuilder {
	mutate(b)
	return b
}

func (b *DealerBuilder) BuildDomain() (*domdealer.Dealer, error) {
	name, err := domdealer.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := domdealer.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domdealer.NewDealer(name, email, b.PasswordHash), nil
}

func (b *DealerBuilder) BuildRM() *readmodel.DealerRM {
	return &readmodel.DealerRM{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *DealerBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *DealerBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

// Fluent builder methods
func (b *DealerBuilder) WithID(id uuid.UUID) *DealerBuilder {
	b.ID = id
	return b
}

func (b *DealerBuilder) WithName(name string) *DealerBuilder {
	b.Name = name
	return b
}

func (b *DealerBuilder) WithEmail(email string) *DealerBuilder {
	b.Email = email
	return b
}

func (b *DealerBuilder) WithPassword(password string) *DealerBuilder {
	b.Password = password
	return b
}
