package dealer

import (
	"time"

	"github.com/google/uuid"
)

// Dealer entity. The bidding core only needs the identifier; the full
// profile backs registration, login and profile management.
type Dealer struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewDealer(name Name, email Email, passwordHash string) *Dealer {
	return &Dealer{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

func ReconstructDealer(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *Dealer {
	return &Dealer{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (d *Dealer) ID() uuid.UUID         { return d.id }
func (d *Dealer) Name() Name            { return d.name }
func (d *Dealer) Email() Email          { return d.email }
func (d *Dealer) PasswordHash() string  { return d.passwordHash }
func (d *Dealer) LastLogin() *time.Time { return d.lastLogin }
func (d *Dealer) CreatedAt() time.Time  { return d.createdAt }
func (d *Dealer) UpdatedAt() time.Time  { return d.updatedAt }

func (d *Dealer) Rename(name Name) {
	d.name = name
}
