package repository

import (
	"context"
	"errors"

	"car-auction/internal/domain/dealer"
	"car-auction/internal/infra"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DealerRepository struct {
	db *pgxpool.Pool
}

func NewDealerRepository(db *pgxpool.Pool) *DealerRepository {
	return &DealerRepository{db: db}
}

const dealerColumns = `id, name, email, last_login, created_at, updated_at`

func (r *DealerRepository) Create(ctx context.Context, d *dealer.Dealer) (*readmodel.DealerRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO dealers (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+dealerColumns+`
	`, d.ID(), d.Name().Value(), d.Email().Value(), d.PasswordHash())

	rm, err := scanDealer(row)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create dealer", err)
	}
	return rm, nil
}

func (r *DealerRepository) FindByEmail(ctx context.Context, email string) (*readmodel.DealerRM, string, error) {
	var (
		rm           readmodel.DealerRM
		passwordHash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT `+dealerColumns+`, password_hash
		FROM dealers
		WHERE email = $1
	`, email).Scan(
		&rm.ID, &rm.Name, &rm.Email, &rm.LastLogin, &rm.CreatedAt, &rm.UpdatedAt,
		&passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("dealer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find dealer by email", err)
	}
	return &rm, passwordHash, nil
}

func (r *DealerRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DealerRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+dealerColumns+`
		FROM dealers
		WHERE id = $1
	`, id)

	rm, err := scanDealer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("dealer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dealer", err)
	}
	return rm, nil
}

func (r *DealerRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE dealers
		SET last_login = now(), updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update dealer last login", err)
	}
	return nil
}

func (r *DealerRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*readmodel.DealerRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE dealers
		SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+dealerColumns+`
	`, id, name)

	rm, err := scanDealer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("dealer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update dealer name", err)
	}
	return rm, nil
}

func scanDealer(row pgx.Row) (*readmodel.DealerRM, error) {
	var rm readmodel.DealerRM
	err := row.Scan(&rm.ID, &rm.Name, &rm.Email, &rm.LastLogin, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
