package repository

import (
	"context"
	"errors"

	"car-auction/internal/domain/car"
	"car-auction/internal/infra"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	db *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) *CarRepository {
	return &CarRepository{db: db}
}

const carColumns = `id, dealer_id, make, model, year, description, created_at, updated_at`

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (*readmodel.CarRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO cars (id, dealer_id, make, model, year, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+carColumns+`
	`, c.ID(), c.DealerID(), c.Make(), c.Model(), c.Year(), c.Description())

	rm, err := scanCar(row)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, infra.WrapRepoErr("car references missing dealer", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create car", err)
	}
	return rm, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+carColumns+`
		FROM cars
		WHERE id = $1
	`, id)

	rm, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	return rm, nil
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) (*readmodel.CarRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE cars
		SET make = $2, model = $3, year = $4, description = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+carColumns+`
	`, c.ID(), c.Make(), c.Model(), c.Year(), c.Description())

	rm, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update car", err)
	}
	return rm, nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM cars
		WHERE id = $1
	`, id)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return infra.WrapRepoErr("car is referenced by an auction", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCar(row pgx.Row) (*readmodel.CarRM, error) {
	var rm readmodel.CarRM
	err := row.Scan(
		&rm.ID, &rm.DealerID, &rm.Make, &rm.Model, &rm.Year,
		&rm.Description, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
