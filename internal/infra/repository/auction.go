package repository

import (
	"context"
	"errors"

	"car-auction/internal/domain/auction"
	"car-auction/internal/infra"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuctionRepository struct {
	db *pgxpool.Pool
}

func NewAuctionRepository(db *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{db: db}
}

const auctionColumns = `id, car_id, listing_dealer_id, status, start_time, end_time,
	starting_price_cents, min_increment_cents, created_at, updated_at`

func (r *AuctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	rm, err := r.FindRMByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := auction.NewStatus(rm.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid auction status in storage", err)
	}

	entity, err := auction.ReconstructAuction(
		rm.ID, rm.CarID, rm.ListingDealerID,
		status,
		rm.StartTime, rm.EndTime,
		rm.StartingPriceCents, rm.MinIncrementCents,
		rm.CreatedAt, rm.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid auction row in storage", err)
	}
	return entity, nil
}

func (r *AuctionRepository) FindRMByID(ctx context.Context, id uuid.UUID) (*readmodel.AuctionRM, error) {
	var rm readmodel.AuctionRM
	err := r.db.QueryRow(ctx, `
		SELECT `+auctionColumns+`
		FROM auctions
		WHERE id = $1
	`, id).Scan(
		&rm.ID, &rm.CarID, &rm.ListingDealerID, &rm.Status, &rm.StartTime, &rm.EndTime,
		&rm.StartingPriceCents, &rm.MinIncrementCents, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction", err)
	}
	return &rm, nil
}

// CloseIfActive is the compare-and-set for the expiry transition. Exactly one
// racing caller moves the row from active to closed; everyone else sees zero
// rows affected.
func (r *AuctionRepository) CloseIfActive(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE auctions
		SET status = 'closed', updated_at = now()
		WHERE id = $1 AND status = 'active'
	`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to close auction", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AuctionRepository) FindByDealer(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.AuctionListRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.car_id, c.make, c.model, c.year,
		       a.status, a.start_time, a.end_time, e.joined_at
		FROM auction_entries e
		JOIN auctions a ON a.id = e.auction_id
		JOIN cars c ON c.id = a.car_id
		WHERE e.dealer_id = $1
		ORDER BY e.joined_at DESC
	`, dealerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dealer auctions", err)
	}
	defer rows.Close()

	auctions := make([]*readmodel.AuctionListRM, 0)
	for rows.Next() {
		var rm readmodel.AuctionListRM
		if err := rows.Scan(
			&rm.ID, &rm.CarID, &rm.CarMake, &rm.CarModel, &rm.CarYear,
			&rm.Status, &rm.StartTime, &rm.EndTime, &rm.JoinedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction row", err)
		}
		auctions = append(auctions, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate auction rows", err)
	}
	return auctions, nil
}

func (r *AuctionRepository) Join(ctx context.Context, auctionID, dealerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auction_entries (auction_id, dealer_id)
		VALUES ($1, $2)
	`, auctionID, dealerID)
	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return infra.WrapRepoErr("dealer already joined auction", err, infra.KindDuplicateKey)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr("entry references missing auction or dealer", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to join auction", err)
	}
	return nil
}
