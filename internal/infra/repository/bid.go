package repository

import (
	"context"
	"errors"

	"car-auction/internal/domain/bid"
	"car-auction/internal/infra"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository is the PostgreSQL bid ledger. Rows are append-only except for
// the accepted -> withdrawn outcome flip; nothing ever deletes a row.
type BidRepository struct {
	db *pgxpool.Pool
}

func NewBidRepository(db *pgxpool.Pool) *BidRepository {
	return &BidRepository{db: db}
}

const bidColumns = `id, auction_id, dealer_id, amount_cents, outcome, reject_reason, placed_at, created_at`

// AppendAccepted inserts an accepted bid only while it still beats every
// accepted bid on the auction. The predicate re-checks inside the insert, so
// a writer that lost the race gets zero rows and a CONFLICT kind instead of
// corrupting the ledger ordering.
func (r *BidRepository) AppendAccepted(ctx context.Context, b *bid.Bid) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO bids (id, auction_id, dealer_id, amount_cents, outcome, placed_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM bids
			WHERE auction_id = $2 AND outcome = $5 AND amount_cents >= $4
		)
	`, b.ID(), b.AuctionID(), b.DealerID(), b.AmountCents(), b.Outcome().String(), b.PlacedAt())
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return infra.WrapRepoErr("bid references missing auction or dealer", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append accepted bid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("a competing bid was accepted first", nil, infra.KindConflict)
	}
	return nil
}

func (r *BidRepository) AppendRejected(ctx context.Context, b *bid.Bid) error {
	var reason *string
	if rr := b.RejectReason(); rr != bid.RejectReasonNone {
		s := rr.String()
		reason = &s
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO bids (id, auction_id, dealer_id, amount_cents, outcome, reject_reason, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, b.ID(), b.AuctionID(), b.DealerID(), b.AmountCents(), b.Outcome().String(), reason, b.PlacedAt())
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return infra.WrapRepoErr("bid references missing auction or dealer", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append rejected bid", err)
	}
	return nil
}

func (r *BidRepository) CurrentHigh(ctx context.Context, auctionID uuid.UUID) (*readmodel.BidRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE auction_id = $1 AND outcome = 'accepted'
		ORDER BY amount_cents DESC, placed_at ASC, created_at ASC
		LIMIT 1
	`, auctionID)

	rm, err := scanBid(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction has no accepted bids", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read current high bid", err)
	}
	return rm, nil
}

func (r *BidRepository) FindByAuction(ctx context.Context, auctionID uuid.UUID) ([]*readmodel.BidRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE auction_id = $1
		ORDER BY placed_at ASC, created_at ASC
	`, auctionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auction bids", err)
	}
	defer rows.Close()

	return collectBids(rows)
}

func (r *BidRepository) FindByDealer(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.BidRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE dealer_id = $1
		ORDER BY placed_at DESC, created_at DESC
	`, dealerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dealer bids", err)
	}
	defer rows.Close()

	return collectBids(rows)
}

func (r *BidRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE id = $1
	`, id)

	rm, err := scanBid(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("bid not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bid", err)
	}
	return rm, nil
}

// MarkWithdrawn flips an accepted bid to withdrawn. The outcome predicate
// makes the flip race-safe: a bid that is already withdrawn (or was never
// accepted) yields no row and a NOT_FOUND kind.
func (r *BidRepository) MarkWithdrawn(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE bids
		SET outcome = 'withdrawn'
		WHERE id = $1 AND outcome = 'accepted'
		RETURNING `+bidColumns+`
	`, id)

	rm, err := scanBid(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("bid is not accepted", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to withdraw bid", err)
	}
	return rm, nil
}

func scanBid(row pgx.Row) (*readmodel.BidRM, error) {
	var rm readmodel.BidRM
	err := row.Scan(
		&rm.ID, &rm.AuctionID, &rm.DealerID, &rm.AmountCents,
		&rm.Outcome, &rm.RejectReason, &rm.PlacedAt, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func collectBids(rows pgx.Rows) ([]*readmodel.BidRM, error) {
	bids := make([]*readmodel.BidRM, 0)
	for rows.Next() {
		rm, err := scanBid(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid row", err)
		}
		bids = append(bids, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bid rows", err)
	}
	return bids, nil
}
