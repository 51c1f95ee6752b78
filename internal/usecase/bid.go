package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"car-auction/internal/domain/auction"
	"car-auction/internal/domain/bid"
	"car-auction/internal/infra"
	"car-auction/internal/pkg/clock"
	"car-auction/internal/pkg/config"
	"car-auction/internal/pkg/errs"
	"car-auction/internal/pkg/kmutex"
	"car-auction/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrDealerNotFound      = errors.New("dealer not found")
	ErrBidNotFound         = errors.New("bid not found")
	ErrAdmissionContention = errors.New("bid admission contention, retry later")
	ErrBidNotOwned         = errors.New("bid belongs to another dealer")
	ErrBidNotWithdrawable  = errors.New("bid is not in a withdrawable state")
)

// BidLedger is the append-only record of bid attempts per auction and the
// source of truth for ordering and highest-bid queries.
type BidLedger interface {
	// AppendAccepted inserts an accepted bid. The implementation must
	// fail with infra.KindConflict when an accepted bid with an equal or
	// higher amount was appended since the caller's snapshot was read.
	AppendAccepted(ctx context.Context, b *bid.Bid) error
	AppendRejected(ctx context.Context, b *bid.Bid) error
	// CurrentHigh returns the accepted, non-withdrawn bid with the
	// greatest amount (earliest placed wins ties), or KindNotFound.
	CurrentHigh(ctx context.Context, auctionID uuid.UUID) (*readmodel.BidRM, error)
	FindByAuction(ctx context.Context, auctionID uuid.UUID) ([]*readmodel.BidRM, error)
	FindByDealer(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.BidRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error)
	// MarkWithdrawn flips an accepted bid to withdrawn; KindNotFound when
	// the bid is absent or no longer accepted.
	MarkWithdrawn(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error)
}

// AuctionRepository is the auction lookup/mutation capability the admission
// service depends on. Lifecycle ownership stays with auction management;
// the core only commits the active -> closed expiry transition.
type AuctionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)
	// CloseIfActive transitions active -> closed and reports whether this
	// call committed the transition. Racing callers observe false.
	CloseIfActive(ctx context.Context, id uuid.UUID) (bool, error)
	FindByDealer(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.AuctionListRM, error)
	Join(ctx context.Context, auctionID, dealerID uuid.UUID) error
}

type PlaceBidResult struct {
	Bid         *readmodel.BidRM
	CurrentHigh *readmodel.BidRM
}

type BidUseCase interface {
	PlaceBid(ctx context.Context, auctionID, dealerID uuid.UUID, amountCents int64) (*PlaceBidResult, error)
	WithdrawBid(ctx context.Context, bidID, dealerID uuid.UUID) (*readmodel.BidRM, error)
	ResubmitBid(ctx context.Context, bidID, dealerID uuid.UUID, amountCents int64) (*PlaceBidResult, error)
	GetBid(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error)
	GetHighestBid(ctx context.Context, auctionID uuid.UUID) (*readmodel.BidRM, error)
	GetAuctionBids(ctx context.Context, auctionID uuid.UUID) ([]*readmodel.BidRM, error)
	GetDealerBids(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.BidRM, error)
	ExpireIfDue(ctx context.Context, auctionID uuid.UUID, now time.Time) (bool, error)
}

type bidUseCaseImpl struct {
	ledger      BidLedger
	auctionRepo AuctionRepository
	admission   *kmutex.KMutex[uuid.UUID]
	policy      config.AuctionConfig
	clock       clock.Clock
}

func NewBidUseCase(
	ledger BidLedger,
	auctionRepo AuctionRepository,
	policy config.AuctionConfig,
	clk clock.Clock,
) BidUseCase {
	return &bidUseCaseImpl{
		ledger:      ledger,
		auctionRepo: auctionRepo,
		admission:   kmutex.New[uuid.UUID](),
		policy:      policy,
		clock:       clk,
	}
}

// PlaceBid is the only entry point that turns a bid request into a ledger
// mutation. The per-auction admission boundary serializes the
// read-validate-append sequence; the ledger's optimistic conflict check
// covers writers outside this process, retried up to the configured bound.
func (u *bidUseCaseImpl) PlaceBid(ctx context.Context, auctionID, dealerID uuid.UUID, amountCents int64) (*PlaceBidResult, error) {
	if amountCents <= 0 {
		return nil, bid.ErrInvalidAmount
	}

	u.admission.Lock(auctionID)
	defer u.admission.Unlock(auctionID)

	return u.admit(ctx, auctionID, dealerID, amountCents)
}

// admit runs the guarded read-validate-append sequence. Callers must hold
// the admission boundary for auctionID.
func (u *bidUseCaseImpl) admit(ctx context.Context, auctionID, dealerID uuid.UUID, amountCents int64) (*PlaceBidResult, error) {
	retries := u.policy.AdmissionRetries
	if retries < 1 {
		retries = 1
	}

	for attempt := 0; attempt < retries; attempt++ {
		a, err := u.auctionRepo.FindByID(ctx, auctionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrAuctionNotFound
			}
			return nil, errs.Wrap(err, "failed to load auction")
		}

		now := u.clock.Now()

		high, err := u.currentHigh(ctx, auctionID)
		if err != nil {
			return nil, err
		}

		if guardErr := u.runGuards(a, dealerID, amountCents, high, now); guardErr != nil {
			if recordErr := u.recordRejection(ctx, a, dealerID, amountCents, guardErr, now); recordErr != nil {
				return nil, recordErr
			}
			return nil, guardErr
		}

		accepted, err := bid.NewAccepted(auctionID, dealerID, amountCents, now)
		if err != nil {
			return nil, err
		}

		err = u.ledger.AppendAccepted(ctx, accepted)
		if err == nil {
			rm := bidToRM(accepted)
			return &PlaceBidResult{Bid: rm, CurrentHigh: rm}, nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			slog.Debug("bid admission conflict, retrying from fresh snapshot",
				"auction_id", auctionID, "attempt", attempt+1)
			continue
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrDealerNotFound
		}
		return nil, errs.Wrap(err, "failed to append accepted bid")
	}

	return nil, ErrAdmissionContention
}

// runGuards applies the state guard checks in order: liveness, bidder
// eligibility, amount.
func (u *bidUseCaseImpl) runGuards(a *auction.Auction, dealerID uuid.UUID, amountCents int64, high *readmodel.BidRM, now time.Time) error {
	if err := auction.CheckLiveness(a, now); err != nil {
		return err
	}
	if err := auction.ValidateBidder(dealerID, a, u.policy.AllowSelfBidding); err != nil {
		return err
	}

	var highCents *int64
	if high != nil {
		highCents = &high.AmountCents
	}
	return auction.ValidateAmount(amountCents, highCents, a)
}

// recordRejection appends the audited rejected bid and, on expiry,
// commits the idempotent close transition the guard demanded.
func (u *bidUseCaseImpl) recordRejection(ctx context.Context, a *auction.Auction, dealerID uuid.UUID, amountCents int64, guardErr error, now time.Time) error {
	if errors.Is(guardErr, auction.ErrAuctionExpired) {
		if _, err := u.closeExpired(ctx, a.ID()); err != nil {
			return err
		}
	}

	rejected, err := bid.NewRejected(a.ID(), dealerID, amountCents, rejectReasonFor(guardErr), now)
	if err != nil {
		return err
	}
	if err := u.ledger.AppendRejected(ctx, rejected); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrDealerNotFound
		}
		return errs.Wrap(err, "failed to record rejected bid")
	}
	return nil
}

func (u *bidUseCaseImpl) currentHigh(ctx context.Context, auctionID uuid.UUID) (*readmodel.BidRM, error) {
	high, err := u.ledger.CurrentHigh(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read current high bid")
	}
	return high, nil
}

func (u *bidUseCaseImpl) WithdrawBid(ctx context.Context, bidID, dealerID uuid.UUID) (*readmodel.BidRM, error) {
	rm, err := u.findBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	u.admission.Lock(rm.AuctionID)
	defer u.admission.Unlock(rm.AuctionID)

	return u.withdraw(ctx, rm, dealerID)
}

// withdraw validates ownership and state, then flips the entry to
// withdrawn. The ledger row survives for audit. Callers must hold the
// admission boundary for the bid's auction.
func (u *bidUseCaseImpl) withdraw(ctx context.Context, rm *readmodel.BidRM, dealerID uuid.UUID) (*readmodel.BidRM, error) {
	if rm.DealerID != dealerID {
		return nil, ErrBidNotOwned
	}
	if rm.Outcome != bid.OutcomeAccepted.String() {
		return nil, ErrBidNotWithdrawable
	}

	a, err := u.auctionRepo.FindByID(ctx, rm.AuctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Wrap(err, "failed to load auction")
	}
	if err := auction.CheckLiveness(a, u.clock.Now()); err != nil {
		if errors.Is(err, auction.ErrAuctionExpired) {
			if _, closeErr := u.closeExpired(ctx, a.ID()); closeErr != nil {
				return nil, closeErr
			}
		}
		return nil, err
	}

	withdrawn, err := u.ledger.MarkWithdrawn(ctx, rm.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBidNotWithdrawable
		}
		return nil, errs.Wrap(err, "failed to withdraw bid")
	}
	return withdrawn, nil
}

// ResubmitBid models the "update a bid" request as withdraw-then-resubmit
// under one admission boundary, so the ledger never sees a mutated entry
// and no competing bid can slip between the two steps.
func (u *bidUseCaseImpl) ResubmitBid(ctx context.Context, bidID, dealerID uuid.UUID, amountCents int64) (*PlaceBidResult, error) {
	if amountCents <= 0 {
		return nil, bid.ErrInvalidAmount
	}

	rm, err := u.findBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	u.admission.Lock(rm.AuctionID)
	defer u.admission.Unlock(rm.AuctionID)

	if _, err := u.withdraw(ctx, rm, dealerID); err != nil {
		return nil, err
	}

	return u.admit(ctx, rm.AuctionID, dealerID, amountCents)
}

func (u *bidUseCaseImpl) GetBid(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error) {
	return u.findBid(ctx, id)
}

func (u *bidUseCaseImpl) findBid(ctx context.Context, id uuid.UUID) (*readmodel.BidRM, error) {
	rm, err := u.ledger.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, errs.Wrap(err, "failed to find bid")
	}
	return rm, nil
}

// GetHighestBid returns nil when the auction has no accepted bids yet.
func (u *bidUseCaseImpl) GetHighestBid(ctx context.Context, auctionID uuid.UUID) (*readmodel.BidRM, error) {
	return u.currentHigh(ctx, auctionID)
}

func (u *bidUseCaseImpl) GetAuctionBids(ctx context.Context, auctionID uuid.UUID) ([]*readmodel.BidRM, error) {
	bids, err := u.ledger.FindByAuction(ctx, auctionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list auction bids")
	}
	return bids, nil
}

func (u *bidUseCaseImpl) GetDealerBids(ctx context.Context, dealerID uuid.UUID) ([]*readmodel.BidRM, error) {
	bids, err := u.ledger.FindByDealer(ctx, dealerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list dealer bids")
	}
	return bids, nil
}

// ExpireIfDue commits the active -> closed transition once the end time has
// passed. It is idempotent: exactly one caller commits, the rest observe an
// already-closed auction and report false.
func (u *bidUseCaseImpl) ExpireIfDue(ctx context.Context, auctionID uuid.UUID, now time.Time) (bool, error) {
	a, err := u.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrAuctionNotFound
		}
		return false, errs.Wrap(err, "failed to load auction")
	}

	if !a.IsActive() || !a.HasEnded(now) {
		return false, nil
	}
	return u.closeExpired(ctx, auctionID)
}

func (u *bidUseCaseImpl) closeExpired(ctx context.Context, auctionID uuid.UUID) (bool, error) {
	committed, err := u.auctionRepo.CloseIfActive(ctx, auctionID)
	if err != nil {
		return false, errs.Wrap(err, "failed to close expired auction")
	}
	if committed {
		slog.Info("auction closed on expiry", "auction_id", auctionID)
	}
	return committed, nil
}

func rejectReasonFor(guardErr error) bid.RejectReason {
	switch {
	case errors.Is(guardErr, auction.ErrAuctionExpired):
		return bid.RejectReasonAuctionExpired
	case errors.Is(guardErr, auction.ErrAuctionNotActive):
		return bid.RejectReasonAuctionNotActive
	case errors.Is(guardErr, auction.ErrSelfBiddingForbidden):
		return bid.RejectReasonSelfBidding
	default:
		return bid.RejectReasonTooLow
	}
}

func bidToRM(b *bid.Bid) *readmodel.BidRM {
	rm := &readmodel.BidRM{
		ID:          b.ID(),
		AuctionID:   b.AuctionID(),
		DealerID:    b.DealerID(),
		AmountCents: b.AmountCents(),
		Outcome:     b.Outcome().String(),
		PlacedAt:    b.PlacedAt(),
		CreatedAt:   b.CreatedAt(),
	}
	if reason := b.RejectReason(); reason != bid.RejectReasonNone {
		s := reason.String()
		rm.RejectReason = &s
	}
	return rm
}
