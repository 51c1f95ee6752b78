package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAuctionNotActive     = errors.New("auction is not active")
	ErrAuctionExpired       = errors.New("auction end time has passed")
	ErrBidTooLow            = errors.New("bid amount below required minimum")
	ErrSelfBiddingForbidden = errors.New("listing dealer cannot bid on own auction")
)

// The guard functions below decide whether a bid may be admitted. They are
// pure functions of their inputs so they can be unit-tested in isolation;
// the admission service runs them in order liveness -> bidder -> amount
// inside the per-auction boundary.

// CheckLiveness fails unless the auction is active and its end time has not
// passed. On ErrAuctionExpired the caller is expected to trigger the
// idempotent transition to closed.
func CheckLiveness(a *Auction, now time.Time) error {
	if !a.IsActive() {
		return ErrAuctionNotActive
	}
	if a.HasEnded(now) {
		return ErrAuctionExpired
	}
	return nil
}

// ValidateAmount checks the strict-increment rule. currentHighCents is nil
// when the ledger holds no accepted bid yet; then the starting price is the
// floor and an exact match is accepted.
func ValidateAmount(amountCents int64, currentHighCents *int64, a *Auction) error {
	floor := a.startingPriceCents
	if currentHighCents != nil {
		floor = *currentHighCents + a.minIncrementCents
	}
	if amountCents < floor {
		return ErrBidTooLow
	}
	return nil
}

// ValidateBidder rejects the listing dealer bidding on their own auction
// unless the deployment allows self-bidding.
func ValidateBidder(bidderID uuid.UUID, a *Auction, allowSelfBidding bool) error {
	if allowSelfBidding {
		return nil
	}
	if bidderID == a.listingDealerID {
		return ErrSelfBiddingForbidden
	}
	return nil
}
