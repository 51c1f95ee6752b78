//go:build unit

package bid_test

import (
	"testing"
	"time"

	"car-auction/internal/domain/bid"
	"car-auction/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccepted(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := builder.NewBidBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, bid.OutcomeAccepted, b.Outcome())
		assert.Equal(t, bid.RejectReasonNone, b.RejectReason())
		assert.True(t, b.IsAccepted())
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		for _, cents := range []int64{0, -1, -100_00} {
			_, err := builder.NewBidBuilder().WithAmountCents(cents).BuildDomain()
			assert.ErrorIs(t, err, bid.ErrInvalidAmount)
		}
	})
}

func TestNewRejected(t *testing.T) {
	t.Run("carries the rejection reason", func(t *testing.T) {
		b, err := builder.NewBidBuilder().AsRejected(bid.RejectReasonTooLow).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, bid.OutcomeRejected, b.Outcome())
		assert.Equal(t, bid.RejectReasonTooLow, b.RejectReason())
		assert.False(t, b.IsAccepted())
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		_, err := bid.NewRejected(uuid.New(), uuid.New(), 100_00, bid.RejectReasonNone, time.Now())
		assert.ErrorIs(t, err, bid.ErrMissingReason)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("owner withdraws an accepted bid", func(t *testing.T) {
		dealerID := uuid.New()
		b, err := builder.NewBidBuilder().WithDealerID(dealerID).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Withdraw(dealerID))
		assert.Equal(t, bid.OutcomeWithdrawn, b.Outcome())
	})

	t.Run("foreign dealer cannot withdraw", func(t *testing.T) {
		b, err := builder.NewBidBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Withdraw(uuid.New()), bid.ErrForeignWithdraw)
		assert.Equal(t, bid.OutcomeAccepted, b.Outcome())
	})

	t.Run("rejected bid cannot be withdrawn", func(t *testing.T) {
		dealerID := uuid.New()
		b, err := builder.NewBidBuilder().
			WithDealerID(dealerID).
			AsRejected(bid.RejectReasonTooLow).
			BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Withdraw(dealerID), bid.ErrNotWithdrawable)
	})

	t.Run("withdrawing twice fails", func(t *testing.T) {
		dealerID := uuid.New()
		b, err := builder.NewBidBuilder().WithDealerID(dealerID).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Withdraw(dealerID))
		assert.ErrorIs(t, b.Withdraw(dealerID), bid.ErrNotWithdrawable)
	})
}

func TestReconstructBid(t *testing.T) {
	t.Run("round-trips stored fields", func(t *testing.T) {
		bb := builder.NewBidBuilder().AsWithdrawn()
		b, err := bb.BuildReconstructed()
		require.NoError(t, err)

		assert.Equal(t, bb.ID, b.ID())
		assert.Equal(t, bid.OutcomeWithdrawn, b.Outcome())
	})

	t.Run("unknown outcome rejected", func(t *testing.T) {
		_, err := bid.ReconstructBid(
			uuid.New(), uuid.New(), uuid.New(),
			100_00, bid.Outcome("pending"), bid.RejectReasonNone,
			time.Now(), time.Now(),
		)
		assert.ErrorIs(t, err, bid.ErrInvalidOutcome)
	})
}
