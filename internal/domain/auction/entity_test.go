//go:build unit

package auction_test

import (
	"testing"
	"time"

	"car-auction/internal/domain/auction"
	"car-auction/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auctionCase struct {
	name   string
	mutate func(*builder.AuctionBuilder)
	errIs  error
}

func TestReconstructAuction(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, a)

		assert.Equal(t, auction.StatusActive, a.Status())
		assert.True(t, a.IsActive())
		assert.Equal(t, int64(100_00), a.StartingPriceCents())
		assert.Equal(t, int64(5_00), a.MinIncrementCents())
	})

	t.Run("validation", func(t *testing.T) {
		runAuctionCases(t, []auctionCase{
			{
				name:   "invalid status",
				mutate: func(b *builder.AuctionBuilder) { b.Status = auction.Status("open") },
				errIs:  auction.ErrInvalidStatus,
			},
			{
				name: "end before start",
				mutate: func(b *builder.AuctionBuilder) {
					b.EndTime = b.StartTime.Add(-time.Minute)
				},
				errIs: auction.ErrInvalidTimeBounds,
			},
			{
				name:   "zero starting price",
				mutate: func(b *builder.AuctionBuilder) { b.StartingPriceCents = 0 },
				errIs:  auction.ErrInvalidStartingPrice,
			},
			{
				name:   "negative starting price",
				mutate: func(b *builder.AuctionBuilder) { b.StartingPriceCents = -100 },
				errIs:  auction.ErrInvalidStartingPrice,
			},
			{
				name:   "zero minimum increment",
				mutate: func(b *builder.AuctionBuilder) { b.MinIncrementCents = 0 },
				errIs:  auction.ErrInvalidMinIncrement,
			},
		})
	})
}

func TestAuctionHasEnded(t *testing.T) {
	a, err := builder.NewAuctionBuilder().BuildDomain()
	require.NoError(t, err)

	assert.False(t, a.HasEnded(a.EndTime().Add(-time.Second)))
	assert.True(t, a.HasEnded(a.EndTime()))
	assert.True(t, a.HasEnded(a.EndTime().Add(time.Second)))
}

func TestAuctionClose(t *testing.T) {
	t.Run("active closes", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, a.Close())
		assert.Equal(t, auction.StatusClosed, a.Status())
	})

	t.Run("closing twice is a no-op", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, a.Close())
		require.NoError(t, a.Close())
		assert.Equal(t, auction.StatusClosed, a.Status())
	})

	t.Run("pending cannot close directly", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().AsPending().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, a.Close(), auction.ErrStatusTransition)
	})

	t.Run("cancelled cannot close", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().AsCancelled().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, a.Close(), auction.ErrStatusTransition)
	})
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    auction.Status
		to      auction.Status
		allowed bool
	}{
		{auction.StatusPending, auction.StatusActive, true},
		{auction.StatusPending, auction.StatusCancelled, true},
		{auction.StatusPending, auction.StatusClosed, false},
		{auction.StatusActive, auction.StatusClosed, true},
		{auction.StatusActive, auction.StatusCancelled, true},
		{auction.StatusActive, auction.StatusPending, false},
		{auction.StatusClosed, auction.StatusActive, false},
		{auction.StatusClosed, auction.StatusCancelled, false},
		{auction.StatusCancelled, auction.StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+" to "+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func runAuctionCases(t *testing.T, cases []auctionCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAuctionBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
