package ledger_test

import (
	"testing"

	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/ledger"
	"guide-booking-service/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	t.Run("single participant at 450", func(t *testing.T) {
		split, err := ledger.ComputeSplit(money.FromMajor(450), 1, ledger.DefaultRates)
		require.NoError(t, err)

		assert.Equal(t, "450.00", split.TotalPrice.String())
		assert.Equal(t, "54.00", split.Commission.String())
		assert.Equal(t, "1.00", split.HostingFee.String())
		assert.Equal(t, "395.00", split.GuidePayout.String())
		assert.True(t, split.Reconciles())
	})

	t.Run("rounding applied once on the total", func(t *testing.T) {
		// 3 x 10.05 = 30.15, 12% = 3.618 -> 3.62
		split, err := ledger.ComputeSplit(1005, 3, ledger.DefaultRates)
		require.NoError(t, err)

		assert.Equal(t, money.Amount(3015), split.TotalPrice)
		assert.Equal(t, money.Amount(362), split.Commission)
		assert.Equal(t, money.Amount(2553), split.GuidePayout)
		assert.True(t, split.Reconciles())
	})

	t.Run("reconciles for a range of prices", func(t *testing.T) {
		for price := money.Amount(114); price < 20000; price += 37 {
			for n := 1; n <= 5; n++ {
				split, err := ledger.ComputeSplit(price, n, ledger.DefaultRates)
				require.NoError(t, err)
				assert.True(t, split.Reconciles(), "price %s x %d", price, n)
			}
		}
	})

	testCases := []struct {
		name  string
		price money.Amount
		count int
	}{
		{name: "negative price", price: -1, count: 1},
		{name: "zero participants", price: 1000, count: 0},
		{name: "price does not cover hosting fee", price: 50, count: 1},
		{name: "free trip", price: 0, count: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.ComputeSplit(tc.price, tc.count, ledger.DefaultRates)
			assert.True(t, errors.Is(err, errors.CodeInvalidInput))
		})
	}
}

func TestReferralAmount(t *testing.T) {
	assert.Equal(t, "9.00", ledger.ReferralAmount(money.FromMajor(450), 200).String())
	assert.Equal(t, "6.75", ledger.ReferralAmount(money.FromMajor(450), 150).String())
	assert.Equal(t, "0.00", ledger.ReferralAmount(money.FromMajor(450), 0).String())
}
