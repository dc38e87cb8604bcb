package cancellation_test

import (
	"testing"
	"time"

	"guide-booking-service/internal/pkg/cancellation"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	start := time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, cancellation.DaysUntil(start, start.Add(-10*24*time.Hour)))
	assert.Equal(t, 8, cancellation.DaysUntil(start, start.Add(-7*24*time.Hour-time.Minute)))
	assert.Equal(t, 1, cancellation.DaysUntil(start, start.Add(-time.Hour)))
	assert.Equal(t, 0, cancellation.DaysUntil(start, start))
	assert.Equal(t, -1, cancellation.DaysUntil(start, start.Add(25*time.Hour)))
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		days int
		want int
	}{
		{days: 30, want: 100},
		{days: 8, want: 100},
		{days: 7, want: 50},
		{days: 4, want: 50},
		{days: 3, want: 0},
		{days: 0, want: 0},
		{days: -2, want: 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, cancellation.Percent(tc.days), "days=%d", tc.days)
	}
}

func TestRefund(t *testing.T) {
	total := money.FromMajor(450)

	t.Run("scenarios", func(t *testing.T) {
		assert.Equal(t, "450.00", cancellation.Refund(total, 0, 10).String())
		assert.Equal(t, "225.00", cancellation.Refund(total, 0, 5).String())
		assert.Equal(t, "0.00", cancellation.Refund(total, 0, 1).String())
	})

	t.Run("capped by prior refunds", func(t *testing.T) {
		assert.Equal(t, "350.00", cancellation.Refund(total, money.FromMajor(100), 10).String())
		assert.Equal(t, "0.00", cancellation.Refund(total, total, 10).String())
	})

	t.Run("same inputs same output", func(t *testing.T) {
		first := cancellation.Refund(total, 0, 5)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, cancellation.Refund(total, 0, 5))
		}
	})
}

func TestValidateOverride(t *testing.T) {
	total := money.FromMajor(450)

	assert.NoError(t, cancellation.ValidateOverride(0, total))
	assert.NoError(t, cancellation.ValidateOverride(money.FromMajor(100), total))
	assert.NoError(t, cancellation.ValidateOverride(total, total))
	assert.True(t, errors.Is(cancellation.ValidateOverride(-1, total), errors.CodeInvalidInput))
	assert.True(t, errors.Is(cancellation.ValidateOverride(total+1, total), errors.CodeInvalidInput))
}
