package domain_test

import (
	"testing"

	"guide-booking-service/internal/module/booking/domain"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	all := []domain.Status{domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled}
	allowed := map[domain.Status]map[domain.Status]bool{
		domain.StatusPending:   {domain.StatusConfirmed: true, domain.StatusCancelled: true},
		domain.StatusConfirmed: {domain.StatusCompleted: true, domain.StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
}

func TestHoldsSeats(t *testing.T) {
	assert.True(t, domain.StatusPending.HoldsSeats())
	assert.True(t, domain.StatusConfirmed.HoldsSeats())
	assert.True(t, domain.StatusCompleted.HoldsSeats())
	assert.False(t, domain.StatusCancelled.HoldsSeats())
}

func TestParseStatus(t *testing.T) {
	s, err := domain.ParseStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, s)

	_, err = domain.ParseStatus("declined")
	assert.Error(t, err)
}
