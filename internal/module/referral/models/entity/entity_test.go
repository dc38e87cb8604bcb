package entity_test

import (
	"testing"

	"guide-booking-service/internal/module/referral/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestEarningTransitions(t *testing.T) {
	assert.True(t, entity.EarningPending.CanTransitionTo(entity.EarningPaid))
	assert.True(t, entity.EarningPending.CanTransitionTo(entity.EarningFailed))
	assert.True(t, entity.EarningPending.CanTransitionTo(entity.EarningCancelled))
	assert.True(t, entity.EarningFailed.CanTransitionTo(entity.EarningCancelled))

	assert.False(t, entity.EarningFailed.CanTransitionTo(entity.EarningPaid))
	assert.False(t, entity.EarningPaid.CanTransitionTo(entity.EarningCancelled))
	assert.False(t, entity.EarningCancelled.CanTransitionTo(entity.EarningPending))
}
