package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHasBeta tests individual beta grants
func TestHasBeta(t *testing.T) {
	betas := []Beta{BetaDefaultRooms, BetaPolicyRooms}

	assert.True(t, HasBeta(betas, BetaDefaultRooms))
	assert.True(t, HasBeta(betas, BetaPolicyRooms))
	assert.False(t, HasBeta(betas, BetaPolicyExpenseChat))
	assert.False(t, HasBeta(nil, BetaDefaultRooms))
}

// TestHasBeta_All tests that the all-access beta grants everything
func TestHasBeta_All(t *testing.T) {
	betas := []Beta{BetaAll}

	assert.True(t, CanUseDefaultRooms(betas))
	assert.True(t, CanUsePolicyRooms(betas))
	assert.True(t, CanUsePolicyExpenseChat(betas))
	assert.True(t, CanInviteConcierge(betas))
}
