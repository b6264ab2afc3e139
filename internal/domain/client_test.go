package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_BorrowEligibility(t *testing.T) {
	tests := []struct {
		name    string
		client  Client
		wantErr bool
	}{
		{"clean client", Client{RUN: "111111111", Status: ClientStatusActive}, false},
		{"restricted", Client{RUN: "111111111", Status: ClientStatusRestricted}, true},
		{"unpaid debt", Client{RUN: "111111111", Status: ClientStatusActive, Debt: 5000}, true},
		{"at loan cap", Client{RUN: "111111111", Status: ClientStatusActive, ActiveLoans: MaxActiveLoans}, true},
		{"just under cap", Client{RUN: "111111111", Status: ClientStatusActive, ActiveLoans: MaxActiveLoans - 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.BorrowEligibility()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBusinessRule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_ChargeDamageFee(t *testing.T) {
	toolType := &ToolType{ReplacementValue: 50000, DamageFee: 8000}

	c := Client{Status: ClientStatusActive}
	c.ChargeDamageFee(toolType, DamageModerate)
	assert.Equal(t, int32(8000), c.Debt)
	assert.Equal(t, ClientStatusRestricted, c.Status)

	// Irreparable damage bills the full replacement value on top.
	c.ChargeDamageFee(toolType, DamageIrreparable)
	assert.Equal(t, int32(58000), c.Debt)
}

func TestClient_ChargeLateFee(t *testing.T) {
	c := Client{Status: ClientStatusActive, Debt: 1000}
	c.ChargeLateFee(6000)
	assert.Equal(t, int32(7000), c.Debt)
	assert.Equal(t, ClientStatusRestricted, c.Status)
}

func TestClient_LiftRestrictionIfClear(t *testing.T) {
	c := Client{Status: ClientStatusRestricted, Debt: 5000}
	assert.False(t, c.LiftRestrictionIfClear())
	assert.Equal(t, ClientStatusRestricted, c.Status)

	c.Debt = 0
	assert.True(t, c.LiftRestrictionIfClear())
	assert.Equal(t, ClientStatusActive, c.Status)

	// Already active: nothing to lift.
	assert.False(t, c.LiftRestrictionIfClear())
}
