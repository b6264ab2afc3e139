package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockTransfer_Deltas(t *testing.T) {
	tests := []struct {
		kind       StockTransfer
		dTotal     int32
		dAvailable int32
	}{
		{StockRegister, 3, 3},
		{StockRegisterUnavailable, 3, 0},
		{StockHold, 0, -3},
		{StockRelease, 0, 3},
		{StockWriteOff, -3, 0},
		{StockRetire, -3, -3},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			dTotal, dAvailable := tt.kind.Deltas(3)
			assert.Equal(t, tt.dTotal, dTotal)
			assert.Equal(t, tt.dAvailable, dAvailable)
		})
	}
}

func TestToolType_DamageCharge(t *testing.T) {
	toolType := &ToolType{ReplacementValue: 45000, DamageFee: 7000}

	assert.Equal(t, int32(45000), toolType.DamageCharge(DamageIrreparable))
	assert.Equal(t, int32(7000), toolType.DamageCharge(DamageLight))
	assert.Equal(t, int32(7000), toolType.DamageCharge(DamageSevere))
}
