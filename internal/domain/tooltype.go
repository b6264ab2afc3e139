package domain

// ToolType is a catalog entry: a class of interchangeable tools with its
// aggregate stock counters. Invariant: 0 <= AvailableStock <= TotalStock,
// enforced atomically by the repository's stock transfer operation.
type ToolType struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Model            string `json:"model"`
	ReplacementValue int32  `json:"replacement_value"`
	RentalFee        int32  `json:"rental_fee"`
	DamageFee        int32  `json:"damage_fee"`
	TotalStock       int32  `json:"total_stock"`
	AvailableStock   int32  `json:"available_stock"`
}

// DamageCharge is the amount billed to a client for a given damage level:
// the full replacement value when the unit is beyond repair, the repair
// fee otherwise.
func (t *ToolType) DamageCharge(level DamageLevel) int32 {
	if level == DamageIrreparable {
		return t.ReplacementValue
	}
	return t.DamageFee
}

// StockTransfer names an atomic adjustment of a tool type's counters.
// Each kind maps to a (Δtotal, Δavailable) pair; the repository applies
// both deltas in one guarded statement so the available<=total invariant
// can never be broken by interleaved callers.
type StockTransfer string

const (
	// StockRegister adds a new unit in circulation: total+q, available+q.
	StockRegister StockTransfer = "REGISTER"
	// StockRegisterUnavailable adds a unit that arrives damaged or
	// retired: total+q only.
	StockRegisterUnavailable StockTransfer = "REGISTER_UNAVAILABLE"
	// StockHold removes a unit from availability (claimed for a loan or
	// sent to repair): available-q.
	StockHold StockTransfer = "HOLD"
	// StockRelease puts a unit back in availability (returned undamaged,
	// re-enabled, or cleared by evaluation): available+q.
	StockRelease StockTransfer = "RELEASE"
	// StockWriteOff retires a unit whose availability was already held
	// (it came back from a loan or sat in repair): total-q.
	StockWriteOff StockTransfer = "WRITE_OFF"
	// StockRetire pulls a unit straight off the shelf for good:
	// total-q, available-q.
	StockRetire StockTransfer = "RETIRE"
)

// Deltas returns the counter deltas a transfer of qty units applies.
func (k StockTransfer) Deltas(qty int32) (dTotal, dAvailable int32) {
	switch k {
	case StockRegister:
		return qty, qty
	case StockRegisterUnavailable:
		return qty, 0
	case StockHold:
		return 0, -qty
	case StockRelease:
		return 0, qty
	case StockWriteOff:
		return -qty, 0
	case StockRetire:
		return -qty, -qty
	}
	return 0, 0
}
