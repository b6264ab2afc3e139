package domain

// SystemConfigID is the fixed row id of the singleton configuration.
const SystemConfigID = 1

// DefaultLateReturnFee applies when no configuration row exists yet.
const DefaultLateReturnFee int32 = 2000

// SystemConfig holds the current global late-return fee. Loans snapshot
// the fee at creation; updating it never touches existing loans.
type SystemConfig struct {
	ID            int32 `json:"id"`
	LateReturnFee int32 `json:"late_return_fee"`
}
