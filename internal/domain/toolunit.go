package domain

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "AVAILABLE"
	UnitStatusOnLoan      UnitStatus = "ON_LOAN"
	UnitStatusUnderRepair UnitStatus = "UNDER_REPAIR"
	UnitStatusRetired     UnitStatus = "RETIRED"
)

type DamageLevel string

const (
	DamageNone        DamageLevel = "NONE"
	DamageEvaluating  DamageLevel = "EVALUATING"
	DamageLight       DamageLevel = "LIGHT"
	DamageModerate    DamageLevel = "MODERATE"
	DamageSevere      DamageLevel = "SEVERE"
	DamageIrreparable DamageLevel = "IRREPARABLE"
	DamageDisuse      DamageLevel = "DISUSE"
)

// ToolUnit is one physical, individually tracked tool instance.
type ToolUnit struct {
	ID           int32       `json:"id"`
	SerialNumber string      `json:"serial_number"`
	TypeID       int32       `json:"tool_type_id"`
	Status       UnitStatus  `json:"status"`
	DamageLevel  DamageLevel `json:"damage_level"`
}

// Loanable reports whether the unit can be claimed for a loan.
func (u *ToolUnit) Loanable() bool {
	return u.Status == UnitStatusAvailable && u.DamageLevel == DamageNone
}

// Claim transitions an available, undamaged unit onto a loan.
func (u *ToolUnit) Claim() error {
	if !u.Loanable() {
		return BusinessRulef("tool %s is not available", u.SerialNumber)
	}
	u.Status = UnitStatusOnLoan
	return nil
}

// ReturnUndamaged closes the loan-side of the unit's lifecycle: back to
// the shelf with no damage recorded.
func (u *ToolUnit) ReturnUndamaged() {
	u.Status = UnitStatusAvailable
	u.DamageLevel = DamageNone
}

// ReturnForEvaluation parks the unit in repair with a pending damage
// assessment. The loan-time stock hold stays in place until the
// evaluation resolves it.
func (u *ToolUnit) ReturnForEvaluation() {
	u.Status = UnitStatusUnderRepair
	u.DamageLevel = DamageEvaluating
}

// SendToRepair records a concrete repairable damage level.
func (u *ToolUnit) SendToRepair(level DamageLevel) {
	u.Status = UnitStatusUnderRepair
	u.DamageLevel = level
}

// Retire writes the unit off permanently. Only irreparable damage or
// disuse retires a unit; anything else goes through SendToRepair.
func (u *ToolUnit) Retire(level DamageLevel) {
	u.Status = UnitStatusRetired
	if level == DamageIrreparable {
		u.DamageLevel = DamageIrreparable
	} else {
		u.DamageLevel = DamageDisuse
	}
}

// Enable puts a repaired or mistakenly disabled unit back in circulation.
// Units on loan cannot be touched, and irreparable units never return.
func (u *ToolUnit) Enable() error {
	if u.Status == UnitStatusOnLoan {
		return Conflictf("tool %s is on loan", u.SerialNumber)
	}
	if u.DamageLevel == DamageIrreparable {
		return BusinessRulef("tool %s is irreparable and cannot be enabled", u.SerialNumber)
	}
	u.Status = UnitStatusAvailable
	u.DamageLevel = DamageNone
	return nil
}

// ParseUnitStatus validates a caller-supplied status string.
func ParseUnitStatus(s string) (UnitStatus, error) {
	switch UnitStatus(s) {
	case UnitStatusAvailable, UnitStatusOnLoan, UnitStatusUnderRepair, UnitStatusRetired:
		return UnitStatus(s), nil
	}
	return "", InvalidInputf("unknown tool status %q", s)
}

// ParseDamageLevel validates a caller-supplied damage level string.
func ParseDamageLevel(s string) (DamageLevel, error) {
	switch DamageLevel(s) {
	case DamageNone, DamageEvaluating, DamageLight, DamageModerate,
		DamageSevere, DamageIrreparable, DamageDisuse:
		return DamageLevel(s), nil
	}
	return "", InvalidInputf("unknown damage level %q", s)
}
