package domain

import "time"

// LedgerOp is the kind of stock-affecting event a Kardex entry records.
type LedgerOp string

const (
	LedgerOpRegister LedgerOp = "REGISTER"
	LedgerOpLoan     LedgerOp = "LOAN"
	LedgerOpReturn   LedgerOp = "RETURN"
	LedgerOpRepair   LedgerOp = "REPAIR"
	LedgerOpWriteOff LedgerOp = "WRITE_OFF"
)

// LedgerEntry (Kardex record) is an immutable audit record of one
// stock-affecting event. Append-only: never updated. LoanID correlates
// the entry back to the originating loan when one exists; registration
// and administrative disposition events carry no loan.
type LedgerEntry struct {
	ID       int32     `json:"id"`
	Op       LedgerOp  `json:"operation"`
	Date     time.Time `json:"date"`
	Quantity int32     `json:"quantity"`
	TypeID   int32     `json:"tool_type_id"`
	LoanID   *int32    `json:"loan_id,omitempty"`
}

// NewRegisterEntry records qty units of a type entering the catalog.
func NewRegisterEntry(typeID, qty int32, date time.Time) *LedgerEntry {
	return &LedgerEntry{Op: LedgerOpRegister, Date: DateOnly(date), Quantity: qty, TypeID: typeID}
}

// NewLoanEntry records one unit leaving the shelf for a loan.
func NewLoanEntry(typeID, loanID int32, date time.Time) *LedgerEntry {
	return &LedgerEntry{Op: LedgerOpLoan, Date: DateOnly(date), Quantity: 1, TypeID: typeID, LoanID: &loanID}
}

// NewReturnEntry records one unit coming back undamaged.
func NewReturnEntry(typeID, loanID int32, date time.Time) *LedgerEntry {
	return &LedgerEntry{Op: LedgerOpReturn, Date: DateOnly(date), Quantity: 1, TypeID: typeID, LoanID: &loanID}
}

// NewDispositionEntry records a unit leaving circulation: WRITE_OFF when
// the unit is retired or irreparable, REPAIR otherwise. loanID is set
// when the disposition was triggered by a return.
func NewDispositionEntry(u *ToolUnit, loanID *int32, date time.Time) *LedgerEntry {
	op := LedgerOpRepair
	if u.DamageLevel == DamageIrreparable || u.Status == UnitStatusRetired {
		op = LedgerOpWriteOff
	}
	return &LedgerEntry{Op: op, Date: DateOnly(date), Quantity: 1, TypeID: u.TypeID, LoanID: loanID}
}
