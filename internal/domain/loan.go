package domain

import "time"

type LoanStatus string

const (
	LoanStatusActive LoanStatus = "ACTIVE"
	LoanStatusClosed LoanStatus = "CLOSED"
)

type Timeliness string

const (
	TimelinessOnTime  Timeliness = "ON_TIME"
	TimelinessOverdue Timeliness = "OVERDUE"
)

// LoanLine binds one tool unit to a loan. Exactly one line per unit per
// loan; a unit appears in at most one active loan at a time (enforced via
// the unit's status, not here).
type LoanLine struct {
	ID     int32 `json:"id"`
	LoanID int32 `json:"loan_id"`
	UnitID int32 `json:"tool_unit_id"`
}

// Loan is a rental transaction binding a client, an employee and one or
// more tool units for a date range. LateReturnFee is snapshotted from the
// system configuration at creation and never re-read.
type Loan struct {
	ID            int32      `json:"id"`
	LoanDate      time.Time  `json:"loan_date"`
	DueDate       time.Time  `json:"due_date"`
	ReturnedAt    *time.Time `json:"returned_at,omitempty"`
	LateReturnFee int32      `json:"late_return_fee"`
	Status        LoanStatus `json:"status"`
	Timeliness    Timeliness `json:"timeliness"`
	ClientRUN     string     `json:"client_run"`
	EmployeeRUN   string     `json:"employee_run"`
	Lines         []LoanLine `json:"lines,omitempty"`
}

// DateOnly drops the time-of-day component and pins the calendar date to
// UTC. Lateness is a whole-day comparison, so both operands must live in
// one location or their difference stops being a multiple of 24 hours.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overdue reports whether the loan's due date has passed as of today.
func (l *Loan) Overdue(today time.Time) bool {
	return DateOnly(today).After(DateOnly(l.DueDate))
}

// CurrentTimeliness derives the overdue classification: frozen once the
// loan is closed, recomputed from the due date while it is active.
func (l *Loan) CurrentTimeliness(today time.Time) Timeliness {
	if l.Status == LoanStatusClosed {
		return l.Timeliness
	}
	if l.Overdue(today) {
		return TimelinessOverdue
	}
	return TimelinessOnTime
}

// DaysLate counts whole calendar days past the due date, never negative.
func (l *Loan) DaysLate(today time.Time) int32 {
	diff := DateOnly(today).Sub(DateOnly(l.DueDate))
	if diff <= 0 {
		return 0
	}
	return int32(diff.Hours() / 24)
}

// LateCharge is the total late-return fee owed as of today.
func (l *Loan) LateCharge(today time.Time) int32 {
	return l.DaysLate(today) * l.LateReturnFee
}

// ToolLoanCount is one row of the most-loaned-tools report.
type ToolLoanCount struct {
	ToolName   string `json:"toolName"`
	TotalLoans int64  `json:"totalLoans"`
}
