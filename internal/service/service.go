package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, run, password string) (string, *domain.Employee, error) // token, employee
	Register(ctx context.Context, employee *domain.Employee, password string) error
}

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, run string) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListClientsByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error)
	DeleteClient(ctx context.Context, run string) error
}

type EmployeeService interface {
	GetEmployee(ctx context.Context, run string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee *domain.Employee) error
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, run string) error
}

type ToolTypeService interface {
	CreateToolType(ctx context.Context, t *domain.ToolType) error
	GetToolType(ctx context.Context, id int32) (*domain.ToolType, error)
	UpdateToolType(ctx context.Context, t *domain.ToolType) error
	ListToolTypes(ctx context.Context) ([]domain.ToolType, error)
	DeleteToolType(ctx context.Context, id int32) error
}

type ToolUnitService interface {
	// RegisterUnit adds a physical unit to the catalog. A unit arriving
	// undamaged enters circulation; one arriving damaged or retired only
	// counts toward total stock.
	RegisterUnit(ctx context.Context, unit *domain.ToolUnit) error
	GetUnit(ctx context.Context, id int32) (*domain.ToolUnit, error)
	GetUnitBySerial(ctx context.Context, serial string) (*domain.ToolUnit, error)
	FirstAvailableUnit(ctx context.Context, typeID int32) (*domain.ToolUnit, error)
	ListUnits(ctx context.Context) ([]domain.ToolUnit, error)
	UnitHistory(ctx context.Context, unitID int32) ([]domain.Loan, error)
	// DisableUnit takes a unit out of service with the given damage
	// level. Irreparable or disused units are retired for good; anything
	// else goes to repair.
	DisableUnit(ctx context.Context, unitID int32, level domain.DamageLevel) (*domain.ToolUnit, error)
	// EnableUnit puts a repaired or mistakenly disabled unit back on the
	// shelf.
	EnableUnit(ctx context.Context, unitID int32) (*domain.ToolUnit, error)
	// EvaluateDamage resolves a pending damage assessment, charging the
	// unit's most recent borrower and finalizing the unit's disposition.
	EvaluateDamage(ctx context.Context, unitID int32, level domain.DamageLevel) (*domain.ToolUnit, error)
}

// CreateLoanInput carries everything a new loan needs. UnitIDs are
// processed in the order submitted; the first failing unit aborts the
// whole call. A nil LateReturnFee means snapshot the configured fee.
type CreateLoanInput struct {
	ClientRUN     string
	EmployeeRUN   string
	LoanDate      time.Time
	DueDate       time.Time
	LateReturnFee *int32
	UnitIDs       []int32
}

// ReturnLine is the caller's damage report for one unit of a returned
// loan.
type ReturnLine struct {
	UnitID int32
	Damage domain.DamageLevel
}

type LoanService interface {
	CreateLoan(ctx context.Context, in CreateLoanInput) (*domain.Loan, error)
	ReturnLoan(ctx context.Context, loanID int32, lines []ReturnLine) (*domain.Loan, error)
	UpdateLateReturnFee(ctx context.Context, loanID int32, fee int32) (*domain.Loan, error)
	// CheckAndSetLateStatuses sweeps active loans, flagging overdue ones
	// and restricting their clients. Safe to re-run.
	CheckAndSetLateStatuses(ctx context.Context) error
	GetLoan(ctx context.Context, id int32) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	ListLoansByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)
	ListActiveLoansByClient(ctx context.Context, clientRUN string) ([]domain.Loan, error)
	// MostLoanedTools reports the tool type(s) with the highest loan
	// count in the date range, keeping ties.
	MostLoanedTools(ctx context.Context, start, end time.Time) ([]domain.ToolLoanCount, error)
}

type KardexService interface {
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
	ListEntriesByToolName(ctx context.Context, name string) ([]domain.LedgerEntry, error)
	ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, id int32) error
}

type ConfigService interface {
	GetLateReturnFee(ctx context.Context) (int32, error)
	SetLateReturnFee(ctx context.Context, fee int32) error
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, name string, loanID int32, dueDate time.Time) error
	SendRestrictionNotification(ctx context.Context, email, name string, debt int32) error
}
