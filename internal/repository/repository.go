package repository

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByRUN(ctx context.Context, run string) (*domain.Client, error)
	Exists(ctx context.Context, run string) (bool, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context) ([]domain.Client, error)
	ListByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error)
	Delete(ctx context.Context, run string) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByRUN(ctx context.Context, run string) (*domain.Employee, error)
	Exists(ctx context.Context, run string) (bool, error)
	Update(ctx context.Context, employee *domain.Employee) error
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, run string) error
}

type ToolTypeRepository interface {
	Create(ctx context.Context, t *domain.ToolType) error
	GetByID(ctx context.Context, id int32) (*domain.ToolType, error)
	GetByName(ctx context.Context, name string) (*domain.ToolType, error)
	Exists(ctx context.Context, id int32) (bool, error)
	Update(ctx context.Context, t *domain.ToolType) error
	List(ctx context.Context) ([]domain.ToolType, error)
	// TransferStock atomically applies the transfer's counter deltas,
	// rejecting any transfer that would leave a counter negative or
	// available above total. ErrNotFound when the type row is missing,
	// ErrBusinessRule when the guard fails.
	TransferStock(ctx context.Context, typeID int32, kind domain.StockTransfer, qty int32) error
	Delete(ctx context.Context, id int32) error
}

type ToolUnitRepository interface {
	Create(ctx context.Context, u *domain.ToolUnit) error
	GetByID(ctx context.Context, id int32) (*domain.ToolUnit, error)
	GetBySerial(ctx context.Context, serial string) (*domain.ToolUnit, error)
	ExistsBySerial(ctx context.Context, serial string) (bool, error)
	FirstAvailableByType(ctx context.Context, typeID int32) (*domain.ToolUnit, error)
	// Update persists status and damage level; serial and type are
	// immutable after creation.
	Update(ctx context.Context, u *domain.ToolUnit) error
	// Claim flips an available, undamaged unit to ON_LOAN in one guarded
	// statement so two concurrent loans cannot both take the same unit.
	// ErrConflict when the unit was not claimable.
	Claim(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.ToolUnit, error)
	Delete(ctx context.Context, id int32) error
}

type LoanRepository interface {
	// Create persists the loan header and its lines, filling generated ids.
	Create(ctx context.Context, loan *domain.Loan) error
	// GetByID returns the loan with its lines.
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	Exists(ctx context.Context, id int32) (bool, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)
	ListActiveByClient(ctx context.Context, clientRUN string) ([]domain.Loan, error)
	// ListOverdueByClient queries overdue active loans directly rather
	// than trusting the cached timeliness column.
	ListOverdueByClient(ctx context.Context, clientRUN string, today time.Time) ([]domain.Loan, error)
	// ActiveTypeIDsByClient is the set of tool type ids across the
	// client's active loans (one-per-type-per-borrower rule).
	ActiveTypeIDsByClient(ctx context.Context, clientRUN string) (map[int32]struct{}, error)
	// HistoryByUnit lists loans that ever contained the unit, newest first.
	HistoryByUnit(ctx context.Context, unitID int32) ([]domain.Loan, error)
	MostLoanedTypes(ctx context.Context, start, end time.Time) ([]domain.ToolLoanCount, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
	List(ctx context.Context) ([]domain.LedgerEntry, error)
	ListByTypeName(ctx context.Context, typeName string) ([]domain.LedgerEntry, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.LedgerEntry, error)
	// Delete is an administrative escape hatch, not part of any workflow.
	Delete(ctx context.Context, id int32) error
}

type SystemConfigRepository interface {
	// Get returns ErrNotFound while no configuration row exists.
	Get(ctx context.Context) (*domain.SystemConfig, error)
	Upsert(ctx context.Context, lateReturnFee int32) error
}

// Repositories bundles every collaborator the services see. Inside a
// transaction all members share that transaction's connection.
type Repositories struct {
	Clients   ClientRepository
	Employees EmployeeRepository
	ToolTypes ToolTypeRepository
	ToolUnits ToolUnitRepository
	Loans     LoanRepository
	Ledger    LedgerRepository
	Config    SystemConfigRepository
}

// TxRunner runs fn inside one database transaction. Any error rolls back
// everything fn did through the passed repositories.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
