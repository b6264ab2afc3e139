package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByRUN(ctx context.Context, run string) (*domain.Client, error) {
	args := m.Called(ctx, run)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Exists(ctx context.Context, run string) (bool, error) {
	args := m.Called(ctx, run)
	return args.Bool(0), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) ListByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Delete(ctx context.Context, run string) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByRUN(ctx context.Context, run string) (*domain.Employee, error) {
	args := m.Called(ctx, run)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Exists(ctx context.Context, run string) (bool, error) {
	args := m.Called(ctx, run)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, run string) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

// MockToolTypeRepo
type MockToolTypeRepo struct {
	mock.Mock
}

func (m *MockToolTypeRepo) Create(ctx context.Context, t *domain.ToolType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockToolTypeRepo) GetByID(ctx context.Context, id int32) (*domain.ToolType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolType), args.Error(1)
}
func (m *MockToolTypeRepo) GetByName(ctx context.Context, name string) (*domain.ToolType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolType), args.Error(1)
}
func (m *MockToolTypeRepo) Exists(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockToolTypeRepo) Update(ctx context.Context, t *domain.ToolType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockToolTypeRepo) List(ctx context.Context) ([]domain.ToolType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ToolType), args.Error(1)
}
func (m *MockToolTypeRepo) TransferStock(ctx context.Context, typeID int32, kind domain.StockTransfer, qty int32) error {
	args := m.Called(ctx, typeID, kind, qty)
	return args.Error(0)
}
func (m *MockToolTypeRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockToolUnitRepo
type MockToolUnitRepo struct {
	mock.Mock
}

func (m *MockToolUnitRepo) Create(ctx context.Context, u *domain.ToolUnit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockToolUnitRepo) GetByID(ctx context.Context, id int32) (*domain.ToolUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolUnit), args.Error(1)
}
func (m *MockToolUnitRepo) GetBySerial(ctx context.Context, serial string) (*domain.ToolUnit, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolUnit), args.Error(1)
}
func (m *MockToolUnitRepo) ExistsBySerial(ctx context.Context, serial string) (bool, error) {
	args := m.Called(ctx, serial)
	return args.Bool(0), args.Error(1)
}
func (m *MockToolUnitRepo) FirstAvailableByType(ctx context.Context, typeID int32) (*domain.ToolUnit, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolUnit), args.Error(1)
}
func (m *MockToolUnitRepo) Update(ctx context.Context, u *domain.ToolUnit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockToolUnitRepo) Claim(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolUnitRepo) List(ctx context.Context) ([]domain.ToolUnit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ToolUnit), args.Error(1)
}
func (m *MockToolUnitRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Exists(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) List(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActiveByClient(ctx context.Context, clientRUN string) ([]domain.Loan, error) {
	args := m.Called(ctx, clientRUN)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListOverdueByClient(ctx context.Context, clientRUN string, today time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, clientRUN, today)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ActiveTypeIDsByClient(ctx context.Context, clientRUN string) (map[int32]struct{}, error) {
	args := m.Called(ctx, clientRUN)
	return args.Get(0).(map[int32]struct{}), args.Error(1)
}
func (m *MockLoanRepo) HistoryByUnit(ctx context.Context, unitID int32) ([]domain.Loan, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) MostLoanedTypes(ctx context.Context, start, end time.Time) ([]domain.ToolLoanCount, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.ToolLoanCount), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) Append(ctx context.Context, e *domain.LedgerEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockLedgerRepo) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerRepo) ListByTypeName(ctx context.Context, typeName string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, typeName)
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConfigRepo
type MockConfigRepo struct {
	mock.Mock
}

func (m *MockConfigRepo) Get(ctx context.Context) (*domain.SystemConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemConfig), args.Error(1)
}
func (m *MockConfigRepo) Upsert(ctx context.Context, lateReturnFee int32) error {
	args := m.Called(ctx, lateReturnFee)
	return args.Error(0)
}

// repoMocks bundles one mock per repository so a test can set expectations
// on individual collaborators and still hand the services a Repositories
// value.
type repoMocks struct {
	clients   *MockClientRepo
	employees *MockEmployeeRepo
	toolTypes *MockToolTypeRepo
	toolUnits *MockToolUnitRepo
	loans     *MockLoanRepo
	ledger    *MockLedgerRepo
	config    *MockConfigRepo
}

func newRepoMocks() *repoMocks {
	return &repoMocks{
		clients:   new(MockClientRepo),
		employees: new(MockEmployeeRepo),
		toolTypes: new(MockToolTypeRepo),
		toolUnits: new(MockToolUnitRepo),
		loans:     new(MockLoanRepo),
		ledger:    new(MockLedgerRepo),
		config:    new(MockConfigRepo),
	}
}

func (m *repoMocks) bundle() repository.Repositories {
	return repository.Repositories{
		Clients:   m.clients,
		Employees: m.employees,
		ToolTypes: m.toolTypes,
		ToolUnits: m.toolUnits,
		Loans:     m.loans,
		Ledger:    m.ledger,
		Config:    m.config,
	}
}

// fakeTxRunner runs the callback against the same mocks without a real
// transaction underneath.
type fakeTxRunner struct {
	repos repository.Repositories
}

func (f fakeTxRunner) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(f.repos)
}
