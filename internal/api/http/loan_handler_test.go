package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) CreateLoan(ctx context.Context, in service.CreateLoanInput) (*domain.Loan, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ReturnLoan(ctx context.Context, loanID int32, lines []service.ReturnLine) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) UpdateLateReturnFee(ctx context.Context, loanID int32, fee int32) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, fee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) CheckAndSetLateStatuses(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLoanService) GetLoan(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListLoansByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListActiveLoansByClient(ctx context.Context, clientRUN string) ([]domain.Loan, error) {
	args := m.Called(ctx, clientRUN)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) MostLoanedTools(ctx context.Context, start, end time.Time) ([]domain.ToolLoanCount, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.ToolLoanCount), args.Error(1)
}

func newLoanTestServer(t *testing.T, loans service.LoanService, isAdmin bool) (*mux.Router, string) {
	t.Helper()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	router := NewRouter(Services{Loans: loans}, tokens)
	token, err := tokens.GenerateAccessToken("222222222", isAdmin)
	assert.NoError(t, err)
	return router, token
}

func TestLoanHandler_Create(t *testing.T) {
	loans := new(MockLoanService)
	router, token := newLoanTestServer(t, loans, false)

	t.Run("Success takes the employee from the token", func(t *testing.T) {
		loans.On("CreateLoan", mock.Anything, mock.MatchedBy(func(in service.CreateLoanInput) bool {
			return in.EmployeeRUN == "222222222" && in.ClientRUN == "111111111" && len(in.UnitIDs) == 2
		})).Return(&domain.Loan{ID: 77, Status: domain.LoanStatusActive}, nil)

		body := `{"client_run":"111111111","loan_date":"2025-06-15","due_date":"2025-06-20","tool_unit_ids":[10,20]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":77`)
	})

	t.Run("Malformed date", func(t *testing.T) {
		body := `{"client_run":"111111111","loan_date":"15/06/2025","due_date":"2025-06-20","tool_unit_ids":[10]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Business rule maps to 422", func(t *testing.T) {
		loans.ExpectedCalls = nil
		loans.On("CreateLoan", mock.Anything, mock.Anything).Return(nil, domain.BusinessRulef("client 111111111 cannot borrow due to unpaid debt or restriction"))

		body := `{"client_run":"111111111","loan_date":"2025-06-15","due_date":"2025-06-20","tool_unit_ids":[10]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestLoanHandler_Return(t *testing.T) {
	loans := new(MockLoanService)
	router, token := newLoanTestServer(t, loans, false)

	loans.On("ReturnLoan", mock.Anything, int32(77), []service.ReturnLine{
		{UnitID: 10, Damage: domain.DamageNone},
		{UnitID: 20, Damage: domain.DamageEvaluating},
	}).Return(&domain.Loan{ID: 77, Status: domain.LoanStatusClosed}, nil)

	body := `{"lines":[{"tool_unit_id":10,"damage_level":"NONE"},{"tool_unit_id":20,"damage_level":"EVALUATING"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/77/return", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"CLOSED"`)
}

func TestLoanHandler_UpdateLateFee_RequiresAdmin(t *testing.T) {
	loans := new(MockLoanService)
	router, token := newLoanTestServer(t, loans, false)

	body := `{"late_return_fee":3500}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/loans/77/late-fee", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	loans.AssertNotCalled(t, "UpdateLateReturnFee", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanHandler_MostLoaned(t *testing.T) {
	loans := new(MockLoanService)
	router, token := newLoanTestServer(t, loans, false)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	loans.On("MostLoanedTools", mock.Anything, start, end).Return([]domain.ToolLoanCount{{ToolName: "Taladro", TotalLoans: 5}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/reports/most-loaned?start=2025-01-01&end=2025-06-30", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Taladro")
}
