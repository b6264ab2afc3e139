package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type loanService struct {
	repos repository.Repositories
	tx    repository.TxRunner
	now   func() time.Time
}

func NewLoanService(repos repository.Repositories, tx repository.TxRunner) LoanService {
	return &loanService{repos: repos, tx: tx, now: time.Now}
}

// CreateLoan builds one loan for the requested units. Everything from the
// eligibility check to the client's loan counter runs inside a single
// transaction: the first failing unit aborts the whole call and nothing
// is committed.
func (s *loanService) CreateLoan(ctx context.Context, in CreateLoanInput) (*domain.Loan, error) {
	if len(in.UnitIDs) == 0 {
		return nil, domain.InvalidInputf("the tool list cannot be empty")
	}
	if in.LateReturnFee != nil && *in.LateReturnFee < 0 {
		return nil, domain.InvalidInputf("late return fee must not be negative")
	}
	if err := validateDateOrder(in.LoanDate, in.DueDate); err != nil {
		return nil, err
	}

	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		employee, err := r.Employees.GetByRUN(ctx, NormalizeRUN(in.EmployeeRUN))
		if err != nil {
			return err
		}
		client, err := r.Clients.GetByRUN(ctx, NormalizeRUN(in.ClientRUN))
		if err != nil {
			return err
		}

		if err := client.BorrowEligibility(); err != nil {
			return err
		}
		overdue, err := r.Loans.ListOverdueByClient(ctx, client.RUN, s.now())
		if err != nil {
			return err
		}
		if len(overdue) > 0 {
			return domain.BusinessRulef("client %s has overdue loans pending", client.RUN)
		}

		rentedTypes, err := r.Loans.ActiveTypeIDsByClient(ctx, client.RUN)
		if err != nil {
			return err
		}

		units := make([]*domain.ToolUnit, 0, len(in.UnitIDs))
		for _, unitID := range in.UnitIDs {
			unit, err := r.ToolUnits.GetByID(ctx, unitID)
			if err != nil {
				return err
			}
			if !unit.Loanable() {
				return domain.BusinessRulef("tool %s is not available", unit.SerialNumber)
			}
			toolType, err := r.ToolTypes.GetByID(ctx, unit.TypeID)
			if err != nil {
				return err
			}
			if toolType.AvailableStock < 1 {
				return domain.BusinessRulef("no stock available for %s", toolType.Name)
			}
			if _, taken := rentedTypes[unit.TypeID]; taken {
				return domain.BusinessRulef("client %s already rents a tool of type %s", client.RUN, toolType.Name)
			}
			units = append(units, unit)
		}

		fee := in.LateReturnFee
		if fee == nil {
			f, err := lateReturnFee(ctx, r.Config)
			if err != nil {
				return err
			}
			fee = &f
		}

		loan = &domain.Loan{
			LoanDate:      domain.DateOnly(in.LoanDate),
			DueDate:       domain.DateOnly(in.DueDate),
			LateReturnFee: *fee,
			Status:        domain.LoanStatusActive,
			Timeliness:    domain.TimelinessOnTime,
			ClientRUN:     client.RUN,
			EmployeeRUN:   employee.RUN,
		}
		for _, unit := range units {
			loan.Lines = append(loan.Lines, domain.LoanLine{UnitID: unit.ID})
		}
		if err := r.Loans.Create(ctx, loan); err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}

		// The guarded claim and stock hold serialize concurrent loans on
		// the unit and counter rows.
		for _, unit := range units {
			if err := r.ToolUnits.Claim(ctx, unit.ID); err != nil {
				return err
			}
			if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, domain.StockHold, 1); err != nil {
				return err
			}
			if err := r.Ledger.Append(ctx, domain.NewLoanEntry(unit.TypeID, loan.ID, loan.LoanDate)); err != nil {
				return err
			}
		}

		client.ActiveLoans++
		return r.Clients.Update(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// ReturnLoan closes a loan, dispatching each unit on the caller's damage
// report and charging the lateness fee when the due date has passed.
func (s *loanService) ReturnLoan(ctx context.Context, loanID int32, lines []ReturnLine) (*domain.Loan, error) {
	reported := make(map[int32]domain.DamageLevel, len(lines))
	for _, line := range lines {
		if _, err := domain.ParseDamageLevel(string(line.Damage)); err != nil {
			return nil, err
		}
		reported[line.UnitID] = line.Damage
	}

	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		loan, err = r.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Status == domain.LoanStatusClosed {
			return domain.Conflictf("loan %d is already closed", loanID)
		}
		client, err := r.Clients.GetByRUN(ctx, loan.ClientRUN)
		if err != nil {
			return err
		}

		today := s.now()
		for _, stored := range loan.Lines {
			damage, ok := reported[stored.UnitID]
			if !ok {
				return domain.InvalidInputf("missing damage report for tool unit %d", stored.UnitID)
			}
			unit, err := r.ToolUnits.GetByID(ctx, stored.UnitID)
			if err != nil {
				return err
			}

			switch damage {
			case domain.DamageNone:
				unit.ReturnUndamaged()
				if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, domain.StockRelease, 1); err != nil {
					return err
				}
				if err := r.Ledger.Append(ctx, domain.NewReturnEntry(unit.TypeID, loan.ID, today)); err != nil {
					return err
				}
			case domain.DamageEvaluating:
				// The loan-time stock hold stays in place until the
				// evaluation resolves; the borrower waits restricted.
				unit.ReturnForEvaluation()
				if err := r.Ledger.Append(ctx, domain.NewDispositionEntry(unit, &loan.ID, today)); err != nil {
					return err
				}
				client.Restrict()
			default:
				return domain.Conflictf("tool unit %d already carries a damage level", stored.UnitID)
			}
			if err := r.ToolUnits.Update(ctx, unit); err != nil {
				return err
			}
		}

		if client.ActiveLoans > 0 {
			client.ActiveLoans--
		}

		if loan.Overdue(today) {
			client.ChargeLateFee(loan.LateCharge(today))
			loan.Timeliness = domain.TimelinessOverdue
		} else {
			loan.Timeliness = domain.TimelinessOnTime
		}
		if err := r.Clients.Update(ctx, client); err != nil {
			return err
		}

		returnedAt := today
		loan.ReturnedAt = &returnedAt
		loan.Status = domain.LoanStatusClosed
		return r.Loans.Update(ctx, loan)
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// UpdateLateReturnFee is the admin correction path for a stored loan's
// fee snapshot. Already-charged late fees are not recomputed.
func (s *loanService) UpdateLateReturnFee(ctx context.Context, loanID int32, fee int32) (*domain.Loan, error) {
	if fee < 0 {
		return nil, domain.InvalidInputf("late return fee must not be negative")
	}
	loan, err := s.repos.Loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	loan.LateReturnFee = fee
	if err := s.repos.Loans.Update(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// CheckAndSetLateStatuses flags every overdue active loan and restricts
// its client. Re-running once everything is flagged changes nothing.
func (s *loanService) CheckAndSetLateStatuses(ctx context.Context) error {
	return s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		active, err := r.Loans.ListByStatus(ctx, domain.LoanStatusActive)
		if err != nil {
			return err
		}

		today := s.now()
		restricted := make(map[string]bool)
		for i := range active {
			loan := &active[i]
			if !loan.Overdue(today) {
				continue
			}

			if loan.Timeliness != domain.TimelinessOverdue {
				loan.Timeliness = domain.TimelinessOverdue
				if err := r.Loans.Update(ctx, loan); err != nil {
					return err
				}
			}

			if restricted[loan.ClientRUN] {
				continue
			}
			client, err := r.Clients.GetByRUN(ctx, loan.ClientRUN)
			if err != nil {
				return err
			}
			if client.Status != domain.ClientStatusRestricted {
				client.Restrict()
				if err := r.Clients.Update(ctx, client); err != nil {
					return err
				}
			}
			restricted[loan.ClientRUN] = true
		}
		return nil
	})
}

func (s *loanService) GetLoan(ctx context.Context, id int32) (*domain.Loan, error) {
	return s.repos.Loans.GetByID(ctx, id)
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.repos.Loans.List(ctx)
}

func (s *loanService) ListLoansByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	if status != domain.LoanStatusActive && status != domain.LoanStatusClosed {
		return nil, domain.InvalidInputf("unknown loan status %q", status)
	}
	return s.repos.Loans.ListByStatus(ctx, status)
}

func (s *loanService) ListActiveLoansByClient(ctx context.Context, clientRUN string) ([]domain.Loan, error) {
	return s.repos.Loans.ListActiveByClient(ctx, NormalizeRUN(clientRUN))
}

// MostLoanedTools keeps only the top count, including ties.
func (s *loanService) MostLoanedTools(ctx context.Context, start, end time.Time) ([]domain.ToolLoanCount, error) {
	if end.Before(start) {
		return nil, domain.InvalidInputf("end date precedes start date")
	}
	counts, err := s.repos.Loans.MostLoanedTypes(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, nil
	}

	max := counts[0].TotalLoans
	top := make([]domain.ToolLoanCount, 0, 1)
	for _, c := range counts {
		if c.TotalLoans == max {
			top = append(top, c)
		}
	}
	return top, nil
}

// lateReturnFee reads the configured fee, falling back to the default
// while no configuration row exists yet.
func lateReturnFee(ctx context.Context, cfg repository.SystemConfigRepository) (int32, error) {
	stored, err := cfg.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultLateReturnFee, nil
	}
	if err != nil {
		return 0, err
	}
	return stored.LateReturnFee, nil
}
