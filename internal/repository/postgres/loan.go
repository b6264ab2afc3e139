package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type loanRepository struct {
	db DBTX
}

func NewLoanRepository(db DBTX) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, loan_date, due_date, returned_at, late_return_fee, status, timeliness, client_run, employee_run`

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `INSERT INTO loans (loan_date, due_date, late_return_fee, status, timeliness, client_run, employee_run)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, loan.LoanDate, loan.DueDate, loan.LateReturnFee, loan.Status, loan.Timeliness, loan.ClientRUN, loan.EmployeeRUN).Scan(&loan.ID)
	if err != nil {
		return err
	}

	for i := range loan.Lines {
		line := &loan.Lines[i]
		line.LoanID = loan.ID
		err := r.db.QueryRowContext(ctx,
			`INSERT INTO loan_lines (loan_id, tool_unit_id) VALUES ($1, $2) RETURNING id`,
			line.LoanID, line.UnitID).Scan(&line.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.Conflictf("tool unit %d appears twice in loan %d", line.UnitID, loan.ID)
			}
			return err
		}
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	loan := &domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&loan.ID, &loan.LoanDate, &loan.DueDate, &loan.ReturnedAt, &loan.LateReturnFee, &loan.Status, &loan.Timeliness, &loan.ClientRUN, &loan.EmployeeRUN)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("loan %d", id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, loan_id, tool_unit_id FROM loan_lines WHERE loan_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var line domain.LoanLine
		if err := rows.Scan(&line.ID, &line.LoanID, &line.UnitID); err != nil {
			return nil, err
		}
		loan.Lines = append(loan.Lines, line)
	}
	return loan, rows.Err()
}

func (r *loanRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM loans WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `UPDATE loans SET returned_at=$1, late_return_fee=$2, status=$3, timeliness=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, loan.ReturnedAt, loan.LateReturnFee, loan.Status, loan.Timeliness, loan.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("loan %d", loan.ID))
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans ORDER BY id DESC`)
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE status = $1 ORDER BY id DESC`, status)
}

func (r *loanRepository) ListActiveByClient(ctx context.Context, clientRUN string) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE client_run = $1 AND status = $2 ORDER BY id DESC`, clientRUN, domain.LoanStatusActive)
}

func (r *loanRepository) ListOverdueByClient(ctx context.Context, clientRUN string, today time.Time) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE client_run = $1 AND status = $2 AND due_date < $3 ORDER BY id DESC`,
		clientRUN, domain.LoanStatusActive, domain.DateOnly(today))
}

func (r *loanRepository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(&l.ID, &l.LoanDate, &l.DueDate, &l.ReturnedAt, &l.LateReturnFee, &l.Status, &l.Timeliness, &l.ClientRUN, &l.EmployeeRUN); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *loanRepository) ActiveTypeIDsByClient(ctx context.Context, clientRUN string) (map[int32]struct{}, error) {
	query := `SELECT DISTINCT u.tool_type_id
	          FROM loan_lines ll
	          JOIN loans l ON l.id = ll.loan_id
	          JOIN tool_units u ON u.id = ll.tool_unit_id
	          WHERE l.client_run = $1 AND l.status = $2`
	rows, err := r.db.QueryContext(ctx, query, clientRUN, domain.LoanStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	typeIDs := make(map[int32]struct{})
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		typeIDs[id] = struct{}{}
	}
	return typeIDs, rows.Err()
}

func (r *loanRepository) HistoryByUnit(ctx context.Context, unitID int32) ([]domain.Loan, error) {
	query := `SELECT l.id, l.loan_date, l.due_date, l.returned_at, l.late_return_fee, l.status, l.timeliness, l.client_run, l.employee_run
	          FROM loans l
	          JOIN loan_lines ll ON ll.loan_id = l.id
	          WHERE ll.tool_unit_id = $1
	          ORDER BY l.loan_date DESC, l.id DESC`
	return r.list(ctx, query, unitID)
}

func (r *loanRepository) MostLoanedTypes(ctx context.Context, start, end time.Time) ([]domain.ToolLoanCount, error) {
	query := `SELECT t.name, COUNT(*) AS total_loans
	          FROM loan_lines ll
	          JOIN loans l ON l.id = ll.loan_id
	          JOIN tool_units u ON u.id = ll.tool_unit_id
	          JOIN tool_types t ON t.id = u.tool_type_id
	          WHERE l.loan_date BETWEEN $1 AND $2
	          GROUP BY t.name
	          ORDER BY total_loans DESC, t.name`
	rows, err := r.db.QueryContext(ctx, query, domain.DateOnly(start), domain.DateOnly(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.ToolLoanCount
	for rows.Next() {
		var c domain.ToolLoanCount
		if err := rows.Scan(&c.ToolName, &c.TotalLoans); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
