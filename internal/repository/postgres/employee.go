package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type employeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `run, name, surname, email, cellphone, is_admin, password_hash`

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (run, name, surname, email, cellphone, is_admin, password_hash)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, e.RUN, e.Name, e.Surname, e.Email, e.Cellphone, e.IsAdmin, e.PasswordHash)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("employee %s already exists", e.RUN)
	}
	return err
}

func (r *employeeRepository) GetByRUN(ctx context.Context, run string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE run = $1`
	err := r.db.QueryRowContext(ctx, query, run).Scan(&e.RUN, &e.Name, &e.Surname, &e.Email, &e.Cellphone, &e.IsAdmin, &e.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("employee %s", run)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) Exists(ctx context.Context, run string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE run = $1)`, run).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name=$1, surname=$2, email=$3, cellphone=$4, is_admin=$5, password_hash=$6 WHERE run=$7`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.Surname, e.Email, e.Cellphone, e.IsAdmin, e.PasswordHash, e.RUN)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("employee %s", e.RUN))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY surname, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.RUN, &e.Name, &e.Surname, &e.Email, &e.Cellphone, &e.IsAdmin, &e.PasswordHash); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Delete(ctx context.Context, run string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE run = $1`, run)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("employee %s", run))
}
