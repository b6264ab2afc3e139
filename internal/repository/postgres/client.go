package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type clientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) repository.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `run, name, surname, email, cellphone, status, debt, active_loans`

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (run, name, surname, email, cellphone, status, debt, active_loans)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, c.RUN, c.Name, c.Surname, c.Email, c.Cellphone, c.Status, c.Debt, c.ActiveLoans)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("client %s already exists", c.RUN)
	}
	return err
}

func (r *clientRepository) GetByRUN(ctx context.Context, run string) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE run = $1`
	err := r.db.QueryRowContext(ctx, query, run).Scan(&c.RUN, &c.Name, &c.Surname, &c.Email, &c.Cellphone, &c.Status, &c.Debt, &c.ActiveLoans)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("client %s", run)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Exists(ctx context.Context, run string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE run = $1)`, run).Scan(&exists)
	return exists, err
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, surname=$2, email=$3, cellphone=$4, status=$5, debt=$6, active_loans=$7 WHERE run=$8`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Surname, c.Email, c.Cellphone, c.Status, c.Debt, c.ActiveLoans, c.RUN)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("client %s", c.RUN))
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY surname, name`)
}

func (r *clientRepository) ListByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE status = $1 ORDER BY surname, name`, status)
}

func (r *clientRepository) list(ctx context.Context, query string, args ...any) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.RUN, &c.Name, &c.Surname, &c.Email, &c.Cellphone, &c.Status, &c.Debt, &c.ActiveLoans); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Delete(ctx context.Context, run string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE run = $1`, run)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("client %s", run))
}
