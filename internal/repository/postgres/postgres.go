package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/repository"

	"github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// every repository works both standalone and inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store aggregates all repositories over one connection pool and provides
// the transaction boundary the orchestrator requires.
type Store struct {
	db *sql.DB
	repository.Repositories
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, Repositories: newRepositories(db)}
}

func newRepositories(db DBTX) repository.Repositories {
	return repository.Repositories{
		Clients:   NewClientRepository(db),
		Employees: NewEmployeeRepository(db),
		ToolTypes: NewToolTypeRepository(db),
		ToolUnits: NewToolUnitRepository(db),
		Loans:     NewLoanRepository(db),
		Ledger:    NewLedgerRepository(db),
		Config:    NewSystemConfigRepository(db),
	}
}

// WithinTx runs fn with repositories bound to a single transaction.
// fn returning an error rolls back every write it performed.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// requireRow converts a zero-rows-affected result into notFound.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
