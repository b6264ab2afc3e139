package postgres

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type ledgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `INSERT INTO kardex (op, entry_date, quantity, tool_type_id, loan_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, entry.Op, entry.Date, entry.Quantity, entry.TypeID, entry.LoanID).Scan(&entry.ID)
}

func (r *ledgerRepository) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	return r.list(ctx, `SELECT id, op, entry_date, quantity, tool_type_id, loan_id FROM kardex ORDER BY id`)
}

func (r *ledgerRepository) ListByTypeName(ctx context.Context, name string) ([]domain.LedgerEntry, error) {
	query := `SELECT k.id, k.op, k.entry_date, k.quantity, k.tool_type_id, k.loan_id
	          FROM kardex k
	          JOIN tool_types t ON t.id = k.tool_type_id
	          WHERE t.name = $1
	          ORDER BY k.id`
	return r.list(ctx, query, name)
}

func (r *ledgerRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.LedgerEntry, error) {
	return r.list(ctx, `SELECT id, op, entry_date, quantity, tool_type_id, loan_id FROM kardex WHERE entry_date BETWEEN $1 AND $2 ORDER BY id`,
		domain.DateOnly(start), domain.DateOnly(end))
}

func (r *ledgerRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM kardex WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("kardex entry %d", id))
}

func (r *ledgerRepository) list(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Op, &e.Date, &e.Quantity, &e.TypeID, &e.LoanID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
