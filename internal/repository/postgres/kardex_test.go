package postgres

import (
	"context"
	"testing"
	"time"

	"toolrent-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLedgerRepository_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	entry := domain.NewLoanEntry(1, 77, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery("INSERT INTO kardex").
		WithArgs(entry.Op, entry.Date, entry.Quantity, entry.TypeID, entry.LoanID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Append(ctx, entry)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), entry.ID)
}

func TestLedgerRepository_ListByTypeName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "op", "entry_date", "quantity", "tool_type_id", "loan_id"}).
		AddRow(1, "REGISTER", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1, 1, nil).
		AddRow(2, "LOAN", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 1, 1, 77)

	mock.ExpectQuery("SELECT (.+) FROM kardex k").
		WithArgs("Taladro").
		WillReturnRows(rows)

	entries, err := repo.ListByTypeName(ctx, "Taladro")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.LedgerOpRegister, entries[0].Op)
	assert.Nil(t, entries[0].LoanID)
	assert.Equal(t, int32(77), *entries[1].LoanID)
}

func TestLedgerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM kardex").
		WithArgs(int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(ctx, 9), domain.ErrNotFound)
}
