package postgres

import (
	"context"
	"testing"

	"toolrent-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSystemConfigRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSystemConfigRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, late_return_fee FROM system_config").
			WithArgs(int32(domain.SystemConfigID)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "late_return_fee"}).AddRow(1, 2500))

		cfg, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int32(2500), cfg.LateReturnFee)
	})

	t.Run("Unset", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, late_return_fee FROM system_config").
			WithArgs(int32(domain.SystemConfigID)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSystemConfigRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSystemConfigRepository(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO system_config").
		WithArgs(int32(domain.SystemConfigID), int32(2500)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Upsert(ctx, 2500))
	assert.NoError(t, mock.ExpectationsWereMet())
}
