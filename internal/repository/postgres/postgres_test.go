package postgres

import (
	"context"
	"errors"
	"testing"

	"toolrent-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStore_WithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO system_config").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err = store.WithinTx(ctx, func(r repository.Repositories) error {
			return r.Config.Upsert(ctx, 2500)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := NewStore(db)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO system_config").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectRollback()

		err = store.WithinTx(ctx, func(r repository.Repositories) error {
			if err := r.Config.Upsert(ctx, 2500); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
