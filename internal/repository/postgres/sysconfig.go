package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type systemConfigRepository struct {
	db DBTX
}

func NewSystemConfigRepository(db DBTX) repository.SystemConfigRepository {
	return &systemConfigRepository{db: db}
}

func (r *systemConfigRepository) Get(ctx context.Context) (*domain.SystemConfig, error) {
	cfg := &domain.SystemConfig{}
	err := r.db.QueryRowContext(ctx, `SELECT id, late_return_fee FROM system_config WHERE id = $1`, domain.SystemConfigID).
		Scan(&cfg.ID, &cfg.LateReturnFee)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("system config")
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *systemConfigRepository) Upsert(ctx context.Context, lateReturnFee int32) error {
	query := `INSERT INTO system_config (id, late_return_fee) VALUES ($1, $2)
	          ON CONFLICT (id) DO UPDATE SET late_return_fee = EXCLUDED.late_return_fee`
	_, err := r.db.ExecContext(ctx, query, domain.SystemConfigID, lateReturnFee)
	return err
}
