package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolTypeRepository struct {
	db DBTX
}

func NewToolTypeRepository(db DBTX) repository.ToolTypeRepository {
	return &toolTypeRepository{db: db}
}

const toolTypeColumns = `id, name, category, model, replacement_value, rental_fee, damage_fee, total_stock, available_stock`

func (r *toolTypeRepository) Create(ctx context.Context, t *domain.ToolType) error {
	query := `INSERT INTO tool_types (name, category, model, replacement_value, rental_fee, damage_fee, total_stock, available_stock)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, t.Name, t.Category, t.Model, t.ReplacementValue, t.RentalFee, t.DamageFee, t.TotalStock, t.AvailableStock).Scan(&t.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("tool type %q already exists", t.Name)
	}
	return err
}

func (r *toolTypeRepository) GetByID(ctx context.Context, id int32) (*domain.ToolType, error) {
	t := &domain.ToolType{}
	query := `SELECT ` + toolTypeColumns + ` FROM tool_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Category, &t.Model, &t.ReplacementValue, &t.RentalFee, &t.DamageFee, &t.TotalStock, &t.AvailableStock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("tool type %d", id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolTypeRepository) GetByName(ctx context.Context, name string) (*domain.ToolType, error) {
	t := &domain.ToolType{}
	query := `SELECT ` + toolTypeColumns + ` FROM tool_types WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name, &t.Category, &t.Model, &t.ReplacementValue, &t.RentalFee, &t.DamageFee, &t.TotalStock, &t.AvailableStock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("tool type %q", name)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolTypeRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM tool_types WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *toolTypeRepository) Update(ctx context.Context, t *domain.ToolType) error {
	query := `UPDATE tool_types SET name=$1, category=$2, model=$3, replacement_value=$4, rental_fee=$5, damage_fee=$6, total_stock=$7, available_stock=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Category, t.Model, t.ReplacementValue, t.RentalFee, t.DamageFee, t.TotalStock, t.AvailableStock, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("tool type %d", t.ID))
}

func (r *toolTypeRepository) List(ctx context.Context) ([]domain.ToolType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+toolTypeColumns+` FROM tool_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ToolType
	for rows.Next() {
		var t domain.ToolType
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Model, &t.ReplacementValue, &t.RentalFee, &t.DamageFee, &t.TotalStock, &t.AvailableStock); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// TransferStock applies both counter deltas in one guarded statement.
// The WHERE clause is the invariant: post-transfer counters must satisfy
// 0 <= available <= total, so a violating transfer matches zero rows and
// is rejected without writing anything.
func (r *toolTypeRepository) TransferStock(ctx context.Context, typeID int32, kind domain.StockTransfer, qty int32) error {
	dTotal, dAvailable := kind.Deltas(qty)
	query := `UPDATE tool_types
	          SET total_stock = total_stock + $2, available_stock = available_stock + $3
	          WHERE id = $1
	            AND total_stock + $2 >= 0
	            AND available_stock + $3 >= 0
	            AND available_stock + $3 <= total_stock + $2`
	res, err := r.db.ExecContext(ctx, query, typeID, dTotal, dAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		exists, err := r.Exists(ctx, typeID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("tool type %d", typeID)
		}
		return domain.BusinessRulef("stock transfer %s x%d on tool type %d would break stock invariant", kind, qty, typeID)
	}
	return nil
}

func (r *toolTypeRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tool_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("tool type %d", id))
}
