package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolUnitRepository struct {
	db DBTX
}

func NewToolUnitRepository(db DBTX) repository.ToolUnitRepository {
	return &toolUnitRepository{db: db}
}

const toolUnitColumns = `id, serial_number, tool_type_id, status, damage_level`

func (r *toolUnitRepository) Create(ctx context.Context, u *domain.ToolUnit) error {
	query := `INSERT INTO tool_units (serial_number, tool_type_id, status, damage_level)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, u.SerialNumber, u.TypeID, u.Status, u.DamageLevel).Scan(&u.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("tool unit with serial %s already exists", u.SerialNumber)
	}
	return err
}

func (r *toolUnitRepository) GetByID(ctx context.Context, id int32) (*domain.ToolUnit, error) {
	u := &domain.ToolUnit{}
	query := `SELECT ` + toolUnitColumns + ` FROM tool_units WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.SerialNumber, &u.TypeID, &u.Status, &u.DamageLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("tool unit %d", id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *toolUnitRepository) GetBySerial(ctx context.Context, serial string) (*domain.ToolUnit, error) {
	u := &domain.ToolUnit{}
	query := `SELECT ` + toolUnitColumns + ` FROM tool_units WHERE serial_number = $1`
	err := r.db.QueryRowContext(ctx, query, serial).Scan(&u.ID, &u.SerialNumber, &u.TypeID, &u.Status, &u.DamageLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("tool unit with serial %s", serial)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *toolUnitRepository) ExistsBySerial(ctx context.Context, serial string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM tool_units WHERE serial_number = $1)`, serial).Scan(&exists)
	return exists, err
}

func (r *toolUnitRepository) FirstAvailableByType(ctx context.Context, typeID int32) (*domain.ToolUnit, error) {
	u := &domain.ToolUnit{}
	query := `SELECT ` + toolUnitColumns + ` FROM tool_units
	          WHERE tool_type_id = $1 AND status = $2 AND damage_level = $3
	          ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, typeID, domain.UnitStatusAvailable, domain.DamageNone).Scan(&u.ID, &u.SerialNumber, &u.TypeID, &u.Status, &u.DamageLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("no available units of tool type %d", typeID)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *toolUnitRepository) Update(ctx context.Context, u *domain.ToolUnit) error {
	query := `UPDATE tool_units SET status=$1, damage_level=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, u.Status, u.DamageLevel, u.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("tool unit %d", u.ID))
}

// Claim transitions AVAILABLE/NONE to ON_LOAN in one statement. Two
// transactions racing for the same unit serialize on the row; the loser
// matches zero rows and gets a conflict.
func (r *toolUnitRepository) Claim(ctx context.Context, id int32) error {
	query := `UPDATE tool_units SET status = $2 WHERE id = $1 AND status = $3 AND damage_level = $4`
	res, err := r.db.ExecContext(ctx, query, id, domain.UnitStatusOnLoan, domain.UnitStatusAvailable, domain.DamageNone)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.Conflictf("tool unit %d is not claimable", id)
	}
	return nil
}

func (r *toolUnitRepository) List(ctx context.Context) ([]domain.ToolUnit, error) {
	// Joined to the type name so units of the same type list together.
	query := `SELECT u.id, u.serial_number, u.tool_type_id, u.status, u.damage_level
	          FROM tool_units u JOIN tool_types t ON t.id = u.tool_type_id
	          ORDER BY t.name, u.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.ToolUnit
	for rows.Next() {
		var u domain.ToolUnit
		if err := rows.Scan(&u.ID, &u.SerialNumber, &u.TypeID, &u.Status, &u.DamageLevel); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *toolUnitRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tool_units WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.NotFoundf("tool unit %d", id))
}
