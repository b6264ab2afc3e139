package service

import (
	"context"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolUnitService struct {
	repos repository.Repositories
	tx    repository.TxRunner
	now   func() time.Time
}

func NewToolUnitService(repos repository.Repositories, tx repository.TxRunner) ToolUnitService {
	return &toolUnitService{repos: repos, tx: tx, now: time.Now}
}

func (s *toolUnitService) RegisterUnit(ctx context.Context, unit *domain.ToolUnit) error {
	if err := validateSerial(unit.SerialNumber); err != nil {
		return err
	}
	if unit.DamageLevel == "" {
		unit.DamageLevel = domain.DamageNone
	}
	if _, err := domain.ParseDamageLevel(string(unit.DamageLevel)); err != nil {
		return err
	}

	taken, err := s.repos.ToolUnits.ExistsBySerial(ctx, unit.SerialNumber)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflictf("serial number %s is already registered", unit.SerialNumber)
	}

	// A unit arriving undamaged goes straight to the shelf; anything else
	// only counts toward total stock.
	kind := domain.StockRegister
	switch unit.DamageLevel {
	case domain.DamageNone:
		unit.Status = domain.UnitStatusAvailable
	case domain.DamageIrreparable, domain.DamageDisuse:
		unit.Status = domain.UnitStatusRetired
		kind = domain.StockRegisterUnavailable
	default:
		unit.Status = domain.UnitStatusUnderRepair
		kind = domain.StockRegisterUnavailable
	}

	return s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, kind, 1); err != nil {
			return err
		}
		if err := r.ToolUnits.Create(ctx, unit); err != nil {
			return fmt.Errorf("failed to create tool unit: %w", err)
		}
		return r.Ledger.Append(ctx, domain.NewRegisterEntry(unit.TypeID, 1, s.now()))
	})
}

func (s *toolUnitService) GetUnit(ctx context.Context, id int32) (*domain.ToolUnit, error) {
	return s.repos.ToolUnits.GetByID(ctx, id)
}

func (s *toolUnitService) GetUnitBySerial(ctx context.Context, serial string) (*domain.ToolUnit, error) {
	return s.repos.ToolUnits.GetBySerial(ctx, serial)
}

func (s *toolUnitService) FirstAvailableUnit(ctx context.Context, typeID int32) (*domain.ToolUnit, error) {
	return s.repos.ToolUnits.FirstAvailableByType(ctx, typeID)
}

func (s *toolUnitService) ListUnits(ctx context.Context) ([]domain.ToolUnit, error) {
	return s.repos.ToolUnits.List(ctx)
}

func (s *toolUnitService) UnitHistory(ctx context.Context, unitID int32) ([]domain.Loan, error) {
	return s.repos.Loans.HistoryByUnit(ctx, unitID)
}

func (s *toolUnitService) DisableUnit(ctx context.Context, unitID int32, level domain.DamageLevel) (*domain.ToolUnit, error) {
	if _, err := domain.ParseDamageLevel(string(level)); err != nil {
		return nil, err
	}
	if level == domain.DamageNone {
		return nil, domain.InvalidInputf("cannot disable a unit with no damage")
	}

	unit, err := s.repos.ToolUnits.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.Status == domain.UnitStatusOnLoan {
		return nil, domain.Conflictf("tool %s is on loan", unit.SerialNumber)
	}
	if unit.Status == domain.UnitStatusRetired {
		return nil, domain.Conflictf("tool %s is already retired", unit.SerialNumber)
	}

	wasAvailable := unit.Status == domain.UnitStatusAvailable

	var kind domain.StockTransfer
	if level == domain.DamageIrreparable || level == domain.DamageDisuse {
		unit.Retire(level)
		// A retired unit never returns to circulation. Its availability
		// was already held if it sat in repair.
		kind = domain.StockWriteOff
		if wasAvailable {
			kind = domain.StockRetire
		}
	} else {
		unit.SendToRepair(level)
		if wasAvailable {
			kind = domain.StockHold
		}
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if kind != "" {
			if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, kind, 1); err != nil {
				return err
			}
		}
		if err := r.ToolUnits.Update(ctx, unit); err != nil {
			return err
		}
		return r.Ledger.Append(ctx, domain.NewDispositionEntry(unit, nil, s.now()))
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *toolUnitService) EnableUnit(ctx context.Context, unitID int32) (*domain.ToolUnit, error) {
	unit, err := s.repos.ToolUnits.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.Status == domain.UnitStatusAvailable {
		return nil, domain.Conflictf("tool %s is already available", unit.SerialNumber)
	}

	wasRetired := unit.Status == domain.UnitStatusRetired
	if err := unit.Enable(); err != nil {
		return nil, err
	}

	// A disused unit was written off total stock, so re-enabling it is a
	// re-registration; a repaired unit only rejoins availability.
	kind := domain.StockRelease
	if wasRetired {
		kind = domain.StockRegister
	}

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, kind, 1); err != nil {
			return err
		}
		return r.ToolUnits.Update(ctx, unit)
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *toolUnitService) EvaluateDamage(ctx context.Context, unitID int32, level domain.DamageLevel) (*domain.ToolUnit, error) {
	if _, err := domain.ParseDamageLevel(string(level)); err != nil {
		return nil, err
	}
	if level == domain.DamageEvaluating {
		return nil, domain.InvalidInputf("evaluation must resolve to a concrete damage level")
	}

	unit, err := s.repos.ToolUnits.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.Status == domain.UnitStatusOnLoan {
		return nil, domain.Conflictf("tool %s is on loan", unit.SerialNumber)
	}

	history, err := s.repos.Loans.HistoryByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, domain.BusinessRulef("tool %s has never been loaned, nobody can be charged", unit.SerialNumber)
	}
	lastLoan := history[0]

	err = s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		client, err := r.Clients.GetByRUN(ctx, lastLoan.ClientRUN)
		if err != nil {
			return err
		}

		toolType, err := r.ToolTypes.GetByID(ctx, unit.TypeID)
		if err != nil {
			return err
		}

		switch {
		case level == domain.DamageNone:
			// The damage report turned out to be false: back to the
			// shelf, and the borrower's restriction is lifted if no
			// debt remains. Nothing is charged.
			unit.ReturnUndamaged()
			if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, domain.StockRelease, 1); err != nil {
				return err
			}
			if client.LiftRestrictionIfClear() {
				if err := r.Clients.Update(ctx, client); err != nil {
					return err
				}
			}
			return r.ToolUnits.Update(ctx, unit)

		case level == domain.DamageIrreparable:
			unit.Retire(level)
			// Availability was already held at loan time; only the
			// total drops.
			if err := r.ToolTypes.TransferStock(ctx, unit.TypeID, domain.StockWriteOff, 1); err != nil {
				return err
			}

		default:
			unit.SendToRepair(level)
		}

		client.ChargeDamageFee(toolType, level)
		if err := r.Clients.Update(ctx, client); err != nil {
			return err
		}
		if err := r.ToolUnits.Update(ctx, unit); err != nil {
			return err
		}
		return r.Ledger.Append(ctx, domain.NewDispositionEntry(unit, &lastLoan.ID, s.now()))
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}
