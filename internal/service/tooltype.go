package service

import (
	"context"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolTypeService struct {
	toolTypes repository.ToolTypeRepository
}

func NewToolTypeService(toolTypes repository.ToolTypeRepository) ToolTypeService {
	return &toolTypeService{toolTypes: toolTypes}
}

func (s *toolTypeService) CreateToolType(ctx context.Context, t *domain.ToolType) error {
	if err := validateToolType(t); err != nil {
		return err
	}
	// Stock starts empty; counters move only when units are registered.
	t.TotalStock = 0
	t.AvailableStock = 0

	if err := s.toolTypes.Create(ctx, t); err != nil {
		return fmt.Errorf("failed to create tool type: %w", err)
	}
	return nil
}

func (s *toolTypeService) GetToolType(ctx context.Context, id int32) (*domain.ToolType, error) {
	return s.toolTypes.GetByID(ctx, id)
}

func (s *toolTypeService) UpdateToolType(ctx context.Context, t *domain.ToolType) error {
	stored, err := s.toolTypes.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}

	if t.Name != "" {
		if !toolNameRegex.MatchString(t.Name) {
			return domain.InvalidInputf("invalid tool name %q", t.Name)
		}
		stored.Name = t.Name
	}
	if t.Category != "" {
		if !toolNameRegex.MatchString(t.Category) {
			return domain.InvalidInputf("invalid category %q", t.Category)
		}
		stored.Category = t.Category
	}
	if t.Model != "" {
		stored.Model = t.Model
	}
	if t.ReplacementValue < 0 || t.RentalFee < 0 || t.DamageFee < 0 {
		return domain.InvalidInputf("fees and replacement value must not be negative")
	}
	if t.ReplacementValue > 0 {
		stored.ReplacementValue = t.ReplacementValue
	}
	if t.RentalFee > 0 {
		stored.RentalFee = t.RentalFee
	}
	if t.DamageFee > 0 {
		stored.DamageFee = t.DamageFee
	}
	// Stock counters are off limits here; they move only through the
	// atomic transfer operation.

	if err := s.toolTypes.Update(ctx, stored); err != nil {
		return fmt.Errorf("failed to update tool type: %w", err)
	}
	*t = *stored
	return nil
}

func (s *toolTypeService) ListToolTypes(ctx context.Context) ([]domain.ToolType, error) {
	return s.toolTypes.List(ctx)
}

func (s *toolTypeService) DeleteToolType(ctx context.Context, id int32) error {
	return s.toolTypes.Delete(ctx, id)
}
