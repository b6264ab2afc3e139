package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type kardexService struct {
	ledger repository.LedgerRepository
}

func NewKardexService(ledger repository.LedgerRepository) KardexService {
	return &kardexService{ledger: ledger}
}

func (s *kardexService) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return s.ledger.List(ctx)
}

func (s *kardexService) ListEntriesByToolName(ctx context.Context, name string) ([]domain.LedgerEntry, error) {
	if !toolNameRegex.MatchString(name) {
		return nil, domain.InvalidInputf("invalid tool name %q", name)
	}
	return s.ledger.ListByTypeName(ctx, name)
}

func (s *kardexService) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.LedgerEntry, error) {
	if end.Before(start) {
		return nil, domain.InvalidInputf("end date precedes start date")
	}
	return s.ledger.ListByDateRange(ctx, start, end)
}

// DeleteEntry is the administrative escape hatch; no workflow calls it.
func (s *kardexService) DeleteEntry(ctx context.Context, id int32) error {
	return s.ledger.Delete(ctx, id)
}
