package service

import (
	"context"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type configService struct {
	config repository.SystemConfigRepository
}

func NewConfigService(config repository.SystemConfigRepository) ConfigService {
	return &configService{config: config}
}

func (s *configService) GetLateReturnFee(ctx context.Context) (int32, error) {
	return lateReturnFee(ctx, s.config)
}

func (s *configService) SetLateReturnFee(ctx context.Context, fee int32) error {
	if fee < 0 {
		return domain.InvalidInputf("late return fee must not be negative")
	}
	return s.config.Upsert(ctx, fee)
}
