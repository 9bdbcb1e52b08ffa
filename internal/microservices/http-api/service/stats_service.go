package service

import (
	"context"
	"time"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"go.uber.org/zap"
)

const statsCacheKey = "admin:stats"

type StatsService interface {
	Get(ctx context.Context) (*models.AdminStats, error)
}

type statsService struct {
	stats  repository.StatsRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewStatsService(stats repository.StatsRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) StatsService {
	return &statsService{stats: stats, cache: c, ttl: ttl, logger: logger}
}

func (s *statsService) Get(ctx context.Context) (*models.AdminStats, error) {
	var cached models.AdminStats
	if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err != nil {
		s.logger.Warn("read stats cache failed", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	stats, err := s.stats.Collect(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, statsCacheKey, stats, s.ttl); err != nil {
		s.logger.Warn("write stats cache failed", zap.Error(err))
	}
	return stats, nil
}
