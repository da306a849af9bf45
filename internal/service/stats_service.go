package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gin-task-forms/internal/core/cache"
	"gin-task-forms/internal/domain"
)

type Stats struct {
	Users       int64 `json:"users"`
	BannedUsers int64 `json:"bannedUsers"`
	Submissions int64 `json:"submissions"`
}

// StatsService 汇总管理端看板数据；Redis 可用时短暂缓存
type StatsService struct {
	users domain.UserRepository
	subs  domain.SubmissionRepository
	cache *cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewStatsService(users domain.UserRepository, subs domain.SubmissionRepository, c *cache.Cache, ttl time.Duration, l *zap.Logger) *StatsService {
	if c == nil {
		c = &cache.Cache{}
	}
	return &StatsService{users: users, subs: subs, cache: c, ttl: ttl, log: l}
}

const statsKey = "admin-stats"

func (s *StatsService) Stats(ctx context.Context) (Stats, error) {
	st, err := cache.GetOrLoadJSON(ctx, s.cache, statsKey, s.ttl, func(ctx context.Context) (Stats, error) {
		active, banned, err := s.users.Count(ctx)
		if err != nil {
			return Stats{}, err
		}
		n, err := s.subs.Count(ctx)
		if err != nil {
			return Stats{}, err
		}
		return Stats{Users: active, BannedUsers: banned, Submissions: n}, nil
	})
	if err != nil {
		s.log.Error("load stats failed", zap.Error(err))
		return Stats{}, domain.Upstream("Failed to load stats.", err)
	}
	return st, nil
}

// Invalidate 封禁等写操作后调用，下一次读取重新统计
func (s *StatsService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsKey); err != nil {
		s.log.Warn("stats cache invalidate failed", zap.Error(err))
	}
}
