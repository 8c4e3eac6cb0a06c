package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/The-Hackers-Corner/thc-website/models"
)

// LeaderboardEntry 排行榜中的一行
type LeaderboardEntry struct {
	Rank  uint   `json:"rank"`
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Score uint   `json:"score"`
}

const (
	leaderboardCachePrefix = "leaderboard:top:"
	// 缓存有效期较短，保证排行榜的准实时性
	leaderboardCacheTTL = 15 * time.Second
	maxLeaderboardLimit = 100
)

type RankingService struct {
	db  *gorm.DB
	rdb *redis.Client // 可为 nil，此时不走缓存
}

func NewRankingService(db *gorm.DB, rdb *redis.Client) *RankingService {
	return &RankingService{db: db, rdb: rdb}
}

// RankOf 用户的 1-based 排名：统计分数更高、或同分但更早达到的用户数。
// 每次读取即时计算，不维护序结构（小规模下完全够用）。
func (s *RankingService) RankOf(user *models.User) (uint, error) {
	var better int64
	err := s.db.Model(&models.User{}).
		Where("score > ? OR (score = ? AND score_achieved_at < ?)",
			user.Score, user.Score, user.ScoreAchievedAt).
		Count(&better).Error
	if err != nil {
		return 0, err
	}
	return uint(better) + 1, nil
}

// TopN 前 N 名，按分数降序、达到时间升序、最后按用户 ID 升序兜底，
// 保证完全同分同时间时顺序也是确定的。配置了 Redis 时结果短暂缓存。
func (s *RankingService) TopN(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	cacheKey := fmt.Sprintf("%s%d", leaderboardCachePrefix, limit)
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached []LeaderboardEntry
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	var users []models.User
	if err := s.db.Model(&models.User{}).
		Order("score DESC, score_achieved_at ASC, id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:  uint(i + 1),
			ID:    u.ID,
			Name:  u.Name,
			Score: u.Score,
		})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(entries); err == nil {
			s.rdb.Set(ctx, cacheKey, data, leaderboardCacheTTL)
		}
	}
	return entries, nil
}

// InvalidateCache 分数变化后清掉排行榜缓存，下次查询取最新数据
func (s *RankingService) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	keys, err := s.rdb.Keys(ctx, leaderboardCachePrefix+"*").Result()
	if err == nil && len(keys) > 0 {
		s.rdb.Del(ctx, keys...)
	}
}
