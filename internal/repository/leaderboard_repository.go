package repository

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const trainingLeaderboardKey = "leaderboard:training"

// LeaderboardRepository 训练积分榜，基于 Redis 有序集合
type LeaderboardRepository struct {
	Redis *redis.Client
}

func NewLeaderboardRepository(rdb *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{Redis: rdb}
}

func (r *LeaderboardRepository) AddPoints(ctx context.Context, userID uint, points float64) error {
	member := strconv.FormatUint(uint64(userID), 10)
	return r.Redis.ZIncrBy(ctx, trainingLeaderboardKey, points, member).Err()
}

func (r *LeaderboardRepository) Top(ctx context.Context, n int64) ([]redis.Z, error) {
	return r.Redis.ZRevRangeWithScores(ctx, trainingLeaderboardKey, 0, n-1).Result()
}

func (r *LeaderboardRepository) Score(ctx context.Context, userID uint) (float64, error) {
	member := strconv.FormatUint(uint64(userID), 10)
	score, err := r.Redis.ZScore(ctx, trainingLeaderboardKey, member).Result()
	if err == redis.Nil {
		return 0, nil
	}
	return score, err
}
