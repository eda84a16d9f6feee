package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"context"
	"strconv"
)

type LeaderboardService struct {
	LeaderboardRepo *repository.LeaderboardRepository
	UserRepo        *repository.UserRepository
}

func NewLeaderboardService(leaderboardRepo *repository.LeaderboardRepository, userRepo *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{LeaderboardRepo: leaderboardRepo, UserRepo: userRepo}
}

// Top 取前 n 名并补全用户名。已注销的用户保留在榜上但名字为空。
func (s *LeaderboardService) Top(ctx context.Context, n int64) ([]model.LeaderboardEntry, error) {
	rows, err := s.LeaderboardRepo.Top(ctx, n)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		member, _ := row.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	users, err := s.UserRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		member, _ := row.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		entry := model.LeaderboardEntry{
			Rank:   i + 1,
			UserID: uint(id),
			Points: row.Score,
		}
		if u, ok := byID[uint(id)]; ok {
			entry.Name = u.Name
			entry.Avatar = u.Avatar
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *LeaderboardService) MyScore(ctx context.Context, userID uint) (float64, error) {
	return s.LeaderboardRepo.Score(ctx, userID)
}
