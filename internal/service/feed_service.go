package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	feedCacheKey = "feed:recent"
	feedCacheTTL = 30 * time.Second
	feedPageSize = 50
)

// FeedService 社区动态流。最近列表走 Redis 短缓存，缓存失效或
// Redis 不可用时直接回源数据库。
type FeedService struct {
	FeedRepo        *repository.FeedRepository
	InteractionRepo *repository.InteractionRepository
	Redis           *redis.Client
}

func NewFeedService(feedRepo *repository.FeedRepository, interactionRepo *repository.InteractionRepository, rdb *redis.Client) *FeedService {
	return &FeedService{FeedRepo: feedRepo, InteractionRepo: interactionRepo, Redis: rdb}
}

type FeedPostInput struct {
	Body     string `json:"body" binding:"required"`
	MediaURL string `json:"mediaUrl"`
}

func (s *FeedService) CreatePost(ctx context.Context, userID uint, in FeedPostInput) (*model.FeedPost, error) {
	post := &model.FeedPost{
		AuthorID: userID,
		Body:     in.Body,
		MediaURL: in.MediaURL,
	}
	if err := s.FeedRepo.Create(post); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return post, nil
}

func (s *FeedService) RecentPosts(ctx context.Context) ([]model.FeedPost, error) {
	if cached, err := s.Redis.Get(ctx, feedCacheKey).Bytes(); err == nil {
		var posts []model.FeedPost
		if json.Unmarshal(cached, &posts) == nil {
			return posts, nil
		}
	}

	posts, err := s.FeedRepo.FindRecent(feedPageSize)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(posts); err == nil {
		if err := s.Redis.Set(ctx, feedCacheKey, payload, feedCacheTTL).Err(); err != nil {
			logger.Log.Warn("feed cache write failed", zap.Error(err))
		}
	}
	return posts, nil
}

// ToggleLike 点赞开关并同步帖子计数
func (s *FeedService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	liked, err := s.InteractionRepo.Toggle(userID, model.ContentTypePost, postID, model.InteractionLike)
	if err != nil {
		return false, err
	}
	delta := 1
	if !liked {
		delta = -1
	}
	if err := s.FeedRepo.AddLike(postID, delta); err != nil {
		return liked, err
	}
	s.invalidateCache(ctx)
	return liked, nil
}

func (s *FeedService) invalidateCache(ctx context.Context) {
	if err := s.Redis.Del(ctx, feedCacheKey).Err(); err != nil {
		logger.Log.Warn("feed cache invalidation failed", zap.Error(err))
	}
}
