package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type FeedRepository struct {
	DB *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{DB: db}
}

func (r *FeedRepository) Create(post *model.FeedPost) error {
	return r.DB.Create(post).Error
}

func (r *FeedRepository) FindRecent(limit int) ([]model.FeedPost, error) {
	var posts []model.FeedPost
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *FeedRepository) AddLike(postID uint, delta int) error {
	return r.DB.Model(&model.FeedPost{}).
		Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + ?", delta)).
		Error
}
