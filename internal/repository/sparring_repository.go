package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type SparringVideoRepository struct {
	DB *gorm.DB
}

func NewSparringVideoRepository(db *gorm.DB) *SparringVideoRepository {
	return &SparringVideoRepository{DB: db}
}

func (r *SparringVideoRepository) Create(v *model.SparringVideo) error {
	return r.DB.Create(v).Error
}

func (r *SparringVideoRepository) FindByUploader(userID uint) ([]model.SparringVideo, error) {
	var videos []model.SparringVideo
	err := r.DB.Where("uploader_id = ?", userID).Order("created_at DESC").Find(&videos).Error
	return videos, err
}
