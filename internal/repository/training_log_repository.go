package repository

import (
	"bjj_academy_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type TrainingLogRepository struct {
	DB *gorm.DB
}

func NewTrainingLogRepository(db *gorm.DB) *TrainingLogRepository {
	return &TrainingLogRepository{DB: db}
}

func (r *TrainingLogRepository) Create(log *model.TrainingLog) error {
	return r.DB.Create(log).Error
}

func (r *TrainingLogRepository) FindByID(id uint) (*model.TrainingLog, error) {
	var log model.TrainingLog
	err := r.DB.First(&log, id).Error
	return &log, err
}

func (r *TrainingLogRepository) FindByUser(userID uint, page, limit int) ([]model.TrainingLog, int64, error) {
	var logs []model.TrainingLog
	var total int64
	q := r.DB.Model(&model.TrainingLog{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("date DESC").Offset((page - 1) * limit).Limit(limit).Find(&logs).Error
	return logs, total, err
}

func (r *TrainingLogRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TrainingLog{}, id).Error
}

func (r *TrainingLogRepository) WeeklyStats(userID uint, since time.Time) (*model.WeeklyTrainingStats, error) {
	stats := &model.WeeklyTrainingStats{Since: since}
	row := r.DB.Model(&model.TrainingLog{}).
		Select("COUNT(*) AS sessions, COALESCE(SUM(duration_minutes),0) AS total_minutes, COALESCE(SUM(sparring_rounds),0) AS sparring_rounds").
		Where("user_id = ? AND date >= ?", userID, since).
		Row()
	if err := row.Scan(&stats.Sessions, &stats.TotalMinutes, &stats.SparringRounds); err != nil {
		return nil, err
	}
	return stats, nil
}
