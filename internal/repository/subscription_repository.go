package repository

import (
	"bjj_academy_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// HasActive 判断订阅是否有效（状态 active 且未过期）
func (r *SubscriptionRepository) HasActive(userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Subscription{}).
		Where("user_id = ? AND status = ? AND current_period_end > ?",
			userID, model.SubscriptionActive, time.Now()).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepository) Upsert(userID uint, periodEnd time.Time) error {
	var sub model.Subscription
	err := r.DB.Where("user_id = ?", userID).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(&model.Subscription{
			UserID:           userID,
			Status:           model.SubscriptionActive,
			CurrentPeriodEnd: periodEnd,
		}).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&sub).Updates(map[string]interface{}{
		"status":             model.SubscriptionActive,
		"current_period_end": periodEnd,
	}).Error
}
