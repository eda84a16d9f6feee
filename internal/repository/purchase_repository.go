package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

func (r *PurchaseRepository) Create(p *model.Purchase) error {
	return r.DB.Create(p).Error
}

func (r *PurchaseRepository) PurchasedContentIDs(userID uint, contentType model.ContentType) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Purchase{}).
		Where("user_id = ? AND content_type = ? AND status = ?",
			userID, contentType, model.PurchaseCompleted).
		Pluck("content_id", &ids).Error
	return ids, err
}

func (r *PurchaseRepository) FindByOrderID(orderID string) (*model.Purchase, error) {
	var p model.Purchase
	err := r.DB.Where("order_id = ?", orderID).First(&p).Error
	return &p, err
}
