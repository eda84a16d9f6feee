package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *model.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByOrderID(orderID string) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.Where("order_id = ?", orderID).First(&p).Error
	return &p, err
}
