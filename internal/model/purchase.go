package model

import "time"

type PurchaseStatus string

const (
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseRefunded  PurchaseStatus = "refunded"
)

// swagger:model Purchase
type Purchase struct {
	BaseModel
	UserID      uint           `gorm:"index;not null" json:"userId"`
	ContentType ContentType    `gorm:"size:20;not null" json:"contentType"`
	ContentID   uint           `gorm:"index;not null" json:"contentId"`
	OrderID     string         `gorm:"size:64;uniqueIndex" json:"orderId"`
	AmountCents int            `gorm:"default:0" json:"amountCents"`
	Status      PurchaseStatus `gorm:"size:20;default:'completed'" json:"status"`
}

func (Purchase) TableName() string {
	return "purchases"
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID        uint               `gorm:"uniqueIndex;not null" json:"userId"`
	Status        SubscriptionStatus `gorm:"size:20;default:'active'" json:"status"`
	CurrentPeriodEnd time.Time       `json:"currentPeriodEnd"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
