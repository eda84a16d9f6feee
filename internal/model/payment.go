package model

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentRejected  PaymentStatus = "rejected"
)

// Payment records a verified PayPal order and its revenue split.
// swagger:model Payment
type Payment struct {
	BaseModel
	OrderID            string        `gorm:"size:64;uniqueIndex;not null" json:"orderId"`
	UserID             uint          `gorm:"index;not null" json:"userId"`
	CreatorID          uint          `gorm:"index" json:"creatorId"`
	ContentType        ContentType   `gorm:"size:20" json:"contentType"`
	ContentID          uint          `json:"contentId"`
	GrossCents         int           `json:"grossCents"`
	CreatorShareCents  int           `json:"creatorShareCents"`
	PlatformShareCents int           `json:"platformShareCents"`
	Currency           string        `gorm:"size:3" json:"currency"`
	Status             PaymentStatus `gorm:"size:20;default:'completed'" json:"status"`
}

func (Payment) TableName() string {
	return "payments"
}
