package model

// Drill is a standalone technique video outside any course.
// swagger:model Drill
type Drill struct {
	BaseModel
	CreatorID   uint       `gorm:"index" json:"creatorId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:50;index" json:"category"`
	Difficulty  Difficulty `gorm:"size:20" json:"difficulty"`
	PriceCents  int        `gorm:"default:0" json:"priceCents"`
	VideoHostID string     `gorm:"size:100" json:"videoHostId"`
	ViewCount   int        `gorm:"column:view_count;default:0" json:"viewCount"`
	IsDailyFree bool       `gorm:"index;default:false" json:"isDailyFree"`
}

func (Drill) TableName() string {
	return "drills"
}
