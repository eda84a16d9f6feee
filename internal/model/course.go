package model

// Course is a paid instructional series owned by one creator.
// swagger:model Course
type Course struct {
	BaseModel
	Title                string     `gorm:"size:255;not null" json:"title"`
	Description          string     `gorm:"type:text" json:"description"`
	CreatorID            uint       `gorm:"index;not null" json:"creatorId"`
	Category             string     `gorm:"size:50;index" json:"category"`
	Difficulty           Difficulty `gorm:"size:20" json:"difficulty"`
	PriceCents           int        `gorm:"default:0" json:"priceCents"`
	SubscriptionExcluded bool       `gorm:"default:false" json:"subscriptionExcluded"` // 订阅不解锁，必须单独购买
	VideoHostID          string     `gorm:"size:100" json:"videoHostId"`
	Thumbnail            string     `gorm:"size:255" json:"thumbnail"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID    uint       `gorm:"index;not null" json:"courseId"`
	Course      Course     `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CreatorID   uint       `gorm:"index;not null" json:"creatorId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Category    string     `gorm:"size:50;index" json:"category"`
	Difficulty  Difficulty `gorm:"size:20" json:"difficulty"`
	Position    int        `gorm:"default:0" json:"position"`
	VideoHostID string     `gorm:"size:100" json:"videoHostId"`
	ViewCount   int        `gorm:"column:view_count;default:0" json:"viewCount"`
	IsDailyFree bool       `gorm:"default:false" json:"isDailyFree"`
}

func (Lesson) TableName() string {
	return "lessons"
}
