package model

import "time"

type SessionType string

const (
	SessionGi      SessionType = "gi"
	SessionNoGi    SessionType = "nogi"
	SessionOpenMat SessionType = "openmat"
)

// swagger:model TrainingLog
type TrainingLog struct {
	BaseModel
	UserID          uint        `gorm:"index;not null" json:"userId"`
	Date            time.Time   `gorm:"index" json:"date"`
	SessionType     SessionType `gorm:"size:20;default:'gi'" json:"sessionType"`
	DurationMinutes int         `gorm:"default:0" json:"durationMinutes"`
	SparringRounds  int         `gorm:"default:0" json:"sparringRounds"`
	Techniques      string      `gorm:"type:text" json:"techniques"`
	Notes           string      `gorm:"type:text" json:"notes"`
}

func (TrainingLog) TableName() string {
	return "training_logs"
}

// swagger:model SparringVideo
type SparringVideo struct {
	BaseModel
	UploaderID      uint    `gorm:"index;not null" json:"uploaderId"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	VideoHostID     string  `gorm:"size:100" json:"videoHostId"`
	Notes           string  `gorm:"type:text" json:"notes"`
	DurationSeconds float64 `gorm:"default:0" json:"durationSeconds"`
}

func (SparringVideo) TableName() string {
	return "sparring_videos"
}
