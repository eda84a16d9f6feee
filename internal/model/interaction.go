package model

import "time"

type ContentType string

const (
	ContentTypeDrill    ContentType = "drill"
	ContentTypeLesson   ContentType = "lesson"
	ContentTypeCourse   ContentType = "course"
	ContentTypeSparring ContentType = "sparring"
	ContentTypeCreator  ContentType = "creator"
	ContentTypePost     ContentType = "post"
)

type InteractionKind string

const (
	InteractionSave   InteractionKind = "save"
	InteractionLike   InteractionKind = "like"
	InteractionView   InteractionKind = "view"
	InteractionFollow InteractionKind = "follow"
)

// Interaction is an idempotent toggle per (user, content, kind);
// views accumulate a count instead of toggling.
// swagger:model Interaction
type Interaction struct {
	BaseModel
	UserID      uint            `gorm:"uniqueIndex:idx_user_content_kind;not null" json:"userId"`
	ContentType ContentType     `gorm:"size:20;uniqueIndex:idx_user_content_kind;not null" json:"contentType"`
	ContentID   uint            `gorm:"uniqueIndex:idx_user_content_kind;not null" json:"contentId"`
	Kind        InteractionKind `gorm:"size:20;uniqueIndex:idx_user_content_kind;not null" json:"kind"`
	ViewCount   int             `gorm:"column:view_count;default:0" json:"viewCount"`
	LastAt      time.Time       `gorm:"index" json:"lastAt"`
}

func (Interaction) TableName() string {
	return "interactions"
}
