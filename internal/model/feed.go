package model

// swagger:model FeedPost
type FeedPost struct {
	BaseModel
	AuthorID  uint   `gorm:"index;not null" json:"authorId"`
	Body      string `gorm:"type:text;not null" json:"body"`
	MediaURL  string `gorm:"size:255" json:"mediaUrl"`
	LikeCount int    `gorm:"default:0" json:"likeCount"`
}

func (FeedPost) TableName() string {
	return "feed_posts"
}
