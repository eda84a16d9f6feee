package model

import (
	"time"
)

type UserRole string

const (
	Member  UserRole = "user"
	Creator UserRole = "creator"
	Admin   UserRole = "admin"
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// swagger:model User
type User struct {
	BaseModel
	Name                string     `gorm:"size:100;not null" json:"name"`
	Email               string     `gorm:"size:100;unique;not null" json:"email"`
	Password            string     `gorm:"size:100;not null" json:"-"`
	Role                UserRole   `gorm:"type:enum('user','creator','admin');default:'user'" json:"role"`
	BeltRank            string     `gorm:"size:20;default:'white'" json:"beltRank"`
	PreferredDifficulty Difficulty `gorm:"size:20" json:"preferredDifficulty"`
	Avatar              string     `gorm:"size:255" json:"avatar"`
	Disabled            bool       `gorm:"default:false" json:"disabled"`
	LastLogin           time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen            time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
