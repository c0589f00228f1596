package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Password   string    `json:"-"`
	DateJoined time.Time `gorm:"autoCreateTime" json:"-"` // serialized as date only

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
