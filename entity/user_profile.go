package entity

import (
	"gorm.io/gorm"
)

const GenderUnknown = "unknown"

// UserProfile is the optional one-to-one extension of User.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"-"`
	User   User `json:"-"`

	Avatar     string `json:"avatar"`
	Gender     string `json:"gender"` // male | female | unknown
	Occupation string `json:"occupation"`
}
