package entity

import (
	"gorm.io/gorm"
)

type DishCategory struct {
	gorm.Model
	Category string `gorm:"uniqueIndex;not null" json:"category"`

	Dishes []Dish `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}
