package entity

import (
	"gorm.io/gorm"
)

type DishUnit struct {
	gorm.Model
	Unit string `gorm:"uniqueIndex;not null" json:"unit"`

	Dishes []Dish `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE" json:"-"`
}
