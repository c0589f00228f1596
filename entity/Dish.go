package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name          string  `gorm:"uniqueIndex;not null" json:"name"`
	Specification string  `json:"specification"`
	Price         float64 `gorm:"type:decimal(6,2);not null" json:"price"`
	IsOnSale      bool    `gorm:"default:true" json:"is_on_sale"`

	CategoryID uint         `json:"category"`
	Category   DishCategory `json:"-"`

	FileID uint      `json:"file"`
	File   DishImage `gorm:"foreignKey:FileID" json:"-"`

	UnitID uint     `json:"unit"`
	Unit   DishUnit `json:"-"`

	DishDetails []DishDetail `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
