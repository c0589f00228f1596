package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber uint `gorm:"uniqueIndex;not null" json:"table_number"`

	// Relations — preload only when needed
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
