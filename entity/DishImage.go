package entity

import (
	"path/filepath"
	"strings"

	"gorm.io/gorm"
)

type DishImage struct {
	gorm.Model
	// File is the stored path relative to the upload dir, e.g. "images/tofu.jpg"
	File string `gorm:"uniqueIndex;not null" json:"file"`
	Name string `json:"name"`

	Dishes []Dish `gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate fills Name from the uploaded filename (without extension)
// when the caller did not supply one.
func (img *DishImage) BeforeCreate(tx *gorm.DB) error {
	if img.Name == "" {
		base := filepath.Base(img.File)
		img.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return nil
}
