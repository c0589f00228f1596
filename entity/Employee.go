package entity

import (
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Employee struct {
	gorm.Model
	EmployeeNumber string `gorm:"uniqueIndex;not null" json:"employee_number"`
	Name           string `gorm:"not null" json:"name"`
	Gender         string `gorm:"not null" json:"gender"` // male | female
	Position       string `json:"position"`
	IsResigned     bool   `gorm:"default:false" json:"is_resigned"`
}
