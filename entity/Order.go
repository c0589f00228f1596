package entity

import (
	"time"

	"gorm.io/gorm"
)

const StatusUnpaid = "unpaid"

type Order struct {
	gorm.Model
	TransactionTime   time.Time `gorm:"autoCreateTime" json:"-"` // serialized formatted
	NumberOfPeople    uint      `json:"number_of_people"`
	TotalAmount       float64   `gorm:"type:decimal(7,2)" json:"total_amount"`
	TransactionStatus string    `gorm:"default:unpaid" json:"transaction_status"`

	TableID uint  `json:"table"`
	Table   Table `json:"-"`

	// preload only for order detail responses
	DishDetails []DishDetail `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
