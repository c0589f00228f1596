package entity

import (
	"time"

	"gorm.io/gorm"
)

// DishDetail is one dish-quantity line within an order. TotalPrice is
// derived from the dish price and never taken from the caller; the parent
// order's TotalAmount is re-summed by OrderService in the same transaction.
type DishDetail struct {
	gorm.Model
	OrderTime  time.Time `gorm:"autoCreateTime" json:"order_time"`
	Quantity   uint      `json:"quantity"`
	TotalPrice float64   `gorm:"type:decimal(6,2)" json:"total_price"`

	DishID uint `json:"dish"`
	Dish   Dish `json:"-"`

	OrderID uint  `json:"order"`
	Order   Order `json:"-"`
}
