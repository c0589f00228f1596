package repository

import (
	"github.com/seanhu1010/vue3-element-backend/entity"

	"gorm.io/gorm"
)

// OrderRepository owns order-line persistence. Line writes take a tx so
// OrderService can keep the derived order total in the same transaction as
// the line itself.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, id uint) (*entity.Order, error) {
	var order entity.Order
	if err := tx.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetDish(tx *gorm.DB, id uint) (*entity.Dish, error) {
	var dish entity.Dish
	if err := tx.First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *OrderRepository) GetLine(tx *gorm.DB, id uint) (*entity.DishDetail, error) {
	var line entity.DishDetail
	if err := tx.First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *OrderRepository) CreateLine(tx *gorm.DB, line *entity.DishDetail) error {
	return tx.Create(line).Error
}

func (r *OrderRepository) SaveLine(tx *gorm.DB, line *entity.DishDetail) error {
	return tx.Save(line).Error
}

func (r *OrderRepository) DeleteLine(tx *gorm.DB, line *entity.DishDetail) error {
	return tx.Unscoped().Delete(line).Error
}

// SumOrderLines returns the sum of total_price across an order's lines.
func (r *OrderRepository) SumOrderLines(tx *gorm.DB, orderID uint) (float64, error) {
	var total float64
	err := tx.Model(&entity.DishDetail{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *OrderRepository) UpdateOrderTotal(tx *gorm.DB, orderID uint, total float64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
}
