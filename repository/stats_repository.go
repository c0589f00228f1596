package repository

import (
	"time"

	"github.com/seanhu1010/vue3-element-backend/entity"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type CategorySalesRow struct {
	Date       string
	Category   string
	TotalSales uint
}

type DishSalesRow struct {
	Name       string
	TotalSales uint
}

// CategorySales groups order lines in [start, end] by calendar date and dish
// category, summing quantities. Dates ascend; within a date bigger sellers
// come first.
func (r *StatsRepository) CategorySales(start, end time.Time) ([]CategorySalesRow, error) {
	var rows []CategorySalesRow
	err := r.db.Model(&entity.DishDetail{}).
		Select("date(dish_details.order_time) AS date, dish_categories.category AS category, SUM(dish_details.quantity) AS total_sales").
		Joins("JOIN dishes ON dishes.id = dish_details.dish_id").
		Joins("JOIN dish_categories ON dish_categories.id = dishes.category_id").
		Where("dish_details.order_time BETWEEN ? AND ?", start, end).
		Group("date, dish_categories.category").
		Order("date ASC, total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

// DishSales groups order lines in [start, end] by dish name, summing
// quantities, biggest sellers first.
func (r *StatsRepository) DishSales(start, end time.Time) ([]DishSalesRow, error) {
	var rows []DishSalesRow
	err := r.db.Model(&entity.DishDetail{}).
		Select("dishes.name AS name, SUM(dish_details.quantity) AS total_sales").
		Joins("JOIN dishes ON dishes.id = dish_details.dish_id").
		Where("dish_details.order_time BETWEEN ? AND ?", start, end).
		Group("dishes.name").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

// OrderTotals returns total_amount of every order in [start, end].
func (r *StatsRepository) OrderTotals(start, end time.Time) ([]float64, error) {
	var totals []float64
	err := r.db.Model(&entity.Order{}).
		Where("transaction_time BETWEEN ? AND ?", start, end).
		Pluck("total_amount", &totals).Error
	return totals, err
}
