package services

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDishNotFound  = errors.New("dish not found")
	ErrLineNotFound  = errors.New("dish detail not found")
)

// OrderService keeps Order.TotalAmount equal to the sum of its lines'
// TotalPrice. Every line write runs in one transaction: compute the line
// total from the dish price, persist the line, re-sum the parent order.
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----
type LineRequest struct {
	Dish     uint `json:"dish" binding:"required"`
	Order    uint `json:"order" binding:"required"`
	Quantity uint `json:"quantity" binding:"required,min=1"`
}

// CreateLine records a new order line. Any caller-supplied total_price is
// ignored; the stored value is dish.price × quantity.
func (s *OrderService) CreateLine(req *LineRequest) (*entity.DishDetail, error) {
	var line entity.DishDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dish, err := s.Repo.GetDish(tx, req.Dish)
		if err != nil {
			return ErrDishNotFound
		}
		if _, err := s.Repo.GetOrder(tx, req.Order); err != nil {
			return ErrOrderNotFound
		}

		line = entity.DishDetail{
			DishID:     dish.ID,
			OrderID:    req.Order,
			Quantity:   req.Quantity,
			TotalPrice: dish.Price * float64(req.Quantity),
		}
		if err := s.Repo.CreateLine(tx, &line); err != nil {
			return err
		}
		return s.refreshOrderTotal(tx, req.Order)
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// UpdateLine rewrites an existing line and re-sums both the order it ends up
// on and, if the line moved, the order it left.
func (s *OrderService) UpdateLine(id uint, req *LineRequest) (*entity.DishDetail, error) {
	var line *entity.DishDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		line, err = s.Repo.GetLine(tx, id)
		if err != nil {
			return ErrLineNotFound
		}
		prevOrderID := line.OrderID

		dish, err := s.Repo.GetDish(tx, req.Dish)
		if err != nil {
			return ErrDishNotFound
		}
		if _, err := s.Repo.GetOrder(tx, req.Order); err != nil {
			return ErrOrderNotFound
		}

		line.DishID = dish.ID
		line.OrderID = req.Order
		line.Quantity = req.Quantity
		line.TotalPrice = dish.Price * float64(req.Quantity)
		if err := s.Repo.SaveLine(tx, line); err != nil {
			return err
		}

		if err := s.refreshOrderTotal(tx, line.OrderID); err != nil {
			return err
		}
		if prevOrderID != line.OrderID {
			return s.refreshOrderTotal(tx, prevOrderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// DeleteLine removes a line and re-sums its order.
func (s *OrderService) DeleteLine(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.Repo.GetLine(tx, id)
		if err != nil {
			return ErrLineNotFound
		}
		if err := s.Repo.DeleteLine(tx, line); err != nil {
			return err
		}
		return s.refreshOrderTotal(tx, line.OrderID)
	})
}

func (s *OrderService) refreshOrderTotal(tx *gorm.DB, orderID uint) error {
	total, err := s.Repo.SumOrderLines(tx, orderID)
	if err != nil {
		return err
	}
	return s.Repo.UpdateOrderTotal(tx, orderID, total)
}
