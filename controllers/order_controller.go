package controllers

import (
	"errors"
	"time"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderRequest struct {
	Table             uint   `json:"table" binding:"required"`
	NumberOfPeople    uint   `json:"number_of_people" binding:"required,min=1"`
	TransactionStatus string `json:"transaction_status"`
}

type OrderController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewOrderController(db *gorm.DB, stats *services.StatsService) *OrderController {
	return &OrderController{DB: db, Stats: stats}
}

func orderResponse(order *entity.Order) gin.H {
	details := make([]gin.H, 0, len(order.DishDetails))
	for i := range order.DishDetails {
		details = append(details, detailResponse(&order.DishDetails[i]))
	}
	return gin.H{
		"id":                 order.ID,
		"transaction_time":   order.TransactionTime.Format(timeLayout),
		"table":              order.TableID,
		"number_of_people":   order.NumberOfPeople,
		"total_amount":       order.TotalAmount,
		"transaction_status": order.TransactionStatus,
		"dish_details":       details,
	}
}

func (o *OrderController) withDetails(q *gorm.DB) *gorm.DB {
	return q.Preload("DishDetails").Preload("DishDetails.Dish").Preload("DishDetails.Dish.Unit")
}

// GET /order?start_time=&end_time=&table_number=
// Both times (RFC3339) must arrive together to take effect.
func (o *OrderController) List(c *gin.Context) {
	q := o.withDetails(o.DB).Order("transaction_time DESC")

	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	if startStr != "" && endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			resp.BadRequest(c, "invalid start_time")
			return
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			resp.BadRequest(c, "invalid end_time")
			return
		}
		q = q.Where("transaction_time BETWEEN ? AND ?", start, end)
	}
	if tableNumber := c.Query("table_number"); tableNumber != "" {
		q = q.Joins("JOIN tables ON tables.id = orders.table_id").
			Where("tables.table_number = ?", tableNumber)
	}

	var orders []entity.Order
	if err := q.Find(&orders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, orderResponse(&orders[i]))
	}
	resp.OK(c, out)
}

// POST /order — new orders start unpaid with a zero total until lines arrive
func (o *OrderController) Create(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var table entity.Table
	if err := o.DB.First(&table, req.Table).Error; err != nil {
		resp.BadRequest(c, "table not found")
		return
	}

	order := entity.Order{
		TableID:           req.Table,
		NumberOfPeople:    req.NumberOfPeople,
		TransactionStatus: req.TransactionStatus,
	}
	if order.TransactionStatus == "" {
		order.TransactionStatus = entity.StatusUnpaid
	}
	if err := o.DB.Create(&order).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, orderResponse(&order))
}

// GET /order/:id
func (o *OrderController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var order entity.Order
	if !firstOrNotFound(c, o.withDetails(o.DB).First(&order, id).Error, "order") {
		return
	}
	resp.OK(c, orderResponse(&order))
}

// PUT /order/:id — total_amount is owned by the order lines and not
// writable here
func (o *OrderController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var order entity.Order
	if !firstOrNotFound(c, o.DB.First(&order, id).Error, "order") {
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var table entity.Table
	if err := o.DB.First(&table, req.Table).Error; err != nil {
		resp.BadRequest(c, "table not found")
		return
	}

	order.TableID = req.Table
	order.NumberOfPeople = req.NumberOfPeople
	if req.TransactionStatus != "" {
		order.TransactionStatus = req.TransactionStatus
	}
	if err := o.DB.Save(&order).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o.withDetails(o.DB).First(&order, order.ID)
	resp.OK(c, orderResponse(&order))
}

// DELETE /order/:id — cascades to the order's lines
func (o *OrderController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var order entity.Order
	if !firstOrNotFound(c, o.DB.First(&order, id).Error, "order") {
		return
	}
	if err := o.DB.Unscoped().Delete(&order).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}

// GET /order/total-amount-statistics/?period={day|week|month}
func (o *OrderController) TotalAmountStatistics(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodDay)
	result, err := o.Stats.TotalAmountStatistics(period)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			resp.BadRequest(c, "Invalid period.")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, result)
}
