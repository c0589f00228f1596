package controllers

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishDetailController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewDishDetailController(db *gorm.DB, orders *services.OrderService) *DishDetailController {
	return &DishDetailController{DB: db, Orders: orders}
}

// detailResponse needs line.Dish (and its Unit) preloaded; it denormalizes
// the dish name, unit and specification into the line.
func detailResponse(line *entity.DishDetail) gin.H {
	return gin.H{
		"id":            line.ID,
		"order_time":    line.OrderTime.Format(timeLayout),
		"dish":          line.DishID,
		"order":         line.OrderID,
		"quantity":      line.Quantity,
		"total_price":   line.TotalPrice,
		"name":          line.Dish.Name,
		"unit":          line.Dish.Unit.Unit,
		"specification": line.Dish.Specification,
	}
}

func (d *DishDetailController) withDish(q *gorm.DB) *gorm.DB {
	return q.Preload("Dish").Preload("Dish.Unit")
}

func (d *DishDetailController) lineErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDishNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLineNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /dish-detail
func (d *DishDetailController) List(c *gin.Context) {
	var lines []entity.DishDetail
	if err := d.withDish(d.DB).Order("id ASC").Find(&lines).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(lines))
	for i := range lines {
		out = append(out, detailResponse(&lines[i]))
	}
	resp.OK(c, out)
}

// POST /dish-detail — total_price and the parent order total are computed
// by OrderService, never taken from the request
func (d *DishDetailController) Create(c *gin.Context) {
	var req services.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := d.Orders.CreateLine(&req)
	if err != nil {
		d.lineErr(c, err)
		return
	}
	d.withDish(d.DB).First(line, line.ID)
	resp.Created(c, detailResponse(line))
}

// GET /dish-detail/:id
func (d *DishDetailController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var line entity.DishDetail
	if !firstOrNotFound(c, d.withDish(d.DB).First(&line, id).Error, "dish detail") {
		return
	}
	resp.OK(c, detailResponse(&line))
}

// PUT /dish-detail/:id
func (d *DishDetailController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := d.Orders.UpdateLine(id, &req)
	if err != nil {
		d.lineErr(c, err)
		return
	}
	d.withDish(d.DB).First(line, line.ID)
	resp.OK(c, detailResponse(line))
}

// DELETE /dish-detail/:id — the parent order total is re-summed
func (d *DishDetailController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := d.Orders.DeleteLine(id); err != nil {
		d.lineErr(c, err)
		return
	}
	c.Status(204)
}
