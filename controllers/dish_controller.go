package controllers

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishRequest struct {
	Name          string   `json:"name" binding:"required"`
	Specification string   `json:"specification"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	IsOnSale      *bool    `json:"is_on_sale"`
	Category      uint     `json:"category" binding:"required"`
	File          uint     `json:"file" binding:"required"`
	Unit          uint     `json:"unit" binding:"required"`
}

type DishController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewDishController(db *gorm.DB, stats *services.StatsService) *DishController {
	return &DishController{DB: db, Stats: stats}
}

// dishResponse carries the denormalized category/unit names and the
// absolute image URL next to the raw foreign keys.
func (d *DishController) dishResponse(c *gin.Context, dish *entity.Dish) gin.H {
	return gin.H{
		"id":            dish.ID,
		"name":          dish.Name,
		"specification": dish.Specification,
		"price":         dish.Price,
		"is_on_sale":    dish.IsOnSale,
		"category":      dish.CategoryID,
		"file":          dish.FileID,
		"unit":          dish.UnitID,
		"dish_category": dish.Category.Category,
		"dish_unit":     dish.Unit.Unit,
		"dish_url":      absoluteUploadURL(c, dish.File.File),
	}
}

func (d *DishController) applyRequest(dish *entity.Dish, req *DishRequest) {
	dish.Name = req.Name
	dish.Specification = req.Specification
	dish.Price = *req.Price
	dish.CategoryID = req.Category
	dish.FileID = req.File
	dish.UnitID = req.Unit
	if req.IsOnSale != nil {
		dish.IsOnSale = *req.IsOnSale
	}
}

// referencesExist checks the FK targets up front so a bad id comes back as
// a clean 400 instead of a constraint error.
func (d *DishController) referencesExist(c *gin.Context, req *DishRequest) bool {
	var count int64
	if d.DB.Model(&entity.DishCategory{}).Where("id = ?", req.Category).Count(&count); count == 0 {
		resp.BadRequest(c, "dish category not found")
		return false
	}
	if d.DB.Model(&entity.DishImage{}).Where("id = ?", req.File).Count(&count); count == 0 {
		resp.BadRequest(c, "dish image not found")
		return false
	}
	if d.DB.Model(&entity.DishUnit{}).Where("id = ?", req.Unit).Count(&count); count == 0 {
		resp.BadRequest(c, "dish unit not found")
		return false
	}
	return true
}

// GET /dish
func (d *DishController) List(c *gin.Context) {
	var dishes []entity.Dish
	if err := d.DB.Preload("Category").Preload("Unit").Preload("File").
		Order("id DESC").Find(&dishes).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(dishes))
	for i := range dishes {
		out = append(out, d.dishResponse(c, &dishes[i]))
	}
	resp.OK(c, out)
}

// POST /dish
func (d *DishController) Create(c *gin.Context) {
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !d.referencesExist(c, &req) {
		return
	}

	dish := entity.Dish{IsOnSale: true}
	d.applyRequest(&dish, &req)
	if err := d.DB.Create(&dish).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d.DB.Preload("Category").Preload("Unit").Preload("File").First(&dish, dish.ID)
	resp.Created(c, d.dishResponse(c, &dish))
}

// GET /dish/:id
func (d *DishController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dish entity.Dish
	err := d.DB.Preload("Category").Preload("Unit").Preload("File").First(&dish, id).Error
	if !firstOrNotFound(c, err, "dish") {
		return
	}
	resp.OK(c, d.dishResponse(c, &dish))
}

// PUT /dish/:id
func (d *DishController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dish entity.Dish
	if !firstOrNotFound(c, d.DB.First(&dish, id).Error, "dish") {
		return
	}

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !d.referencesExist(c, &req) {
		return
	}

	d.applyRequest(&dish, &req)
	if err := d.DB.Save(&dish).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d.DB.Preload("Category").Preload("Unit").Preload("File").First(&dish, dish.ID)
	resp.OK(c, d.dishResponse(c, &dish))
}

// DELETE /dish/:id
func (d *DishController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dish entity.Dish
	if !firstOrNotFound(c, d.DB.First(&dish, id).Error, "dish") {
		return
	}
	if err := d.DB.Unscoped().Delete(&dish).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}

// GET /dish/sales-rank/?period={day|week|month}
func (d *DishController) SalesRank(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodDay)
	result, err := d.Stats.DishSalesRank(period)
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
