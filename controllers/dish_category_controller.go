package controllers

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type DishCategoryController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewDishCategoryController(db *gorm.DB, stats *services.StatsService) *DishCategoryController {
	return &DishCategoryController{DB: db, Stats: stats}
}

// GET /dish-category
func (d *DishCategoryController) List(c *gin.Context) {
	var categories []entity.DishCategory
	if err := d.DB.Order("id ASC").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /dish-category
func (d *DishCategoryController) Create(c *gin.Context) {
	var req DishCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category := entity.DishCategory{Category: req.Category}
	if err := d.DB.Create(&category).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, category)
}

// GET /dish-category/:id
func (d *DishCategoryController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var category entity.DishCategory
	if !firstOrNotFound(c, d.DB.First(&category, id).Error, "dish category") {
		return
	}
	resp.OK(c, category)
}

// PUT /dish-category/:id
func (d *DishCategoryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var category entity.DishCategory
	if !firstOrNotFound(c, d.DB.First(&category, id).Error, "dish category") {
		return
	}

	var req DishCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category.Category = req.Category
	if err := d.DB.Save(&category).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, category)
}

// DELETE /dish-category/:id — cascades to the category's dishes
func (d *DishCategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var category entity.DishCategory
	if !firstOrNotFound(c, d.DB.First(&category, id).Error, "dish category") {
		return
	}
	if err := d.DB.Unscoped().Delete(&category).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}

// GET /dish-category/sales-rank/?period={week|month}
func (d *DishCategoryController) SalesRank(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodWeek)
	result, err := d.Stats.CategorySalesRank(period)
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
