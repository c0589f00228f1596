package controllers

import (
	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishUnitRequest struct {
	Unit string `json:"unit" binding:"required"`
}

type DishUnitController struct{ DB *gorm.DB }

func NewDishUnitController(db *gorm.DB) *DishUnitController { return &DishUnitController{DB: db} }

// GET /dish-unit
func (d *DishUnitController) List(c *gin.Context) {
	var units []entity.DishUnit
	if err := d.DB.Order("id ASC").Find(&units).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, units)
}

// POST /dish-unit
func (d *DishUnitController) Create(c *gin.Context) {
	var req DishUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	unit := entity.DishUnit{Unit: req.Unit}
	if err := d.DB.Create(&unit).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, unit)
}

// GET /dish-unit/:id
func (d *DishUnitController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var unit entity.DishUnit
	if !firstOrNotFound(c, d.DB.First(&unit, id).Error, "dish unit") {
		return
	}
	resp.OK(c, unit)
}

// PUT /dish-unit/:id
func (d *DishUnitController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var unit entity.DishUnit
	if !firstOrNotFound(c, d.DB.First(&unit, id).Error, "dish unit") {
		return
	}

	var req DishUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	unit.Unit = req.Unit
	if err := d.DB.Save(&unit).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, unit)
}

// DELETE /dish-unit/:id — cascades to the unit's dishes
func (d *DishUnitController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var unit entity.DishUnit
	if !firstOrNotFound(c, d.DB.First(&unit, id).Error, "dish unit") {
		return
	}
	if err := d.DB.Unscoped().Delete(&unit).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}
