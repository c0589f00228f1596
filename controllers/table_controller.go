package controllers

import (
	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableRequest struct {
	TableNumber uint `json:"table_number" binding:"required,min=1"`
}

type TableController struct{ DB *gorm.DB }

func NewTableController(db *gorm.DB) *TableController { return &TableController{DB: db} }

// GET /table
func (t *TableController) List(c *gin.Context) {
	var tables []entity.Table
	if err := t.DB.Order("table_number ASC").Find(&tables).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /table
func (t *TableController) Create(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table := entity.Table{TableNumber: req.TableNumber}
	if err := t.DB.Create(&table).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, table)
}

// GET /table/:id
func (t *TableController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var table entity.Table
	if !firstOrNotFound(c, t.DB.First(&table, id).Error, "table") {
		return
	}
	resp.OK(c, table)
}

// PUT /table/:id
func (t *TableController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var table entity.Table
	if !firstOrNotFound(c, t.DB.First(&table, id).Error, "table") {
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	table.TableNumber = req.TableNumber
	if err := t.DB.Save(&table).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, table)
}

// DELETE /table/:id
func (t *TableController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var table entity.Table
	if !firstOrNotFound(c, t.DB.First(&table, id).Error, "table") {
		return
	}
	if err := t.DB.Unscoped().Delete(&table).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}
