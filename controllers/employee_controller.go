package controllers

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Gender         string `json:"gender" binding:"required,oneof=male female"`
	Position       string `json:"position"`
	IsResigned     *bool  `json:"is_resigned"`
}

type DeleteMultipleRequest struct {
	IDs []uint `json:"ids"`
}

type EmployeeController struct {
	DB  *gorm.DB
	Svc *services.EmployeeService
}

func NewEmployeeController(db *gorm.DB, svc *services.EmployeeService) *EmployeeController {
	return &EmployeeController{DB: db, Svc: svc}
}

func employeeResponse(e *entity.Employee) gin.H {
	return gin.H{
		"id":              e.ID,
		"created_at":      e.CreatedAt.Format(timeLayout),
		"employee_number": e.EmployeeNumber,
		"name":            e.Name,
		"gender":          e.Gender,
		"position":        e.Position,
		"is_resigned":     e.IsResigned,
	}
}

func (e *EmployeeController) applyRequest(emp *entity.Employee, req *EmployeeRequest) {
	emp.EmployeeNumber = req.EmployeeNumber
	emp.Name = req.Name
	emp.Gender = req.Gender
	emp.Position = req.Position
	if req.IsResigned != nil {
		emp.IsResigned = *req.IsResigned
	}
}

// GET /employees
func (e *EmployeeController) List(c *gin.Context) {
	var employees []entity.Employee
	if err := e.DB.Order("created_at DESC").Find(&employees).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(employees))
	for i := range employees {
		out = append(out, employeeResponse(&employees[i]))
	}
	resp.OK(c, out)
}

// POST /employees
func (e *EmployeeController) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	var emp entity.Employee
	e.applyRequest(&emp, &req)
	if err := e.DB.Create(&emp).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, employeeResponse(&emp))
}

// GET /employees/:id
func (e *EmployeeController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var emp entity.Employee
	if !firstOrNotFound(c, e.DB.First(&emp, id).Error, "employee") {
		return
	}
	resp.OK(c, employeeResponse(&emp))
}

// PUT /employees/:id
func (e *EmployeeController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var emp entity.Employee
	if !firstOrNotFound(c, e.DB.First(&emp, id).Error, "employee") {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	e.applyRequest(&emp, &req)
	if err := e.DB.Save(&emp).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, employeeResponse(&emp))
}

// DELETE /employees/:id
func (e *EmployeeController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var emp entity.Employee
	if !firstOrNotFound(c, e.DB.First(&emp, id).Error, "employee") {
		return
	}
	if err := e.DB.Unscoped().Delete(&emp).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}

// POST /employees/delete-multiple/ — body {"ids": [...]}
func (e *EmployeeController) DeleteMultiple(c *gin.Context) {
	var req DeleteMultipleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := e.Svc.DeleteMultiple(req.IDs); err != nil {
		switch {
		case errors.Is(err, services.ErrNoEmployeeIDs):
			resp.BadRequest(c, "No employee ids provided.")
		case errors.Is(err, services.ErrEmployeeNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": "success"})
}
