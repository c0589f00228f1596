package repository

import (
	"github.com/seanhu1010/vue3-element-backend/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByIDs(ids []uint) ([]entity.Employee, error) {
	var employees []entity.Employee
	if err := r.db.Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Delete(employee *entity.Employee) error {
	return r.db.Unscoped().Delete(employee).Error
}
