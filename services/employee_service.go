package services

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/repository"
)

var (
	ErrNoEmployeeIDs    = errors.New("no employee ids provided")
	ErrEmployeeNotFound = errors.New("employee not found")
)

type EmployeeService struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeService(repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// DeleteMultiple removes the listed employees. Every id must resolve before
// anything is deleted; the deletes themselves run one by one, so a mid-list
// failure leaves earlier rows gone.
func (s *EmployeeService) DeleteMultiple(ids []uint) error {
	if len(ids) == 0 {
		return ErrNoEmployeeIDs
	}
	employees, err := s.repo.FindByIDs(ids)
	if err != nil {
		return err
	}
	if len(employees) != len(ids) {
		return ErrEmployeeNotFound
	}
	for i := range employees {
		if err := s.repo.Delete(&employees[i]); err != nil {
			return err
		}
	}
	return nil
}
