package services

import (
	"boba_pos/internal/models"
	"boba_pos/internal/repository"
)

type EmployeeService interface {
	GetAllEmployees() ([]models.Employee, error)
	AddEmployee(employee *models.Employee) error
	UpdateEmployee(employee *models.Employee) error
	DeleteEmployee(employeeID uint) error
}

type employeeService struct {
	store repository.Store
}

func NewEmployeeService(store repository.Store) EmployeeService {
	return &employeeService{store: store}
}

func (s *employeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.store.ListEmployees()
}

func (s *employeeService) AddEmployee(employee *models.Employee) error {
	return s.store.AddEmployee(employee)
}

func (s *employeeService) UpdateEmployee(employee *models.Employee) error {
	return s.store.UpdateEmployee(employee)
}

func (s *employeeService) DeleteEmployee(employeeID uint) error {
	return s.store.DeleteEmployee(employeeID)
}
