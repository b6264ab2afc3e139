package service

import (
	"context"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type employeeService struct {
	employees repository.EmployeeRepository
}

func NewEmployeeService(employees repository.EmployeeRepository) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) GetEmployee(ctx context.Context, run string) (*domain.Employee, error) {
	return s.employees.GetByRUN(ctx, NormalizeRUN(run))
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	employee.RUN = NormalizeRUN(employee.RUN)
	stored, err := s.employees.GetByRUN(ctx, employee.RUN)
	if err != nil {
		return err
	}

	if employee.Name != "" {
		if !nameRegex.MatchString(employee.Name) {
			return domain.InvalidInputf("invalid name %q", employee.Name)
		}
		stored.Name = employee.Name
	}
	if employee.Surname != "" {
		if !nameRegex.MatchString(employee.Surname) {
			return domain.InvalidInputf("invalid surname %q", employee.Surname)
		}
		stored.Surname = employee.Surname
	}
	if employee.Email != "" {
		if !emailRegex.MatchString(employee.Email) {
			return domain.InvalidInputf("invalid email %q", employee.Email)
		}
		stored.Email = employee.Email
	}
	if employee.Cellphone != "" {
		if !validCellphone(employee.Cellphone) {
			return domain.InvalidInputf("invalid cellphone %q", employee.Cellphone)
		}
		stored.Cellphone = ReformatCellphone(employee.Cellphone)
	}
	stored.IsAdmin = employee.IsAdmin

	if err := s.employees.Update(ctx, stored); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	*employee = *stored
	return nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, run string) error {
	return s.employees.Delete(ctx, NormalizeRUN(run))
}
