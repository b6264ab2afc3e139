package service

import (
	"context"
	"errors"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
	"toolrent-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid RUN or password")

type authService struct {
	employees repository.EmployeeRepository
	tokens    security.TokenManager
}

func NewAuthService(employees repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{employees: employees, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, run, password string) (string, *domain.Employee, error) {
	employee, err := s.employees.GetByRUN(ctx, NormalizeRUN(run))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(employee.RUN, employee.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, employee, nil
}

func (s *authService) Register(ctx context.Context, employee *domain.Employee, password string) error {
	if err := validatePerson(employee.RUN, employee.Name, employee.Surname, employee.Email, employee.Cellphone); err != nil {
		return err
	}
	if len(password) < 8 {
		return domain.InvalidInputf("password must be at least 8 characters")
	}
	employee.RUN = NormalizeRUN(employee.RUN)
	employee.Cellphone = ReformatCellphone(employee.Cellphone)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	employee.PasswordHash = string(hash)

	if err := s.employees.Create(ctx, employee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}
