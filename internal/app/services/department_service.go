package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/app/repositories"
	"github.com/tunde/campusfound/internal/pkg/apperrors"
)

// DepartmentService handles department lookups and administration
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// GetDepartments retrieves all departments ordered by name
func (s *DepartmentService) GetDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// CreateDepartment creates a new department. The code is normalized to
// uppercase letters; the matric number check depends on it.
func (s *DepartmentService) CreateDepartment(ctx context.Context, name, code string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))

	if name == "" {
		return nil, apperrors.NewValidationError("name", "name cannot be empty")
	}
	if len(code) != 3 || !isUpperLetters(code) {
		return nil, apperrors.NewValidationError("code", "code must be exactly 3 uppercase letters")
	}

	department := &models.Department{Name: name, Code: code}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("code", code).Msg("Department created")
	return department, nil
}

func isUpperLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
