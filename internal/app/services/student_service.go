package services

import (
	"context"
	"fmt"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
	"github.com/campuscell/studentcell/internal/pkg/validation"
)

// StudentService handles manual roster entry and single-record
// operations. Bulk import lives in ImportService.
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// validateStudent checks the entry/edit rules: strict 11-digit roll,
// strict 10-digit phone, year in domain, known category. Free-text
// fields are accepted as-is.
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}
	if !validation.StrictDigits(student.Roll, validation.RollDigits) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, apperrors.ErrInvalidRoll.Error())
	}
	if !validation.StrictDigits(student.Phone, validation.PhoneDigits) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, apperrors.ErrInvalidPhone.Error())
	}
	if validation.Blank(student.Name) {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if validation.Blank(student.Batch) {
		return apperrors.NewValidationError("batch cannot be empty")
	}
	if validation.Blank(student.Branch) {
		return apperrors.NewValidationError("branch cannot be empty")
	}
	if student.Year != 0 && (student.Year < validation.YearMin || student.Year > validation.YearMax) {
		return apperrors.NewValidationError(fmt.Sprintf("year must be between %d and %d", validation.YearMin, validation.YearMax))
	}
	if !models.ValidCategory(student.Category) {
		return apperrors.NewValidationError("unknown category")
	}
	return nil
}

// applyDefaults fills derived and defaulted fields: course from the
// branch lookup when unset, year 1 when unset.
func applyDefaults(student *models.Student) {
	if student.Course == "" {
		student.Course = models.CourseForBranch(student.Branch)
	}
	if student.Year == 0 {
		student.Year = 1
	}
}

// CreateStudent validates and appends a record, returning it with its
// assigned id.
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	applyDefaults(student)

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("creating student: %w", err)
	}
	return created, nil
}

// GetStudentByRoll retrieves the first record with the given roll.
func (s *StudentService) GetStudentByRoll(ctx context.Context, roll string) (*models.Student, error) {
	return s.studentRepo.GetByRoll(ctx, roll)
}

// ListStudents returns the full roster in store order.
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

// UpdateStudent validates and replaces the record identified by roll.
// Every field is replaceable except the id.
func (s *StudentService) UpdateStudent(ctx context.Context, roll string, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	applyDefaults(student)

	updated, err := s.studentRepo.Update(ctx, roll, student)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteStudent removes the record identified by roll.
func (s *StudentService) DeleteStudent(ctx context.Context, roll string) error {
	return s.studentRepo.Delete(ctx, roll)
}
