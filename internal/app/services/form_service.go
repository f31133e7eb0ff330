package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
)

// FormService handles the frequently-used forms catalogue.
type FormService struct {
	formRepo *repositories.FormRepository
	now      func() time.Time
}

// NewFormService creates a new form service instance.
func NewFormService(formRepo *repositories.FormRepository) *FormService {
	return &FormService{
		formRepo: formRepo,
		now:      time.Now,
	}
}

// ListForms returns all forms in upload order.
func (s *FormService) ListForms(ctx context.Context) ([]*models.Form, error) {
	return s.formRepo.List(ctx)
}

// CreateForm registers a form, stamping UploadedAt.
func (s *FormService) CreateForm(ctx context.Context, form *models.Form) (*models.Form, error) {
	form.UploadedAt = s.now()

	created, err := s.formRepo.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("creating form: %w", err)
	}
	return created, nil
}

// DeleteForm removes a form by id.
func (s *FormService) DeleteForm(ctx context.Context, id string) error {
	return s.formRepo.Delete(ctx, id)
}
