package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// FormRepository stores frequently-used forms in memory.
type FormRepository struct {
	mu    sync.RWMutex
	forms []*models.Form
}

// NewFormRepository creates an empty form store.
func NewFormRepository() *FormRepository {
	return &FormRepository{}
}

// List returns all forms in insertion order.
func (r *FormRepository) List(ctx context.Context) ([]*models.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Form, len(r.forms))
	for i, f := range r.forms {
		c := *f
		out[i] = &c
	}
	return out, nil
}

// Create appends a form, assigning its id.
func (r *FormRepository) Create(ctx context.Context, form *models.Form) (*models.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	form.ID = "F" + uuid.NewString()
	c := *form
	r.forms = append(r.forms, &c)
	return form, nil
}

// Delete removes a form by id.
func (r *FormRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.forms {
		if f.ID == id {
			r.forms = append(r.forms[:i], r.forms[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrFormNotFound
}
