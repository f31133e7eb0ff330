package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// StudentRepository is the Record Store: an owned, ordered in-memory
// collection of student records. All mutation funnels through the CRUD
// operations below; reads return copies so callers never alias store
// state. The mutex enforces the single-writer contract; no operation
// performs a read-modify-write outside the lock.
type StudentRepository struct {
	mu       sync.RWMutex
	students []*models.Student
}

// NewStudentRepository creates an empty student store.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// List returns all records in store order.
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Student, len(r.students))
	for i, s := range r.students {
		c := *s
		out[i] = &c
	}
	return out, nil
}

// Count returns the store size.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students), nil
}

// GetByID retrieves a record by its opaque id.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// GetByRoll retrieves the first record carrying the given roll number.
// Duplicate rolls are tolerated by the store, so the first match in
// store order wins.
func (r *StudentRepository) GetByRoll(ctx context.Context, roll string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.Roll == roll {
			c := *s
			return &c, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// Create appends a new record, assigning its id. Duplicate rolls are
// not rejected.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	student.ID = uuid.NewString()
	c := *student
	r.students = append(r.students, &c)
	return student, nil
}

// Update replaces every field except the id of the first record matching
// roll. Returns ErrStudentNotFound for an unknown roll.
func (r *StudentRepository) Update(ctx context.Context, roll string, updated *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.students {
		if s.Roll == roll {
			c := *updated
			c.ID = s.ID
			r.students[i] = &c
			out := c
			return &out, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// Delete removes the first record matching roll. Returns
// ErrStudentNotFound for an unknown roll.
func (r *StudentRepository) Delete(ctx context.Context, roll string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.students {
		if s.Roll == roll {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

// BulkCreate assigns ids and appends all records in input order as one
// atomic operation, returning the number appended. Callers are expected
// to have validated the full batch first; the store never commits a
// partial batch.
func (r *StudentRepository) BulkCreate(ctx context.Context, students []*models.Student) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range students {
		s.ID = uuid.NewString()
		c := *s
		r.students = append(r.students, &c)
	}
	return len(students), nil
}
