package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// NoticeRepository stores notices in memory, newest retained alongside
// expired ones; expiry filtering is the service's concern.
type NoticeRepository struct {
	mu      sync.RWMutex
	notices []*models.Notice
}

// NewNoticeRepository creates an empty notice store.
func NewNoticeRepository() *NoticeRepository {
	return &NoticeRepository{}
}

// List returns all notices in insertion order.
func (r *NoticeRepository) List(ctx context.Context) ([]*models.Notice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Notice, len(r.notices))
	for i, n := range r.notices {
		c := *n
		out[i] = &c
	}
	return out, nil
}

// Create appends a notice, assigning its id.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notice.ID = "N" + uuid.NewString()
	c := *notice
	r.notices = append(r.notices, &c)
	return notice, nil
}

// Delete removes a notice by id.
func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notices {
		if n.ID == id {
			r.notices = append(r.notices[:i], r.notices[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNoticeNotFound
}
