package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// NoticeService handles notice board operations.
type NoticeService struct {
	noticeRepo *repositories.NoticeRepository
	now        func() time.Time
}

// NewNoticeService creates a new notice service instance.
func NewNoticeService(noticeRepo *repositories.NoticeRepository) *NoticeService {
	return &NoticeService{
		noticeRepo: noticeRepo,
		now:        time.Now,
	}
}

// ListNotices returns non-expired notices, pinned first, then newest
// first.
func (s *NoticeService) ListNotices(ctx context.Context) ([]*models.Notice, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notices: %w", err)
	}

	now := s.now()
	var live []*models.Notice
	for _, n := range notices {
		if !n.Expired(now) {
			live = append(live, n)
		}
	}

	sort.SliceStable(live, func(i, j int) bool {
		if live[i].Pinned != live[j].Pinned {
			return live[i].Pinned
		}
		return live[i].PublishedAt.After(live[j].PublishedAt)
	})
	return live, nil
}

// CreateNotice validates and posts a notice, stamping PublishedAt.
func (s *NoticeService) CreateNotice(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	if notice.ExpiryAt.IsZero() {
		return nil, apperrors.NewValidationError("expiry date is required")
	}
	notice.PublishedAt = s.now()
	if notice.Attachments == nil {
		notice.Attachments = []string{}
	}

	created, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		return nil, fmt.Errorf("creating notice: %w", err)
	}
	return created, nil
}

// DeleteNotice removes a notice by id.
func (s *NoticeService) DeleteNotice(ctx context.Context, id string) error {
	return s.noticeRepo.Delete(ctx, id)
}
