package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

func TestCreateNoticeStampsPublishedAt(t *testing.T) {
	svc := NewNoticeService(repositories.NewNoticeRepository())
	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CreateNotice(context.Background(), &models.Notice{
		Title:       "Holiday Notice",
		Category:    models.NoticeCategoryGeneral,
		Description: "College closed on Monday.",
		ExpiryAt:    fixed.Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateNotice: %v", err)
	}
	if !created.PublishedAt.Equal(fixed) {
		t.Errorf("PublishedAt = %v, want %v", created.PublishedAt, fixed)
	}
	if created.ID == "" {
		t.Error("notice must get an id")
	}
	if created.Attachments == nil {
		t.Error("nil attachments must normalize to an empty list")
	}
}

func TestCreateNoticeRequiresExpiry(t *testing.T) {
	svc := NewNoticeService(repositories.NewNoticeRepository())

	_, err := svc.CreateNotice(context.Background(), &models.Notice{
		Title:       "No expiry",
		Category:    models.NoticeCategoryGeneral,
		Description: "x",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestListNoticesHidesExpired(t *testing.T) {
	repo := repositories.NewNoticeRepository()
	svc := NewNoticeService(repo)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	repo.Create(ctx, &models.Notice{Title: "Live", ExpiryAt: now.Add(time.Hour), PublishedAt: now})
	repo.Create(ctx, &models.Notice{Title: "Expired", ExpiryAt: now.Add(-time.Hour), PublishedAt: now.Add(-48 * time.Hour)})

	notices, err := svc.ListNotices(ctx)
	if err != nil {
		t.Fatalf("ListNotices: %v", err)
	}
	if len(notices) != 1 || notices[0].Title != "Live" {
		t.Errorf("expired notice leaked into the listing: %+v", notices)
	}
}

func TestListNoticesPinnedFirstThenNewest(t *testing.T) {
	repo := repositories.NewNoticeRepository()
	svc := NewNoticeService(repo)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	expiry := now.Add(24 * time.Hour)
	repo.Create(ctx, &models.Notice{Title: "Old", PublishedAt: now.Add(-3 * time.Hour), ExpiryAt: expiry})
	repo.Create(ctx, &models.Notice{Title: "Newest", PublishedAt: now.Add(-time.Hour), ExpiryAt: expiry})
	repo.Create(ctx, &models.Notice{Title: "Pinned Old", PublishedAt: now.Add(-5 * time.Hour), ExpiryAt: expiry, Pinned: true})

	notices, err := svc.ListNotices(ctx)
	if err != nil {
		t.Fatalf("ListNotices: %v", err)
	}
	want := []string{"Pinned Old", "Newest", "Old"}
	for i, title := range want {
		if notices[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, notices[i].Title, title)
		}
	}
}

func TestDeleteNoticeNotFound(t *testing.T) {
	svc := NewNoticeService(repositories.NewNoticeRepository())

	err := svc.DeleteNotice(context.Background(), "N-missing")
	if !errors.Is(err, apperrors.ErrNoticeNotFound) {
		t.Errorf("got %v, want ErrNoticeNotFound", err)
	}
}
