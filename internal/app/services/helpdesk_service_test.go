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

func TestCreateTicketAlwaysStartsPending(t *testing.T) {
	svc := NewHelpdeskService(repositories.NewTicketRepository())
	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CreateTicket(context.Background(), &models.Ticket{
		StudentRoll: "24155012345",
		StudentName: "Ravi Kumar",
		Category:    "Certificate",
		Description: "Need a bonafide certificate.",
		Status:      models.TicketResolved, // callers cannot pick a status
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if created.Status != models.TicketPending {
		t.Errorf("status = %q, want Pending", created.Status)
	}
	if !created.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", created.CreatedAt, fixed)
	}
	if created.Responses == nil || len(created.Responses) != 0 {
		t.Errorf("new ticket must start with an empty response list: %+v", created.Responses)
	}
}

func TestUpdateStatusAppendsResponse(t *testing.T) {
	repo := repositories.NewTicketRepository()
	svc := NewHelpdeskService(repo)
	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	ctx := context.Background()
	created, err := svc.CreateTicket(ctx, &models.Ticket{StudentRoll: "24155012345", StudentName: "Ravi", Category: "Other", Description: "x"})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, created.ID, models.TicketInProgress, "Looking into it.")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.TicketInProgress {
		t.Errorf("status = %q", updated.Status)
	}
	if len(updated.Responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(updated.Responses))
	}
	resp := updated.Responses[0]
	if resp.Message != "Looking into it." || resp.RespondedBy != "Admin" || !resp.RespondedAt.Equal(fixed) {
		t.Errorf("response = %+v", resp)
	}
}

func TestUpdateStatusWithoutResponse(t *testing.T) {
	svc := NewHelpdeskService(repositories.NewTicketRepository())
	ctx := context.Background()

	created, _ := svc.CreateTicket(ctx, &models.Ticket{StudentRoll: "24155012345", StudentName: "Ravi", Category: "Other", Description: "x"})

	updated, err := svc.UpdateStatus(ctx, created.ID, models.TicketResolved, "")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(updated.Responses) != 0 {
		t.Errorf("empty response message must not append a response: %+v", updated.Responses)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewHelpdeskService(repositories.NewTicketRepository())

	_, err := svc.UpdateStatus(context.Background(), "T-any", models.TicketStatus("Closed"), "")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestUpdateStatusUnknownTicket(t *testing.T) {
	svc := NewHelpdeskService(repositories.NewTicketRepository())

	_, err := svc.UpdateStatus(context.Background(), "T-missing", models.TicketResolved, "")
	if !errors.Is(err, apperrors.ErrTicketNotFound) {
		t.Errorf("got %v, want ErrTicketNotFound", err)
	}
}
