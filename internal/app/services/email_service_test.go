package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// fakeSender records the last delivery instead of talking SMTP.
type fakeSender struct {
	to      []string
	subject string
	body    string
	calls   int
	err     error
}

func (f *fakeSender) Send(to []string, subject, body string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.body = body
	return f.err
}

func emailFixtureRepo(t *testing.T) *repositories.StudentRepository {
	t.Helper()
	repo := repositories.NewStudentRepository()
	students := []*models.Student{
		{Roll: "24155012345", Name: "Ravi", Email: "ravi@college.edu", Batch: "24-28"},
		{Roll: "24155012346", Name: "Priya", Email: "priya@college.edu", Batch: "24-28"},
		{Roll: "25155012401", Name: "Aman", Email: "", Batch: "25-29"}, // no address on file
	}
	if _, err := repo.BulkCreate(context.Background(), students); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	return repo
}

func TestBroadcastAll(t *testing.T) {
	repo := emailFixtureRepo(t)
	sender := &fakeSender{}
	svc := NewEmailService(repo, sender, zerolog.Nop())
	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Broadcast(context.Background(), dto.SendEmailRequest{
		RecipientType: dto.RecipientsAll,
		Subject:       "Hello",
		Body:          "World",
	})
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	// Three resolved recipients, but only two have addresses.
	if resp.RecipientCount != 3 {
		t.Errorf("RecipientCount = %d, want 3", resp.RecipientCount)
	}
	if len(sender.to) != 2 {
		t.Errorf("delivered to %d addresses, want 2", len(sender.to))
	}
	if !strings.HasPrefix(resp.MessageID, "MSG") {
		t.Errorf("MessageID = %q", resp.MessageID)
	}
	if !resp.SentAt.Equal(fixed) {
		t.Errorf("SentAt = %v", resp.SentAt)
	}
}

func TestBroadcastBatch(t *testing.T) {
	repo := emailFixtureRepo(t)
	sender := &fakeSender{}
	svc := NewEmailService(repo, sender, zerolog.Nop())

	resp, err := svc.Broadcast(context.Background(), dto.SendEmailRequest{
		RecipientType: dto.RecipientsBatch,
		Batch:         "24-28",
		Subject:       "Hello",
		Body:          "World",
	})
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	if resp.RecipientCount != 2 {
		t.Errorf("RecipientCount = %d, want 2", resp.RecipientCount)
	}
}

func TestBroadcastBatchRequiresBatch(t *testing.T) {
	svc := NewEmailService(emailFixtureRepo(t), &fakeSender{}, zerolog.Nop())

	_, err := svc.Broadcast(context.Background(), dto.SendEmailRequest{
		RecipientType: dto.RecipientsBatch,
		Subject:       "Hello",
		Body:          "World",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestBroadcastFiltered(t *testing.T) {
	repo := emailFixtureRepo(t)
	students, _ := repo.List(context.Background())
	sender := &fakeSender{}
	svc := NewEmailService(repo, sender, zerolog.Nop())

	resp, err := svc.Broadcast(context.Background(), dto.SendEmailRequest{
		RecipientType: dto.RecipientsFiltered,
		StudentIDs:    []string{students[0].ID, students[2].ID},
		Subject:       "Hello",
		Body:          "World",
	})
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	if resp.RecipientCount != 2 {
		t.Errorf("RecipientCount = %d, want 2", resp.RecipientCount)
	}
	if len(sender.to) != 1 || sender.to[0] != "ravi@college.edu" {
		t.Errorf("delivered to %v", sender.to)
	}
}

func TestBroadcastEmptyRecipientSet(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEmailService(emailFixtureRepo(t), sender, zerolog.Nop())

	_, err := svc.Broadcast(context.Background(), dto.SendEmailRequest{
		RecipientType: dto.RecipientsBatch,
		Batch:         "99-03",
		Subject:       "Hello",
		Body:          "World",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
	if sender.calls != 0 {
		t.Error("nothing may be sent for an empty recipient set")
	}
}

func TestBroadcastUnknownRecipientType(t *testing.T) {
	svc := NewEmailService(emailFixtureRepo(t), &fakeSender{}, zerolog.Nop())

	_, err := svc.Broadcast(context.Background(), dto.SendEmailRequest{
		RecipientType: "everyone",
		Subject:       "Hello",
		Body:          "World",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestTemplates(t *testing.T) {
	svc := NewEmailService(emailFixtureRepo(t), &fakeSender{}, zerolog.Nop())

	templates := svc.Templates()
	if len(templates) != 3 {
		t.Fatalf("got %d templates, want 3", len(templates))
	}

	templates[0].Subject = "mutated"
	if svc.Templates()[0].Subject == "mutated" {
		t.Error("Templates must return a copy")
	}
}
