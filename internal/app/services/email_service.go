package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
	"github.com/campuscell/studentcell/internal/pkg/email"
)

// emailTemplates are the canned subject/body pairs the composer offers.
var emailTemplates = []dto.EmailTemplate{
	{
		Name:    "General Announcement",
		Subject: "Important Announcement",
		Body:    "Dear Students,\n\nThis is to inform you that...\n\nThank you,\nStudent Cell",
	},
	{
		Name:    "Event Notification",
		Subject: "Upcoming Event",
		Body:    "Dear Students,\n\nWe are pleased to announce an upcoming event...\n\nDate: [Date]\nTime: [Time]\nVenue: [Venue]\n\nThank you,\nStudent Cell",
	},
	{
		Name:    "Examination Notice",
		Subject: "Examination Schedule",
		Body:    "Dear Students,\n\nPlease find the examination schedule attached...\n\nThank you,\nStudent Cell",
	},
}

// EmailService resolves broadcast recipient sets against the roster and
// hands the message to the sender.
type EmailService struct {
	studentRepo *repositories.StudentRepository
	sender      email.Sender
	logger      zerolog.Logger
	now         func() time.Time
}

// NewEmailService creates a new email service instance.
func NewEmailService(studentRepo *repositories.StudentRepository, sender email.Sender, logger zerolog.Logger) *EmailService {
	return &EmailService{
		studentRepo: studentRepo,
		sender:      sender,
		logger:      logger,
		now:         time.Now,
	}
}

// Templates returns the canned templates.
func (s *EmailService) Templates() []dto.EmailTemplate {
	out := make([]dto.EmailTemplate, len(emailTemplates))
	copy(out, emailTemplates)
	return out
}

// Broadcast resolves the recipient set and sends one message to it. The
// recipient count in the response is the resolved set size, including
// students without an email address on file (they are counted as
// recipients but skipped at delivery, matching how the composer reports
// totals).
func (s *EmailService) Broadcast(ctx context.Context, req dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	recipients, err := s.resolveRecipients(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewValidationError("recipient set is empty")
	}

	var addresses []string
	for _, st := range recipients {
		if st.Email != "" {
			addresses = append(addresses, st.Email)
		}
	}

	if err := s.sender.Send(addresses, req.Subject, req.Body); err != nil {
		return nil, fmt.Errorf("broadcasting email: %w", err)
	}

	sentAt := s.now()
	resp := &dto.SendEmailResponse{
		MessageID:      fmt.Sprintf("MSG%d", sentAt.UnixMilli()),
		SentAt:         sentAt,
		RecipientCount: len(recipients),
	}
	s.logger.Info().
		Str("messageId", resp.MessageID).
		Str("recipientType", req.RecipientType).
		Int("recipients", resp.RecipientCount).
		Msg("Broadcast email sent")
	return resp, nil
}

// resolveRecipients selects students by recipient type: the whole
// roster, one batch, or an explicit id list from a filtered view.
func (s *EmailService) resolveRecipients(ctx context.Context, req dto.SendEmailRequest) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}

	switch req.RecipientType {
	case dto.RecipientsAll:
		return students, nil

	case dto.RecipientsBatch:
		if req.Batch == "" {
			return nil, apperrors.NewValidationError("batch is required for batch recipients")
		}
		var out []*models.Student
		for _, st := range students {
			if st.Batch == req.Batch {
				out = append(out, st)
			}
		}
		return out, nil

	case dto.RecipientsFiltered:
		if len(req.StudentIDs) == 0 {
			return nil, apperrors.NewValidationError("studentIds is required for filtered recipients")
		}
		want := make(map[string]bool, len(req.StudentIDs))
		for _, id := range req.StudentIDs {
			want[id] = true
		}
		var out []*models.Student
		for _, st := range students {
			if want[st.ID] {
				out = append(out, st)
			}
		}
		return out, nil
	}

	return nil, apperrors.NewValidationError("unknown recipient type")
}
