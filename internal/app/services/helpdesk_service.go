package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// respondedBy stamps staff responses; there is no authenticated user
// identity, role is display-only.
const respondedBy = "Admin"

// HelpdeskService handles helpdesk tickets.
type HelpdeskService struct {
	ticketRepo *repositories.TicketRepository
	now        func() time.Time
}

// NewHelpdeskService creates a new helpdesk service instance.
func NewHelpdeskService(ticketRepo *repositories.TicketRepository) *HelpdeskService {
	return &HelpdeskService{
		ticketRepo: ticketRepo,
		now:        time.Now,
	}
}

// ListTickets returns all tickets in creation order.
func (s *HelpdeskService) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	return s.ticketRepo.List(ctx)
}

// CreateTicket opens a ticket: status Pending, empty response list,
// CreatedAt stamped.
func (s *HelpdeskService) CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	ticket.Status = models.TicketPending
	ticket.CreatedAt = s.now()
	ticket.Responses = []models.TicketResponse{}

	created, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}
	return created, nil
}

// UpdateStatus moves a ticket to a new status. A non-empty response
// message is appended to the ticket's response thread. Any status
// transition is allowed.
func (s *HelpdeskService) UpdateStatus(ctx context.Context, id string, status models.TicketStatus, response string) (*models.Ticket, error) {
	if !models.ValidTicketStatus(status) {
		return nil, apperrors.NewValidationError("unknown ticket status")
	}

	var resp *models.TicketResponse
	if response != "" {
		resp = &models.TicketResponse{
			Message:     response,
			RespondedAt: s.now(),
			RespondedBy: respondedBy,
		}
	}
	return s.ticketRepo.SetStatus(ctx, id, status, resp)
}
