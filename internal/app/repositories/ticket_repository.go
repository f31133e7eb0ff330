package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// TicketRepository stores helpdesk tickets in memory.
type TicketRepository struct {
	mu      sync.RWMutex
	tickets []*models.Ticket
}

// NewTicketRepository creates an empty ticket store.
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

// List returns all tickets in insertion order.
func (r *TicketRepository) List(ctx context.Context) ([]*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Ticket, len(r.tickets))
	for i, t := range r.tickets {
		out[i] = copyTicket(t)
	}
	return out, nil
}

// GetByID retrieves a ticket by id.
func (r *TicketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tickets {
		if t.ID == id {
			return copyTicket(t), nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

// Create appends a ticket, assigning its id.
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket.ID = "T" + uuid.NewString()
	r.tickets = append(r.tickets, copyTicket(ticket))
	return ticket, nil
}

// SetStatus moves a ticket to status, optionally appending a response,
// and returns the updated ticket. Returns ErrTicketNotFound for an
// unknown id.
func (r *TicketRepository) SetStatus(ctx context.Context, id string, status models.TicketStatus, response *models.TicketResponse) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tickets {
		if t.ID == id {
			t.Status = status
			if response != nil {
				t.Responses = append(t.Responses, *response)
			}
			return copyTicket(t), nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

// copyTicket deep-copies a ticket so responses are never shared.
func copyTicket(t *models.Ticket) *models.Ticket {
	c := *t
	c.Responses = make([]models.TicketResponse, len(t.Responses))
	copy(c.Responses, t.Responses)
	return &c
}
