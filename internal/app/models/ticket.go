package models

import "time"

// TicketStatus is the workflow state of a helpdesk ticket.
type TicketStatus string

// Ticket statuses. Any transition is allowed.
const (
	TicketPending    TicketStatus = "Pending"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
)

// ValidTicketStatus reports whether s is a known status.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketPending, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

// TicketResponse is one staff reply attached to a ticket.
type TicketResponse struct {
	Message     string    `json:"message"`
	RespondedAt time.Time `json:"respondedAt"`
	RespondedBy string    `json:"respondedBy"`
}

// Ticket is a helpdesk request raised for a student.
type Ticket struct {
	ID          string           `json:"id"`
	StudentRoll string           `json:"studentRoll"`
	StudentName string           `json:"studentName"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Status      TicketStatus     `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	Responses   []TicketResponse `json:"responses"`
}
