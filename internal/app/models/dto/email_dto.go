package dto

import "time"

// Recipient selector values for a broadcast.
const (
	RecipientsAll      = "all"
	RecipientsBatch    = "batch"
	RecipientsFiltered = "filtered"
)

// SendEmailRequest broadcasts one message to a recipient set: the whole
// roster, one batch, or an explicit list of student ids from a filtered
// view.
type SendEmailRequest struct {
	RecipientType string   `json:"recipientType" binding:"required,oneof=all batch filtered"`
	Batch         string   `json:"batch"`
	StudentIDs    []string `json:"studentIds"`
	Subject       string   `json:"subject" binding:"required"`
	Body          string   `json:"body" binding:"required"`
}

// SendEmailResponse reports a completed broadcast.
type SendEmailResponse struct {
	MessageID      string    `json:"messageId"`
	SentAt         time.Time `json:"sentAt"`
	RecipientCount int       `json:"recipientCount"`
}

// EmailTemplate is a canned subject/body pair offered by the composer.
type EmailTemplate struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
