package dto

// CreateTicketRequest opens a helpdesk ticket for a student.
type CreateTicketRequest struct {
	StudentRoll string `json:"studentRoll" binding:"required"`
	StudentName string `json:"studentName" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateTicketStatusRequest moves a ticket to a new status, optionally
// appending a staff response.
type UpdateTicketStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Response string `json:"response"`
}
