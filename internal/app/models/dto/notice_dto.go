package dto

import "time"

// CreateNoticeRequest posts a new notice.
type CreateNoticeRequest struct {
	Title       string    `json:"title" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ExpiryAt    time.Time `json:"expiryAt" binding:"required"`
	Pinned      bool      `json:"pinned"`
	Attachments []string  `json:"attachments"`
}

// CreateFormRequest registers a frequently-used form.
type CreateFormRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=link file"`
	URL      string `json:"url" binding:"required"`
}
