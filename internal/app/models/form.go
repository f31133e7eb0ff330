package models

import "time"

// FormType distinguishes forms that link out from forms served as files.
type FormType string

// Form types.
const (
	FormTypeLink FormType = "link"
	FormTypeFile FormType = "file"
)

// Form is a frequently-used form made available to students, either as an
// external link or an uploaded file URL.
type Form struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Type       FormType  `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}
