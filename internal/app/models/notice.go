package models

import "time"

// Notice categories.
const (
	NoticeCategoryAcademic = "Academic"
	NoticeCategoryEvent    = "Event"
	NoticeCategoryGeneral  = "General"
	NoticeCategoryUrgent   = "Urgent"
)

// Notice is an announcement posted by the student cell. Expired notices
// (ExpiryAt in the past) are hidden from listings but not deleted.
type Notice struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
	ExpiryAt    time.Time `json:"expiryAt"`
	Pinned      bool      `json:"pinned"`
	Attachments []string  `json:"attachments"`
}

// Expired reports whether the notice should be hidden at the given time.
func (n *Notice) Expired(now time.Time) bool {
	return !n.ExpiryAt.After(now)
}
