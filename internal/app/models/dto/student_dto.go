package dto

import "github.com/campuscell/studentcell/internal/app/models"

// CreateStudentRequest carries a manual-entry student record.
type CreateStudentRequest struct {
	Roll       string `json:"roll" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email"`
	Batch      string `json:"batch" binding:"required"`
	Branch     string `json:"branch" binding:"required"`
	Course     string `json:"course"`
	Section    string `json:"section"`
	Year       int    `json:"year"`
	Gender     string `json:"gender"`
	Category   string `json:"category"`
	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`
	Notes      string `json:"notes"`
	IsLE       bool   `json:"isLE"`
	IsLeft     bool   `json:"isLeft"`
	IsCR       bool   `json:"isCR"`
}

// ToModel converts the request into a Student without an ID; the store
// assigns the ID on create.
func (r CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		Roll:       r.Roll,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Batch:      r.Batch,
		Branch:     r.Branch,
		Course:     r.Course,
		Section:    r.Section,
		Year:       r.Year,
		Gender:     r.Gender,
		Category:   models.Category(r.Category),
		FatherName: r.FatherName,
		MotherName: r.MotherName,
		Notes:      r.Notes,
		IsLE:       r.IsLE,
		IsLeft:     r.IsLeft,
		IsCR:       r.IsCR,
	}
}

// UpdateStudentRequest replaces every field of a record except its ID.
// Optional fields that arrive empty are cleared, matching edit semantics
// where the form always posts the full record.
type UpdateStudentRequest = CreateStudentRequest

// RosterResponse is the filtered+sorted roster view. Resolved is false
// until all required filter dimensions (batch, branch, course) are set;
// an unresolved view carries no rows regardless of the store contents.
type RosterResponse struct {
	Resolved bool              `json:"resolved"`
	Total    int               `json:"total"`
	Filters  string            `json:"filters,omitempty"` // shareable query representation
	Students []*models.Student `json:"students"`
}

// SearchResponse is the interactive lookup result.
type SearchResponse struct {
	Query    string            `json:"query"`
	Total    int               `json:"total"` // full match count before truncation
	Students []*models.Student `json:"students"`
}

// DistinctValuesResponse feeds the filter dropdowns.
type DistinctValuesResponse struct {
	Batches  []string `json:"batches"`
	Branches []string `json:"branches"`
	Sections []string `json:"sections"`
	Courses  []string `json:"courses"`
}
