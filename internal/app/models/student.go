package models

// Gender values accepted for a student record.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Category is the reservation category of a student.
type Category string

// Reservation categories.
const (
	CategoryGeneral Category = "GEN"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryEWS     Category = "EWS"
)

// ValidCategory reports whether c is one of the known categories.
// The empty string is allowed because category is optional.
func ValidCategory(c Category) bool {
	switch c {
	case "", CategoryGeneral, CategoryOBC, CategorySC, CategoryST, CategoryEWS:
		return true
	}
	return false
}

// Student is one row of the roster. ID is generated at creation and never
// reused; roll is the human-facing natural key (11 digits). Duplicate rolls
// are not rejected by the store, so roll lookups return the first match in
// store order.
type Student struct {
	ID         string   `json:"id" example:"a9f3c2d1-..."` // Opaque unique identifier, immutable
	Roll       string   `json:"roll" example:"24155012345"`
	Name       string   `json:"name" example:"Ravi Kumar"`
	Phone      string   `json:"phone" example:"9876543210"`
	Email      string   `json:"email" example:"ravi@college.edu"`
	Batch      string   `json:"batch" example:"24-28"`
	Branch     string   `json:"branch" example:"CSE"`
	Course     string   `json:"course" example:"B.Tech Computer Science"`
	Section    string   `json:"section" example:"1"`
	Year       int      `json:"year" example:"1"` // 1-4, defaults to 1
	Gender     string   `json:"gender,omitempty"`
	Category   Category `json:"category,omitempty"`
	FatherName string   `json:"fatherName,omitempty"`
	MotherName string   `json:"motherName,omitempty"`
	Notes      string   `json:"notes,omitempty"`

	// Remark flags. Independent, mutually non-exclusive, default false.
	IsLE   bool `json:"isLE"`   // Lateral Entry / Leave of Absence
	IsLeft bool `json:"isLeft"` // Discontinued
	IsCR   bool `json:"isCR"`   // Class Representative
}

// branchCourses maps a branch code to the full course name used when a
// record arrives without an explicit course.
var branchCourses = map[string]string{
	"CSE":    "B.Tech Computer Science",
	"IT":     "B.Tech Information Technology",
	"CSE AI": "B.Tech Computer Science (AI)",
	"CSE DS": "B.Tech Computer Science (Data Science)",
	"ECE":    "B.Tech Electronics",
}

// CourseForBranch returns the full course name derived from a branch code,
// or the empty string for an unknown branch.
func CourseForBranch(branch string) string {
	return branchCourses[branch]
}
