package models

import (
	"net/url"
	"strings"
)

// RemarkFilter selects students by one remark flag. At most one remark may
// be active in a FilterState at a time.
type RemarkFilter string

// Remark filter values.
const (
	RemarkNone RemarkFilter = ""
	RemarkLE   RemarkFilter = "le"
	RemarkLeft RemarkFilter = "left"
	RemarkCR   RemarkFilter = "cr"
)

// ValidRemarkFilter reports whether r is a known remark selector.
func ValidRemarkFilter(r RemarkFilter) bool {
	switch r {
	case RemarkNone, RemarkLE, RemarkLeft, RemarkCR:
		return true
	}
	return false
}

// courseTypes are the normalized course-type tokens, in match order.
// A record's free-text course field is reduced to the first token it
// contains; if none match, the raw value acts as its own type.
var courseTypes = []string{"B.Tech", "MBA", "MCA"}

// CourseType extracts the normalized course type from a full course name.
func CourseType(course string) string {
	for _, t := range courseTypes {
		if strings.Contains(course, t) {
			return t
		}
	}
	return course
}

// CourseTypes returns the fixed course-type list shown in filter dropdowns.
func CourseTypes() []string {
	out := make([]string, len(courseTypes))
	copy(out, courseTypes)
	return out
}

// FilterState holds one value per filter dimension; the empty string means
// "no constraint". A view is only considered resolved once batch, branch
// and course are all set.
type FilterState struct {
	Batch   string       `form:"batch" json:"batch"`
	Branch  string       `form:"branch" json:"branch"`
	Course  string       `form:"course" json:"course"` // matched against CourseType of the record
	Section string       `form:"section" json:"section"`
	Remark  RemarkFilter `form:"remark" json:"remark"`
}

// Resolved reports whether the three required dimensions are all chosen.
// Until then callers must treat the view as unresolved rather than showing
// the full table.
func (f FilterState) Resolved() bool {
	return f.Batch != "" && f.Branch != "" && f.Course != ""
}

// Empty reports whether no dimension is constrained at all.
func (f FilterState) Empty() bool {
	return f == FilterState{}
}

// Encode renders the filter state as a flat query representation, one key
// per non-empty dimension, so a filtered view is shareable and restorable
// verbatim.
func (f FilterState) Encode() url.Values {
	v := url.Values{}
	if f.Batch != "" {
		v.Set("batch", f.Batch)
	}
	if f.Branch != "" {
		v.Set("branch", f.Branch)
	}
	if f.Course != "" {
		v.Set("course", f.Course)
	}
	if f.Section != "" {
		v.Set("section", f.Section)
	}
	if f.Remark != RemarkNone {
		v.Set("remark", string(f.Remark))
	}
	return v
}

// DecodeFilterState restores a filter state from its query representation.
func DecodeFilterState(v url.Values) FilterState {
	return FilterState{
		Batch:   v.Get("batch"),
		Branch:  v.Get("branch"),
		Course:  v.Get("course"),
		Section: v.Get("section"),
		Remark:  RemarkFilter(v.Get("remark")),
	}
}

// SortDirection orders a sorted view ascending or descending.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortableFields lists the student fields the sort engine accepts.
var SortableFields = []string{"roll", "name", "batch", "branch", "course", "section", "year", "phone", "email"}

// ValidSortField reports whether field is sortable.
func ValidSortField(field string) bool {
	for _, f := range SortableFields {
		if f == field {
			return true
		}
	}
	return false
}
