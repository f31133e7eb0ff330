package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
)

// RosterView is the result of applying a FilterState. Resolved is false
// until the required dimensions (batch, branch, course) are all set; an
// unresolved view never carries rows, which is distinct from a resolved
// view that matched nothing.
type RosterView struct {
	Resolved bool
	Students []*models.Student
}

// RosterService derives views over the student store: filtering,
// ordering, and interactive search. Every derivation is a pure function
// of (records, parameters); nothing here mutates the store.
type RosterService struct {
	studentRepo *repositories.StudentRepository
	collator    *collate.Collator
}

// NewRosterService creates a roster service.
func NewRosterService(studentRepo *repositories.StudentRepository) *RosterService {
	return &RosterService{
		studentRepo: studentRepo,
		collator:    collate.New(language.English),
	}
}

// Filter returns the ordered subsequence of records satisfying every
// non-empty constraint. Course matches on the normalized course type of
// the record; the remark dimension matches one boolean flag.
func (s *RosterService) Filter(records []*models.Student, f models.FilterState) RosterView {
	if !f.Resolved() {
		return RosterView{Resolved: false}
	}

	var out []*models.Student
	for _, st := range records {
		if !matchesFilter(st, f) {
			continue
		}
		out = append(out, st)
	}
	return RosterView{Resolved: true, Students: out}
}

func matchesFilter(st *models.Student, f models.FilterState) bool {
	if f.Batch != "" && st.Batch != f.Batch {
		return false
	}
	if f.Branch != "" && st.Branch != f.Branch {
		return false
	}
	if f.Course != "" && models.CourseType(st.Course) != f.Course {
		return false
	}
	if f.Section != "" && st.Section != f.Section {
		return false
	}
	switch f.Remark {
	case models.RemarkLE:
		return st.IsLE
	case models.RemarkLeft:
		return st.IsLeft
	case models.RemarkCR:
		return st.IsCR
	}
	return true
}

// Sort returns a new sequence ordered by the given field. Comparison is
// locale-aware over the field's string representation; numeric fields
// compare as their string form. The input slice is not modified.
func (s *RosterService) Sort(records []*models.Student, field string, direction models.SortDirection) []*models.Student {
	out := make([]*models.Student, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a := sortKey(out[i], field)
		b := sortKey(out[j], field)
		if direction == models.SortDesc {
			a, b = b, a
		}
		return s.collator.CompareString(a, b) < 0
	})
	return out
}

func sortKey(st *models.Student, field string) string {
	switch field {
	case "name":
		return st.Name
	case "roll":
		return st.Roll
	case "batch":
		return st.Batch
	case "branch":
		return st.Branch
	case "course":
		return st.Course
	case "section":
		return st.Section
	case "year":
		return strconv.Itoa(st.Year)
	case "phone":
		return st.Phone
	case "email":
		return st.Email
	}
	return st.Roll
}

// Search returns the subsequence whose name, roll, phone or email
// contains the query. Name, roll and email compare case-folded; phone is
// digits and compares raw. An empty or whitespace-only query returns an
// empty set: the index shows nothing until the user types.
func (s *RosterService) Search(records []*models.Student, query string) []*models.Student {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var out []*models.Student
	for _, st := range records {
		if strings.Contains(strings.ToLower(st.Name), term) ||
			strings.Contains(strings.ToLower(st.Roll), term) ||
			strings.Contains(st.Phone, strings.TrimSpace(query)) ||
			strings.Contains(strings.ToLower(st.Email), term) {
			out = append(out, st)
		}
	}
	return out
}

// View loads the store and applies filter then sort in one call, the
// shape every listing endpoint needs.
func (s *RosterService) View(ctx context.Context, f models.FilterState, sortField string, direction models.SortDirection) (RosterView, error) {
	records, err := s.studentRepo.List(ctx)
	if err != nil {
		return RosterView{}, fmt.Errorf("listing students: %w", err)
	}

	view := s.Filter(records, f)
	if !view.Resolved {
		return view, nil
	}
	if sortField != "" {
		view.Students = s.Sort(view.Students, sortField, direction)
	}
	return view, nil
}

// SearchStore runs Search against the full store.
func (s *RosterService) SearchStore(ctx context.Context, query string) ([]*models.Student, error) {
	records, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	return s.Search(records, query), nil
}

// DistinctValues collects the unique, sorted batch/branch/section values
// present in the store, plus the fixed course-type list, for the filter
// dropdowns.
func (s *RosterService) DistinctValues(ctx context.Context) (batches, branches, sections, courses []string, err error) {
	records, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("listing students: %w", err)
	}

	batches = distinct(records, func(st *models.Student) string { return st.Batch })
	branches = distinct(records, func(st *models.Student) string { return st.Branch })
	sections = distinct(records, func(st *models.Student) string { return st.Section })
	courses = models.CourseTypes()
	return batches, branches, sections, courses, nil
}

func distinct(records []*models.Student, key func(*models.Student) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, st := range records {
		v := key(st)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
