package services

import (
	"context"
	"testing"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
)

func seedRoster(t *testing.T, repo *repositories.StudentRepository, students ...*models.Student) {
	t.Helper()
	if _, err := repo.BulkCreate(context.Background(), students); err != nil {
		t.Fatalf("seeding roster: %v", err)
	}
}

func rosterFixture() []*models.Student {
	return []*models.Student{
		{Roll: "24155012345", Name: "Ravi Kumar", Phone: "9876543210", Email: "ravi@college.edu", Batch: "24-28", Branch: "CSE", Course: "B.Tech Computer Science", Section: "1", IsCR: true},
		{Roll: "24155012346", Name: "Priya Sharma", Phone: "9876543211", Email: "priya@college.edu", Batch: "24-28", Branch: "CSE", Course: "B.Tech Computer Science", Section: "2", IsLE: true},
		{Roll: "25155012401", Name: "Aman Verma", Phone: "9876543212", Email: "aman@college.edu", Batch: "25-29", Branch: "IT", Course: "B.Tech Information Technology", Section: "1"},
		{Roll: "25155012402", Name: "Sneha Gupta", Phone: "9876543213", Email: "sneha@college.edu", Batch: "25-29", Branch: "CSE", Course: "MBA Finance", Section: "1", IsLeft: true},
	}
}

func TestFilterUnresolvedUntilRequiredDimensionsSet(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := rosterFixture()

	partials := []models.FilterState{
		{},
		{Batch: "24-28"},
		{Batch: "24-28", Branch: "CSE"},
		{Branch: "CSE", Course: "B.Tech"},
	}
	for _, f := range partials {
		view := svc.Filter(records, f)
		if view.Resolved {
			t.Errorf("filter %+v must not resolve", f)
		}
		if len(view.Students) != 0 {
			t.Errorf("unresolved view must carry no rows, got %d", len(view.Students))
		}
	}
}

func TestFilterResolved(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := rosterFixture()

	view := svc.Filter(records, models.FilterState{Batch: "24-28", Branch: "CSE", Course: "B.Tech"})
	if !view.Resolved {
		t.Fatal("all required dimensions set, view must resolve")
	}
	if len(view.Students) != 2 {
		t.Fatalf("got %d students, want 2", len(view.Students))
	}
	// Store order is preserved through filtering.
	if view.Students[0].Roll != "24155012345" || view.Students[1].Roll != "24155012346" {
		t.Errorf("filtered rows out of order: %s, %s", view.Students[0].Roll, view.Students[1].Roll)
	}
}

func TestFilterMatchesCourseType(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := rosterFixture()

	// "MBA Finance" normalizes to course type MBA.
	view := svc.Filter(records, models.FilterState{Batch: "25-29", Branch: "CSE", Course: "MBA"})
	if len(view.Students) != 1 || view.Students[0].Name != "Sneha Gupta" {
		t.Errorf("course type match failed: %+v", view.Students)
	}
}

func TestFilterRemark(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := rosterFixture()

	base := models.FilterState{Batch: "24-28", Branch: "CSE", Course: "B.Tech"}

	base.Remark = models.RemarkCR
	view := svc.Filter(records, base)
	if len(view.Students) != 1 || !view.Students[0].IsCR {
		t.Errorf("remark cr: got %+v", view.Students)
	}

	base.Remark = models.RemarkLE
	view = svc.Filter(records, base)
	if len(view.Students) != 1 || !view.Students[0].IsLE {
		t.Errorf("remark le: got %+v", view.Students)
	}

	base.Remark = models.RemarkLeft
	view = svc.Filter(records, base)
	if len(view.Students) != 0 {
		t.Errorf("remark left should match nothing in this batch, got %d", len(view.Students))
	}
}

func TestFilterResolvedCanMatchNothing(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())

	view := svc.Filter(rosterFixture(), models.FilterState{Batch: "99-03", Branch: "CSE", Course: "B.Tech"})
	if !view.Resolved {
		t.Error("a resolved view that matches nothing is still resolved")
	}
	if len(view.Students) != 0 {
		t.Errorf("got %d students, want 0", len(view.Students))
	}
}

func TestSortLocaleAware(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := []*models.Student{
		{Roll: "3", Name: "Zoe"},
		{Roll: "1", Name: "amy"},
		{Roll: "2", Name: "Bob"},
	}

	sorted := svc.Sort(records, "name", models.SortAsc)

	// Case differences must not split the ordering: amy < Bob < Zoe.
	want := []string{"amy", "Bob", "Zoe"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, sorted[i].Name, name)
		}
	}
	if records[0].Name != "Zoe" {
		t.Error("Sort must not modify the input slice")
	}
}

func TestSortDescending(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := []*models.Student{
		{Roll: "24155012345"},
		{Roll: "25155012401"},
		{Roll: "24155012300"},
	}

	sorted := svc.Sort(records, "roll", models.SortDesc)
	want := []string{"25155012401", "24155012345", "24155012300"}
	for i, roll := range want {
		if sorted[i].Roll != roll {
			t.Errorf("position %d: got %q, want %q", i, sorted[i].Roll, roll)
		}
	}
}

func TestSortStableOnEqualKeys(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := []*models.Student{
		{Roll: "1", Name: "Same", Batch: "24-28"},
		{Roll: "2", Name: "Same", Batch: "24-28"},
		{Roll: "3", Name: "Same", Batch: "24-28"},
	}

	sorted := svc.Sort(records, "name", models.SortAsc)
	for i, want := range []string{"1", "2", "3"} {
		if sorted[i].Roll != want {
			t.Errorf("equal keys must keep input order: position %d got %q", i, sorted[i].Roll)
		}
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())

	for _, q := range []string{"", "   ", "\t"} {
		if got := svc.Search(rosterFixture(), q); len(got) != 0 {
			t.Errorf("query %q: got %d matches, want 0", q, len(got))
		}
	}
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	svc := NewRosterService(repositories.NewStudentRepository())
	records := rosterFixture()

	tests := []struct {
		query string
		want  []string // expected rolls, in store order
	}{
		{"ravi", []string{"24155012345"}},               // name, case-folded
		{"SHARMA", []string{"24155012346"}},             // name, query uppercased
		{"2515501", []string{"25155012401", "25155012402"}}, // roll prefix
		{"9876543212", []string{"25155012401"}},         // phone, raw digits
		{"sneha@college.edu", []string{"25155012402"}},  // email
		{"nobody", nil},
	}
	for _, tt := range tests {
		got := svc.Search(records, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("query %q: got %d matches, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, roll := range tt.want {
			if got[i].Roll != roll {
				t.Errorf("query %q position %d: got %q, want %q", tt.query, i, got[i].Roll, roll)
			}
		}
	}
}

func TestViewFiltersThenSorts(t *testing.T) {
	repo := repositories.NewStudentRepository()
	seedRoster(t, repo, rosterFixture()...)
	svc := NewRosterService(repo)

	view, err := svc.View(context.Background(), models.FilterState{Batch: "24-28", Branch: "CSE", Course: "B.Tech"}, "name", models.SortAsc)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !view.Resolved || len(view.Students) != 2 {
		t.Fatalf("unexpected view: resolved=%v count=%d", view.Resolved, len(view.Students))
	}
	if view.Students[0].Name != "Priya Sharma" || view.Students[1].Name != "Ravi Kumar" {
		t.Errorf("sorted filtered view wrong: %s, %s", view.Students[0].Name, view.Students[1].Name)
	}
}

func TestDistinctValues(t *testing.T) {
	repo := repositories.NewStudentRepository()
	seedRoster(t, repo, rosterFixture()...)
	svc := NewRosterService(repo)

	batches, branches, sections, courses, err := svc.DistinctValues(context.Background())
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}

	wantBatches := []string{"24-28", "25-29"}
	if len(batches) != len(wantBatches) || batches[0] != wantBatches[0] || batches[1] != wantBatches[1] {
		t.Errorf("batches = %v, want %v", batches, wantBatches)
	}
	wantBranches := []string{"CSE", "IT"}
	if len(branches) != 2 || branches[0] != wantBranches[0] || branches[1] != wantBranches[1] {
		t.Errorf("branches = %v, want %v", branches, wantBranches)
	}
	if len(sections) != 2 {
		t.Errorf("sections = %v, want two values", sections)
	}
	// Courses are the fixed type list, not derived from the store.
	if len(courses) != 3 || courses[0] != "B.Tech" {
		t.Errorf("courses = %v", courses)
	}
}
