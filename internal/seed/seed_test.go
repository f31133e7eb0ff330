package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campuscell/studentcell/internal/app/repositories"
)

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "students.json")
	asset := `{"students":[
		{"roll":"24155012345","name":"Ravi Kumar","phone":"9876543210","batch":"24-28","branch":"CSE"},
		{"roll":"24155012346","name":"Priya Sharma","phone":"9876543211","batch":"24-28","branch":"CSE"}
	]}`
	if err := os.WriteFile(path, []byte(asset), 0o644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}

	repos := repositories.NewRepositories()
	if err := LoadRoster(context.Background(), path, repos, zerolog.Nop()); err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}

	students, _ := repos.StudentRepository.List(context.Background())
	if len(students) != 2 {
		t.Fatalf("seeded %d students, want 2", len(students))
	}
	if students[0].Roll != "24155012345" {
		t.Errorf("asset order not preserved: %q", students[0].Roll)
	}
	if students[0].ID == "" {
		t.Error("seeded records must carry ids")
	}
}

func TestLoadRosterMissingFileIsNotFatal(t *testing.T) {
	repos := repositories.NewRepositories()

	err := LoadRoster(context.Background(), filepath.Join(t.TempDir(), "absent.json"), repos, zerolog.Nop())
	if err != nil {
		t.Fatalf("missing asset must start an empty roster, got %v", err)
	}
	if n, _ := repos.StudentRepository.Count(context.Background()); n != 0 {
		t.Errorf("roster size = %d, want 0", n)
	}
}

func TestLoadRosterRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}

	if err := LoadRoster(context.Background(), path, repositories.NewRepositories(), zerolog.Nop()); err == nil {
		t.Error("malformed asset must fail")
	}
}

func TestCreateDefaultData(t *testing.T) {
	repos := repositories.NewRepositories()
	ctx := context.Background()

	if err := CreateDefaultData(ctx, repos, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}

	notices, _ := repos.NoticeRepository.List(ctx)
	if len(notices) != 1 || !notices[0].Pinned {
		t.Errorf("default notice wrong: %+v", notices)
	}
	forms, _ := repos.FormRepository.List(ctx)
	if len(forms) != 1 {
		t.Errorf("default forms = %d, want 1", len(forms))
	}
	tickets, _ := repos.TicketRepository.List(ctx)
	if len(tickets) != 1 || tickets[0].Status != "Pending" {
		t.Errorf("default ticket wrong: %+v", tickets)
	}
}
