package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
)

// rosterAsset is the shape of the bundled sample-students.json file.
type rosterAsset struct {
	Students []*models.Student `json:"students"`
}

// LoadRoster seeds the student store from a JSON asset. A missing or
// empty path starts with an empty roster, which is fine for tests and
// fresh deployments.
func LoadRoster(ctx context.Context, path string, repos *repositories.Repositories, lgr zerolog.Logger) error {
	if path == "" {
		lgr.Info().Msg("No seed path configured, starting with an empty roster")
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Warn().Str("path", path).Msg("Seed asset not found, starting with an empty roster")
			return nil
		}
		return fmt.Errorf("reading seed asset: %w", err)
	}

	var asset rosterAsset
	if err := json.Unmarshal(raw, &asset); err != nil {
		return fmt.Errorf("parsing seed asset: %w", err)
	}

	count, err := repos.StudentRepository.BulkCreate(ctx, asset.Students)
	if err != nil {
		return fmt.Errorf("seeding student store: %w", err)
	}

	lgr.Info().Int("students", count).Str("path", path).Msg("Student store seeded")
	return nil
}

// CreateDefaultData seeds one example notice, form and ticket so a fresh
// instance shows something on every page.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	now := time.Now()

	_, err := repos.NoticeRepository.Create(ctx, &models.Notice{
		Title:       "Semester Exam Schedule",
		Category:    models.NoticeCategoryAcademic,
		Description: "Exams start on 10th Dec. Check hall tickets.",
		PublishedAt: now,
		ExpiryAt:    now.Add(30 * 24 * time.Hour),
		Pinned:      true,
		Attachments: []string{},
	})
	if err != nil {
		return fmt.Errorf("seeding notices: %w", err)
	}

	_, err = repos.FormRepository.Create(ctx, &models.Form{
		Title:      "Examination Form",
		Category:   "Examination",
		Type:       models.FormTypeLink,
		URL:        "https://forms.google.com/example",
		UploadedAt: now,
	})
	if err != nil {
		return fmt.Errorf("seeding forms: %w", err)
	}

	_, err = repos.TicketRepository.Create(ctx, &models.Ticket{
		StudentRoll: "24155012345",
		StudentName: "Ravi Kumar",
		Category:    "Certificate",
		Description: "Request for participation certificate.",
		Status:      models.TicketPending,
		CreatedAt:   now,
		Responses:   []models.TicketResponse{},
	})
	if err != nil {
		return fmt.Errorf("seeding tickets: %w", err)
	}

	lgr.Info().Msg("Default notices, forms and tickets created")
	return nil
}
