package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/repositories"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
	"github.com/campuscell/studentcell/internal/pkg/csvmap"
	"github.com/campuscell/studentcell/internal/pkg/validation"
)

// requiredImportFields must be mapped and non-blank on every row.
var requiredImportFields = []string{"roll", "name", "phone", "batch", "branch"}

// RowError is the validation outcome of one failed CSV row. Row numbers
// are 1-based counting the header line, so the first data row is row 2.
type RowError struct {
	Row    int
	Errors []string
}

// ImportPreview is the decoded file plus the detected mapping, shown to
// the user before committing.
type ImportPreview struct {
	Headers      []string
	FieldMapping csvmap.FieldMapping
	RowCount     int
	Preview      []map[string]string
}

// previewRows caps how many raw rows a preview returns.
const previewRows = 10

// ImportService turns CSV input into committed roster records. The
// commit is all-or-nothing: one failing row rejects the whole file and
// the store is untouched.
type ImportService struct {
	studentRepo *repositories.StudentRepository
}

// NewImportService creates a new import service instance.
func NewImportService(studentRepo *repositories.StudentRepository) *ImportService {
	return &ImportService{studentRepo: studentRepo}
}

// Preview decodes the CSV and auto-detects the field mapping without
// touching the store.
func (s *ImportService) Preview(r io.Reader) (*ImportPreview, error) {
	doc, err := csvmap.Parse(r)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, fmt.Sprintf("malformed CSV: %v", err))
	}

	preview := doc.Rows
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}
	return &ImportPreview{
		Headers:      doc.Headers,
		FieldMapping: csvmap.DetectMapping(doc.Headers),
		RowCount:     len(doc.Rows),
		Preview:      preview,
	}, nil
}

// Import decodes, validates and commits the CSV. Mapping overrides are
// overlaid on the auto-detected mapping. On validation failure the
// returned row errors carry every message accumulated per row and the
// store size is unchanged.
func (s *ImportService) Import(ctx context.Context, r io.Reader, overrides map[string]string) (int, []RowError, error) {
	doc, err := csvmap.Parse(r)
	if err != nil {
		return 0, nil, apperrors.NewCustomError(apperrors.ErrBadRequest, fmt.Sprintf("malformed CSV: %v", err))
	}
	if len(doc.Rows) == 0 {
		return 0, nil, apperrors.ErrEmptyCSV
	}

	mapping := csvmap.DetectMapping(doc.Headers).Merge(overrides)

	var rowErrors []RowError
	students := make([]*models.Student, 0, len(doc.Rows))
	for i, row := range doc.Rows {
		errs := validateRow(row, mapping)
		if len(errs) > 0 {
			// +2: rows are 1-based and the header occupies line 1.
			rowErrors = append(rowErrors, RowError{Row: i + 2, Errors: errs})
			continue
		}
		students = append(students, mapRow(row, mapping))
	}

	if len(rowErrors) > 0 {
		return 0, rowErrors, apperrors.ErrImportValidation
	}

	count, err := s.studentRepo.BulkCreate(ctx, students)
	if err != nil {
		return 0, nil, fmt.Errorf("committing import: %w", err)
	}
	return count, nil, nil
}

// validateRow applies the fixed required-field set and the digit-length
// rules. A row may accumulate multiple messages.
func validateRow(row map[string]string, mapping csvmap.FieldMapping) []string {
	var errs []string

	for _, field := range requiredImportFields {
		if validation.Blank(mapping.Value(row, field)) {
			errs = append(errs, field+" is required")
		}
	}

	if roll := mapping.Value(row, "roll"); !validation.Blank(roll) && !validation.ValidRoll(roll) {
		errs = append(errs, fmt.Sprintf("Roll number must be %d digits", validation.RollDigits))
	}
	if phone := mapping.Value(row, "phone"); !validation.Blank(phone) && !validation.ValidPhone(phone) {
		errs = append(errs, fmt.Sprintf("Phone number must be %d digits", validation.PhoneDigits))
	}

	return errs
}

// mapRow builds a Student from one validated row. Course is derived from
// the branch lookup when the course column is unmapped or blank; year
// defaults to 1 when absent or unparseable.
func mapRow(row map[string]string, mapping csvmap.FieldMapping) *models.Student {
	branch := mapping.Value(row, "branch")

	course := mapping.Value(row, "course")
	if course == "" {
		course = models.CourseForBranch(branch)
	}

	year := 1
	if y, err := strconv.Atoi(mapping.Value(row, "year")); err == nil && y > 0 {
		year = y
	}

	return &models.Student{
		Roll:       mapping.Value(row, "roll"),
		Name:       mapping.Value(row, "name"),
		Phone:      mapping.Value(row, "phone"),
		Email:      mapping.Value(row, "email"),
		Batch:      mapping.Value(row, "batch"),
		Branch:     branch,
		Course:     course,
		Section:    mapping.Value(row, "section"),
		Year:       year,
		Gender:     mapping.Value(row, "gender"),
		Category:   models.Category(mapping.Value(row, "category")),
		MotherName: mapping.Value(row, "motherName"),
		FatherName: mapping.Value(row, "fatherName"),
		Notes:      mapping.Value(row, "notes"),
		IsLE:       parseFlag(mapping.Value(row, "isLE")),
		IsLeft:     parseFlag(mapping.Value(row, "isLeft")),
		IsCR:       parseFlag(mapping.Value(row, "isCR")),
	}
}

// parseFlag accepts the usual spreadsheet spellings of a boolean.
func parseFlag(v string) bool {
	switch v {
	case "true", "TRUE", "True", "1", "yes", "YES", "Yes", "y", "Y":
		return true
	}
	return false
}
