package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// ExportFormat names a target artifact format.
type ExportFormat string

// Artifact formats. The print-style format is recognised but not yet
// produced; requesting it fails with ErrExportFormatUnavailable so
// callers can fall back.
const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

// placeholder renders a missing or blank field value in the artifact.
const placeholder = "-"

// ExportColumn is one column of the fixed export superset. Declaration
// order here is the output order; selection order never matters.
type ExportColumn struct {
	Key   string
	Label string
	Width float64
	Value func(*models.Student) string
}

// exportColumns is the 16-column superset spanning identity, contact,
// academic and remark-flag columns.
var exportColumns = []ExportColumn{
	{Key: "roll", Label: "Roll Number", Width: 16, Value: func(s *models.Student) string { return s.Roll }},
	{Key: "name", Label: "Name", Width: 24, Value: func(s *models.Student) string { return s.Name }},
	{Key: "phone", Label: "Phone", Width: 14, Value: func(s *models.Student) string { return s.Phone }},
	{Key: "email", Label: "Email", Width: 28, Value: func(s *models.Student) string { return s.Email }},
	{Key: "batch", Label: "Batch", Width: 10, Value: func(s *models.Student) string { return s.Batch }},
	{Key: "branch", Label: "Branch", Width: 10, Value: func(s *models.Student) string { return s.Branch }},
	{Key: "course", Label: "Course", Width: 30, Value: func(s *models.Student) string { return s.Course }},
	{Key: "section", Label: "Section", Width: 9, Value: func(s *models.Student) string { return s.Section }},
	{Key: "year", Label: "Year", Width: 7, Value: func(s *models.Student) string {
		if s.Year == 0 {
			return ""
		}
		return strconv.Itoa(s.Year)
	}},
	{Key: "gender", Label: "Gender", Width: 9, Value: func(s *models.Student) string { return s.Gender }},
	{Key: "category", Label: "Category", Width: 10, Value: func(s *models.Student) string { return string(s.Category) }},
	{Key: "fatherName", Label: "Father Name", Width: 22, Value: func(s *models.Student) string { return s.FatherName }},
	{Key: "motherName", Label: "Mother Name", Width: 22, Value: func(s *models.Student) string { return s.MotherName }},
	{Key: "isLE", Label: "LE", Width: 6, Value: func(s *models.Student) string { return flag(s.IsLE) }},
	{Key: "isLeft", Label: "Left", Width: 6, Value: func(s *models.Student) string { return flag(s.IsLeft) }},
	{Key: "isCR", Label: "CR", Width: 6, Value: func(s *models.Student) string { return flag(s.IsCR) }},
}

func flag(b bool) string {
	if b {
		return "Yes"
	}
	return ""
}

// ExportColumnKeys returns the superset keys in output order.
func ExportColumnKeys() []string {
	keys := make([]string, len(exportColumns))
	for i, c := range exportColumns {
		keys[i] = c.Key
	}
	return keys
}

// ExportService renders a filtered+ordered view into a tabular artifact.
type ExportService struct {
	sheetName string
}

// NewExportService creates an export service writing sheets under the
// given name.
func NewExportService(sheetName string) *ExportService {
	return &ExportService{sheetName: sheetName}
}

// selectColumns resolves the selected keys against the superset,
// preserving declaration order and ignoring unknown keys.
func selectColumns(selected []string) []ExportColumn {
	want := make(map[string]bool, len(selected))
	for _, k := range selected {
		want[k] = true
	}

	var cols []ExportColumn
	for _, c := range exportColumns {
		if want[c.Key] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Export renders records into the requested format. Preconditions are
// checked before any artifact bytes are produced: an empty column
// selection and an unavailable format both fail cleanly.
func (s *ExportService) Export(records []*models.Student, selected []string, format ExportFormat) ([]byte, error) {
	cols := selectColumns(selected)
	if len(cols) == 0 {
		return nil, apperrors.ErrNoColumnsSelected
	}

	switch format {
	case ExportFormatXLSX:
		return s.renderXLSX(records, cols)
	case ExportFormatPDF:
		// Print-style artifact (multi-page, title header, styled header
		// row) is a stated target that is not produced yet.
		return nil, apperrors.ErrExportFormatUnavailable
	default:
		return nil, apperrors.ErrUnknownExportFormat
	}
}

// renderXLSX writes one sheet: a header row of column labels, one row
// per record, blank values rendered as the placeholder, widths from the
// per-column table.
func (s *ExportService) renderXLSX(records []*models.Student, cols []ExportColumn) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, s.sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	sheet = s.sheetName

	for i, c := range cols {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("resolving column name: %w", err)
		}
		if err := f.SetColWidth(sheet, colName, colName, c.Width); err != nil {
			return nil, fmt.Errorf("setting column width: %w", err)
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, c.Label); err != nil {
			return nil, fmt.Errorf("writing header cell: %w", err)
		}
	}

	for rowIdx, record := range records {
		for colIdx, c := range cols {
			value := c.Value(record)
			if value == "" {
				value = placeholder
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("resolving cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
