package dto

// ImportPreviewResponse shows the decoded CSV and the auto-detected
// field mapping before the user commits an import.
type ImportPreviewResponse struct {
	Headers      []string            `json:"headers"`
	FieldMapping map[string]string   `json:"fieldMapping"`
	RowCount     int                 `json:"rowCount"`
	Preview      []map[string]string `json:"preview"` // first rows only
}

// ImportRowError carries the validation failures of one CSV row. Row
// numbers are 1-based and count the header line, so the first data row
// reports as row 2.
type ImportRowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// ImportResultResponse reports a committed import.
type ImportResultResponse struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// ImportErrorResponse reports a rejected import. Nothing was committed.
type ImportErrorResponse struct {
	RowErrors []ImportRowError `json:"rowErrors"`
}
