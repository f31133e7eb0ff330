package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidRoll     = errors.New("roll number must be exactly 11 digits")
	ErrInvalidPhone    = errors.New("phone number must be exactly 10 digits")
)

// Import errors
var (
	// ErrImportValidation signals that at least one CSV row failed
	// validation and nothing was imported.
	ErrImportValidation = errors.New("import rejected: rows failed validation")
	ErrEmptyCSV         = errors.New("CSV input contains no data rows")
)

// Export errors
var (
	// ErrNoColumnsSelected is raised before any file-write side effect
	// when an export is requested with an empty column selection.
	ErrNoColumnsSelected = errors.New("no columns selected for export")
	// ErrExportFormatUnavailable marks a recognised but unimplemented
	// artifact format; callers fall back or refuse gracefully.
	ErrExportFormatUnavailable = errors.New("export format not available")
	ErrUnknownExportFormat     = errors.New("unknown export format")
)

// Notice, form and helpdesk errors
var (
	ErrNoticeNotFound = errors.New("notice not found")
	ErrFormNotFound   = errors.New("form not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

// NewResourceNotFoundError creates a custom not-found error with a message.
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a custom bad-request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a custom validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
